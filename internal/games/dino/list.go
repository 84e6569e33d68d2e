package dino

// entityList is an owned, insertion-ordered collection of scrolling
// entities. New entities are appended at the tail; expired ones are
// removed by identity.
type entityList[T any] struct {
	items []T
}

func (l *entityList[T]) pushBack(v T) {
	l.items = append(l.items, v)
}

// removeExpired drops every entity for which expired returns true,
// preserving the order of the rest. It returns the number removed.
func (l *entityList[T]) removeExpired(expired func(T) bool) int {
	kept := l.items[:0]
	for _, v := range l.items {
		if !expired(v) {
			kept = append(kept, v)
		}
	}
	removed := len(l.items) - len(kept)
	// Zero the tail so dropped pointers can be collected.
	var zero T
	for i := len(kept); i < len(l.items); i++ {
		l.items[i] = zero
	}
	l.items = kept
	return removed
}

func (l *entityList[T]) front() (T, bool) {
	var zero T
	if len(l.items) == 0 {
		return zero, false
	}
	return l.items[0], true
}

func (l *entityList[T]) back() (T, bool) {
	var zero T
	if len(l.items) == 0 {
		return zero, false
	}
	return l.items[len(l.items)-1], true
}

func (l *entityList[T]) len() int {
	return len(l.items)
}

func (l *entityList[T]) each(fn func(T)) {
	for _, v := range l.items {
		fn(v)
	}
}

func (l *entityList[T]) clear() {
	clear(l.items)
	l.items = l.items[:0]
}

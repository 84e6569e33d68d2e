// Package core provides fundamental types and utilities shared by the
// simulation and the platform layer. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

// CollisionBox is an axis-aligned box used for collision detection.
// For sprite sub-boxes X and Y are offsets from the owning sprite's top-left.
type CollisionBox struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewCollisionBox creates a new box with the given position and dimensions.
func NewCollisionBox(x, y, w, h int) CollisionBox {
	return CollisionBox{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b CollisionBox) Right() int {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b CollisionBox) Bottom() int {
	return b.Y + b.H
}

// Intersects reports whether two boxes overlap.
// Edges that only touch do not count as an overlap.
func (b CollisionBox) Intersects(other CollisionBox) bool {
	return b.X < other.Right() &&
		b.Right() > other.X &&
		b.Y < other.Bottom() &&
		b.Bottom() > other.Y
}

// Translate returns the box moved by the origin of another box.
// Used to place a sprite-relative sub-box into world space.
func (b CollisionBox) Translate(origin CollisionBox) CollisionBox {
	return CollisionBox{X: b.X + origin.X, Y: b.Y + origin.Y, W: b.W, H: b.H}
}

// Trim shrinks the box by n units on every side.
func (b CollisionBox) Trim(n int) CollisionBox {
	return CollisionBox{X: b.X + n, Y: b.Y + n, W: b.W - 2*n, H: b.H - 2*n}
}

// CloneBoxes returns an independent copy of a box slice.
func CloneBoxes(boxes []CollisionBox) []CollisionBox {
	if boxes == nil {
		return nil
	}
	out := make([]CollisionBox, len(boxes))
	copy(out, boxes)
	return out
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

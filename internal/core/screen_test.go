package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)
	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 12x4", s.Width(), s.Height())
	}
	want := strings.Repeat(strings.Repeat(" ", 12)+"\n", 3) + strings.Repeat(" ", 12)
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want blank", got)
	}
}

func TestScreenSetColored(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want Cell
	}{
		{"inside", 2, 3, Cell{Rune: '█', Color: ColorGreen}},
		{"left", -1, 0, blank},
		{"right", 10, 0, blank},
		{"above", 0, -1, blank},
		{"below", 0, 5, blank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(10, 5)
			s.SetColored(tt.x, tt.y, '█', ColorGreen)
			if got := s.GetCell(tt.x, tt.y); got != tt.want {
				t.Errorf("GetCell(%d, %d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, 'x', ColorRed)
	s.Clear()
	if got := s.GetCell(1, 1); got != blank {
		t.Errorf("after Clear cell = %+v, want blank", got)
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawTextColored(5, 1, "GAME", ColorRed)

	if got := s.Row(1); got != "     GAM" {
		t.Errorf("Row(1) = %q, want %q", got, "     GAM")
	}
	if s.GetCell(5, 1).Color != ColorRed {
		t.Error("text color not applied")
	}
}

func TestScreenRowOutside(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(7); got != "   " {
		t.Errorf("Row(7) = %q, want blank", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorDefault)
	s.DrawTextColored(0, 5, "World", ColorDefault)

	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "Hell" {
		t.Errorf("Row(0) = %q, want %q", got, "Hell")
	}

	s.Resize(15, 8)
	if got := s.Row(0); !strings.HasPrefix(got, "Hell ") {
		t.Errorf("Row(0) after growing = %q", got)
	}
	if got := strings.TrimSpace(s.Row(5)); got != "" {
		t.Errorf("row dropped by the shrink came back: %q", got)
	}
}

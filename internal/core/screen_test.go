package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(0, 0, 10, 10), 'X', ColorGreen)

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColor(2, 1, "Hi ♦", ColorYellow)

	if got := s.Row(1); !strings.HasPrefix(got, "  Hi ♦") {
		t.Errorf("Row(1) = %q, expected prefix %q", got, "  Hi ♦")
	}
	if s.GetCell(5, 1).Color != ColorYellow {
		t.Error("Multi-byte rune should land in the next column with its color")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "PAUSED", ColorDefault)

	if got := s.Row(2); !strings.Contains(got, "       PAUSED") {
		t.Errorf("Row(2) = %q, expected centered PAUSED", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(0, 0, 10, 5), ColorGray)

	corners := []struct {
		x, y int
		r    rune
	}{
		{0, 0, '┌'},
		{9, 0, '┐'},
		{0, 4, '└'},
		{9, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.r {
			t.Errorf("Get(%d, %d) = %q, expected %q", c.x, c.y, got, c.r)
		}
	}
	if s.Get(5, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("DrawBox should draw edges")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	if got := s.String(); got != "a  \n  b" {
		t.Errorf("String() = %q, expected %q", got, "a  \n  b")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Resize(20, 5)

	if s.Width() != 20 || s.Height() != 5 {
		t.Errorf("Resize() = %dx%d, expected 20x5", s.Width(), s.Height())
	}
	s.Set(19, 4, 'Z')
	if s.Get(19, 4) != 'Z' {
		t.Error("Resized screen should accept writes at new bounds")
	}
}

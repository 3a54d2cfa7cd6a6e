package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if s.Get(3, 2) != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", s.Get(3, 2))
	}

	// Untouched cells are spaces
	if s.Get(0, 0) != ' ' {
		t.Errorf("Get(0, 0) = %q, expected space", s.Get(0, 0))
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Out-of-bounds writes must not panic
	s.Set(-1, 0, 'A')
	s.Set(0, -1, 'B')
	s.Set(10, 0, 'C')
	s.Set(0, 5, 'D')

	// Out-of-bounds reads return space
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
	if s.GetCell(10, 5).Color != ColorDefault {
		t.Error("out-of-bounds GetCell should return default color")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(1, 1, '█', ColorRunner)
	cell := s.GetCell(1, 1)
	if cell.Rune != '█' || cell.Color != ColorRunner {
		t.Errorf("GetCell(1, 1) = %+v, expected runner-colored block", cell)
	}

	s.Clear()
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear should reset cell colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "Hi")
	if s.Get(2, 1) != 'H' || s.Get(3, 1) != 'i' {
		t.Error("DrawText did not place characters")
	}

	// Clipped text must not panic
	s.DrawText(8, 1, "long text")
	if s.Get(9, 1) != 'o' {
		t.Errorf("clipped DrawText: Get(9, 1) = %q, expected 'o'", s.Get(9, 1))
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(10, 5)

	s.DrawHLine(0, 4, 10, '═', ColorGray)
	for x := 0; x < 10; x++ {
		if s.Get(x, 4) != '═' {
			t.Fatalf("DrawHLine missing at x=%d", x)
		}
	}

	s.DrawVLine(5, 0, 3, '│', ColorDefault)
	for y := 0; y < 3; y++ {
		if s.Get(5, y) != '│' {
			t.Fatalf("DrawVLine missing at y=%d", y)
		}
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 2), '▓', ColorGreen)

	for y := 2; y < 4; y++ {
		for x := 2; x < 5; x++ {
			c := s.GetCell(x, y)
			if c.Rune != '▓' || c.Color != ColorGreen {
				t.Fatalf("DrawRect missing at (%d, %d)", x, y)
			}
		}
	}
	if s.Get(5, 2) != ' ' {
		t.Error("DrawRect wrote outside its bounds")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'A')
	s.Set(2, 1, 'B')

	got := s.String()
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "A  " || lines[1] != "  B" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'X')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Resize dimensions = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'X' {
		t.Error("Resize should preserve existing content")
	}

	// Shrink past the content
	s.Resize(2, 2)
	if s.Get(2, 2) != ' ' {
		t.Error("shrunk screen should not retain out-of-bounds content")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 1, "abcd")

	if s.Row(1) != "abcd" {
		t.Errorf("Row(1) = %q, expected \"abcd\"", s.Row(1))
	}
	if s.Row(5) != "    " {
		t.Errorf("Row(5) out of bounds = %q, expected spaces", s.Row(5))
	}
}

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
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorGreen)
	if got := s.GetCell(5, 5); got.Rune != 'X' || got.Color != ColorGreen {
		t.Errorf("GetCell(5, 5) = %+v, expected green X", got)
	}

	// Out of bounds writes are ignored
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenFillRectClips(t *testing.T) {
	s := NewScreen(6, 4)
	s.FillRect(NewRect(4, 2, 5, 5), '=', ColorBrown)

	count := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune == '=' {
				count++
				if c.Color != ColorBrown {
					t.Errorf("cell (%d, %d) color = %d, expected brown", x, y, c.Color)
				}
			}
		}
	}
	if count != 4 {
		t.Errorf("FillRect painted %d cells, expected 4", count)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.Fill('X', ColorRed)
	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(12, 3)
	s.DrawText(1, 0, "SCORE 10")
	s.DrawTextColored(8, 1, "GAME", ColorRed)

	if got := s.Row(0); got != " SCORE 10   " {
		t.Errorf("Row(0) = %q", got)
	}
	if got := s.Row(1); got != "        GAME" {
		t.Errorf("Row(1) = %q", got)
	}
	if s.GetCell(8, 1).Color != ColorRed {
		t.Error("DrawTextColored should color cells")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "OVER")

	if got := strings.TrimRight(s.Row(0), " "); got != "   OVER" {
		t.Errorf("Row(0) = %q, expected centered text", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(s.Bounds())

	expected := "┌──┐\n│  │\n└──┘"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(1, 1, 'A', ColorYellow)
	s.Set(4, 4, 'Z')

	s.Resize(3, 8)

	if s.Width() != 3 || s.Height() != 8 {
		t.Fatalf("Resize() gave %dx%d", s.Width(), s.Height())
	}
	if c := s.GetCell(1, 1); c.Rune != 'A' || c.Color != ColorYellow {
		t.Errorf("Resize lost content at (1,1): %+v", c)
	}
	if s.Get(4, 4) != ' ' {
		t.Error("Cells outside the new width should be gone")
	}
	if s.Get(0, 7) != ' ' {
		t.Error("New rows should be blank")
	}
}

func TestScreenHLine(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawHLine(1, 0, 3, '~', ColorBlue)

	if got := s.Row(0); got != " ~~~ " {
		t.Errorf("Row(0) = %q", got)
	}
}

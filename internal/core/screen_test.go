package core

import (
	"strings"
	"testing"
)

// lines splits the plain-text screen into rows.
func lines(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	for y, row := range lines(s) {
		if row != "      " {
			t.Errorf("row %d = %q, expected blanks", y, row)
		}
	}
}

func TestScreenSetClipsOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)

	s.SetColored(1, 1, '■', ColorBrightCyan)
	s.Set(-1, 0, 'x')
	s.Set(4, 0, 'x')
	s.Set(0, 2, 'x')

	if got := s.String(); got != "    \n ■  " {
		t.Errorf("String() = %q", got)
	}
	if c := s.GetCell(1, 1); c.Color != ColorBrightCyan {
		t.Errorf("color = %v, expected bright cyan", c.Color)
	}
	if c := s.GetCell(9, 9); c.Rune != ' ' {
		t.Errorf("out-of-bounds cell = %q, expected space", c.Rune)
	}
}

func TestScreenDrawShapes(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want []string
	}{
		{
			name: "rect with top line",
			draw: func(s *Screen) {
				r := NewRect(1, 1, 3, 2)
				s.DrawRect(r, '█', ColorBlue)
				s.DrawHLine(r.X, r.Y, r.W, '▀', ColorBrightBlue)
			},
			want: []string{"     ", " ▀▀▀ ", " ███ "},
		},
		{
			name: "box",
			draw: func(s *Screen) { s.DrawBox(NewRect(0, 0, 5, 3)) },
			want: []string{"┌───┐", "│   │", "└───┘"},
		},
		{
			name: "rect clipped at the edge",
			draw: func(s *Screen) { s.DrawRect(NewRect(3, 2, 4, 4), '▲', ColorBrightRed) },
			want: []string{"     ", "     ", "   ▲▲"},
		},
		{
			name: "centered text",
			draw: func(s *Screen) { s.DrawTextCentered(1, "Hi!") },
			want: []string{"     ", " Hi! ", "     "},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(5, 3)
			tc.draw(s)

			got := lines(s)
			for y := range tc.want {
				if got[y] != tc.want[y] {
					t.Errorf("row %d = %q, expected %q", y, got[y], tc.want[y])
				}
			}
		})
	}
}

func TestScreenTextKeepsColor(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextColored(2, 0, "♥♥♥", ColorRed)

	if got := lines(s)[0]; got != "  ♥♥♥     " {
		t.Errorf("row = %q", got)
	}
	for x := 2; x < 5; x++ {
		if c := s.GetCell(x, 0); c.Color != ColorRed {
			t.Errorf("cell %d color = %v, expected red", x, c.Color)
		}
	}

	s.Clear()
	if c := s.GetCell(2, 0); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Clear() left %+v", c)
	}
}

func TestScreenResizeKeepsOverlap(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")

	s.Resize(2, 3)

	want := []string{"ab", "ef", "  "}
	got := lines(s)
	if len(got) != len(want) {
		t.Fatalf("rows = %d, expected %d", len(got), len(want))
	}
	for y := range want {
		if got[y] != want[y] {
			t.Errorf("row %d = %q, expected %q", y, got[y], want[y])
		}
	}
}

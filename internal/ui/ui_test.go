package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestWrap(t *testing.T) {
	cases := []struct {
		text  string
		width int
		want  []string
	}{
		{"short", 20, []string{"short"}},
		{"the quick brown fox", 10, []string{"the quick", "brown fox"}},
		// A single oversized word stays on its own line rather than
		// being split mid-word.
		{"supercalifragilistic", 10, []string{"supercalifragilistic"}},
		{"a b c d", 3, []string{"a b", "c d"}},
	}
	for _, c := range cases {
		got := wrap(c.text, c.width)
		if len(got) != len(c.want) {
			t.Errorf("wrap(%q, %d) = %v, want %v", c.text, c.width, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("wrap(%q, %d)[%d] = %q, want %q", c.text, c.width, i, got[i], c.want[i])
			}
		}
	}
}

func TestSimulationScreenDrawing(t *testing.T) {
	screen, err := NewSimulationScreen()
	if err != nil {
		t.Fatalf("NewSimulationScreen failed: %v", err)
	}
	defer screen.Close()

	w, h := screen.Size()
	if w <= 0 || h <= 0 {
		t.Fatalf("screen size %dx%d, want positive dimensions", w, h)
	}

	r := NewRenderer(screen)
	r.Frame(1, 1, 20, 5, "Test")
	r.Print(3, 3, tcell.StyleDefault, "hello")
	r.Show()
}

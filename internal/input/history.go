package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gravedelve/internal/engine"
	"github.com/samdwyer/gravedelve/internal/ui"
)

// HistoryViewer shows the full message log with a movable cursor. Moving
// past an edge wraps to the far end; stepping one line at an edge stays.
type HistoryViewer struct {
	sessionHandler
	cursor int
	length int
}

func NewHistoryViewer(eng *engine.Engine) *HistoryViewer {
	length := eng.Log.Len()
	return &HistoryViewer{
		sessionHandler: sessionHandler{eng: eng},
		cursor:         length - 1,
		length:         length,
	}
}

func (h *HistoryViewer) HandleEvent(ev tcell.Event) Handler {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return h
	}
	switch key.Key() {
	case tcell.KeyUp:
		h.move(-1)
	case tcell.KeyDown:
		h.move(1)
	case tcell.KeyPgUp:
		h.move(-10)
	case tcell.KeyPgDn:
		h.move(10)
	case tcell.KeyHome:
		h.cursor = 0
	case tcell.KeyEnd:
		h.cursor = h.length - 1
	default:
		return NewMain(h.eng)
	}
	return h
}

// move shifts the cursor, wrapping only on a single step past the edge.
// Large jumps clamp instead, matching how paging should feel.
func (h *HistoryViewer) move(delta int) {
	if h.length == 0 {
		return
	}
	next := h.cursor + delta
	switch {
	case next < 0 && delta == -1:
		h.cursor = h.length - 1
	case next >= h.length && delta == 1:
		h.cursor = 0
	case next < 0:
		h.cursor = 0
	case next >= h.length:
		h.cursor = h.length - 1
	default:
		h.cursor = next
	}
}

func (h *HistoryViewer) Render(r *ui.Renderer) {
	r.World(h.eng)
	const width, height = 70, 40
	x, y := 3, 1
	r.Frame(x, y, width, height, "Message history")

	rows := height - 2
	msgs := h.eng.Log.Messages
	// Show the window of messages ending at the cursor.
	end := h.cursor + 1
	start := end - rows
	if start < 0 {
		start = 0
	}
	for i := start; i < end; i++ {
		style := tcell.StyleDefault.Foreground(msgs[i].Color)
		if i == h.cursor {
			style = style.Reverse(true)
		}
		r.Print(x+2, y+1+(i-start), style, msgs[i].FullText())
	}
}

package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gravedelve/internal/engine"
	"github.com/samdwyer/gravedelve/internal/ui"
)

// GameOver is the terminal mode after the player dies: the world stays
// on screen, the history is still readable, and Escape or Q ends the
// session.
type GameOver struct {
	sessionHandler
}

func NewGameOver(eng *engine.Engine) *GameOver {
	return &GameOver{sessionHandler{eng: eng}}
}

func (h *GameOver) HandleEvent(ev tcell.Event) Handler {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return h
	}
	switch key.Key() {
	case tcell.KeyEscape:
		return nil
	case tcell.KeyRune:
		switch key.Rune() {
		case 'Q', 'q':
			return nil
		case 'v':
			return &gameOverHistory{NewHistoryViewer(h.eng)}
		}
	}
	return h
}

func (h *GameOver) Render(r *ui.Renderer) {
	r.World(h.eng)
	drawMenu(r, "You died", []string{
		"Your adventure has ended.",
		"",
		"(v) review the message history",
		"(Q) or Escape to exit",
	})
}

// gameOverHistory wraps the history viewer so closing it returns to the
// death screen instead of live play.
type gameOverHistory struct {
	*HistoryViewer
}

func (h *gameOverHistory) HandleEvent(ev tcell.Event) Handler {
	next := h.HistoryViewer.HandleEvent(ev)
	if next == h.HistoryViewer {
		return h
	}
	return NewGameOver(h.eng)
}

// QuitConfirm double-checks before abandoning a run.
type QuitConfirm struct {
	sessionHandler
}

func NewQuitConfirm(eng *engine.Engine) *QuitConfirm {
	return &QuitConfirm{sessionHandler{eng: eng}}
}

func (h *QuitConfirm) HandleEvent(ev tcell.Event) Handler {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return h
	}
	if key.Key() == tcell.KeyRune && (key.Rune() == 'y' || key.Rune() == 'Y') {
		return nil
	}
	return NewMain(h.eng)
}

func (h *QuitConfirm) Render(r *ui.Renderer) {
	r.World(h.eng)
	drawMenu(r, "Quit", []string{"Really quit? (y/N)"})
}

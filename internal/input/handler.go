// Package input implements the modal input state machine. Exactly one
// handler is active at a time; every event maps to the next active
// handler, so menus, targeting modes and prompts are just handlers that
// eventually give the main handler back.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gravedelve/internal/engine"
	"github.com/samdwyer/gravedelve/internal/ui"
)

// Handler is one input mode. HandleEvent returns the handler that should
// receive the next event; returning nil ends the game loop. Render draws
// the mode's view onto the composed frame.
type Handler interface {
	HandleEvent(ev tcell.Event) Handler
	Render(r *ui.Renderer)
}

// sessionHandler is the base for handlers that operate on a live game
// session. Its default view is the world itself.
type sessionHandler struct {
	eng *engine.Engine
}

func (h *sessionHandler) Render(r *ui.Renderer) {
	r.World(h.eng)
}

// resolve performs a player action and picks the follow-up mode: on an
// impossible action the current mode stays open with the reason logged;
// on a turn passing, play returns to the main mode unless the player
// died or earned a level.
func resolve(eng *engine.Engine, act engine.Action, current Handler) Handler {
	if !eng.ResolvePlayerAction(act) {
		return current
	}
	if !eng.Player.IsAlive() {
		return NewGameOver(eng)
	}
	if eng.Player.Actor.Level.CanLevel() {
		return NewLevelUp(eng)
	}
	return NewMain(eng)
}

// moveKeyDelta maps a key event to a movement delta. Arrow keys and the
// numpad digits both work; ok is false for non-movement keys.
func moveKeyDelta(ev *tcell.EventKey) (dx, dy int, ok bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return 0, -1, true
	case tcell.KeyDown:
		return 0, 1, true
	case tcell.KeyLeft:
		return -1, 0, true
	case tcell.KeyRight:
		return 1, 0, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case '1':
			return -1, 1, true
		case '2':
			return 0, 1, true
		case '3':
			return 1, 1, true
		case '4':
			return -1, 0, true
		case '6':
			return 1, 0, true
		case '7':
			return -1, -1, true
		case '8':
			return 0, -1, true
		case '9':
			return 1, -1, true
		}
	}
	return 0, 0, false
}

// isWaitKey reports whether the key passes the turn in place.
func isWaitKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && (ev.Rune() == '5' || ev.Rune() == '.')
}

// menuLetter converts a key event to a menu index ('a' = 0), or -1.
func menuLetter(ev *tcell.EventKey) int {
	if ev.Key() != tcell.KeyRune {
		return -1
	}
	r := ev.Rune()
	if r < 'a' || r > 'z' {
		return -1
	}
	return int(r - 'a')
}

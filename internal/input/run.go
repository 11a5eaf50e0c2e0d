package input

import (
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gravedelve/internal/engine"
	"github.com/samdwyer/gravedelve/internal/ui"
)

// Runner owns the event loop: it renders the active handler, feeds it
// events, and follows the handler chain until the game ends.
type Runner struct {
	Engine   *engine.Engine
	Renderer *ui.Renderer
	// SaveFunc, when set, is invoked on Ctrl+S to persist the session.
	SaveFunc func(*engine.Engine) error
}

// Run drives the game until a handler returns nil. A panicking handler
// is logged and play resumes at the main mode rather than tearing the
// terminal down mid-session.
func (run *Runner) Run() {
	var handler Handler = NewMain(run.Engine)
	for handler != nil {
		handler = run.step(handler)
	}
}

func (run *Runner) step(handler Handler) (next Handler) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error("handler panicked", "err", rec)
			run.Engine.Log.Add("Something went badly wrong, but you press on.", tcell.ColorRed)
			next = NewMain(run.Engine)
		}
	}()

	handler.Render(run.Renderer)
	run.Renderer.Show()

	ev := run.Renderer.Screen().PollEvent()
	switch ev := ev.(type) {
	case *tcell.EventResize:
		run.Renderer.Screen().Sync()
		return handler
	case *tcell.EventMouse:
		run.Engine.MouseX, run.Engine.MouseY = ev.Position()
		return handler.HandleEvent(ev)
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlS && run.SaveFunc != nil {
			if err := run.SaveFunc(run.Engine); err != nil {
				run.Engine.Log.Add("Save failed: "+err.Error(), tcell.ColorRed)
			} else {
				run.Engine.Log.Addf("Game saved.")
			}
			return handler
		}
		return handler.HandleEvent(ev)
	default:
		return handler
	}
}

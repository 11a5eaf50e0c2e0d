package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gravedelve/internal/engine"
	"github.com/samdwyer/gravedelve/internal/entity"
	"github.com/samdwyer/gravedelve/internal/ui"
)

// TextEntry collects a line of typed text. Printable runes append,
// Backspace deletes, and Enter or Escape commits whatever has been
// typed.
type TextEntry struct {
	sessionHandler
	title  string
	buffer []rune
	commit func(text string) Handler
}

func NewTextEntry(eng *engine.Engine, title, initial string, commit func(text string) Handler) *TextEntry {
	return &TextEntry{
		sessionHandler: sessionHandler{eng: eng},
		title:          title,
		buffer:         []rune(initial),
		commit:         commit,
	}
}

func (h *TextEntry) HandleEvent(ev tcell.Event) Handler {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return h
	}
	switch key.Key() {
	case tcell.KeyEnter, tcell.KeyEscape:
		return h.commit(string(h.buffer))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(h.buffer) > 0 {
			h.buffer = h.buffer[:len(h.buffer)-1]
		}
	case tcell.KeyRune:
		r := key.Rune()
		if r >= ' ' && len(h.buffer) < 24 {
			h.buffer = append(h.buffer, r)
		}
	}
	return h
}

func (h *TextEntry) Render(r *ui.Renderer) {
	r.World(h.eng)
	drawMenu(r, h.title, []string{string(h.buffer) + "_"})
}

// NewRename opens the inventory to pick an item, then a prompt to give
// it a new name. An empty entry keeps the old name.
func NewRename(eng *engine.Engine) Handler {
	h := &inventoryMenu{
		sessionHandler: sessionHandler{eng: eng},
		title:          "Rename which item?",
	}
	h.items = func() []*entity.Entity { return eng.Player.Actor.Inventory.Items }
	h.pick = func(item *entity.Entity) Handler {
		return NewTextEntry(eng, "Name the "+item.Name+":", item.Name, func(text string) Handler {
			if text != "" && text != item.Name {
				old := item.Name
				item.Name = text
				eng.Log.Addf("The %s shall be known as %s.", old, text)
			}
			return NewMain(eng)
		})
	}
	return h
}

package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gravedelve/internal/action"
	"github.com/samdwyer/gravedelve/internal/engine"
	"github.com/samdwyer/gravedelve/internal/gamedata"
	"github.com/samdwyer/gravedelve/internal/ui"
)

// SpellMenu lists the player's known spells; picking one starts the
// targeting flow the spell's kind requires.
type SpellMenu struct {
	sessionHandler
}

func NewSpellMenu(eng *engine.Engine) Handler {
	if len(eng.Player.Actor.Battler.Spells) == 0 {
		eng.Log.Add("You do not know any spells.", tcell.ColorGray)
		return NewMain(eng)
	}
	return &SpellMenu{sessionHandler{eng: eng}}
}

func (h *SpellMenu) names() []string {
	return gamedata.SortedNames(h.eng.Player.Actor.Battler.Spells)
}

func (h *SpellMenu) HandleEvent(ev tcell.Event) Handler {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return h
	}
	idx := menuLetter(key)
	if idx < 0 {
		return NewMain(h.eng)
	}
	names := h.names()
	if idx >= len(names) {
		h.eng.Log.Add("Invalid entry.", tcell.ColorGray)
		return h
	}
	spell := h.eng.Spells.GetByName(names[idx])
	if spell == nil {
		h.eng.Log.Add("Invalid entry.", tcell.ColorGray)
		return h
	}
	return h.dispatch(spell)
}

// dispatch routes a chosen spell to its targeting mode. Untargeted
// spells cast immediately.
func (h *SpellMenu) dispatch(spell *gamedata.SpellDef) Handler {
	eng := h.eng
	switch spell.Kind {
	case gamedata.SpellRanged:
		return NewSelectMonster(eng, func(pick *targetPick) Handler {
			return resolve(eng, &action.Cast{
				Engine: eng, Spell: spell, Target: pick.Entity,
			}, NewMain(eng))
		})
	case gamedata.SpellTouch:
		return NewSelectIndex(eng, func(pick *targetPick) Handler {
			return resolve(eng, &action.Cast{
				Engine: eng, Spell: spell, Target: pick.Entity,
			}, NewMain(eng))
		})
	case gamedata.SpellArea:
		return NewSelectArea(eng, spell.Radius, func(pick *targetPick) Handler {
			return resolve(eng, &action.Cast{
				Engine: eng, Spell: spell, TX: pick.X, TY: pick.Y,
			}, NewMain(eng))
		})
	case gamedata.SpellSummon:
		return NewSelectIndex(eng, func(pick *targetPick) Handler {
			return resolve(eng, &action.Cast{
				Engine: eng, Spell: spell, TX: pick.X, TY: pick.Y,
			}, NewMain(eng))
		})
	default:
		return resolve(eng, &action.Cast{Engine: eng, Spell: spell}, h)
	}
}

func (h *SpellMenu) Render(r *ui.Renderer) {
	r.World(h.eng)
	known := h.eng.Player.Actor.Battler.Spells
	names := h.names()
	lines := make([]string, 0, len(names))
	for i, name := range names {
		mana := known[name]
		if def := h.eng.Spells.GetByName(name); def != nil {
			mana = def.Mana
		}
		lines = append(lines, fmt.Sprintf("(%c) %s - %d mana", 'a'+i, name, mana))
	}
	drawMenu(r, "Cast which spell?", lines)
}

package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gravedelve/internal/engine"
	"github.com/samdwyer/gravedelve/internal/entity"
	"github.com/samdwyer/gravedelve/internal/gamedata"
	"github.com/samdwyer/gravedelve/internal/ui"
)

// LevelUp applies one level per the class rules the moment it opens,
// then shows the result. Any key moves on to feat and stat picks when
// points were earned.
type LevelUp struct {
	sessionHandler
	newLevel int
}

func NewLevelUp(eng *engine.Engine) *LevelUp {
	actor := eng.Player.Actor
	def := eng.Classes.GetByID(actor.Battler.ClassID)
	actor.LevelUp(def)
	eng.Log.Add(fmt.Sprintf("You advance to level %d!", actor.Level.Current), tcell.ColorYellow)
	return &LevelUp{
		sessionHandler: sessionHandler{eng: eng},
		newLevel:       actor.Level.Current,
	}
}

func (h *LevelUp) HandleEvent(ev tcell.Event) Handler {
	if _, ok := ev.(*tcell.EventKey); !ok {
		return h
	}
	return afterLevelUp(h.eng)
}

// afterLevelUp picks the next mode once a level has been applied:
// pending picks first, then any further level the surplus XP covers,
// then back to play.
func afterLevelUp(eng *engine.Engine) Handler {
	b := &eng.Player.Actor.Battler
	if b.FeatPoints > 0 || b.StatPoints > 0 {
		return NewFeatSelection(eng)
	}
	if eng.Player.Actor.Level.CanLevel() {
		return NewLevelUp(eng)
	}
	return NewMain(eng)
}

func (h *LevelUp) Render(r *ui.Renderer) {
	r.World(h.eng)
	b := h.eng.Player.Actor.Battler
	lines := []string{
		fmt.Sprintf("Welcome to level %d!", h.newLevel),
		"",
		fmt.Sprintf("HP: %d  Mana: %d  Base attack: +%d", b.MaxHP, b.MaxMana, b.BAB),
	}
	if b.FeatPoints > 0 {
		lines = append(lines, fmt.Sprintf("Feat picks earned: %d", b.FeatPoints))
	}
	if b.StatPoints > 0 {
		lines = append(lines, fmt.Sprintf("Stat picks earned: %d", b.StatPoints))
	}
	lines = append(lines, "", "(press any key)")
	drawMenu(r, "Level up", lines)
}

// FeatSelection spends earned feat and stat points. Feats list first,
// the six ability scores after; a stat pick keeps the menu open while
// points remain, a feat pick closes it.
type FeatSelection struct {
	sessionHandler
}

func NewFeatSelection(eng *engine.Engine) *FeatSelection {
	return &FeatSelection{sessionHandler{eng: eng}}
}

// selectableFeats lists feats the player qualifies for, when feat points
// remain.
func (h *FeatSelection) selectableFeats() []*gamedata.FeatDef {
	b := &h.eng.Player.Actor.Battler
	if b.FeatPoints <= 0 {
		return nil
	}
	return h.eng.Feats.Selectable(b.Feats, func(f *gamedata.FeatDef) bool {
		if b.BAB < f.MinBAB {
			return false
		}
		if f.MinStat != "" && b.Stat(f.MinStat) < f.MinValue {
			return false
		}
		return true
	})
}

func (h *FeatSelection) HandleEvent(ev tcell.Event) Handler {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return h
	}
	idx := menuLetter(key)
	if idx < 0 {
		return h.leave()
	}
	b := &h.eng.Player.Actor.Battler
	feats := h.selectableFeats()
	if idx < len(feats) {
		feat := feats[idx]
		b.Feats[feat.Name]++
		b.FeatPoints--
		if feat.ID == "toughness" {
			b.MaxHP += 3
			b.HP += 3
		}
		h.eng.Log.Add("You learn "+feat.Name+".", tcell.ColorYellow)
		return h.leave()
	}
	statIdx := idx - len(feats)
	if b.StatPoints > 0 && statIdx < len(entity.StatNames) {
		name := entity.StatNames[statIdx]
		b.AddStat(name)
		b.StatPoints--
		h.eng.Log.Add(fmt.Sprintf("Your %s rises to %d.", name, b.Stat(name)), tcell.ColorYellow)
		if b.StatPoints > 0 {
			return h
		}
		return h.leave()
	}
	h.eng.Log.Add("Invalid entry.", tcell.ColorGray)
	return h
}

func (h *FeatSelection) leave() Handler {
	if h.eng.Player.Actor.Level.CanLevel() {
		return NewLevelUp(h.eng)
	}
	return NewMain(h.eng)
}

func (h *FeatSelection) Render(r *ui.Renderer) {
	r.World(h.eng)
	b := h.eng.Player.Actor.Battler
	feats := h.selectableFeats()
	lines := make([]string, 0, len(feats)+8)
	for i, feat := range feats {
		lines = append(lines, fmt.Sprintf("(%c) %s", 'a'+i, feat.Name))
	}
	if b.StatPoints > 0 {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		for i, name := range entity.StatNames {
			lines = append(lines, fmt.Sprintf("(%c) %s %d -> %d",
				rune('a'+len(feats)+i), name, b.Stat(name), b.Stat(name)+1))
		}
	}
	if len(lines) == 0 {
		lines = append(lines, "(nothing to pick)")
	}
	title := fmt.Sprintf("Spend your picks (feats %d, stats %d)", b.FeatPoints, b.StatPoints)
	drawMenu(r, title, lines)
}

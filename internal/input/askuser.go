package input

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gravedelve/internal/engine"
	"github.com/samdwyer/gravedelve/internal/ui"
)

// askUser is the base for informational overlays: any keypress or click
// returns to the main mode.
type askUser struct {
	sessionHandler
}

func (h *askUser) HandleEvent(ev tcell.Event) Handler {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return NewMain(h.eng)
	case *tcell.EventMouse:
		if ev.Buttons() != tcell.ButtonNone {
			return NewMain(h.eng)
		}
	}
	return h
}

// CharacterScreen shows the player's sheet: scores, derived combat
// numbers and progression.
type CharacterScreen struct {
	askUser
}

func NewCharacterScreen(eng *engine.Engine) *CharacterScreen {
	return &CharacterScreen{askUser{sessionHandler{eng: eng}}}
}

func (h *CharacterScreen) Render(r *ui.Renderer) {
	r.World(h.eng)
	player := h.eng.Player
	a := player.Actor
	b := a.Battler

	lines := []string{
		fmt.Sprintf("%s, level %d %s", player.Name, a.Level.Current, b.ClassID),
		fmt.Sprintf("XP: %d / %d", a.Level.XP, a.Level.Threshold()),
		"",
	}
	for _, stat := range [6]string{"Str", "Dex", "Con", "Int", "Wis", "Cha"} {
		lines = append(lines, fmt.Sprintf("%s: %d", stat, b.Stat(stat)))
	}
	lines = append(lines, "",
		fmt.Sprintf("HP: %d/%d  Mana: %d/%d", b.HP, b.MaxHP, b.Mana, b.MaxMana),
		fmt.Sprintf("AC: %d  Base attack: +%d", a.ArmorClass(), b.BAB),
		fmt.Sprintf("Gold: %d", b.Gold),
	)
	if len(b.Feats) > 0 {
		lines = append(lines, "", "Feats:")
		names := make([]string, 0, len(b.Feats))
		for name := range b.Feats {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if times := b.Feats[name]; times > 1 {
				lines = append(lines, fmt.Sprintf("  %s (x%d)", name, times))
			} else {
				lines = append(lines, "  "+name)
			}
		}
	}
	drawMenu(r, "Character", lines)
}

// BuffsScreen lists active effects with their remaining turns.
type BuffsScreen struct {
	askUser
}

func NewBuffsScreen(eng *engine.Engine) *BuffsScreen {
	return &BuffsScreen{askUser{sessionHandler{eng: eng}}}
}

func (h *BuffsScreen) Render(r *ui.Renderer) {
	r.World(h.eng)
	buffs := h.eng.Player.Actor.Battler.Buffs
	lines := []string{}
	names := make([]string, 0, len(buffs))
	for name := range buffs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		remaining := buffs[name].Expires - h.eng.Turn
		lines = append(lines, fmt.Sprintf("%s (%d turns left)", name, remaining))
	}
	if len(lines) == 0 {
		lines = append(lines, "(no active effects)")
	}
	drawMenu(r, "Active Effects", lines)
}

// Help lists the game's keys.
type Help struct {
	askUser
}

func NewHelp(eng *engine.Engine) *Help {
	return &Help{askUser{sessionHandler{eng: eng}}}
}

func (h *Help) Render(r *ui.Renderer) {
	r.World(h.eng)
	drawMenu(r, "Help", []string{
		"Arrows / numpad  move or attack",
		"Shift+direction  run",
		"5 or .           wait",
		"g or ,           pick up",
		"> / <            take stairs",
		"i                use an item",
		"d                drop an item",
		"e                equipment",
		"c                character sheet",
		"a                cast a spell",
		"f                fire ranged weapon",
		"x                swap weapon sets",
		"r / p            open a bag / fill a bag",
		"b / t            buy / sell at a shop",
		"U                enchant at the enchanter",
		"B                active effects",
		"v                message history",
		"/                look around",
		"n                rename an item",
		"Ctrl+S           save",
		"Q or Escape      quit",
	})
}

// drawMenu draws a centered framed window sized to its lines.
func drawMenu(r *ui.Renderer, title string, lines []string) {
	width := len(title) + 6
	for _, line := range lines {
		if len(line)+4 > width {
			width = len(line) + 4
		}
	}
	height := len(lines) + 2
	x, y := 4, 2
	r.Frame(x, y, width, height, title)
	for i, line := range lines {
		r.Print(x+2, y+1+i, tcell.StyleDefault, line)
	}
}

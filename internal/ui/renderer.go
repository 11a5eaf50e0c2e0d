package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/gravedelve/internal/engine"
	"github.com/samdwyer/gravedelve/internal/entity"
	"github.com/samdwyer/gravedelve/internal/world"
)

// HUD layout. The map occupies rows above HUDTop; everything below is
// status bars and the message log.
const (
	HUDTop      = 43
	BarWidth    = 20
	LogX        = 22
	LogWidth    = 56
	LogHeight   = 6
	ScreenLines = 50
)

// Renderer draws the game and its menu overlays.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Screen exposes the underlying screen for the event loop.
func (r *Renderer) Screen() *Screen {
	return r.screen
}

// Show flushes the composed frame.
func (r *Renderer) Show() {
	r.screen.Show()
}

// World draws the full play view: map, entities, HUD and message log.
// Overlay menus draw on top before the frame is shown.
func (r *Renderer) World(e *engine.Engine) {
	r.screen.Clear()
	r.drawMap(e.Map)
	r.drawEntities(e)
	r.drawHUD(e)
	r.drawLog(e.Log, LogX, HUDTop+1, LogWidth, LogHeight)
	r.drawNamesAtMouse(e)
}

func (r *Renderer) drawMap(m *world.GameMap) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile := m.TileAt(x, y)
			switch {
			case m.Visible[y][x]:
				r.screen.SetContent(x, y, tile.Glyph,
					tcell.StyleDefault.Foreground(tile.LightFG))
			case m.Explored[y][x]:
				r.screen.SetContent(x, y, tile.Glyph,
					tcell.StyleDefault.Foreground(tile.DarkFG))
			default:
				r.screen.SetContent(x, y, ' ', tcell.StyleDefault)
			}
		}
	}
}

// drawEntities paints entities in render order so actors cover corpses
// and corpses cover loot. Stationary landmarks (stairs, shops) also show
// on explored-but-unseen tiles.
func (r *Renderer) drawEntities(e *engine.Engine) {
	m := e.Map
	for _, ent := range m.EntitiesInRenderOrder() {
		visible := m.Visible[ent.Y][ent.X]
		// Stationary landmarks stay on the map once seen.
		landmark := ent.Order == entity.OrderStairs
		if !visible && !(landmark && m.Explored[ent.Y][ent.X]) {
			continue
		}
		color := ent.Color
		if !visible {
			color = tcell.ColorDimGray
		}
		r.screen.SetContent(ent.X, ent.Y, ent.Glyph,
			tcell.StyleDefault.Foreground(color))
	}
}

func (r *Renderer) drawHUD(e *engine.Engine) {
	b := e.Player.Actor.Battler
	r.drawBar(0, HUDTop+1, "HP", b.HP, b.MaxHP, tcell.ColorDarkRed, tcell.ColorGreen)
	if b.MaxMana > 0 {
		r.drawBar(0, HUDTop+2, "Mana", b.Mana, b.MaxMana, tcell.ColorDarkBlue, tcell.ColorBlue)
	}
	lvl := e.Player.Actor.Level
	r.Print(0, HUDTop+3, tcell.StyleDefault,
		fmt.Sprintf("Level %d  XP %d/%d", lvl.Current, lvl.XP, lvl.Threshold()))
	r.Print(0, HUDTop+4, tcell.StyleDefault, fmt.Sprintf("Gold %d", b.Gold))
	where := "Town"
	if e.Map.Level > 0 {
		where = fmt.Sprintf("Depth %d", e.Map.Level)
	}
	r.Print(0, HUDTop+5, tcell.StyleDefault, fmt.Sprintf("%s  Turn %d", where, e.Turn))
}

func (r *Renderer) drawBar(x, y int, label string, value, maximum int, empty, filled tcell.Color) {
	if maximum <= 0 {
		return
	}
	fillWidth := value * BarWidth / maximum
	if fillWidth < 0 {
		fillWidth = 0
	}
	text := fmt.Sprintf(" %s: %d/%d", label, value, maximum)
	for i := 0; i < BarWidth; i++ {
		bg := empty
		if i < fillWidth {
			bg = filled
		}
		ch := ' '
		if i < len(text) {
			ch = rune(text[i])
		}
		r.screen.SetContent(x+i, y, ch,
			tcell.StyleDefault.Background(bg).Foreground(tcell.ColorWhite))
	}
}

func (r *Renderer) drawLog(log *engine.MessageLog, x, y, width, height int) {
	lines := make([]struct {
		text  string
		color tcell.Color
	}, 0, height)
	for i := len(log.Messages) - 1; i >= 0 && len(lines) < height; i-- {
		msg := &log.Messages[i]
		wrapped := wrap(msg.FullText(), width)
		for j := len(wrapped) - 1; j >= 0 && len(lines) < height; j-- {
			lines = append(lines, struct {
				text  string
				color tcell.Color
			}{wrapped[j], msg.Color})
		}
	}
	for i, line := range lines {
		r.Print(x, y+height-1-i, tcell.StyleDefault.Foreground(line.color), line.text)
	}
}

func (r *Renderer) drawNamesAtMouse(e *engine.Engine) {
	if !e.Map.InBounds(e.MouseX, e.MouseY) || !e.Map.Visible[e.MouseY][e.MouseX] {
		return
	}
	names := e.Map.NamesAt(e.MouseX, e.MouseY)
	if len(names) == 0 {
		return
	}
	r.Print(LogX, HUDTop, tcell.StyleDefault.Foreground(tcell.ColorSilver),
		strings.Join(names, ", "))
}

// Print writes a string, advancing by display width so wide runes stay
// aligned.
func (r *Renderer) Print(x, y int, style tcell.Style, text string) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, style)
		col += runewidth.RuneWidth(ch)
	}
}

// Frame draws a bordered window with a title, clearing its interior.
// Menus draw their rows inside it.
func (r *Renderer) Frame(x, y, width, height int, title string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			ch := ' '
			switch {
			case row == y && col == x:
				ch = '┌'
			case row == y && col == x+width-1:
				ch = '┐'
			case row == y+height-1 && col == x:
				ch = '└'
			case row == y+height-1 && col == x+width-1:
				ch = '┘'
			case row == y || row == y+height-1:
				ch = '─'
			case col == x || col == x+width-1:
				ch = '│'
			}
			r.screen.SetContent(col, row, ch, style)
		}
	}
	if title != "" {
		r.Print(x+2, y, style.Bold(true), " "+title+" ")
	}
}

// HighlightTile repaints a map cell with reversed colors, used by the
// targeting cursors.
func (r *Renderer) HighlightTile(e *engine.Engine, x, y int) {
	if !e.Map.InBounds(x, y) {
		return
	}
	glyph := e.Map.TileAt(x, y).Glyph
	if ent := e.Map.ActorAt(x, y); ent != nil {
		glyph = ent.Glyph
	}
	r.screen.SetContent(x, y, glyph, tcell.StyleDefault.Reverse(true))
}

// wrap splits text into lines no wider than width.
func wrap(text string, width int) []string {
	if runewidth.StringWidth(text) <= width {
		return []string{text}
	}
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if runewidth.StringWidth(candidate) > width && line != "" {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

package input

import (
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gravedelve/internal/engine"
	"github.com/samdwyer/gravedelve/internal/entity"
	"github.com/samdwyer/gravedelve/internal/ui"
)

// targetPick is a confirmed targeting result.
type targetPick struct {
	Entity *entity.Entity
	X, Y   int
}

// SelectIndex is free-cursor targeting: arrows move one tile, with Shift
// x5, Ctrl x10 and Alt x20 speedups; Enter or a click confirms.
type SelectIndex struct {
	sessionHandler
	cursorX, cursorY int
	// radius, when positive, highlights the blast area around the
	// cursor instead of the single cell.
	radius  int
	confirm func(pick *targetPick) Handler
}

// NewSelectIndex opens cursor targeting, starting on the last target
// when one is still on the map.
func NewSelectIndex(eng *engine.Engine, confirm func(pick *targetPick) Handler) *SelectIndex {
	h := &SelectIndex{
		sessionHandler: sessionHandler{eng: eng},
		cursorX:        eng.Player.X,
		cursorY:        eng.Player.Y,
		confirm:        confirm,
	}
	if t := eng.LastTarget; t != nil && t.IsAlive() && eng.Map.Visible[t.Y][t.X] {
		h.cursorX, h.cursorY = t.X, t.Y
	}
	return h
}

// NewSelectArea opens cursor targeting that paints the blast radius
// around the cursor as it moves.
func NewSelectArea(eng *engine.Engine, radius int, confirm func(pick *targetPick) Handler) *SelectIndex {
	h := NewSelectIndex(eng, confirm)
	h.radius = radius
	return h
}

func (h *SelectIndex) HandleEvent(ev tcell.Event) Handler {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			if h.eng.Map.InBounds(x, y) {
				return h.confirmAt(x, y)
			}
		}
		return h
	case *tcell.EventKey:
		if dx, dy, ok := moveKeyDelta(ev); ok {
			step := 1
			if ev.Modifiers()&tcell.ModShift != 0 {
				step *= 5
			}
			if ev.Modifiers()&tcell.ModCtrl != 0 {
				step *= 10
			}
			if ev.Modifiers()&tcell.ModAlt != 0 {
				step *= 20
			}
			h.cursorX = clamp(h.cursorX+dx*step, 0, h.eng.Map.Width-1)
			h.cursorY = clamp(h.cursorY+dy*step, 0, h.eng.Map.Height-1)
			return h
		}
		switch ev.Key() {
		case tcell.KeyEnter:
			return h.confirmAt(h.cursorX, h.cursorY)
		default:
			return NewMain(h.eng)
		}
	}
	return h
}

func (h *SelectIndex) confirmAt(x, y int) Handler {
	pick := &targetPick{X: x, Y: y, Entity: h.eng.Map.ActorAt(x, y)}
	return h.confirm(pick)
}

func (h *SelectIndex) Render(r *ui.Renderer) {
	r.World(h.eng)
	if h.radius > 0 {
		for y := h.cursorY - h.radius; y <= h.cursorY+h.radius; y++ {
			for x := h.cursorX - h.radius; x <= h.cursorX+h.radius; x++ {
				r.HighlightTile(h.eng, x, y)
			}
		}
		return
	}
	r.HighlightTile(h.eng, h.cursorX, h.cursorY)
}

// NewLook opens cursor targeting purely to inspect tiles; confirming or
// cancelling both return to play. What the cursor covers shows through
// the names readout as the mouse does.
func NewLook(eng *engine.Engine) Handler {
	return NewSelectIndex(eng, func(pick *targetPick) Handler {
		names := eng.Map.NamesAt(pick.X, pick.Y)
		if len(names) > 0 && eng.Map.Visible[pick.Y][pick.X] {
			for _, name := range names {
				eng.Log.Addf("You see: %s.", name)
			}
		} else {
			eng.Log.Addf("You see nothing of note.")
		}
		return NewMain(eng)
	})
}

// SelectMonster targets living monsters with directional cone cycling:
// press a direction to pick the nearest monster in that quarter of the
// map; pressing it again steps to the next one out, wrapping past the
// last. The cycle counter lives on the engine so the flow matches
// between opens.
type SelectMonster struct {
	sessionHandler
	target  *entity.Entity
	confirm func(pick *targetPick) Handler
}

func NewSelectMonster(eng *engine.Engine, confirm func(pick *targetPick) Handler) *SelectMonster {
	h := &SelectMonster{
		sessionHandler: sessionHandler{eng: eng},
		confirm:        confirm,
	}
	if t := eng.LastTarget; t != nil && t.IsAlive() && eng.Map.Visible[t.Y][t.X] {
		h.target = t
	}
	return h
}

func (h *SelectMonster) HandleEvent(ev tcell.Event) Handler {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return h
	}
	if dx, dy, isMove := moveKeyDelta(key); isMove && (dx == 0) != (dy == 0) {
		h.cycle(dx, dy)
		return h
	}
	switch key.Key() {
	case tcell.KeyEnter:
		if h.target == nil {
			h.eng.Log.Add("No target selected.", tcell.ColorGray)
			return h
		}
		h.eng.LastTarget = h.target
		return h.confirm(&targetPick{Entity: h.target, X: h.target.X, Y: h.target.Y})
	default:
		return NewMain(h.eng)
	}
}

// cycle advances the selection within the cone for a cardinal direction.
// Repeating a direction steps outward through its candidates; switching
// directions restarts at the nearest.
func (h *SelectMonster) cycle(dx, dy int) {
	eng := h.eng
	if dx != eng.LastDX || dy != eng.LastDY {
		eng.NumPressed = 0
	} else {
		eng.NumPressed++
	}
	eng.LastDX, eng.LastDY = dx, dy

	candidates := h.candidates(dx, dy)
	if len(candidates) == 0 {
		eng.Log.Add("No targets that way.", tcell.ColorGray)
		eng.NumPressed = 0
		return
	}
	if eng.NumPressed >= len(candidates) {
		eng.NumPressed = 0
	}
	h.target = candidates[eng.NumPressed]
}

// candidates lists living visible monsters inside the quarter-plane cone
// for a cardinal direction, nearest first. A monster lies in the cone
// when its offset along the pressed axis dominates the cross axis.
func (h *SelectMonster) candidates(dx, dy int) []*entity.Entity {
	eng := h.eng
	px, py := eng.Player.X, eng.Player.Y
	var out []*entity.Entity
	for _, actor := range eng.Map.Actors() {
		if actor == eng.Player || !actor.IsAlive() || !eng.Map.Visible[actor.Y][actor.X] {
			continue
		}
		relX, relY := actor.X-px, actor.Y-py
		var inCone bool
		if dx != 0 {
			inCone = sign(relX) == dx && abs(relX) >= abs(relY)
		} else {
			inCone = sign(relY) == dy && abs(relY) >= abs(relX)
		}
		if inCone {
			out = append(out, actor)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return dist(px, py, out[i].X, out[i].Y) < dist(px, py, out[j].X, out[j].Y)
	})
	return out
}

func (h *SelectMonster) Render(r *ui.Renderer) {
	r.World(h.eng)
	if h.target != nil {
		r.HighlightTile(h.eng, h.target.X, h.target.Y)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// dist is the chebyshev distance used for targeting order.
func dist(x1, y1, x2, y2 int) int {
	dx, dy := abs(x2-x1), abs(y2-y1)
	if dx > dy {
		return dx
	}
	return dy
}

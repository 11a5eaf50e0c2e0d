package action

import (
	"github.com/samdwyer/gravedelve/internal/engine"
	"github.com/samdwyer/gravedelve/internal/entity"
)

// FastMove runs in a direction until something interrupts it: a wall, a
// visible enemy, or anything worth stopping for underfoot. The first
// step failing makes the whole run impossible.
type FastMove struct {
	Engine *engine.Engine
	DX, DY int
}

func (a *FastMove) Perform() error {
	e := a.Engine
	step := &Move{Engine: e, DX: a.DX, DY: a.DY}
	if err := step.Perform(); err != nil {
		return err
	}
	for {
		e.UpdateFOV()
		if a.enemyVisible() || a.somethingHere() {
			return nil
		}
		if err := step.Perform(); err != nil {
			return nil
		}
	}
}

func (a *FastMove) enemyVisible() bool {
	for _, actor := range a.Engine.Map.Actors() {
		if actor.IsAlive() && actor.Actor.AI == entity.AIHostile &&
			a.Engine.Map.Visible[actor.Y][actor.X] {
			return true
		}
	}
	return false
}

// somethingHere reports whether the player's tile holds anything worth
// stopping for: items, gold, stairs, a shop or an enchanter.
func (a *FastMove) somethingHere() bool {
	e := a.Engine
	for _, ent := range e.Map.Entities {
		if ent == e.Player || ent.X != e.Player.X || ent.Y != e.Player.Y {
			continue
		}
		switch ent.Kind {
		case entity.KindItem, entity.KindGold, entity.KindStairs,
			entity.KindShop, entity.KindEnchanter:
			return true
		}
	}
	return false
}

package engine

import (
	"github.com/samdwyer/gravedelve/internal/entity"
)

// runAI performs one turn for a non-player actor based on its AI tag.
func (e *Engine) runAI(actor *entity.Entity) error {
	switch actor.Actor.AI {
	case entity.AIHostile:
		return e.hostileTurn(actor)
	case entity.AIAlly:
		return e.allyTurn(actor)
	default:
		return nil
	}
}

// hostileTurn chases and attacks the player, but only while standing in
// the player's field of view; out of sight, the actor idles.
func (e *Engine) hostileTurn(actor *entity.Entity) error {
	if !e.Map.Visible[actor.Y][actor.X] || !e.Player.IsAlive() {
		return nil
	}
	target := e.nearestFoe(actor, false)
	if target == nil {
		return nil
	}
	if chebyshev(actor.X, actor.Y, target.X, target.Y) <= 1 {
		return e.aiMelee(actor, target)
	}
	e.stepToward(actor, target.X, target.Y)
	return nil
}

// allyTurn has a summoned creature attack the nearest visible hostile,
// or trail the player when nothing needs killing.
func (e *Engine) allyTurn(actor *entity.Entity) error {
	if foe := e.nearestFoe(actor, true); foe != nil {
		if chebyshev(actor.X, actor.Y, foe.X, foe.Y) <= 1 {
			return e.aiMelee(actor, foe)
		}
		e.stepToward(actor, foe.X, foe.Y)
		return nil
	}
	if chebyshev(actor.X, actor.Y, e.Player.X, e.Player.Y) > 2 {
		e.stepToward(actor, e.Player.X, e.Player.Y)
	}
	return nil
}

// nearestFoe finds the closest living enemy of the given actor inside
// the player's field of view. For hostiles the foes are the player and
// their allies; for allies the foes are hostiles.
func (e *Engine) nearestFoe(actor *entity.Entity, actorIsAlly bool) *entity.Entity {
	var best *entity.Entity
	bestDist := 0
	consider := func(cand *entity.Entity) {
		if cand == actor || !cand.IsAlive() || !e.Map.Visible[cand.Y][cand.X] {
			return
		}
		d := chebyshev(actor.X, actor.Y, cand.X, cand.Y)
		if best == nil || d < bestDist {
			best, bestDist = cand, d
		}
	}
	for _, cand := range e.Map.Actors() {
		if actorIsAlly {
			if cand.Actor.AI == entity.AIHostile {
				consider(cand)
			}
		} else {
			if cand == e.Player || cand.Actor.AI == entity.AIAlly {
				consider(cand)
			}
		}
	}
	return best
}

func (e *Engine) aiMelee(attacker, target *entity.Entity) error {
	profile, _ := AttackProfileFor(attacker, false)
	res := e.Resolver.Attack(profile, Defender{Entity: target})
	e.Log.Addf("%s", res.Message)
	if res.Hit && !target.IsAlive() {
		e.HandleDeath(target, attacker)
	}
	return nil
}

// stepToward moves one tile toward (tx, ty), preferring the diagonal and
// falling back to the axis moves when blocked.
func (e *Engine) stepToward(actor *entity.Entity, tx, ty int) {
	dx, dy := sign(tx-actor.X), sign(ty-actor.Y)
	for _, step := range [][2]int{{dx, dy}, {dx, 0}, {0, dy}} {
		if step[0] == 0 && step[1] == 0 {
			continue
		}
		nx, ny := actor.X+step[0], actor.Y+step[1]
		if e.Map.Walkable(nx, ny) && e.Map.BlockingEntityAt(nx, ny) == nil {
			actor.Place(nx, ny)
			return
		}
	}
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

func chebyshev(x1, y1, x2, y2 int) int {
	dx, dy := abs(x2-x1), abs(y2-y1)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

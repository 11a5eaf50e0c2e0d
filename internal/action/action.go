// Package action implements the player's game actions. Every action
// holds the engine it acts on and reports failure with an Impossible
// error, which the engine surfaces to the player without spending a turn.
package action

import (
	"github.com/samdwyer/gravedelve/internal/engine"
	"github.com/samdwyer/gravedelve/internal/entity"
)

// Wait passes the turn.
type Wait struct {
	Engine *engine.Engine
}

func (a *Wait) Perform() error {
	return nil
}

// Bump moves the player one step, or attacks when an actor blocks the
// destination.
type Bump struct {
	Engine *engine.Engine
	DX, DY int
}

func (a *Bump) Perform() error {
	e := a.Engine
	nx, ny := e.Player.X+a.DX, e.Player.Y+a.DY
	if target := e.Map.ActorAt(nx, ny); target != nil && target.IsAlive() {
		return (&Melee{Engine: e, Target: target}).Perform()
	}
	return (&Move{Engine: e, DX: a.DX, DY: a.DY}).Perform()
}

// Move steps the player one tile.
type Move struct {
	Engine *engine.Engine
	DX, DY int
}

func (a *Move) Perform() error {
	e := a.Engine
	nx, ny := e.Player.X+a.DX, e.Player.Y+a.DY
	if !e.Map.InBounds(nx, ny) || !e.Map.Walkable(nx, ny) {
		return engine.Impossiblef("That way is blocked.")
	}
	if e.Map.BlockingEntityAt(nx, ny) != nil {
		return engine.Impossiblef("That way is blocked.")
	}
	e.Player.Place(nx, ny)
	return nil
}

// Melee resolves one attack against an adjacent actor with whichever
// weapon set the player has readied.
type Melee struct {
	Engine *engine.Engine
	Target *entity.Entity
}

func (a *Melee) Perform() error {
	e := a.Engine
	if !a.Target.IsAlive() {
		return engine.Impossiblef("Nothing to attack.")
	}
	profile := engine.ReadiedAttackProfile(e.Player)
	res := e.Resolver.Attack(profile, engine.Defender{Entity: a.Target})
	e.Log.Addf("%s", res.Message)
	if res.Hit && !a.Target.IsAlive() {
		e.HandleDeath(a.Target, e.Player)
	}
	return nil
}

package action

import (
	"github.com/samdwyer/gravedelve/internal/engine"
	"github.com/samdwyer/gravedelve/internal/entity"
)

// FullAttack fires every iterative ranged attack at the target: one shot
// at full bonus, plus one at -5 and one at -10 as base attack bonus
// allows. Each shot spends an arrow.
type FullAttack struct {
	Engine *engine.Engine
	Target *entity.Entity
}

func (a *FullAttack) Perform() error {
	e := a.Engine
	if a.Target == nil || !a.Target.IsAlive() {
		return engine.Impossiblef("Nothing to attack.")
	}
	if !e.Map.Visible[a.Target.Y][a.Target.X] {
		return engine.Impossiblef("You cannot see your target.")
	}
	profile, ok := engine.AttackProfileFor(e.Player, true)
	if !ok {
		return engine.Impossiblef("You have no ranged weapon equipped.")
	}

	shots := 1
	if bab := e.Player.Actor.Battler.BAB; bab >= 11 {
		shots = 3
	} else if bab >= 6 {
		shots = 2
	}
	for i := 0; i < shots; i++ {
		if !a.spendArrow() {
			if i == 0 {
				return engine.Impossiblef("You have no arrows.")
			}
			e.Log.Addf("You are out of arrows.")
			break
		}
		shot := profile
		shot.ToHit -= 5 * i
		res := e.Resolver.Attack(shot, engine.Defender{Entity: a.Target})
		e.Log.Addf("%s", res.Message)
		if res.Hit && !a.Target.IsAlive() {
			e.HandleDeath(a.Target, e.Player)
			break
		}
	}
	e.LastTarget = a.Target
	return nil
}

func (a *FullAttack) spendArrow() bool {
	inv := a.Engine.Player.Actor.Inventory
	arrows := inv.FindStack("Arrows")
	if arrows == nil || arrows.Item.Stack < 1 {
		return false
	}
	if arrows.Item.Stack == 1 {
		a.Engine.Player.Actor.RemoveFromInventory(arrows)
	} else {
		arrows.Item.Stack--
	}
	return true
}

package action

import (
	"github.com/samdwyer/gravedelve/internal/engine"
)

// TakeStairs moves the player a floor in the requested direction. The
// player must be standing on a matching staircase.
type TakeStairs struct {
	Engine *engine.Engine
	Delta  int // +1 descend, -1 ascend
}

func (a *TakeStairs) Perform() error {
	e := a.Engine
	stairs := e.Map.StairsAt(e.Player.X, e.Player.Y)
	if stairs == nil || stairs.StairsDelta != a.Delta {
		return engine.Impossiblef("There are no stairs here.")
	}
	e.ChangeFloor(a.Delta)
	if a.Delta > 0 {
		e.Log.Addf("You descend the staircase.")
	} else {
		e.Log.Addf("You ascend the staircase.")
	}
	return nil
}

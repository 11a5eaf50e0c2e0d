package action

import (
	"github.com/samdwyer/gravedelve/internal/engine"
	"github.com/samdwyer/gravedelve/internal/entity"
)

// PlaceInBag moves an inventory item into an open container.
type PlaceInBag struct {
	Engine *engine.Engine
	Bag    *entity.Entity
	Item   *entity.Entity
}

func (a *PlaceInBag) Perform() error {
	e := a.Engine
	if a.Bag.Item == nil || a.Bag.Item.Bag == nil {
		return engine.Impossiblef("That is not a container.")
	}
	if a.Item == a.Bag {
		return engine.Impossiblef("You cannot put a bag inside itself.")
	}
	if a.Item.Item != nil && a.Item.Item.Bag != nil {
		return engine.Impossiblef("You cannot put a bag inside a bag.")
	}
	if a.Item.Item != nil && a.Item.Item.CanStack {
		return engine.Impossiblef("The %s cannot hold stacked goods.", a.Bag.Name)
	}
	if e.Player.Actor.Equipment.IsWorn(a.Item) {
		return engine.Impossiblef("You must take that off first.")
	}
	if !a.Bag.Item.Bag.Add(a.Item) {
		return engine.Impossiblef("The %s is full.", a.Bag.Name)
	}
	e.Player.Actor.Inventory.Remove(a.Item)
	e.Log.Addf("You put the %s in the %s.", a.Item.Name, a.Bag.Name)
	return nil
}

// TakeFromBag moves an item from an open container back into inventory.
type TakeFromBag struct {
	Engine *engine.Engine
	Bag    *entity.Entity
	Item   *entity.Entity
}

func (a *TakeFromBag) Perform() error {
	e := a.Engine
	if a.Bag.Item == nil || a.Bag.Item.Bag == nil {
		return engine.Impossiblef("That is not a container.")
	}
	if !e.Player.Actor.Inventory.Add(a.Item) {
		return engine.Impossiblef("Your inventory is full.")
	}
	a.Bag.Item.Bag.Remove(a.Item)
	e.Log.Addf("You take the %s from the %s.", a.Item.Name, a.Bag.Name)
	return nil
}

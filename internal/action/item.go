package action

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gravedelve/internal/engine"
	"github.com/samdwyer/gravedelve/internal/entity"
)

// Pickup collects the item or gold pile under the player.
type Pickup struct {
	Engine *engine.Engine
}

func (a *Pickup) Perform() error {
	e := a.Engine
	px, py := e.Player.X, e.Player.Y
	for _, ent := range e.Map.Entities {
		if ent.X != px || ent.Y != py {
			continue
		}
		switch ent.Kind {
		case entity.KindGold:
			e.Player.Actor.Battler.Gold += ent.GoldAmount
			e.Map.Remove(ent)
			e.Log.Addf("You pick up %d gold.", ent.GoldAmount)
			return nil
		case entity.KindItem:
			if !e.Player.Actor.Inventory.Add(ent) {
				return engine.Impossiblef("Your inventory is full.")
			}
			e.Map.Remove(ent)
			e.Log.Addf("You picked up the %s!", ent.Name)
			return nil
		}
	}
	return engine.Impossiblef("There is nothing here to pick up.")
}

// Drop places an inventory item on the player's tile, unequipping it
// first when worn.
type Drop struct {
	Engine *engine.Engine
	Item   *entity.Entity
}

func (a *Drop) Perform() error {
	e := a.Engine
	if !e.Player.Actor.RemoveFromInventory(a.Item) {
		return engine.Impossiblef("You are not carrying that.")
	}
	a.Item.Place(e.Player.X, e.Player.Y)
	e.Map.Add(a.Item)
	e.Log.Addf("You dropped the %s.", a.Item.Name)
	return nil
}

// Use consumes a consumable item: potions heal, portal scrolls return
// the player to town.
type Use struct {
	Engine *engine.Engine
	Item   *entity.Entity
}

func (a *Use) Perform() error {
	e := a.Engine
	item := a.Item.Item
	if item == nil || item.Consumable == nil {
		return engine.Impossiblef("The %s cannot be used.", a.Item.Name)
	}
	switch item.Consumable.Effect {
	case "heal":
		b := &e.Player.Actor.Battler
		if b.HP >= b.MaxHP {
			return engine.Impossiblef("Your health is already full.")
		}
		healed := item.Consumable.Amount
		if b.HP+healed > b.MaxHP {
			healed = b.MaxHP - b.HP
		}
		b.HP += healed
		e.Log.Add(
			fmt.Sprintf("You consume the %s, and recover %d HP!", a.Item.Name, healed),
			tcell.ColorGreen,
		)
	case "portal":
		if e.Map.Level == 0 {
			if e.PortalDepth == 0 {
				return engine.Impossiblef("The scroll has nowhere to take you.")
			}
			depth := e.PortalDepth
			a.consume()
			e.Log.Add("The scroll crumbles and the world folds around you.", tcell.ColorAqua)
			e.ChangeFloor(depth)
			return nil
		}
		e.PortalDepth = e.Map.Level
		a.consume()
		e.Log.Add("The scroll crumbles and the world folds around you.", tcell.ColorAqua)
		e.ChangeFloor(-e.Map.Level)
		return nil
	default:
		return engine.Impossiblef("The %s cannot be used.", a.Item.Name)
	}
	a.consume()
	return nil
}

// consume decrements a stack or removes the item entirely.
func (a *Use) consume() {
	item := a.Item.Item
	if item.CanStack && item.Stack > 1 {
		item.Stack--
		return
	}
	a.Engine.Player.Actor.RemoveFromInventory(a.Item)
}

// EquipToggle wears the item, or takes it off when already worn. A
// displaced item in the same slot returns to plain inventory.
type EquipToggle struct {
	Engine *engine.Engine
	Item   *entity.Entity
}

func (a *EquipToggle) Perform() error {
	e := a.Engine
	actor := e.Player.Actor
	if a.Item.Item == nil || a.Item.Item.Equippable == nil {
		return engine.Impossiblef("The %s cannot be equipped.", a.Item.Name)
	}
	if actor.Equipment.IsWorn(a.Item) {
		actor.Equipment.Clear(a.Item)
		e.Log.Addf("You remove the %s.", a.Item.Name)
		return nil
	}
	if displaced := actor.Equipment.Equip(a.Item); displaced != nil {
		e.Log.Addf("You remove the %s.", displaced.Name)
	}
	e.Log.Addf("You equip the %s.", a.Item.Name)
	return nil
}

// ToggleCombatMode switches between melee and ranged bump attacks.
type ToggleCombatMode struct {
	Engine *engine.Engine
}

func (a *ToggleCombatMode) Perform() error {
	actor := a.Engine.Player.Actor
	actor.RangedMode = !actor.RangedMode
	if actor.RangedMode {
		a.Engine.Log.Addf("You ready your ranged weapon.")
	} else {
		a.Engine.Log.Addf("You ready your melee weapon.")
	}
	return nil
}

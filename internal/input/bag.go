package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gravedelve/internal/action"
	"github.com/samdwyer/gravedelve/internal/engine"
	"github.com/samdwyer/gravedelve/internal/entity"
)

// bagMode says which way items flow through a container menu.
type bagMode int

const (
	bagTakeOut bagMode = iota
	bagPutIn
)

// NewBagChooser picks which carried container to open. With a single
// bag the chooser skips straight to it.
func NewBagChooser(eng *engine.Engine, mode bagMode) Handler {
	bags := carriedBags(eng)
	if len(bags) == 0 {
		eng.Log.Add("You are not carrying any containers.", tcell.ColorGray)
		return NewMain(eng)
	}
	open := func(bag *entity.Entity) Handler {
		if mode == bagTakeOut {
			return NewBagContents(eng, bag)
		}
		return NewBagFill(eng, bag)
	}
	if len(bags) == 1 {
		return open(bags[0])
	}
	h := &inventoryMenu{
		sessionHandler: sessionHandler{eng: eng},
		title:          "Select a container",
	}
	h.items = func() []*entity.Entity { return carriedBags(eng) }
	h.pick = open
	return h
}

func carriedBags(eng *engine.Engine) []*entity.Entity {
	var bags []*entity.Entity
	for _, item := range eng.Player.Actor.Inventory.Items {
		if item.Item != nil && item.Item.Bag != nil {
			bags = append(bags, item)
		}
	}
	return bags
}

// NewBagContents lists a container's contents; picking a row moves it
// back into inventory.
func NewBagContents(eng *engine.Engine, bag *entity.Entity) Handler {
	h := &inventoryMenu{
		sessionHandler: sessionHandler{eng: eng},
		title:          "Take from the " + bag.Name,
	}
	h.items = func() []*entity.Entity { return bag.Item.Bag.Items }
	h.pick = func(item *entity.Entity) Handler {
		return resolve(eng, &action.TakeFromBag{Engine: eng, Bag: bag, Item: item}, h)
	}
	return h
}

// NewBagFill lists the inventory; picking a row stows it in the
// container.
func NewBagFill(eng *engine.Engine, bag *entity.Entity) Handler {
	h := &inventoryMenu{
		sessionHandler: sessionHandler{eng: eng},
		title:          "Put into the " + bag.Name,
	}
	h.items = func() []*entity.Entity { return eng.Player.Actor.Inventory.Items }
	h.pick = func(item *entity.Entity) Handler {
		return resolve(eng, &action.PlaceInBag{Engine: eng, Bag: bag, Item: item}, h)
	}
	return h
}

package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gravedelve/internal/engine"
	"github.com/samdwyer/gravedelve/internal/entity"
)

// NewShopBuy opens the merchant's stock. Purchases deep-copy the sale
// template so the shop never sells out, and never cost a game turn. Tab
// flips to selling.
func NewShopBuy(eng *engine.Engine, shop *entity.Entity) Handler {
	h := &inventoryMenu{
		sessionHandler: sessionHandler{eng: eng},
		title:          "Buy what? (Tab to sell)",
	}
	h.items = func() []*entity.Entity { return shop.Shop.ForSale }
	h.annotate = func(item *entity.Entity) string {
		return fmt.Sprintf("- %d gold", item.Item.GoldValue)
	}
	h.pick = func(template *entity.Entity) Handler {
		buyItem(eng, template)
		return h
	}
	return withTabSwitch(h, func() Handler { return NewShopSell(eng, shop) })
}

// buyItem performs one purchase: gold check, then capacity check with
// stack merging, then payment.
func buyItem(eng *engine.Engine, template *entity.Entity) {
	b := &eng.Player.Actor.Battler
	price := template.Item.GoldValue
	if b.Gold < price {
		eng.Log.Add("You cannot afford that.", tcell.ColorGray)
		return
	}
	inv := eng.Player.Actor.Inventory
	if template.Item.CanStack && inv.FindStack(template.Name) != nil {
		inv.FindStack(template.Name).Item.Stack++
	} else {
		if inv.Full() {
			eng.Log.Add("Your inventory is full.", tcell.ColorGray)
			return
		}
		inv.Add(entity.CloneItem(template))
	}
	b.Gold -= price
	eng.Log.Addf("You buy the %s for %d gold.", template.Name, price)
}

// NewShopSell opens the player's inventory at sale prices. Worn and
// worthless items are refused; stacks sell one unit at a time.
func NewShopSell(eng *engine.Engine, shop *entity.Entity) Handler {
	h := &inventoryMenu{
		sessionHandler: sessionHandler{eng: eng},
		title:          "Sell what? (Tab to buy)",
	}
	h.items = func() []*entity.Entity { return eng.Player.Actor.Inventory.Items }
	h.annotate = func(item *entity.Entity) string {
		return fmt.Sprintf("- %d gold", item.Item.SellValue())
	}
	h.pick = func(item *entity.Entity) Handler {
		sellItem(eng, item)
		return h
	}
	return withTabSwitch(h, func() Handler { return NewShopBuy(eng, shop) })
}

func sellItem(eng *engine.Engine, item *entity.Entity) {
	if eng.Player.Actor.Equipment.IsWorn(item) {
		eng.Log.Add("You must take that off before selling it.", tcell.ColorGray)
		return
	}
	value := item.Item.SellValue()
	if value <= 0 {
		eng.Log.Add("The shopkeeper has no use for that.", tcell.ColorGray)
		return
	}
	if item.Item.CanStack && item.Item.Stack > 1 {
		item.Item.Stack--
	} else {
		eng.Player.Actor.RemoveFromInventory(item)
	}
	eng.Player.Actor.Battler.Gold += value
	eng.Log.Addf("You sell the %s for %d gold.", item.Name, value)
}

// tabSwitcher wraps a menu so Tab jumps to a sibling mode.
type tabSwitcher struct {
	*inventoryMenu
	sibling func() Handler
}

func withTabSwitch(menu *inventoryMenu, sibling func() Handler) Handler {
	return &tabSwitcher{inventoryMenu: menu, sibling: sibling}
}

func (h *tabSwitcher) HandleEvent(ev tcell.Event) Handler {
	if key, ok := ev.(*tcell.EventKey); ok && key.Key() == tcell.KeyTab {
		return h.sibling()
	}
	next := h.inventoryMenu.HandleEvent(ev)
	if next == h.inventoryMenu {
		return h
	}
	return next
}

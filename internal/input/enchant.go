package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gravedelve/internal/engine"
	"github.com/samdwyer/gravedelve/internal/entity"
	"github.com/samdwyer/gravedelve/internal/gamedata"
	"github.com/samdwyer/gravedelve/internal/ui"
)

// NewEnchant starts the two-phase enchanting flow: pick a piece of gear,
// then pick an upgrade row for its slot. The chosen item is parked on
// the engine so the second phase survives handler changes.
func NewEnchant(eng *engine.Engine) Handler {
	h := &inventoryMenu{
		sessionHandler: sessionHandler{eng: eng},
		title:          "Enchant which item?",
	}
	h.items = func() []*entity.Entity { return enchantableItems(eng) }
	h.pick = func(item *entity.Entity) Handler {
		eng.EnchantTarget = item
		return newEnchantOptions(eng, item)
	}
	return h
}

// enchantableItems lists carried gear the enchanter has a table for.
// Worn gear must come off first, and stacked goods cannot hold an
// enchantment.
func enchantableItems(eng *engine.Engine) []*entity.Entity {
	var out []*entity.Entity
	for _, item := range eng.Player.Actor.Inventory.Items {
		if item.Item == nil || item.Item.Equippable == nil || item.Item.CanStack {
			continue
		}
		if eng.Player.Actor.Equipment.IsWorn(item) {
			continue
		}
		if len(eng.Enchants[item.Item.Equippable.Slot.String()]) > 0 {
			out = append(out, item)
		}
	}
	return out
}

// enchantOptions is the second phase: the upgrade rows for one item.
type enchantOptions struct {
	sessionHandler
	item    *entity.Entity
	options []gamedata.EnchantOption
}

func newEnchantOptions(eng *engine.Engine, item *entity.Entity) *enchantOptions {
	return &enchantOptions{
		sessionHandler: sessionHandler{eng: eng},
		item:           item,
		options:        eng.Enchants[item.Item.Equippable.Slot.String()],
	}
}

// priceOf returns the discounted price of a row for this item, or ok
// false when the row is no upgrade over the current bonus.
func (h *enchantOptions) priceOf(opt gamedata.EnchantOption) (int, bool) {
	current := h.item.Item.Equippable.BonusFor(opt.Stat)
	if opt.Bonus <= current {
		return 0, false
	}
	full, ok := opt.Cost()
	if !ok {
		return 0, false
	}
	return full - opt.DiscountAt(current), true
}

func (h *enchantOptions) HandleEvent(ev tcell.Event) Handler {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return h
	}
	idx := menuLetter(key)
	if idx < 0 {
		h.eng.EnchantTarget = nil
		return NewMain(h.eng)
	}
	if idx >= len(h.options) {
		h.eng.Log.Add("Invalid entry.", tcell.ColorGray)
		return h
	}
	opt := h.options[idx]
	price, upgradeable := h.priceOf(opt)
	if !upgradeable {
		h.eng.Log.Add("That would not improve the item.", tcell.ColorGray)
		return h
	}
	b := &h.eng.Player.Actor.Battler
	if b.Gold < price {
		h.eng.Log.Add("You cannot afford that.", tcell.ColorGray)
		return h
	}
	b.Gold -= price
	h.item.Item.Equippable.SetBonus(opt.Stat, opt.Bonus)
	h.eng.Log.Addf("The enchanter improves your %s (%s +%d) for %d gold.",
		h.item.Name, opt.Stat, opt.Bonus, price)
	h.eng.EnchantTarget = nil
	return NewMain(h.eng)
}

func (h *enchantOptions) Render(r *ui.Renderer) {
	r.World(h.eng)
	lines := make([]string, 0, len(h.options))
	for i, opt := range h.options {
		row := fmt.Sprintf("(%c) %s +%d", 'a'+i, opt.Stat, opt.Bonus)
		if price, ok := h.priceOf(opt); ok {
			row += fmt.Sprintf(" - %d gold", price)
		} else {
			row += " - (owned)"
		}
		lines = append(lines, row)
	}
	drawMenu(r, "Enchant the "+h.item.Name, lines)
}

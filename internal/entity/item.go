package entity

import "github.com/samdwyer/gravedelve/internal/gamedata"

// Item is the payload of a KindItem entity. The entity Name is the
// user-facing (renameable) name; DefID keeps the template identity.
type Item struct {
	DefID     string
	GoldValue int
	CanStack  bool
	Stack     int

	Consumable *gamedata.ConsumableDef
	Equippable *Equippable
	Bag        *Inventory // Non-nil for container items
}

// Equippable describes how an item is worn and what it grants. Bonuses
// holds enchantments keyed by the enchant option stat name.
type Equippable struct {
	Slot      Slot
	NumDice   int
	DieSize   int
	ArmorAC   int
	UnitPrice int
	Bonuses   map[string]int
}

// BonusFor returns the current enchant bonus for a stat name.
func (q *Equippable) BonusFor(stat string) int {
	if q.Bonuses == nil {
		return 0
	}
	return q.Bonuses[stat]
}

// SetBonus records an enchant bonus for a stat name.
func (q *Equippable) SetBonus(stat string, value int) {
	if q.Bonuses == nil {
		q.Bonuses = map[string]int{}
	}
	q.Bonuses[stat] = value
}

// SellValue is what a shop pays for the item: half list price, rounded down.
func (it *Item) SellValue() int {
	return it.GoldValue / 2
}

// CloneItem deep-copies an item entity (template purchase). The copy gets
// a fresh ID and a stack of one.
func CloneItem(src *Entity) *Entity {
	dup := *src
	item := *src.Item
	item.Stack = 1
	if src.Item.Consumable != nil {
		c := *src.Item.Consumable
		item.Consumable = &c
	}
	if src.Item.Equippable != nil {
		q := *src.Item.Equippable
		q.Bonuses = map[string]int{}
		for k, v := range src.Item.Equippable.Bonuses {
			q.Bonuses[k] = v
		}
		item.Equippable = &q
	}
	if src.Item.Bag != nil {
		item.Bag = NewInventory(src.Item.Bag.Capacity)
	}
	dup.Item = &item
	dup.ID = newID()
	return &dup
}

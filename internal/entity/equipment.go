package entity

// Slot identifies an equipment location.
type Slot int

const (
	SlotNone Slot = iota - 1
	SlotMainHand
	SlotOffHand
	SlotBody
	SlotNeck
	SlotRanged
	SlotWaist
	SlotLeftRing
	SlotRightRing
	SlotHead
	SlotCloak
	SlotEyes
	SlotShirt
	SlotWrists
	SlotFeet
	SlotHands
	SlotMisc

	NumSlots = int(SlotMisc) + 1
)

var slotNames = [NumSlots]string{
	"main_hand", "off_hand", "body", "neck", "ranged", "waist",
	"left_ring", "right_ring", "head", "cloak", "eyes", "shirt",
	"wrists", "feet", "hands", "misc",
}

var slotLabels = [NumSlots]string{
	"in main hand", "on off hand", "worn on body", "worn on neck",
	"as ranged", "on waist", "on left hand", "on right hand", "on head",
	"worn on shoulders", "worn on face", "worn about torso",
	"worn on wrists", "worn on feet", "worn on hands", "worn slotless",
}

// String returns the slot's identifier as used in game data.
func (s Slot) String() string {
	if s < 0 || int(s) >= NumSlots {
		return "none"
	}
	return slotNames[s]
}

// Label returns the slot's display phrase, e.g. "in main hand".
func (s Slot) Label() string {
	if s < 0 || int(s) >= NumSlots {
		return ""
	}
	return slotLabels[s]
}

// SlotByName resolves a game-data slot identifier to a Slot.
func SlotByName(name string) Slot {
	for i, n := range slotNames {
		if n == name {
			return Slot(i)
		}
	}
	return SlotNone
}

// Equipment maps slots to worn items. Entries are non-owning references
// into the actor's inventory; the inventory keeps ownership.
type Equipment struct {
	Slots [NumSlots]*Entity
}

// SlotOf returns the slot holding the item, or SlotNone.
func (eq *Equipment) SlotOf(item *Entity) Slot {
	for i, worn := range eq.Slots {
		if worn == item && item != nil {
			return Slot(i)
		}
	}
	return SlotNone
}

// IsWorn reports whether the item occupies any slot.
func (eq *Equipment) IsWorn(item *Entity) bool {
	return eq.SlotOf(item) != SlotNone
}

// Equip places the item in its slot, returning the item displaced from
// that slot (nil if it was empty).
func (eq *Equipment) Equip(item *Entity) *Entity {
	if item == nil || item.Item == nil || item.Item.Equippable == nil {
		return nil
	}
	slot := item.Item.Equippable.Slot
	if slot == SlotNone {
		return nil
	}
	prev := eq.Slots[slot]
	eq.Slots[slot] = item
	return prev
}

// Clear removes the item from whichever slot references it.
func (eq *Equipment) Clear(item *Entity) {
	for i, worn := range eq.Slots {
		if worn == item {
			eq.Slots[i] = nil
		}
	}
}

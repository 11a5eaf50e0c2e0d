package entity

// Inventory is a bounded, ordered collection of item entities. Display
// order is insertion order; menu letters index into Items directly.
type Inventory struct {
	Items    []*Entity
	Capacity int
}

// NewInventory creates an empty inventory with the given capacity.
func NewInventory(capacity int) *Inventory {
	return &Inventory{Capacity: capacity}
}

// Full reports whether the inventory has reached capacity.
func (inv *Inventory) Full() bool {
	return len(inv.Items) >= inv.Capacity
}

// FindStack returns an existing stackable item with the same name, or nil.
func (inv *Inventory) FindStack(name string) *Entity {
	for _, it := range inv.Items {
		if it.Name == name && it.Item != nil && it.Item.CanStack {
			return it
		}
	}
	return nil
}

// Add appends an item, merging into an existing stack when possible.
// Returns false when the inventory is full and nothing merged.
func (inv *Inventory) Add(item *Entity) bool {
	if item.Item != nil && item.Item.CanStack {
		if stack := inv.FindStack(item.Name); stack != nil {
			stack.Item.Stack += item.Item.Stack
			return true
		}
	}
	if inv.Full() {
		return false
	}
	inv.Items = append(inv.Items, item)
	return true
}

// Remove deletes an item from the inventory. Returns false if absent.
func (inv *Inventory) Remove(item *Entity) bool {
	for i, it := range inv.Items {
		if it == item {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return true
		}
	}
	return false
}

// At returns the item at a display index, or nil when out of range.
func (inv *Inventory) At(index int) *Entity {
	if index < 0 || index >= len(inv.Items) {
		return nil
	}
	return inv.Items[index]
}

// RemoveFromInventory removes an item from the actor's inventory and
// clears any equipment slot referencing it, keeping the non-owning
// back-references consistent.
func (a *Actor) RemoveFromInventory(item *Entity) bool {
	if !a.Inventory.Remove(item) {
		return false
	}
	a.Equipment.Clear(item)
	return true
}

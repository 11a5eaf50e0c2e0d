package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gravedelve/internal/action"
	"github.com/samdwyer/gravedelve/internal/engine"
	"github.com/samdwyer/gravedelve/internal/entity"
	"github.com/samdwyer/gravedelve/internal/ui"
)

// inventoryMenu is the base for modes that pick one item by letter.
// Letters beyond the list log "Invalid entry." and keep the menu open;
// any non-letter key closes it.
type inventoryMenu struct {
	sessionHandler
	title string
	// items returns the current list; re-evaluated every frame so the
	// menu tracks stack counts and removals.
	items func() []*entity.Entity
	// pick handles the chosen item.
	pick func(item *entity.Entity) Handler
	// annotate adds per-row detail such as prices or worn slots.
	annotate func(item *entity.Entity) string
}

func (h *inventoryMenu) HandleEvent(ev tcell.Event) Handler {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return h
	}
	if idx := menuLetter(key); idx >= 0 {
		list := h.items()
		if idx >= len(list) {
			h.eng.Log.Add("Invalid entry.", tcell.ColorGray)
			return h
		}
		return h.pick(list[idx])
	}
	return NewMain(h.eng)
}

func (h *inventoryMenu) Render(r *ui.Renderer) {
	r.World(h.eng)
	list := h.items()
	lines := make([]string, 0, len(list))
	for i, item := range list {
		row := fmt.Sprintf("(%c) %s", 'a'+i, itemLabel(h.eng, item))
		if h.annotate != nil {
			if extra := h.annotate(item); extra != "" {
				row += " " + extra
			}
		}
		lines = append(lines, row)
	}
	if len(lines) == 0 {
		lines = append(lines, "(Empty)")
	}
	drawMenu(r, h.title, lines)
}

// itemLabel renders an item row with its stack count and worn slot.
func itemLabel(eng *engine.Engine, item *entity.Entity) string {
	label := item.Name
	if item.Item != nil && item.Item.CanStack && item.Item.Stack > 1 {
		label = fmt.Sprintf("%s (x%d)", label, item.Item.Stack)
	}
	if slot := eng.Player.Actor.Equipment.SlotOf(item); slot != entity.SlotNone {
		label += " (" + slot.Label() + ")"
	}
	return label
}

// NewInventoryActivate opens the use-an-item menu. Consumables are
// consumed, equippables toggle worn state, bags open.
func NewInventoryActivate(eng *engine.Engine) Handler {
	h := &inventoryMenu{
		sessionHandler: sessionHandler{eng: eng},
		title:          "Select an item to use",
	}
	h.items = func() []*entity.Entity { return eng.Player.Actor.Inventory.Items }
	h.pick = func(item *entity.Entity) Handler {
		switch {
		case item.Item != nil && item.Item.Bag != nil:
			return NewBagContents(eng, item)
		case item.Item != nil && item.Item.Equippable != nil:
			return resolve(eng, &action.EquipToggle{Engine: eng, Item: item}, h)
		default:
			return resolve(eng, &action.Use{Engine: eng, Item: item}, h)
		}
	}
	return h
}

// NewInventoryDrop opens the drop-an-item menu.
func NewInventoryDrop(eng *engine.Engine) Handler {
	h := &inventoryMenu{
		sessionHandler: sessionHandler{eng: eng},
		title:          "Select an item to drop",
	}
	h.items = func() []*entity.Entity { return eng.Player.Actor.Inventory.Items }
	h.pick = func(item *entity.Entity) Handler {
		return resolve(eng, &action.Drop{Engine: eng, Item: item}, h)
	}
	return h
}

// EquipmentScreen lists worn gear by slot; picking a row takes the item
// off.
type EquipmentScreen struct {
	sessionHandler
}

func NewEquipmentScreen(eng *engine.Engine) *EquipmentScreen {
	return &EquipmentScreen{sessionHandler{eng: eng}}
}

// worn returns the occupied slots in slot order.
func (h *EquipmentScreen) worn() []*entity.Entity {
	var out []*entity.Entity
	for _, item := range h.eng.Player.Actor.Equipment.Slots {
		if item != nil {
			out = append(out, item)
		}
	}
	return out
}

func (h *EquipmentScreen) HandleEvent(ev tcell.Event) Handler {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return h
	}
	if idx := menuLetter(key); idx >= 0 {
		list := h.worn()
		if idx >= len(list) {
			h.eng.Log.Add("Invalid entry.", tcell.ColorGray)
			return h
		}
		return resolve(h.eng, &action.EquipToggle{Engine: h.eng, Item: list[idx]}, h)
	}
	return NewMain(h.eng)
}

func (h *EquipmentScreen) Render(r *ui.Renderer) {
	r.World(h.eng)
	list := h.worn()
	lines := make([]string, 0, len(list))
	for i, item := range list {
		slot := h.eng.Player.Actor.Equipment.SlotOf(item)
		lines = append(lines, fmt.Sprintf("(%c) %-12s %s", 'a'+i, slot.String(), item.Name))
	}
	if len(lines) == 0 {
		lines = append(lines, "(Nothing equipped)")
	}
	drawMenu(r, "Equipment", lines)
}

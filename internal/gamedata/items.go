package gamedata

// ConsumableDef describes the on-use effect of a consumable item.
type ConsumableDef struct {
	Effect string `json:"effect"` // "heal" or "portal"
	Amount int    `json:"amount,omitempty"`
}

// EquippableDef describes how an item is worn or wielded.
type EquippableDef struct {
	Slot      string `json:"slot"` // Equipment slot name, e.g. "main_hand"
	NumDice   int    `json:"numDice,omitempty"`
	DieSize   int    `json:"dieSize,omitempty"`
	ArmorAC   int    `json:"armorAc,omitempty"`
	UnitPrice int    `json:"unitPrice,omitempty"` // Enchant cost multiplier
}

// ItemDef defines an item template loaded from JSON. Shops deep-copy
// templates on sale; stackable templates merge into existing stacks.
type ItemDef struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Glyph      string         `json:"glyph"`
	Color      string         `json:"color"` // Hex color for rendering
	GoldValue  int            `json:"goldValue"`
	CanStack   bool           `json:"canStack"`
	Bag        int            `json:"bagCapacity,omitempty"` // >0 makes the item a container
	Consumable *ConsumableDef `json:"consumable,omitempty"`
	Equippable *EquippableDef `json:"equippable,omitempty"`
}

// GlyphRune returns the display glyph as a rune.
func (d *ItemDef) GlyphRune() rune {
	if len(d.Glyph) == 0 {
		return '?'
	}
	return []rune(d.Glyph)[0]
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
	// Shop stock templates by item id, in display order.
	ShopStock []string `json:"shopStock"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() (*ItemsFile, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// ItemRegistry holds loaded item templates.
type ItemRegistry struct {
	items map[string]*ItemDef
	all   []ItemDef
	stock []string
}

// NewItemRegistry creates a registry from a loaded items file.
func NewItemRegistry(file *ItemsFile) *ItemRegistry {
	r := &ItemRegistry{items: make(map[string]*ItemDef), all: file.Items, stock: file.ShopStock}
	for i := range file.Items {
		r.items[file.Items[i].ID] = &file.Items[i]
	}
	return r
}

// MustLoadItemRegistry loads a registry, panicking on error.
func MustLoadItemRegistry() *ItemRegistry {
	file, err := LoadItems()
	if err != nil {
		panic(err)
	}
	return NewItemRegistry(file)
}

// GetByID returns the item template with the given ID, or nil.
func (r *ItemRegistry) GetByID(id string) *ItemDef {
	return r.items[id]
}

// ShopStock returns the templates a freshly generated shop sells.
func (r *ItemRegistry) ShopStock() []*ItemDef {
	out := make([]*ItemDef, 0, len(r.stock))
	for _, id := range r.stock {
		if def := r.items[id]; def != nil {
			out = append(out, def)
		}
	}
	return out
}

// Count returns the number of item templates in the registry.
func (r *ItemRegistry) Count() int {
	return len(r.all)
}

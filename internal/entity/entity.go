// Package entity provides the tagged-kind entity model: actors, items,
// gold piles, shops, enchanter stations and stairs, plus the actor-owned
// battler, level, inventory and equipment state.
package entity

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/gravedelve/internal/gamedata"
)

// Kind classifies an entity. Exactly one payload field matching the kind
// is set on the Entity.
type Kind int

const (
	KindActor Kind = iota
	KindItem
	KindGold
	KindShop
	KindEnchanter
	KindStairs
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindActor:
		return "actor"
	case KindItem:
		return "item"
	case KindGold:
		return "gold"
	case KindShop:
		return "shop"
	case KindEnchanter:
		return "enchanter"
	case KindStairs:
		return "stairs"
	default:
		return "unknown"
	}
}

// RenderOrder controls draw layering; lower values are drawn first.
type RenderOrder int

const (
	OrderStairs RenderOrder = iota
	OrderCorpse
	OrderItem
	OrderActor
)

// AIKind selects the behavior the turn engine runs for a non-player actor.
// A closed tag rather than a behavior object so actors serialize cleanly.
type AIKind int

const (
	AINone AIKind = iota
	AIHostile
	AIAlly
)

// Entity is anything placed on a map.
type Entity struct {
	ID             uuid.UUID
	Kind           Kind
	Name           string
	X, Y           int
	Glyph          rune
	Color          tcell.Color
	Order          RenderOrder
	BlocksMovement bool

	// Per-kind payload; exactly one is meaningful for the Kind.
	Actor       *Actor
	Item        *Item
	GoldAmount  int
	Shop        *Shop
	StairsDelta int // +1 descending stairs, -1 ascending
}

// Shop holds a merchant's stock: item entities used as sale templates.
type Shop struct {
	ForSale []*Entity
}

// Place moves the entity to the given coordinates.
func (e *Entity) Place(x, y int) {
	e.X, e.Y = x, y
}

// IsAlive reports whether an actor entity is still alive. Non-actors are
// never alive.
func (e *Entity) IsAlive() bool {
	return e.Kind == KindActor && e.Actor != nil && e.Actor.Battler.HP > 0
}

// Die converts a living actor into a corpse: loses blocking, drops to the
// corpse render layer, keeps the entity on the map.
func (e *Entity) Die() {
	e.Glyph = '%'
	e.Color = tcell.ColorDarkRed
	e.BlocksMovement = false
	e.Order = OrderCorpse
	e.Name = "remains of " + e.Name
	if e.Actor != nil {
		e.Actor.AI = AINone
	}
}

// NewActor creates a living actor entity.
func NewActor(name string, glyph rune, color tcell.Color, ai AIKind) *Entity {
	return &Entity{
		ID:             uuid.New(),
		Kind:           KindActor,
		Name:           name,
		Glyph:          glyph,
		Color:          color,
		Order:          OrderActor,
		BlocksMovement: true,
		Actor: &Actor{
			AI:        ai,
			Inventory: NewInventory(26),
		},
	}
}

// NewEnemy creates a hostile actor from an enemy definition.
func NewEnemy(def *gamedata.EnemyDef) *Entity {
	e := NewActor(def.Name, def.GlyphRune(), gamedata.MustParseHexColor(def.Color), AIHostile)
	e.Actor.Battler = Battler{
		HP: def.HP, MaxHP: def.HP,
		BAB:  def.AttackBonus,
		AC:   def.AC,
		Gold: def.Gold,
		UnarmedNumDice: def.NumDice, UnarmedDieSize: def.DieSize,
		XPValue: def.XP,
	}
	return e
}

// NewItemFromDef deep-copies an item template into a fresh item entity.
func NewItemFromDef(def *gamedata.ItemDef) *Entity {
	item := &Item{
		DefID:     def.ID,
		GoldValue: def.GoldValue,
		CanStack:  def.CanStack,
		Stack:     1,
	}
	if def.Consumable != nil {
		c := *def.Consumable
		item.Consumable = &c
	}
	if def.Equippable != nil {
		item.Equippable = &Equippable{
			Slot:      SlotByName(def.Equippable.Slot),
			NumDice:   def.Equippable.NumDice,
			DieSize:   def.Equippable.DieSize,
			ArmorAC:   def.Equippable.ArmorAC,
			UnitPrice: def.Equippable.UnitPrice,
			Bonuses:   map[string]int{},
		}
	}
	if def.Bag > 0 {
		item.Bag = NewInventory(def.Bag)
	}
	return &Entity{
		ID:    uuid.New(),
		Kind:  KindItem,
		Name:  def.Name,
		Glyph: def.GlyphRune(),
		Color: gamedata.MustParseHexColor(def.Color),
		Order: OrderItem,
		Item:  item,
	}
}

// NewGold creates a gold pile entity.
func NewGold(amount int) *Entity {
	return &Entity{
		ID:         uuid.New(),
		Kind:       KindGold,
		Name:       "gold",
		Glyph:      '$',
		Color:      tcell.ColorYellow,
		Order:      OrderItem,
		GoldAmount: amount,
	}
}

// NewShop creates a shop entity with the given stock templates.
func NewShop(stock []*Entity) *Entity {
	return &Entity{
		ID:    uuid.New(),
		Kind:  KindShop,
		Name:  "shop",
		Glyph: 'S',
		Color: tcell.ColorAqua,
		Order: OrderStairs,
		Shop:  &Shop{ForSale: stock},
	}
}

// NewEnchanter creates an enchanter station entity.
func NewEnchanter() *Entity {
	return &Entity{
		ID:    uuid.New(),
		Kind:  KindEnchanter,
		Name:  "enchanter's shop",
		Glyph: 'E',
		Color: tcell.ColorFuchsia,
		Order: OrderStairs,
	}
}

// NewStairs creates a staircase entity; delta +1 descends, -1 ascends.
func NewStairs(delta int) *Entity {
	name := "stairs down"
	glyph := '>'
	if delta < 0 {
		name = "stairs up"
		glyph = '<'
	}
	return &Entity{
		ID:          uuid.New(),
		Kind:        KindStairs,
		Name:        name,
		Glyph:       glyph,
		Color:       tcell.ColorWhite,
		Order:       OrderStairs,
		StairsDelta: delta,
	}
}

// Package save persists game sessions: JSON snapshots of the world in a
// SQLite slot store.
package save

import (
	"encoding/json"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/gravedelve/internal/engine"
	"github.com/samdwyer/gravedelve/internal/entity"
	"github.com/samdwyer/gravedelve/internal/gamedata"
	"github.com/samdwyer/gravedelve/internal/world"
)

// snapshot is the serialized form of a session.
type snapshot struct {
	Turn        int            `json:"turn"`
	MapLevel    int            `json:"mapLevel"`
	PortalDepth int            `json:"portalDepth"`
	Width       int            `json:"width"`
	Height      int            `json:"height"`
	TileRows    []string       `json:"tileRows"` // One rune per cell, per tileRunes
	ExploredRow []string       `json:"explored"` // '1' explored, '0' not
	Entities    []entitySnap   `json:"entities"`
	PlayerIndex int            `json:"playerIndex"`
	Messages    []messageSnap  `json:"messages"`
}

type messageSnap struct {
	Text  string `json:"text"`
	Color int32  `json:"color"`
	Count int    `json:"count"`
}

type entitySnap struct {
	Kind        int        `json:"kind"`
	Name        string     `json:"name"`
	X           int        `json:"x"`
	Y           int        `json:"y"`
	Glyph       string     `json:"glyph"`
	Color       int32      `json:"color"`
	Order       int        `json:"order"`
	Blocks      bool       `json:"blocks"`
	Actor       *actorSnap `json:"actor,omitempty"`
	Item        *itemSnap  `json:"item,omitempty"`
	Gold        int        `json:"gold,omitempty"`
	Shop        *shopSnap  `json:"shop,omitempty"`
	StairsDelta int        `json:"stairsDelta,omitempty"`
}

type actorSnap struct {
	Battler    entity.Battler `json:"battler"`
	Level      entity.Level   `json:"level"`
	AI         int            `json:"ai"`
	RangedMode bool           `json:"rangedMode"`
	Capacity   int            `json:"capacity"`
	Inventory  []entitySnap   `json:"inventory"`
	// Equipment maps slot name to an index into Inventory.
	Equipment map[string]int `json:"equipment"`
}

type itemSnap struct {
	DefID      string          `json:"defId"`
	GoldValue  int             `json:"goldValue"`
	CanStack   bool            `json:"canStack"`
	Stack      int             `json:"stack"`
	Consumable *consumableSnap `json:"consumable,omitempty"`
	Equippable *equippableSnap `json:"equippable,omitempty"`
	Bag        *bagSnap        `json:"bag,omitempty"`
}

type consumableSnap struct {
	Effect string `json:"effect"`
	Amount int    `json:"amount"`
}

type equippableSnap struct {
	Slot      string         `json:"slot"`
	NumDice   int            `json:"numDice"`
	DieSize   int            `json:"dieSize"`
	ArmorAC   int            `json:"armorAc"`
	UnitPrice int            `json:"unitPrice"`
	Bonuses   map[string]int `json:"bonuses,omitempty"`
}

type bagSnap struct {
	Capacity int          `json:"capacity"`
	Items    []entitySnap `json:"items"`
}

type shopSnap struct {
	ForSale []entitySnap `json:"forSale"`
}

// tile rune codes per tile id; the glyphs double as the codes.
var tileRunes = map[string]rune{"floor": '.', "wall": '#', "grass": ','}
var tileIDs = map[rune]string{'.': "floor", '#': "wall", ',': "grass"}

// Encode serializes the session to JSON.
func Encode(e *engine.Engine) ([]byte, error) {
	m := e.Map
	snap := snapshot{
		Turn:        e.Turn,
		MapLevel:    m.Level,
		PortalDepth: e.PortalDepth,
		Width:       m.Width,
		Height:      m.Height,
		PlayerIndex: -1,
	}
	for y := 0; y < m.Height; y++ {
		tiles := make([]rune, m.Width)
		explored := make([]rune, m.Width)
		for x := 0; x < m.Width; x++ {
			tiles[x] = tileRunes[m.Tiles[y][x].ID]
			explored[x] = '0'
			if m.Explored[y][x] {
				explored[x] = '1'
			}
		}
		snap.TileRows = append(snap.TileRows, string(tiles))
		snap.ExploredRow = append(snap.ExploredRow, string(explored))
	}
	for i, ent := range m.Entities {
		if ent == e.Player {
			snap.PlayerIndex = i
		}
		snap.Entities = append(snap.Entities, encodeEntity(ent))
	}
	if snap.PlayerIndex < 0 {
		return nil, fmt.Errorf("save: player is not on the current map")
	}
	for _, msg := range e.Log.Messages {
		snap.Messages = append(snap.Messages, messageSnap{
			Text: msg.Text, Color: int32(msg.Color.Hex()), Count: msg.Count,
		})
	}
	return json.Marshal(&snap)
}

func encodeEntity(ent *entity.Entity) entitySnap {
	s := entitySnap{
		Kind:        int(ent.Kind),
		Name:        ent.Name,
		X:           ent.X,
		Y:           ent.Y,
		Glyph:       string(ent.Glyph),
		Color:       int32(ent.Color.Hex()),
		Order:       int(ent.Order),
		Blocks:      ent.BlocksMovement,
		Gold:        ent.GoldAmount,
		StairsDelta: ent.StairsDelta,
	}
	if ent.Actor != nil {
		s.Actor = encodeActor(ent.Actor)
	}
	if ent.Item != nil {
		s.Item = encodeItem(ent.Item)
	}
	if ent.Shop != nil {
		shop := &shopSnap{}
		for _, sale := range ent.Shop.ForSale {
			shop.ForSale = append(shop.ForSale, encodeEntity(sale))
		}
		s.Shop = shop
	}
	return s
}

func encodeActor(a *entity.Actor) *actorSnap {
	snap := &actorSnap{
		Battler:    a.Battler,
		Level:      a.Level,
		AI:         int(a.AI),
		RangedMode: a.RangedMode,
		Equipment:  map[string]int{},
	}
	if a.Inventory != nil {
		snap.Capacity = a.Inventory.Capacity
		for _, item := range a.Inventory.Items {
			snap.Inventory = append(snap.Inventory, encodeEntity(item))
		}
		for slot, worn := range a.Equipment.Slots {
			if worn == nil {
				continue
			}
			for i, item := range a.Inventory.Items {
				if item == worn {
					snap.Equipment[entity.Slot(slot).String()] = i
					break
				}
			}
		}
	}
	return snap
}

func encodeItem(it *entity.Item) *itemSnap {
	snap := &itemSnap{
		DefID:     it.DefID,
		GoldValue: it.GoldValue,
		CanStack:  it.CanStack,
		Stack:     it.Stack,
	}
	if it.Consumable != nil {
		snap.Consumable = &consumableSnap{Effect: it.Consumable.Effect, Amount: it.Consumable.Amount}
	}
	if it.Equippable != nil {
		snap.Equippable = &equippableSnap{
			Slot:      it.Equippable.Slot.String(),
			NumDice:   it.Equippable.NumDice,
			DieSize:   it.Equippable.DieSize,
			ArmorAC:   it.Equippable.ArmorAC,
			UnitPrice: it.Equippable.UnitPrice,
			Bonuses:   it.Equippable.Bonuses,
		}
	}
	if it.Bag != nil {
		bag := &bagSnap{Capacity: it.Bag.Capacity}
		for _, item := range it.Bag.Items {
			bag.Items = append(bag.Items, encodeEntity(item))
		}
		snap.Bag = bag
	}
	return snap
}

// Decode restores a session into the engine: the map, its entities, the
// player and the message log. Visibility is recomputed afterwards.
func Decode(e *engine.Engine, data []byte) error {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("save: corrupt snapshot: %w", err)
	}
	if snap.PlayerIndex < 0 || snap.PlayerIndex >= len(snap.Entities) {
		return fmt.Errorf("save: snapshot has no player")
	}

	m := world.NewGameMap(snap.Width, snap.Height, snap.MapLevel)
	for y := 0; y < snap.Height && y < len(snap.TileRows); y++ {
		tiles := []rune(snap.TileRows[y])
		explored := []rune(snap.ExploredRow[y])
		for x := 0; x < snap.Width && x < len(tiles); x++ {
			m.SetTile(x, y, world.TileByID(tileIDs[tiles[x]]))
			m.Explored[y][x] = x < len(explored) && explored[x] == '1'
		}
	}
	for i := range snap.Entities {
		ent := decodeEntity(&snap.Entities[i])
		m.Add(ent)
		if i == snap.PlayerIndex {
			e.Player = ent
		}
	}

	e.Map = m
	e.Turn = snap.Turn
	e.PortalDepth = snap.PortalDepth
	e.Log = engine.NewMessageLog(500)
	for _, msg := range snap.Messages {
		for i := 0; i < msg.Count; i++ {
			e.Log.Add(msg.Text, tcell.NewHexColor(msg.Color))
		}
	}
	e.LastTarget = nil
	e.UpdateFOV()
	return nil
}

func decodeEntity(s *entitySnap) *entity.Entity {
	glyph := '?'
	if r := []rune(s.Glyph); len(r) > 0 {
		glyph = r[0]
	}
	ent := &entity.Entity{
		ID:             uuid.New(),
		Kind:           entity.Kind(s.Kind),
		Name:           s.Name,
		X:              s.X,
		Y:              s.Y,
		Glyph:          glyph,
		Color:          tcell.NewHexColor(s.Color),
		Order:          entity.RenderOrder(s.Order),
		BlocksMovement: s.Blocks,
		GoldAmount:     s.Gold,
		StairsDelta:    s.StairsDelta,
	}
	if s.Actor != nil {
		ent.Actor = decodeActor(s.Actor)
	}
	if s.Item != nil {
		ent.Item = decodeItem(s.Item)
	}
	if s.Shop != nil {
		shop := &entity.Shop{}
		for i := range s.Shop.ForSale {
			shop.ForSale = append(shop.ForSale, decodeEntity(&s.Shop.ForSale[i]))
		}
		ent.Shop = shop
	}
	return ent
}

func decodeActor(s *actorSnap) *entity.Actor {
	a := &entity.Actor{
		Battler:    s.Battler,
		Level:      s.Level,
		AI:         entity.AIKind(s.AI),
		RangedMode: s.RangedMode,
		Inventory:  entity.NewInventory(s.Capacity),
	}
	if a.Battler.Feats == nil {
		a.Battler.Feats = map[string]int{}
	}
	if a.Battler.Buffs == nil {
		a.Battler.Buffs = map[string]entity.Buff{}
	}
	for i := range s.Inventory {
		a.Inventory.Items = append(a.Inventory.Items, decodeEntity(&s.Inventory[i]))
	}
	for slotName, idx := range s.Equipment {
		slot := entity.SlotByName(slotName)
		if slot == entity.SlotNone || idx < 0 || idx >= len(a.Inventory.Items) {
			continue
		}
		a.Equipment.Slots[slot] = a.Inventory.Items[idx]
	}
	return a
}

func decodeItem(s *itemSnap) *entity.Item {
	it := &entity.Item{
		DefID:     s.DefID,
		GoldValue: s.GoldValue,
		CanStack:  s.CanStack,
		Stack:     s.Stack,
	}
	if s.Consumable != nil {
		it.Consumable = &gamedata.ConsumableDef{Effect: s.Consumable.Effect, Amount: s.Consumable.Amount}
	}
	if s.Equippable != nil {
		bonuses := s.Equippable.Bonuses
		if bonuses == nil {
			bonuses = map[string]int{}
		}
		it.Equippable = &entity.Equippable{
			Slot:      entity.SlotByName(s.Equippable.Slot),
			NumDice:   s.Equippable.NumDice,
			DieSize:   s.Equippable.DieSize,
			ArmorAC:   s.Equippable.ArmorAC,
			UnitPrice: s.Equippable.UnitPrice,
			Bonuses:   bonuses,
		}
	}
	if s.Bag != nil {
		it.Bag = entity.NewInventory(s.Bag.Capacity)
		for i := range s.Bag.Items {
			it.Bag.Items = append(it.Bag.Items, decodeEntity(&s.Bag.Items[i]))
		}
	}
	return it
}

package save

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gravedelve/internal/config"
	"github.com/samdwyer/gravedelve/internal/engine"
	"github.com/samdwyer/gravedelve/internal/entity"
	"github.com/samdwyer/gravedelve/internal/world"
)

// newSession builds a small deliberately messy session: worn gear, a
// stack, a bag with contents, a monster, loot and a stacked log entry.
func newSession(t *testing.T) *engine.Engine {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 7
	e := engine.New(context.Background(), cfg)

	m := world.NewGameMap(15, 15, 3)
	for y := 1; y < 14; y++ {
		for x := 1; x < 14; x++ {
			m.SetTile(x, y, world.TileFloor)
		}
	}

	player := entity.NewActor("Durga", '@', tcell.ColorWhite, entity.AINone)
	b := &player.Actor.Battler
	b.Strength, b.Dexterity, b.Constitution = 16, 14, 14
	b.Intelligence, b.Wisdom, b.Charisma = 10, 12, 10
	player.Actor.ApplyClass(e.Classes.GetByID("fighter"))
	player.Place(7, 7)

	sword := entity.NewItemFromDef(e.Items.GetByID("long_sword"))
	sword.Item.Equippable.SetBonus("Weapon", 2)
	player.Actor.Inventory.Add(sword)
	player.Actor.Equipment.Equip(sword)

	potions := entity.NewItemFromDef(e.Items.GetByID("healing_potion"))
	potions.Item.Stack = 3
	player.Actor.Inventory.Add(potions)

	bag := entity.NewItemFromDef(e.Items.GetByID("red_bag"))
	stowed := entity.NewItemFromDef(e.Items.GetByID("town_portal_scroll"))
	bag.Item.Bag.Items = append(bag.Item.Bag.Items, stowed)
	player.Actor.Inventory.Add(bag)

	m.Add(entity.NewStairs(+1))
	gold := entity.NewGold(35)
	gold.Place(3, 3)
	m.Add(gold)
	goblin := entity.NewEnemy(e.Enemies.GetByID("goblin"))
	goblin.Place(9, 7)
	m.Add(goblin)
	m.Add(player)

	e.Player = player
	e.Map = m
	e.Turn = 42
	e.PortalDepth = 3
	e.UpdateFOV()
	m.Explored[2][2] = true

	e.Log.Addf("You descend the stairs.")
	e.Log.Add("The goblin misses you.", tcell.ColorGray)
	e.Log.Add("The goblin misses you.", tcell.ColorGray)
	return e
}

// restore decodes data into a fresh engine.
func restore(t *testing.T, data []byte) *engine.Engine {
	t.Helper()
	cfg := config.Default()
	e := engine.New(context.Background(), cfg)
	if err := Decode(e, data); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	return e
}

func TestSnapshotRoundTrip(t *testing.T) {
	src := newSession(t)
	data, err := Encode(src)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	e := restore(t, data)

	if e.Turn != 42 {
		t.Errorf("Turn = %d, want 42", e.Turn)
	}
	if e.Map.Level != 3 {
		t.Errorf("Level = %d, want 3", e.Map.Level)
	}
	if e.PortalDepth != 3 {
		t.Errorf("PortalDepth = %d, want 3", e.PortalDepth)
	}
	if e.Map.Width != 15 || e.Map.Height != 15 {
		t.Errorf("map %dx%d, want 15x15", e.Map.Width, e.Map.Height)
	}
	if e.Player == nil || e.Player.Name != "Durga" {
		t.Fatalf("player not restored: %v", e.Player)
	}
	if e.Player.X != 7 || e.Player.Y != 7 {
		t.Errorf("player at (%d,%d), want (7,7)", e.Player.X, e.Player.Y)
	}
	if len(e.Map.Entities) != len(src.Map.Entities) {
		t.Errorf("entity count = %d, want %d", len(e.Map.Entities), len(src.Map.Entities))
	}
}

func TestSnapshotPreservesTiles(t *testing.T) {
	src := newSession(t)
	data, err := Encode(src)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	e := restore(t, data)

	if e.Map.Tiles[0][0].ID != "wall" {
		t.Errorf("border tile = %q, want wall", e.Map.Tiles[0][0].ID)
	}
	if e.Map.Tiles[7][7].ID != "floor" {
		t.Errorf("center tile = %q, want floor", e.Map.Tiles[7][7].ID)
	}
	if !e.Map.Explored[2][2] {
		t.Error("explored tiles must survive the round trip")
	}
	if e.Map.Explored[13][13] != src.Map.Explored[13][13] {
		t.Error("unexplored state diverged")
	}
}

func TestSnapshotPreservesInventoryAndEquipment(t *testing.T) {
	src := newSession(t)
	data, err := Encode(src)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	e := restore(t, data)
	actor := e.Player.Actor

	if got := len(actor.Inventory.Items); got != 3 {
		t.Fatalf("inventory size = %d, want 3", got)
	}
	sword := actor.Inventory.Items[0]
	if sword.Name != "Long Sword" {
		t.Fatalf("Items[0] = %q, want the sword", sword.Name)
	}
	if !actor.Equipment.IsWorn(sword) {
		t.Error("the worn sword must come back worn")
	}
	if actor.Equipment.Slots[entity.SlotMainHand] != sword {
		t.Error("equipment must point at the restored inventory item, not a copy")
	}
	if got := sword.Item.Equippable.BonusFor("Weapon"); got != 2 {
		t.Errorf("Weapon bonus = %d, want 2", got)
	}

	potions := actor.Inventory.FindStack("Healing Potion")
	if potions == nil || potions.Item.Stack != 3 {
		t.Errorf("potion stack not restored: %v", potions)
	}

	bag := actor.Inventory.Items[2]
	if bag.Item.Bag == nil || len(bag.Item.Bag.Items) != 1 {
		t.Fatalf("bag contents not restored: %v", bag.Item)
	}
	if bag.Item.Bag.Items[0].Name != "Town Portal Scroll" {
		t.Errorf("bagged item = %q, want the scroll", bag.Item.Bag.Items[0].Name)
	}
}

func TestSnapshotPreservesBattler(t *testing.T) {
	src := newSession(t)
	src.Player.Actor.Battler.Gold = 123
	src.Player.Actor.Battler.HP = 5
	src.Player.Actor.Level.XP = 180

	data, err := Encode(src)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	e := restore(t, data)
	b := e.Player.Actor.Battler

	if b.Gold != 123 {
		t.Errorf("Gold = %d, want 123", b.Gold)
	}
	if b.HP != 5 || b.MaxHP != src.Player.Actor.Battler.MaxHP {
		t.Errorf("HP = %d/%d, want 5/%d", b.HP, b.MaxHP, src.Player.Actor.Battler.MaxHP)
	}
	if e.Player.Actor.Level.XP != 180 {
		t.Errorf("XP = %d, want 180", e.Player.Actor.Level.XP)
	}
	if b.ClassID != "fighter" {
		t.Errorf("ClassID = %q, want fighter", b.ClassID)
	}
}

func TestSnapshotPreservesLog(t *testing.T) {
	src := newSession(t)
	data, err := Encode(src)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	e := restore(t, data)

	if e.Log.Len() != src.Log.Len() {
		t.Fatalf("log entries = %d, want %d", e.Log.Len(), src.Log.Len())
	}
	last := e.Log.Messages[e.Log.Len()-1]
	if last.FullText() != "The goblin misses you. (x2)" {
		t.Errorf("last entry = %q, want the stacked miss", last.FullText())
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	e := engine.New(context.Background(), config.Default())
	if err := Decode(e, []byte("not json")); err == nil {
		t.Error("corrupt data should fail to decode")
	}
	if err := Decode(e, []byte(`{"playerIndex":-1}`)); err == nil {
		t.Error("a snapshot without a player should fail to decode")
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "saves.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	src := newSession(t)
	if err := store.Save(2, src); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	e := engine.New(context.Background(), config.Default())
	if err := store.Load(2, e); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if e.Player.Name != "Durga" || e.Turn != 42 {
		t.Errorf("loaded %q at turn %d, want Durga at 42", e.Player.Name, e.Turn)
	}

	if err := store.Load(5, e); err == nil {
		t.Error("loading an empty slot should fail")
	}
}

func TestStoreSaveOverwritesSlot(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "saves.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	src := newSession(t)
	if err := store.Save(1, src); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	src.Turn = 99
	if err := store.Save(1, src); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	infos, err := store.Slots()
	if err != nil {
		t.Fatalf("Slots failed: %v", err)
	}
	if len(infos) != 1 {
		t.Fatalf("slot count = %d, want 1", len(infos))
	}
	if infos[0].Turn != 99 {
		t.Errorf("slot turn = %d, want the overwrite at 99", infos[0].Turn)
	}
}

func TestStoreSlotsAndDelete(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "saves.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	src := newSession(t)
	if err := store.Save(3, src); err != nil {
		t.Fatalf("Save slot 3 failed: %v", err)
	}
	if err := store.Save(1, src); err != nil {
		t.Fatalf("Save slot 1 failed: %v", err)
	}

	infos, err := store.Slots()
	if err != nil {
		t.Fatalf("Slots failed: %v", err)
	}
	if len(infos) != 2 || infos[0].Slot != 1 || infos[1].Slot != 3 {
		t.Fatalf("slots = %v, want slots 1 and 3 in order", infos)
	}
	if infos[0].PlayerName != "Durga" || infos[0].Depth != 3 {
		t.Errorf("slot 1 = %q depth %d, want Durga at depth 3", infos[0].PlayerName, infos[0].Depth)
	}
	if infos[0].SavedAt.IsZero() {
		t.Error("SavedAt should be populated")
	}

	if err := store.Delete(1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	infos, err = store.Slots()
	if err != nil {
		t.Fatalf("Slots after delete failed: %v", err)
	}
	if len(infos) != 1 || infos[0].Slot != 3 {
		t.Errorf("slots after delete = %v, want only slot 3", infos)
	}
}

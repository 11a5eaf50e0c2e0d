package world

import (
	"context"
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gravedelve/internal/entity"
	"github.com/samdwyer/gravedelve/internal/gamedata"
)

func testPlayer() *entity.Entity {
	return entity.NewActor("Rogue", '@', tcell.ColorWhite, entity.AINone)
}

func genFloor(t *testing.T, seed int64, level int) *GameMap {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	enemies := gamedata.MustLoadEnemyRegistry()
	items := gamedata.MustLoadItemRegistry()
	return GenerateDungeon(context.Background(), DefaultParams(), level, +1, rng, enemies, items, testPlayer())
}

func TestGenerateDungeonRooms(t *testing.T) {
	m := genFloor(t, 42, 1)

	if len(m.Rooms) == 0 {
		t.Fatal("no rooms generated")
	}

	p := DefaultParams()
	for i, room := range m.Rooms {
		if room.Width < p.MinRoomSize || room.Height < p.MinRoomSize {
			t.Errorf("room %d is %dx%d, below minimum %d", i, room.Width, room.Height, p.MinRoomSize)
		}
		// Room interiors must be carved floor.
		cx, cy := room.Center()
		if !m.Walkable(cx, cy) {
			t.Errorf("room %d center (%d,%d) is not walkable", i, cx, cy)
		}
	}
}

func TestGenerateDungeonBorderIsWall(t *testing.T) {
	m := genFloor(t, 7, 1)

	for x := 0; x < m.Width; x++ {
		if m.Walkable(x, 0) || m.Walkable(x, m.Height-1) {
			t.Fatalf("border walkable at column %d", x)
		}
	}
	for y := 0; y < m.Height; y++ {
		if m.Walkable(0, y) || m.Walkable(m.Width-1, y) {
			t.Fatalf("border walkable at row %d", y)
		}
	}
}

func TestGenerateDungeonStairs(t *testing.T) {
	m := genFloor(t, 11, 2)

	var up, down int
	for _, s := range m.Stairs() {
		switch {
		case s.StairsDelta < 0:
			up++
		case s.StairsDelta > 0:
			down++
		}
		if !m.Walkable(s.X, s.Y) {
			t.Errorf("stairs at (%d,%d) on unwalkable terrain", s.X, s.Y)
		}
	}
	if up != 1 {
		t.Errorf("expected 1 up staircase, got %d", up)
	}
	if down != 1 {
		t.Errorf("expected 1 down staircase, got %d", down)
	}
}

func TestGenerateDungeonPlayerPlacement(t *testing.T) {
	player := testPlayer()
	rng := rand.New(rand.NewSource(3))
	m := GenerateDungeon(context.Background(), DefaultParams(), 1, +1, rng,
		gamedata.MustLoadEnemyRegistry(), gamedata.MustLoadItemRegistry(), player)

	if !m.Walkable(player.X, player.Y) {
		t.Errorf("player placed on unwalkable tile (%d,%d)", player.X, player.Y)
	}
	if !m.Rooms[0].Contains(player.X, player.Y) {
		t.Errorf("player at (%d,%d) is outside the entry room", player.X, player.Y)
	}
	found := false
	for _, e := range m.Entities {
		if e == player {
			found = true
		}
	}
	if !found {
		t.Error("player entity not added to map")
	}

	// The up staircase sits where the player arrived.
	stairs := m.StairsAt(player.X, player.Y)
	if stairs == nil || stairs.StairsDelta != -1 {
		t.Error("expected ascending stairs under the arriving player")
	}
}

func TestGenerateDungeonDeterministic(t *testing.T) {
	a := genFloor(t, 12345, 1)
	b := genFloor(t, 12345, 1)

	if len(a.Rooms) != len(b.Rooms) {
		t.Fatalf("room counts differ: %d vs %d", len(a.Rooms), len(b.Rooms))
	}
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			if a.Tiles[y][x] != b.Tiles[y][x] {
				t.Fatalf("terrain differs at (%d,%d) for identical seeds", x, y)
			}
		}
	}
	if len(a.Entities) != len(b.Entities) {
		t.Errorf("entity counts differ: %d vs %d", len(a.Entities), len(b.Entities))
	}
}

func TestGenerateDungeonRespectsDepthSpawns(t *testing.T) {
	// Depth 1 floors must never contain deep monsters.
	for seed := int64(0); seed < 20; seed++ {
		m := genFloor(t, seed, 1)
		for _, e := range m.Actors() {
			if e.Name == "Troll" {
				t.Fatalf("seed %d: troll spawned on depth 1", seed)
			}
		}
	}
}

func TestGenerateTown(t *testing.T) {
	player := testPlayer()
	rng := rand.New(rand.NewSource(1))
	m := GenerateTown(context.Background(), DefaultParams(), rng, gamedata.MustLoadItemRegistry(), player)

	if m.Level != 0 {
		t.Errorf("town level = %d, want 0", m.Level)
	}
	if len(m.Shops()) != 1 {
		t.Errorf("expected 1 shop, got %d", len(m.Shops()))
	}
	if len(m.Enchanters()) != 1 {
		t.Errorf("expected 1 enchanter, got %d", len(m.Enchanters()))
	}

	stairs := m.Stairs()
	if len(stairs) != 1 || stairs[0].StairsDelta != +1 {
		t.Fatalf("town needs exactly one descending staircase, got %d", len(stairs))
	}

	// No monsters in town.
	for _, a := range m.Actors() {
		if a != player {
			t.Errorf("unexpected actor %q in town", a.Name)
		}
	}

	shop := m.Shops()[0]
	if shop.Shop == nil || len(shop.Shop.ForSale) == 0 {
		t.Error("town shop has no stock")
	}
}

func TestComputeFOVRadius(t *testing.T) {
	m := NewGameMap(40, 40, 1)
	for y := 1; y < 39; y++ {
		for x := 1; x < 39; x++ {
			m.SetTile(x, y, TileFloor)
		}
	}

	m.ComputeFOV(20, 20, 8)

	if !m.Visible[20][20] {
		t.Error("origin not visible")
	}
	if !m.Visible[20][28] {
		t.Error("tile at exactly radius 8 should be visible on open floor")
	}
	if m.Visible[20][30] {
		t.Error("tile beyond the radius is visible")
	}
}

func TestComputeFOVWallsBlock(t *testing.T) {
	m := NewGameMap(40, 40, 1)
	for y := 1; y < 39; y++ {
		for x := 1; x < 39; x++ {
			m.SetTile(x, y, TileFloor)
		}
	}
	// A wall segment east of the viewer.
	for y := 15; y <= 25; y++ {
		m.SetTile(24, y, TileWall)
	}

	m.ComputeFOV(20, 20, 10)

	if !m.Visible[20][24] {
		t.Error("blocking wall itself should be visible")
	}
	if m.Visible[20][26] {
		t.Error("tile behind the wall should be hidden")
	}
}

func TestExploredIsMonotonic(t *testing.T) {
	m := NewGameMap(40, 40, 1)
	for y := 1; y < 39; y++ {
		for x := 1; x < 39; x++ {
			m.SetTile(x, y, TileFloor)
		}
	}

	m.ComputeFOV(5, 5, 8)
	if !m.Explored[5][10] {
		t.Fatal("tile near the first viewpoint not explored")
	}

	// Move far away: old tiles leave view but stay explored.
	m.ComputeFOV(34, 34, 8)
	if m.Visible[5][10] {
		t.Error("old tile still visible after moving")
	}
	if !m.Explored[5][10] {
		t.Error("explored flag was cleared")
	}
}

func TestTileByID(t *testing.T) {
	if TileByID("floor") != TileFloor {
		t.Error("floor id did not resolve")
	}
	if TileByID("grass") != TileGrass {
		t.Error("grass id did not resolve")
	}
	if TileByID("lava") != TileWall {
		t.Error("unknown id should fall back to wall")
	}
}

func TestTileAtOutOfBounds(t *testing.T) {
	m := NewGameMap(10, 10, 1)
	if m.TileAt(-1, 5) != TileWall || m.TileAt(5, 100) != TileWall {
		t.Error("out-of-bounds reads should be wall")
	}
}

func TestEntitiesInRenderOrder(t *testing.T) {
	m := NewGameMap(10, 10, 1)
	actor := testPlayer()
	stairs := entity.NewStairs(+1)
	gold := entity.NewGold(5)

	m.Add(actor)
	m.Add(stairs)
	m.Add(gold)

	out := m.EntitiesInRenderOrder()
	if len(out) != 3 {
		t.Fatalf("expected 3 entities, got %d", len(out))
	}
	if out[0] != stairs {
		t.Error("stairs should draw first")
	}
	if out[2] != actor {
		t.Error("actor should draw last")
	}
}

package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gravedelve/internal/entity"
	"github.com/samdwyer/gravedelve/internal/gamedata"
	"github.com/samdwyer/gravedelve/internal/telemetry"
)

// Params carries the room-generation knobs shared by both generators.
type Params struct {
	Width, Height   int
	MinRoomSize     int
	MaxRoomSize     int
	MinLeafSize     int
	MonstersPerRoom int
	ItemsPerRoom    int
}

// DefaultParams returns the reference generation parameters.
func DefaultParams() Params {
	return Params{
		Width: 80, Height: 43,
		MinRoomSize: 6, MaxRoomSize: 12, MinLeafSize: 9,
		MonstersPerRoom: 2, ItemsPerRoom: 1,
	}
}

// GenerateDungeon builds a populated dungeon floor. The player is placed
// in the first room and added to the map; stairsDelta says which way the
// player arrived (+1 came down, -1 came up) and controls where the
// return staircase lands.
func GenerateDungeon(
	ctx context.Context,
	p Params,
	level, stairsDelta int,
	rng *rand.Rand,
	enemies *gamedata.EnemyRegistry,
	items *gamedata.ItemRegistry,
	player *entity.Entity,
) *GameMap {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "floor.generate")
	defer span.End()
	startTime := time.Now()

	m := NewGameMap(p.Width, p.Height, level)
	root := &bspNode{x: 1, y: 1, width: p.Width - 2, height: p.Height - 2}
	m.splitNode(root, p, rng)
	m.createRooms(root, p, rng)
	m.connectRooms(root, rng)

	if len(m.Rooms) == 0 {
		// Degenerate parameters; carve a fallback chamber.
		fallback := Room{X: 1, Y: 1, Width: p.Width - 2, Height: p.Height - 2}
		m.carveRoom(fallback)
		m.Rooms = append(m.Rooms, fallback)
	}

	// Player enters in the first room.
	px, py := m.Rooms[0].Center()
	player.Place(px, py)
	m.Add(player)

	// Stairs up sit where the player arrived; stairs down in the last room.
	m.placeStairs(px, py, -1)
	if lx, ly := m.Rooms[len(m.Rooms)-1].Center(); lx != px || ly != py {
		m.placeStairs(lx, ly, +1)
	} else {
		m.placeStairs(lx+1, ly, +1)
	}

	for i := 1; i < len(m.Rooms); i++ {
		m.populateRoom(m.Rooms[i], p, level, rng, enemies, items)
	}

	span.SetAttributes(
		attribute.Int("floor.level", level),
		attribute.Int("floor.room_count", len(m.Rooms)),
		attribute.Int("floor.entity_count", len(m.Entities)),
		attribute.Int64("floor.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return m
}

// GenerateTown builds the level-0 town: one open grass field with a
// shop, an enchanter and the dungeon entrance. No monsters spawn here.
func GenerateTown(
	ctx context.Context,
	p Params,
	rng *rand.Rand,
	items *gamedata.ItemRegistry,
	player *entity.Entity,
) *GameMap {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "town.generate")
	defer span.End()

	m := NewGameMap(p.Width, p.Height, 0)
	field := Room{X: 1, Y: 1, Width: p.Width - 2, Height: p.Height - 2}
	for y := field.Y; y < field.Y+field.Height; y++ {
		for x := field.X; x < field.X+field.Width; x++ {
			m.SetTile(x, y, TileGrass)
		}
	}
	m.Rooms = append(m.Rooms, field)

	cx, cy := field.Center()
	player.Place(cx, cy)
	m.Add(player)

	shop := entity.NewShop(shopStock(items))
	shop.Place(cx-6, cy-3)
	m.Add(shop)

	enchanter := entity.NewEnchanter()
	enchanter.Place(cx+6, cy-3)
	m.Add(enchanter)

	m.placeStairs(cx, cy+4, +1)

	span.SetAttributes(attribute.Int("town.entity_count", len(m.Entities)))
	return m
}

// shopStock instantiates the for-sale templates for a fresh shop.
func shopStock(items *gamedata.ItemRegistry) []*entity.Entity {
	defs := items.ShopStock()
	stock := make([]*entity.Entity, 0, len(defs))
	for _, def := range defs {
		stock = append(stock, entity.NewItemFromDef(def))
	}
	return stock
}

func (m *GameMap) placeStairs(x, y, delta int) {
	stairs := entity.NewStairs(delta)
	stairs.Place(x, y)
	m.Add(stairs)
}

func (m *GameMap) populateRoom(
	room Room,
	p Params,
	level int,
	rng *rand.Rand,
	enemies *gamedata.EnemyRegistry,
	items *gamedata.ItemRegistry,
) {
	for i := 0; i < rng.Intn(p.MonstersPerRoom+1); i++ {
		def := enemies.SpawnRandom(rng, level)
		if def == nil {
			continue
		}
		x, y := m.randomPointIn(room, rng)
		if m.BlockingEntityAt(x, y) != nil {
			continue
		}
		monster := entity.NewEnemy(def)
		monster.Place(x, y)
		m.Add(monster)
	}
	for i := 0; i < rng.Intn(p.ItemsPerRoom+1); i++ {
		x, y := m.randomPointIn(room, rng)
		if rng.Intn(4) == 0 {
			gold := entity.NewGold(5 + rng.Intn(20*level+1))
			gold.Place(x, y)
			m.Add(gold)
			continue
		}
		def := items.GetByID("healing_potion")
		if def == nil {
			continue
		}
		drop := entity.NewItemFromDef(def)
		drop.Place(x, y)
		m.Add(drop)
	}
}

func (m *GameMap) randomPointIn(room Room, rng *rand.Rand) (int, int) {
	for i := 0; i < 100; i++ {
		x, y := room.RandomPoint(rng)
		if m.Walkable(x, y) {
			return x, y
		}
	}
	return room.Center()
}

// bspNode is a node in the binary space partition tree.
type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
	room          *Room
}

func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func (m *GameMap) splitNode(node *bspNode, p Params, rng *rand.Rand) {
	if node.width < p.MinLeafSize*2 && node.height < p.MinLeafSize*2 {
		return
	}

	var horizontal bool
	switch {
	case node.width > node.height && node.width >= p.MinLeafSize*2:
		horizontal = false
	case node.height >= p.MinLeafSize*2:
		horizontal = true
	case node.width >= p.MinLeafSize*2:
		horizontal = false
	default:
		return
	}

	var span, splitPos int
	if horizontal {
		span = node.height
	} else {
		span = node.width
	}
	low, high := p.MinLeafSize, span-p.MinLeafSize
	if high <= low {
		return
	}
	splitPos = low + rng.Intn(high-low+1)

	if horizontal {
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPos}
		node.right = &bspNode{x: node.x, y: node.y + splitPos, width: node.width, height: node.height - splitPos}
	} else {
		node.left = &bspNode{x: node.x, y: node.y, width: splitPos, height: node.height}
		node.right = &bspNode{x: node.x + splitPos, y: node.y, width: node.width - splitPos, height: node.height}
	}
	m.splitNode(node.left, p, rng)
	m.splitNode(node.right, p, rng)
}

func (m *GameMap) createRooms(node *bspNode, p Params, rng *rand.Rand) {
	if node == nil {
		return
	}
	if !node.isLeaf() {
		m.createRooms(node.left, p, rng)
		m.createRooms(node.right, p, rng)
		return
	}

	maxW := min(p.MaxRoomSize-p.MinRoomSize+1, node.width-p.MinRoomSize+1)
	maxH := min(p.MaxRoomSize-p.MinRoomSize+1, node.height-p.MinRoomSize+1)
	if maxW < 1 || maxH < 1 {
		return
	}
	roomW := p.MinRoomSize + rng.Intn(maxW)
	roomH := p.MinRoomSize + rng.Intn(maxH)
	if roomW > node.width-2 {
		roomW = node.width - 2
	}
	if roomH > node.height-2 {
		roomH = node.height - 2
	}
	if roomW < p.MinRoomSize || roomH < p.MinRoomSize {
		return
	}

	room := Room{
		X:      node.x + 1 + rng.Intn(node.width-roomW-1),
		Y:      node.y + 1 + rng.Intn(node.height-roomH-1),
		Width:  roomW,
		Height: roomH,
	}
	node.room = &room
	m.Rooms = append(m.Rooms, room)
	m.carveRoom(room)
}

func (m *GameMap) carveRoom(room Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			if x > 0 && x < m.Width-1 && y > 0 && y < m.Height-1 {
				m.SetTile(x, y, TileFloor)
			}
		}
	}
}

func (m *GameMap) connectRooms(node *bspNode, rng *rand.Rand) {
	if node == nil || node.isLeaf() {
		return
	}
	m.connectRooms(node.left, rng)
	m.connectRooms(node.right, rng)

	leftRoom := firstRoom(node.left)
	rightRoom := firstRoom(node.right)
	if leftRoom == nil || rightRoom == nil {
		return
	}

	x1, y1 := leftRoom.Center()
	x2, y2 := rightRoom.Center()
	if rng.Intn(2) == 0 {
		m.carveHTunnel(x1, x2, y1)
		m.carveVTunnel(y1, y2, x2)
	} else {
		m.carveVTunnel(y1, y2, x1)
		m.carveHTunnel(x1, x2, y2)
	}
}

func firstRoom(node *bspNode) *Room {
	if node == nil {
		return nil
	}
	if node.room != nil {
		return node.room
	}
	if room := firstRoom(node.left); room != nil {
		return room
	}
	return firstRoom(node.right)
}

func (m *GameMap) carveHTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if x > 0 && x < m.Width-1 && y > 0 && y < m.Height-1 {
			m.SetTile(x, y, TileFloor)
		}
	}
}

func (m *GameMap) carveVTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if x > 0 && x < m.Width-1 && y > 0 && y < m.Height-1 {
			m.SetTile(x, y, TileFloor)
		}
	}
}

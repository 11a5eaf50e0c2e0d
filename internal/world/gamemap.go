package world

import (
	"sort"

	"github.com/samdwyer/gravedelve/internal/entity"
)

// GameMap is one floor: the tile grid, the visibility masks and the
// entities placed on it. Grids are indexed tiles[y][x].
type GameMap struct {
	Width, Height int
	Tiles         [][]*Tile
	Visible       [][]bool // Recomputed from the player's viewpoint each turn
	Explored      [][]bool // Monotonic: once true, never cleared
	Level         int      // 0 = town, >0 = dungeon depth
	Entities      []*entity.Entity
	Rooms         []Room
}

// NewGameMap creates a map of the given size filled with wall.
func NewGameMap(width, height, level int) *GameMap {
	m := &GameMap{Width: width, Height: height, Level: level}
	m.Tiles = make([][]*Tile, height)
	m.Visible = make([][]bool, height)
	m.Explored = make([][]bool, height)
	for y := 0; y < height; y++ {
		m.Tiles[y] = make([]*Tile, width)
		m.Visible[y] = make([]bool, width)
		m.Explored[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			m.Tiles[y][x] = TileWall
		}
	}
	return m
}

// InBounds reports whether (x, y) lies inside the map.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// TileAt returns the tile at (x, y); out-of-bounds reads as wall.
func (m *GameMap) TileAt(x, y int) *Tile {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.Tiles[y][x]
}

// SetTile assigns a tile template; out-of-bounds writes are ignored.
func (m *GameMap) SetTile(x, y int, t *Tile) {
	if m.InBounds(x, y) {
		m.Tiles[y][x] = t
	}
}

// Walkable reports whether the terrain at (x, y) can be walked on.
func (m *GameMap) Walkable(x, y int) bool {
	return m.TileAt(x, y).Walkable
}

// Add places an entity on this map.
func (m *GameMap) Add(e *entity.Entity) {
	m.Entities = append(m.Entities, e)
}

// Remove takes an entity off this map. Returns false if absent.
func (m *GameMap) Remove(e *entity.Entity) bool {
	for i, it := range m.Entities {
		if it == e {
			m.Entities = append(m.Entities[:i], m.Entities[i+1:]...)
			return true
		}
	}
	return false
}

// BlockingEntityAt returns the first movement-blocking entity at the
// cell, or nil. Tie-break among multiple blockers is unspecified.
func (m *GameMap) BlockingEntityAt(x, y int) *entity.Entity {
	for _, e := range m.Entities {
		if e.BlocksMovement && e.X == x && e.Y == y {
			return e
		}
	}
	return nil
}

// ActorAt returns the first living actor at the cell, or nil.
func (m *GameMap) ActorAt(x, y int) *entity.Entity {
	for _, e := range m.Entities {
		if e.IsAlive() && e.X == x && e.Y == y {
			return e
		}
	}
	return nil
}

// Actors returns this map's living actors, including the player when
// placed here; filtering the player out is the caller's job.
func (m *GameMap) Actors() []*entity.Entity {
	return m.ByKind(entity.KindActor, true)
}

// Items returns the item entities lying on the map.
func (m *GameMap) Items() []*entity.Entity {
	return m.ByKind(entity.KindItem, false)
}

// Shops returns the shop entities on the map.
func (m *GameMap) Shops() []*entity.Entity {
	return m.ByKind(entity.KindShop, false)
}

// Enchanters returns the enchanter stations on the map.
func (m *GameMap) Enchanters() []*entity.Entity {
	return m.ByKind(entity.KindEnchanter, false)
}

// Stairs returns the staircases on the map.
func (m *GameMap) Stairs() []*entity.Entity {
	return m.ByKind(entity.KindStairs, false)
}

// EntitiesInRenderOrder returns the entities sorted for drawing: lower
// render orders first so actors end up on top. Sort is stable, so ties
// keep insertion order.
func (m *GameMap) EntitiesInRenderOrder() []*entity.Entity {
	out := make([]*entity.Entity, len(m.Entities))
	copy(out, m.Entities)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// ByKind filters entities by kind; aliveOnly additionally restricts
// actors to the living.
func (m *GameMap) ByKind(kind entity.Kind, aliveOnly bool) []*entity.Entity {
	var out []*entity.Entity
	for _, e := range m.Entities {
		if e.Kind != kind {
			continue
		}
		if aliveOnly && !e.IsAlive() {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ShopAt returns a shop entity exactly at the cell, or nil.
func (m *GameMap) ShopAt(x, y int) *entity.Entity {
	for _, e := range m.Shops() {
		if e.X == x && e.Y == y {
			return e
		}
	}
	return nil
}

// EnchanterAt returns an enchanter station at the cell, or nil.
func (m *GameMap) EnchanterAt(x, y int) *entity.Entity {
	for _, e := range m.Enchanters() {
		if e.X == x && e.Y == y {
			return e
		}
	}
	return nil
}

// StairsAt returns a staircase at the cell, or nil.
func (m *GameMap) StairsAt(x, y int) *entity.Entity {
	for _, e := range m.Stairs() {
		if e.X == x && e.Y == y {
			return e
		}
	}
	return nil
}

// NamesAt returns the names of visible entities at a cell, for the
// look/mouse-over readout. Empty when out of bounds or not visible.
func (m *GameMap) NamesAt(x, y int) []string {
	if !m.InBounds(x, y) || !m.Visible[y][x] {
		return nil
	}
	var names []string
	for _, e := range m.Entities {
		if e.X == x && e.Y == y {
			names = append(names, e.Name)
		}
	}
	return names
}

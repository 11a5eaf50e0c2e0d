// Package world provides the game map, tile model, field of view and
// floor generation.
package world

import "github.com/gdamore/tcell/v2"

// Tile is an immutable terrain template. Maps share template pointers;
// mutating terrain means assigning a different template.
type Tile struct {
	ID          string
	Walkable    bool
	Transparent bool
	Glyph       rune
	// Light is the in-view color, Dark the remembered (explored) color.
	LightFG tcell.Color
	DarkFG  tcell.Color
}

// The built-in terrain templates.
var (
	TileFloor = &Tile{
		ID: "floor", Walkable: true, Transparent: true, Glyph: '.',
		LightFG: tcell.ColorLightGray, DarkFG: tcell.ColorDimGray,
	}
	TileWall = &Tile{
		ID: "wall", Glyph: '#',
		LightFG: tcell.ColorLightSlateGray, DarkFG: tcell.ColorDarkSlateGray,
	}
	TileGrass = &Tile{
		ID: "grass", Walkable: true, Transparent: true, Glyph: ',',
		LightFG: tcell.ColorGreen, DarkFG: tcell.ColorDarkGreen,
	}
)

var tilesByID = map[string]*Tile{
	TileFloor.ID: TileFloor,
	TileWall.ID:  TileWall,
	TileGrass.ID: TileGrass,
}

// TileByID resolves a template id, falling back to wall for unknown ids.
func TileByID(id string) *Tile {
	if t, ok := tilesByID[id]; ok {
		return t
	}
	return TileWall
}

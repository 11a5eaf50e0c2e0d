package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts an "#RRGGBB" string (the form the data files
// use; the "#" is optional) to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return tcell.NewHexColor(int32(v)), nil
}

// MustParseHexColor is ParseHexColor for colors baked into the embedded
// data files, where a bad value is a packaging bug.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}

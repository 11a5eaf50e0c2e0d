// Package gamedata holds the embedded definition files (classes, feats,
// spells, items, enemies, enchant price tables) and the registries that
// index them.
package gamedata

import "embed"

//go:embed *.json
var dataFS embed.FS

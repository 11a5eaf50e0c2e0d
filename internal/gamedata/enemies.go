package gamedata

import (
	"errors"
	"math/rand"
)

// EnemyDef defines a spawnable enemy loaded from JSON.
type EnemyDef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Glyph       string `json:"glyph"`
	Color       string `json:"color"`
	HP          int    `json:"hp"`
	AC          int    `json:"ac"`
	AttackBonus int    `json:"attackBonus"`
	NumDice     int    `json:"numDice"`
	DieSize     int    `json:"dieSize"`
	XP          int    `json:"xp"`
	Gold        int    `json:"gold"`
	SpawnWeight int    `json:"spawnWeight"`
	MinLevel    int    `json:"minLevel"` // Shallowest dungeon level this enemy appears on
}

// GlyphRune returns the display glyph as a rune.
func (d *EnemyDef) GlyphRune() rune {
	if len(d.Glyph) == 0 {
		return '?'
	}
	return []rune(d.Glyph)[0]
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}

// EnemyRegistry holds loaded enemy definitions and spawning utilities.
type EnemyRegistry struct {
	enemies []EnemyDef
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	return &EnemyRegistry{enemies: enemies}
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	return NewEnemyRegistry(enemies), nil
}

// MustLoadEnemyRegistry loads a registry, panicking on error.
func MustLoadEnemyRegistry() *EnemyRegistry {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the enemy definition with the given ID, or nil if not found.
func (r *EnemyRegistry) GetByID(id string) *EnemyDef {
	for i := range r.enemies {
		if r.enemies[i].ID == id {
			return &r.enemies[i]
		}
	}
	return nil
}

// Count returns the number of enemy types in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}

// SpawnRandom selects a random enemy eligible for the given dungeon level
// using weighted probability. Returns nil if nothing is eligible.
func (r *EnemyRegistry) SpawnRandom(rng *rand.Rand, level int) *EnemyDef {
	total := 0
	for i := range r.enemies {
		if r.enemies[i].MinLevel <= level {
			total += r.enemies[i].SpawnWeight
		}
	}
	if total <= 0 {
		return nil
	}
	roll := rng.Intn(total)
	cumulative := 0
	for i := range r.enemies {
		if r.enemies[i].MinLevel > level {
			continue
		}
		cumulative += r.enemies[i].SpawnWeight
		if roll < cumulative {
			return &r.enemies[i]
		}
	}
	return &r.enemies[0]
}

package gamedata

import "sort"

// SpellKind tells the input layer which targeting flow a spell needs.
type SpellKind string

const (
	SpellSelfBuff SpellKind = "self_buff" // No target, applies a timed buff
	SpellSelfHeal SpellKind = "self_heal" // No target, restores HP
	SpellRanged   SpellKind = "ranged"    // Cone-cycling monster targeting
	SpellTouch    SpellKind = "touch"     // Cursor targeting at melee reach
	SpellSummon   SpellKind = "summon"    // Cursor targeting on an empty tile
	SpellArea     SpellKind = "area"      // Cursor targeting with a blast radius
)

// SpellDef defines a castable spell loaded from JSON.
type SpellDef struct {
	Name     string    `json:"name"`
	Kind     SpellKind `json:"kind"`
	Mana     int       `json:"mana"`
	Power    int       `json:"power"`              // Heal amount or damage dice count
	DieSize  int       `json:"dieSize,omitempty"`  // Damage die size for attack spells
	Radius   int       `json:"radius,omitempty"`   // Blast radius for area spells
	Duration int       `json:"duration,omitempty"` // Buff duration in turns
	BuffStat string    `json:"buffStat,omitempty"` // "ac" or "hit" for self_buff spells
	SummonID string    `json:"summonId,omitempty"` // Enemy def spawned by summon spells
}

// SpellsFile represents the structure of spells.json.
type SpellsFile struct {
	Spells []SpellDef `json:"spells"`
}

// LoadSpells loads spell definitions from the embedded spells.json file.
func LoadSpells() ([]SpellDef, error) {
	file, err := Load[SpellsFile]("spells.json")
	if err != nil {
		return nil, err
	}
	return file.Spells, nil
}

// SpellRegistry holds loaded spell definitions keyed by display name.
type SpellRegistry struct {
	spells map[string]*SpellDef
	all    []SpellDef
}

// NewSpellRegistry creates a registry from loaded spell definitions.
func NewSpellRegistry(spells []SpellDef) *SpellRegistry {
	r := &SpellRegistry{spells: make(map[string]*SpellDef), all: spells}
	for i := range spells {
		r.spells[spells[i].Name] = &spells[i]
	}
	return r
}

// MustLoadSpellRegistry loads a registry, panicking on error.
func MustLoadSpellRegistry() *SpellRegistry {
	spells, err := LoadSpells()
	if err != nil {
		panic(err)
	}
	return NewSpellRegistry(spells)
}

// GetByName returns the spell with the given name, or nil.
func (r *SpellRegistry) GetByName(name string) *SpellDef {
	return r.spells[name]
}

// Count returns the number of spells in the registry.
func (r *SpellRegistry) Count() int {
	return len(r.all)
}

// SortedNames returns spell names in stable display order for the given
// known-spell set (spell name -> mana cost).
func SortedNames(known map[string]int) []string {
	names := make([]string, 0, len(known))
	for name := range known {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

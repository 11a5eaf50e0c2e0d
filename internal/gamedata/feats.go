package gamedata

import "sort"

// FeatDef defines a feat loaded from JSON.
type FeatDef struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Repeatable bool   `json:"repeatable"` // May be taken more than once
	MinBAB     int    `json:"minBab,omitempty"`
	MinStat    string `json:"minStat,omitempty"` // e.g. "Dex"
	MinValue   int    `json:"minValue,omitempty"`
}

// FeatsFile represents the structure of feats.json.
type FeatsFile struct {
	Feats []FeatDef `json:"feats"`
}

// LoadFeats loads feat definitions from the embedded feats.json file.
func LoadFeats() ([]FeatDef, error) {
	file, err := Load[FeatsFile]("feats.json")
	if err != nil {
		return nil, err
	}
	return file.Feats, nil
}

// FeatRegistry holds loaded feat definitions.
type FeatRegistry struct {
	feats map[string]*FeatDef
	all   []FeatDef
}

// NewFeatRegistry creates a registry from loaded feat definitions.
func NewFeatRegistry(feats []FeatDef) *FeatRegistry {
	r := &FeatRegistry{feats: make(map[string]*FeatDef), all: feats}
	for i := range feats {
		r.feats[feats[i].Name] = &feats[i]
	}
	return r
}

// MustLoadFeatRegistry loads a registry, panicking on error.
func MustLoadFeatRegistry() *FeatRegistry {
	feats, err := LoadFeats()
	if err != nil {
		panic(err)
	}
	return NewFeatRegistry(feats)
}

// GetByName returns the feat with the given display name, or nil.
func (r *FeatRegistry) GetByName(name string) *FeatDef {
	return r.feats[name]
}

// Count returns the number of feats in the registry.
func (r *FeatRegistry) Count() int {
	return len(r.all)
}

// Selectable returns the feats a character may still take: one-shot feats
// not yet known, unioned with repeatable feats, filtered by meets and
// sorted by name so letter assignment is stable across renders.
func (r *FeatRegistry) Selectable(known map[string]int, meets func(*FeatDef) bool) []*FeatDef {
	out := make([]*FeatDef, 0, len(r.all))
	for i := range r.all {
		f := &r.all[i]
		if !f.Repeatable {
			if _, taken := known[f.Name]; taken {
				continue
			}
		}
		if meets != nil && !meets(f) {
			continue
		}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

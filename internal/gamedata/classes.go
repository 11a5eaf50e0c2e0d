package gamedata

// ClassDef defines a playable class loaded from JSON.
type ClassDef struct {
	ID            string         `json:"id"`            // Unique identifier (e.g., "fighter")
	Name          string         `json:"name"`          // Display name (e.g., "Fighter")
	HitDie        int            `json:"hitDie"`        // HP gained per level
	ManaDie       int            `json:"manaDie"`       // Mana gained per level (0 for non-casters)
	BABEveryLevel bool           `json:"babEveryLevel"` // Base attack bonus rises every level
	BABOddLevels  bool           `json:"babOddLevels"`  // Base attack bonus rises on odd levels only
	FeatEverLevel bool           `json:"featEveryLevel"`
	FeatOddLevels bool           `json:"featOddLevels"`
	FeatFifths    bool           `json:"featEveryFifth"` // Bonus feat on every 5th level
	StartSpells   map[string]int `json:"startSpells"`    // Spell name -> mana cost
}

// FeatsAtLevel returns how many feat points the class grants on reaching level.
func (c *ClassDef) FeatsAtLevel(level int) int {
	feats := 0
	if c.FeatEverLevel {
		feats++
	} else if c.FeatOddLevels && level%2 == 1 {
		feats++
	}
	if c.FeatFifths && level%5 == 0 {
		feats++
	}
	return feats
}

// BABAtLevel reports whether reaching level raises the base attack bonus.
func (c *ClassDef) BABAtLevel(level int) bool {
	if c.BABEveryLevel {
		return true
	}
	return c.BABOddLevels && level%2 == 1
}

// ClassesFile represents the structure of classes.json.
type ClassesFile struct {
	Classes []ClassDef `json:"classes"`
}

// LoadClasses loads class definitions from the embedded classes.json file.
func LoadClasses() ([]ClassDef, error) {
	file, err := Load[ClassesFile]("classes.json")
	if err != nil {
		return nil, err
	}
	return file.Classes, nil
}

// ClassRegistry provides lookup of class definitions by ID.
type ClassRegistry struct {
	classes []ClassDef
	byID    map[string]*ClassDef
}

// NewClassRegistry creates a registry from a slice of class definitions.
func NewClassRegistry(classes []ClassDef) *ClassRegistry {
	r := &ClassRegistry{classes: classes, byID: make(map[string]*ClassDef, len(classes))}
	for i := range r.classes {
		r.byID[r.classes[i].ID] = &r.classes[i]
	}
	return r
}

// MustLoadClassRegistry loads the embedded class data, panicking on error.
func MustLoadClassRegistry() *ClassRegistry {
	return NewClassRegistry(MustLoad[ClassesFile]("classes.json").Classes)
}

// GetByID returns the class with the given ID, or nil.
func (r *ClassRegistry) GetByID(id string) *ClassDef {
	return r.byID[id]
}

// Count returns the number of registered classes.
func (r *ClassRegistry) Count() int {
	return len(r.classes)
}

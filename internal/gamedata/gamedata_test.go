package gamedata

import (
	"math/rand"
	"testing"
)

func TestLoadEnemies(t *testing.T) {
	enemies, err := LoadEnemies()
	if err != nil {
		t.Fatalf("Failed to load enemies: %v", err)
	}

	if len(enemies) != 5 {
		t.Errorf("Expected 5 enemies, got %d", len(enemies))
	}

	// Verify expected enemies exist
	expectedIDs := map[string]bool{"rat": false, "goblin": false, "orc": false, "skeleton": false, "troll": false}
	for _, e := range enemies {
		if _, ok := expectedIDs[e.ID]; ok {
			expectedIDs[e.ID] = true
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected enemy %q not found", id)
		}
	}
}

func TestEnemyRegistry(t *testing.T) {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 5 {
		t.Errorf("Expected 5 enemy types, got %d", registry.Count())
	}

	goblin := registry.GetByID("goblin")
	if goblin == nil {
		t.Error("Goblin not found by ID")
	} else if goblin.Name != "Goblin" {
		t.Errorf("Expected name 'Goblin', got %q", goblin.Name)
	}

	// Weighted spawning is deterministic with the same seed
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 10; i++ {
		a := registry.SpawnRandom(rng1, 3).ID
		b := registry.SpawnRandom(rng2, 3).ID
		if a != b {
			t.Errorf("Spawn %d mismatch: %s != %s", i, a, b)
		}
	}
}

func TestSpawnRandomRespectsDepth(t *testing.T) {
	registry := MustLoadEnemyRegistry()
	rng := rand.New(rand.NewSource(99))

	// Depth 1 only offers rats and goblins.
	for i := 0; i < 500; i++ {
		def := registry.SpawnRandom(rng, 1)
		if def == nil {
			t.Fatal("depth 1 should always have an eligible spawn")
		}
		if def.MinLevel > 1 {
			t.Fatalf("spawned %q (minLevel %d) on depth 1", def.ID, def.MinLevel)
		}
	}

	// Depth 4 should eventually produce a troll.
	sawTroll := false
	for i := 0; i < 2000; i++ {
		if registry.SpawnRandom(rng, 4).ID == "troll" {
			sawTroll = true
			break
		}
	}
	if !sawTroll {
		t.Error("never spawned a troll at depth 4")
	}

	// Nothing is eligible at depth 0 (town).
	if def := registry.SpawnRandom(rng, 0); def != nil {
		t.Errorf("expected no spawn at depth 0, got %q", def.ID)
	}
}

func TestClassRegistry(t *testing.T) {
	registry := MustLoadClassRegistry()

	if registry.Count() != 2 {
		t.Errorf("Expected 2 classes, got %d", registry.Count())
	}

	fighter := registry.GetByID("fighter")
	if fighter == nil {
		t.Fatal("fighter not found")
	}
	if fighter.HitDie != 10 {
		t.Errorf("Expected fighter hit die 10, got %d", fighter.HitDie)
	}
	if len(fighter.StartSpells) != 0 {
		t.Error("fighter should start with no spells")
	}

	wizard := registry.GetByID("wizard")
	if wizard == nil {
		t.Fatal("wizard not found")
	}
	if _, ok := wizard.StartSpells["Magic Missile"]; !ok {
		t.Error("wizard should start with Magic Missile")
	}

	if registry.GetByID("bard") != nil {
		t.Error("unknown class should return nil")
	}
}

func TestClassProgression(t *testing.T) {
	registry := MustLoadClassRegistry()
	fighter := registry.GetByID("fighter")
	wizard := registry.GetByID("wizard")

	// Fighter: BAB and a feat at every level.
	for level := 2; level <= 6; level++ {
		if !fighter.BABAtLevel(level) {
			t.Errorf("fighter should gain BAB at level %d", level)
		}
		if fighter.FeatsAtLevel(level) != 1 {
			t.Errorf("fighter should gain 1 feat at level %d", level)
		}
	}

	// Wizard: BAB and feats on odd levels, plus a bonus feat every fifth.
	if wizard.BABAtLevel(2) {
		t.Error("wizard should not gain BAB at level 2")
	}
	if !wizard.BABAtLevel(3) {
		t.Error("wizard should gain BAB at level 3")
	}
	if wizard.FeatsAtLevel(4) != 0 {
		t.Errorf("wizard feats at level 4: got %d, want 0", wizard.FeatsAtLevel(4))
	}
	// Level 5 is both odd and a fifth: one odd-level feat plus the bonus.
	if wizard.FeatsAtLevel(5) != 2 {
		t.Errorf("wizard feats at level 5: got %d, want 2", wizard.FeatsAtLevel(5))
	}
}

func TestEnchantCost(t *testing.T) {
	tests := []struct {
		opt  EnchantOption
		want int
	}{
		// square: bonus^2 * unit
		{EnchantOption{Stat: "Weapon", Bonus: 1, Formula: FormulaSquare, UnitPrice: 2000}, 2000},
		{EnchantOption{Stat: "Weapon", Bonus: 2, Formula: FormulaSquare, UnitPrice: 2000}, 8000},
		{EnchantOption{Stat: "Weapon", Bonus: 3, Formula: FormulaSquare, UnitPrice: 2000}, 18000},
		// square+2: (bonus+2)^2 * unit
		{EnchantOption{Stat: "Animated Shield", Bonus: 2, Formula: FormulaSquarePlus2, UnitPrice: 1000}, 16000},
	}
	for _, tt := range tests {
		got, ok := tt.opt.Cost()
		if !ok {
			t.Errorf("%s +%d: cost not computable", tt.opt.Stat, tt.opt.Bonus)
			continue
		}
		if got != tt.want {
			t.Errorf("%s +%d: cost %d, want %d", tt.opt.Stat, tt.opt.Bonus, got, tt.want)
		}
	}

	if _, ok := (EnchantOption{Formula: "cubic"}).Cost(); ok {
		t.Error("unknown formula should not price")
	}
}

func TestEnchantDiscount(t *testing.T) {
	opt := EnchantOption{Stat: "Weapon", Bonus: 2, Formula: FormulaSquare, UnitPrice: 2000}

	// Unenchanted items earn no refund.
	if d := opt.DiscountAt(0); d != 0 {
		t.Errorf("DiscountAt(0) = %d, want 0", d)
	}
	// +1 -> +2 refunds the +1 price: 1^2 * 2000.
	if d := opt.DiscountAt(1); d != 2000 {
		t.Errorf("DiscountAt(1) = %d, want 2000", d)
	}

	plus2 := EnchantOption{Stat: "Animated Shield", Bonus: 2, Formula: FormulaSquarePlus2, UnitPrice: 1000}
	if d := plus2.DiscountAt(0); d != 0 {
		t.Errorf("square+2 DiscountAt(0) = %d, want 0", d)
	}
	// (1+2)^2 * 1000
	if d := plus2.DiscountAt(1); d != 9000 {
		t.Errorf("square+2 DiscountAt(1) = %d, want 9000", d)
	}
}

func TestLoadEnchants(t *testing.T) {
	slots := MustLoadEnchants()
	for _, slot := range []string{"main_hand", "ranged", "body", "off_hand"} {
		if len(slots[slot]) == 0 {
			t.Errorf("no enchant options for slot %q", slot)
		}
	}
}

func TestFeatSelectable(t *testing.T) {
	registry := MustLoadFeatRegistry()

	known := map[string]int{"Dodge": 1, "Toughness": 2}
	out := registry.Selectable(known, nil)

	for _, f := range out {
		if f.Name == "Dodge" {
			t.Error("one-shot feat already known should not be selectable")
		}
	}
	foundToughness := false
	for _, f := range out {
		if f.Name == "Toughness" {
			foundToughness = true
		}
	}
	if !foundToughness {
		t.Error("repeatable feat should stay selectable")
	}

	// Sorted by name for stable letter assignment.
	for i := 1; i < len(out); i++ {
		if out[i-1].Name > out[i].Name {
			t.Fatalf("selectable feats not sorted: %q before %q", out[i-1].Name, out[i].Name)
		}
	}

	// A meets filter removes feats with unmet prerequisites.
	none := registry.Selectable(nil, func(*FeatDef) bool { return false })
	if len(none) != 0 {
		t.Errorf("expected no feats with an always-false filter, got %d", len(none))
	}
}

func TestItemRegistry(t *testing.T) {
	registry := MustLoadItemRegistry()

	potion := registry.GetByID("healing_potion")
	if potion == nil {
		t.Fatal("healing_potion not found")
	}
	if potion.Consumable == nil || potion.Consumable.Effect != "heal" {
		t.Error("healing_potion should be a heal consumable")
	}
	if !potion.CanStack {
		t.Error("healing_potion should stack")
	}

	sword := registry.GetByID("long_sword")
	if sword == nil {
		t.Fatal("long_sword not found")
	}
	if sword.Equippable == nil || sword.Equippable.Slot != "main_hand" {
		t.Error("long_sword should equip in main_hand")
	}

	stock := registry.ShopStock()
	if len(stock) == 0 {
		t.Fatal("shop stock is empty")
	}
	for _, def := range stock {
		if def.GoldValue <= 0 {
			t.Errorf("shop item %q has no price", def.ID)
		}
	}
}

func TestSpellRegistry(t *testing.T) {
	registry := MustLoadSpellRegistry()

	mm := registry.GetByName("Magic Missile")
	if mm == nil {
		t.Fatal("Magic Missile not found")
	}
	if mm.Kind != SpellRanged {
		t.Errorf("Magic Missile kind = %q, want ranged", mm.Kind)
	}

	for _, name := range []string{"Mage Armor", "Shield", "Alter Self"} {
		def := registry.GetByName(name)
		if def == nil {
			t.Fatalf("%s not found", name)
		}
		if def.BuffStat != "ac" {
			t.Errorf("%s buffStat = %q, want ac", name, def.BuffStat)
		}
	}
	if def := registry.GetByName("Magic Weapon"); def == nil || def.BuffStat != "hit" {
		t.Error("Magic Weapon should buff to-hit")
	}

	// Every summon spell must reference a real enemy.
	enemies := MustLoadEnemyRegistry()
	spells, _ := LoadSpells()
	for _, s := range spells {
		if s.Kind == SpellSummon && enemies.GetByID(s.SummonID) == nil {
			t.Errorf("summon spell %q references unknown enemy %q", s.Name, s.SummonID)
		}
	}
}

func TestSortedNames(t *testing.T) {
	known := map[string]int{"Shield": 2, "Magic Missile": 2, "Cure Light Wounds": 3}
	names := SortedNames(known)
	want := []string{"Cure Light Wounds", "Magic Missile", "Shield"}
	if len(names) != len(want) {
		t.Fatalf("got %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#FFFFFF", true},
		{"", false},
		{"#GGGGGG", false},
		{"#FFF", false},
	}
	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) unexpected error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) expected error", tt.input)
		}
	}
}

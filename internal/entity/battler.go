package entity

import (
	"sort"

	"github.com/google/uuid"

	"github.com/samdwyer/gravedelve/internal/gamedata"
)

func newID() uuid.UUID { return uuid.New() }

// Actor is the payload of a KindActor entity.
type Actor struct {
	Battler   Battler
	Level     Level
	Inventory *Inventory
	Equipment Equipment
	AI        AIKind
	// RangedMode selects which weapon set bump-attacks and the character
	// sheet favor; toggled by the exchange-weapons key.
	RangedMode bool
}

// Battler holds combat and resource state for an actor.
type Battler struct {
	HP, MaxHP     int
	Mana, MaxMana int

	Strength, Dexterity, Constitution int
	Intelligence, Wisdom, Charisma    int

	BAB  int // Base attack bonus
	AC   int // Base armor class before equipment and buffs
	Gold int

	ClassID string
	Feats   map[string]int  // Feat name -> times taken
	Buffs   map[string]Buff // Buff name -> active effect
	Spells  map[string]int  // Spell name -> mana cost

	FeatPoints int
	StatPoints int

	UnarmedNumDice int
	UnarmedDieSize int

	XPValue int // XP awarded to the killer
}

// Buff is an active timed effect on a battler. Expires is the absolute
// turn number the effect ends on.
type Buff struct {
	Expires  int
	ACBonus  int
	HitBonus int
}

// BuffAC returns the total armor class adjustment from active buffs.
func (b *Battler) BuffAC() int {
	total := 0
	for _, buff := range b.Buffs {
		total += buff.ACBonus
	}
	return total
}

// BuffHit returns the total attack adjustment from active buffs.
func (b *Battler) BuffHit() int {
	total := 0
	for _, buff := range b.Buffs {
		total += buff.HitBonus
	}
	return total
}

// ExpireBuffs removes buffs whose expiry turn has passed and returns the
// names removed, sorted for stable messaging.
func (b *Battler) ExpireBuffs(turn int) []string {
	var expired []string
	for name, buff := range b.Buffs {
		if turn >= buff.Expires {
			expired = append(expired, name)
		}
	}
	sort.Strings(expired)
	for _, name := range expired {
		delete(b.Buffs, name)
	}
	return expired
}

// StatNames lists the six ability scores in display order.
var StatNames = [6]string{"Str", "Dex", "Con", "Int", "Wis", "Cha"}

// Stat returns the named ability score.
func (b *Battler) Stat(name string) int {
	switch name {
	case "Str":
		return b.Strength
	case "Dex":
		return b.Dexterity
	case "Con":
		return b.Constitution
	case "Int":
		return b.Intelligence
	case "Wis":
		return b.Wisdom
	case "Cha":
		return b.Charisma
	default:
		return 0
	}
}

// AddStat raises the named ability score by one.
func (b *Battler) AddStat(name string) {
	switch name {
	case "Str":
		b.Strength++
	case "Dex":
		b.Dexterity++
	case "Con":
		b.Constitution++
	case "Int":
		b.Intelligence++
	case "Wis":
		b.Wisdom++
	case "Cha":
		b.Charisma++
	}
}

func mod(score int) int {
	return (score - 10) / 2
}

// Level tracks experience progress.
type Level struct {
	Current int
	XP      int
}

// Threshold returns the XP needed to reach the next level.
func (l *Level) Threshold() int {
	return 200 + (l.Current-1)*150
}

// CanLevel reports whether accumulated XP meets the threshold.
func (l *Level) CanLevel() bool {
	return l.XP >= l.Threshold()
}

// Worn returns the worn equipment entry for an item, or -1 if not worn.
func (a *Actor) Worn(item *Entity) Slot {
	return a.Equipment.SlotOf(item)
}

// ArmorClass derives the actor's current armor class from base AC,
// dexterity, worn gear and active enchant bonuses.
func (a *Actor) ArmorClass() int {
	ac := a.Battler.AC
	if ac == 0 {
		ac = 10
	}
	ac += mod(a.Battler.Dexterity)
	for _, worn := range a.Equipment.Slots {
		if worn == nil || worn.Item == nil || worn.Item.Equippable == nil {
			continue
		}
		q := worn.Item.Equippable
		ac += q.ArmorAC
		ac += q.BonusFor("Armor") + q.BonusFor("Shield") +
			q.BonusFor("Ring of Protection") + q.BonusFor("Amulet of Natural Armor")
	}
	ac += a.Battler.BuffAC()
	if a.Battler.Feats["Dodge"] > 0 {
		ac++
	}
	return ac
}

// MeleeProfile returns the actor's melee to-hit bonus and damage dice,
// from the main-hand weapon or unarmed dice.
func (a *Actor) MeleeProfile() (toHit, numDice, dieSize, dmgBonus int) {
	toHit = a.Battler.BAB + mod(a.effectiveStrength()) + a.Battler.BuffHit() +
		a.Battler.Feats["Weapon Focus"]
	dmgBonus = mod(a.effectiveStrength()) + a.Battler.BuffHit()
	numDice, dieSize = a.Battler.UnarmedNumDice, a.Battler.UnarmedDieSize
	if numDice == 0 {
		numDice, dieSize = 1, 3
	}
	if weapon := a.Equipment.Slots[SlotMainHand]; weapon != nil && weapon.Item.Equippable != nil {
		q := weapon.Item.Equippable
		if q.NumDice > 0 {
			numDice, dieSize = q.NumDice, q.DieSize
		}
		toHit += q.BonusFor("Weapon")
		dmgBonus += q.BonusFor("Weapon")
	}
	return toHit, numDice, dieSize, dmgBonus
}

// RangedProfile returns the ranged to-hit bonus and damage dice, or
// ok=false when no ranged weapon is equipped.
func (a *Actor) RangedProfile() (toHit, numDice, dieSize, dmgBonus int, ok bool) {
	weapon := a.Equipment.Slots[SlotRanged]
	if weapon == nil || weapon.Item.Equippable == nil || weapon.Item.Equippable.NumDice == 0 {
		return 0, 0, 0, 0, false
	}
	q := weapon.Item.Equippable
	toHit = a.Battler.BAB + mod(a.effectiveDexterity()) + q.BonusFor("Ranged Weapon")
	return toHit, q.NumDice, q.DieSize, q.BonusFor("Ranged Weapon"), true
}

func (a *Actor) effectiveStrength() int {
	s := a.Battler.Strength
	for _, worn := range a.Equipment.Slots {
		if worn != nil && worn.Item.Equippable != nil {
			s += worn.Item.Equippable.BonusFor("Str")
		}
	}
	return s
}

func (a *Actor) effectiveDexterity() int {
	d := a.Battler.Dexterity
	for _, worn := range a.Equipment.Slots {
		if worn != nil && worn.Item.Equippable != nil {
			d += worn.Item.Equippable.BonusFor("Dex")
		}
	}
	return d
}

// ApplyClass initializes a fresh level-1 battler from a class definition.
func (a *Actor) ApplyClass(def *gamedata.ClassDef) {
	b := &a.Battler
	b.ClassID = def.ID
	hp := def.HitDie + mod(b.Constitution)
	if hp < 1 {
		hp = 1
	}
	b.MaxHP, b.HP = hp, hp
	if def.ManaDie > 0 {
		mana := def.ManaDie + mod(b.Intelligence)
		if mana < 0 {
			mana = 0
		}
		b.MaxMana, b.Mana = mana, mana
	}
	if def.BABAtLevel(1) {
		b.BAB = 1
	}
	b.Spells = map[string]int{}
	for name, cost := range def.StartSpells {
		b.Spells[name] = cost
	}
	if b.Feats == nil {
		b.Feats = map[string]int{}
	}
	if b.Buffs == nil {
		b.Buffs = map[string]Buff{}
	}
	a.Level = Level{Current: 1}
}

// LevelUp grants one level per the class policy: full restore, XP debited
// by the threshold (surplus carries forward), feat and stat points per
// class and level parity, HP/mana maximum growth.
func (a *Actor) LevelUp(def *gamedata.ClassDef) {
	b := &a.Battler
	a.Level.XP -= a.Level.Threshold()
	a.Level.Current++

	gain := def.HitDie/2 + 1 + mod(b.Constitution)
	if gain < 1 {
		gain = 1
	}
	b.MaxHP += gain
	if def.ManaDie > 0 {
		mg := def.ManaDie/2 + 1 + mod(b.Intelligence)
		if mg < 1 {
			mg = 1
		}
		b.MaxMana += mg
	}
	if def.BABAtLevel(a.Level.Current) {
		b.BAB++
	}
	b.FeatPoints += def.FeatsAtLevel(a.Level.Current)
	if a.Level.Current%4 == 0 {
		b.StatPoints++
	}
	b.HP = b.MaxHP
	b.Mana = b.MaxMana
}

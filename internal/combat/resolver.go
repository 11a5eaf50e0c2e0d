// Package combat resolves attack and damage rolls.
package combat

import (
	"fmt"
	"math/rand"
)

// AttackProfile describes one attack: who swings, with what bonus and
// which damage dice. Actions build profiles from actor equipment.
type AttackProfile struct {
	Name        string
	ToHit       int
	NumDice     int
	DieSize     int
	DamageBonus int
}

// Defender is the receiving side of an attack.
type Defender interface {
	DefenderName() string
	DefenderAC() int
	ApplyDamage(amount int)
}

// Result is the outcome of one resolved attack.
type Result struct {
	Hit      bool
	Critical bool
	Damage   int
	Message  string
}

// Resolver rolls attacks with a seedable rng.
type Resolver struct {
	rng *rand.Rand
}

// NewResolver creates a resolver using the given rng.
func NewResolver(rng *rand.Rand) *Resolver {
	return &Resolver{rng: rng}
}

// Roll returns the sum of num dice of the given size.
func (r *Resolver) Roll(num, size int) int {
	total := 0
	for i := 0; i < num; i++ {
		total += 1 + r.rng.Intn(size)
	}
	return total
}

// Attack resolves one attack roll: d20 + toHit vs AC, natural 20 always
// hits and doubles the damage dice, natural 1 always misses. Damage is
// applied to the defender on a hit.
func (r *Resolver) Attack(atk AttackProfile, def Defender) Result {
	d20 := 1 + r.rng.Intn(20)
	res := Result{}
	switch {
	case d20 == 1:
		res.Message = fmt.Sprintf("%s misses %s.", atk.Name, def.DefenderName())
		return res
	case d20 == 20:
		res.Hit, res.Critical = true, true
	case d20+atk.ToHit >= def.DefenderAC():
		res.Hit = true
	default:
		res.Message = fmt.Sprintf("%s misses %s.", atk.Name, def.DefenderName())
		return res
	}

	dice := atk.NumDice
	if res.Critical {
		dice *= 2
	}
	dmg := r.Roll(dice, atk.DieSize) + atk.DamageBonus
	if dmg < 1 {
		dmg = 1
	}
	def.ApplyDamage(dmg)
	res.Damage = dmg
	if res.Critical {
		res.Message = fmt.Sprintf("%s critically hits %s for %d damage!", atk.Name, def.DefenderName(), dmg)
	} else {
		res.Message = fmt.Sprintf("%s hits %s for %d damage.", atk.Name, def.DefenderName(), dmg)
	}
	return res
}

package combat

import (
	"math/rand"
	"testing"
)

// stubDefender is a test implementation of the Defender interface.
type stubDefender struct {
	name  string
	ac    int
	taken int
}

func (d *stubDefender) DefenderName() string   { return d.name }
func (d *stubDefender) DefenderAC() int        { return d.ac }
func (d *stubDefender) ApplyDamage(amount int) { d.taken += amount }

func TestRollBounds(t *testing.T) {
	r := NewResolver(rand.New(rand.NewSource(1)))
	for i := 0; i < 1000; i++ {
		got := r.Roll(2, 6)
		if got < 2 || got > 12 {
			t.Fatalf("Roll(2, 6) = %d, want 2..12", got)
		}
	}
}

func TestAttackAlwaysHitsTrivialAC(t *testing.T) {
	r := NewResolver(rand.New(rand.NewSource(7)))
	atk := AttackProfile{Name: "Sword", ToHit: 30, NumDice: 1, DieSize: 8, DamageBonus: 2}

	// AC 0 with +30 to hit: only a natural 1 can miss.
	hits, misses := 0, 0
	for i := 0; i < 2000; i++ {
		def := &stubDefender{name: "Dummy", ac: 0}
		res := r.Attack(atk, def)
		if res.Hit {
			hits++
			if res.Damage != def.taken {
				t.Fatalf("result damage %d but defender took %d", res.Damage, def.taken)
			}
			// 1d8+2 is 3..10, doubled dice on a crit is 4..18.
			if res.Damage < 3 || res.Damage > 18 {
				t.Fatalf("damage %d out of range for 1d8+2", res.Damage)
			}
		} else {
			misses++
			if def.taken != 0 {
				t.Fatal("missed attack applied damage")
			}
		}
	}
	// Natural 1 rate is 5%; allow a wide band.
	if misses == 0 {
		t.Error("expected some natural-1 misses over 2000 attacks")
	}
	if misses > 250 {
		t.Errorf("too many misses (%d) for an auto-hit profile", misses)
	}
	if hits == 0 {
		t.Error("expected hits")
	}
}

func TestAttackNeverHitsImpossibleAC(t *testing.T) {
	r := NewResolver(rand.New(rand.NewSource(11)))
	atk := AttackProfile{Name: "Club", ToHit: 0, NumDice: 1, DieSize: 4}

	// AC 100: only a natural 20 can hit, and it is always a critical.
	for i := 0; i < 2000; i++ {
		def := &stubDefender{name: "Wall", ac: 100}
		res := r.Attack(atk, def)
		if res.Hit && !res.Critical {
			t.Fatal("non-critical hit against unreachable AC")
		}
	}
}

func TestAttackMinimumDamage(t *testing.T) {
	r := NewResolver(rand.New(rand.NewSource(3)))
	// 1d4-10 would be negative; damage floors at 1.
	atk := AttackProfile{Name: "Twig", ToHit: 30, NumDice: 1, DieSize: 4, DamageBonus: -10}

	for i := 0; i < 200; i++ {
		def := &stubDefender{name: "Rat", ac: 0}
		res := r.Attack(atk, def)
		if res.Hit && res.Damage < 1 {
			t.Fatalf("hit dealt %d damage, want at least 1", res.Damage)
		}
	}
}

func TestAttackMessageMentionsBothSides(t *testing.T) {
	r := NewResolver(rand.New(rand.NewSource(5)))
	atk := AttackProfile{Name: "Orc", ToHit: 5, NumDice: 1, DieSize: 6}
	def := &stubDefender{name: "Rogue", ac: 10}

	res := r.Attack(atk, def)
	if res.Message == "" {
		t.Fatal("expected a combat message")
	}
}

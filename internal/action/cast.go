package action

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gravedelve/internal/engine"
	"github.com/samdwyer/gravedelve/internal/entity"
	"github.com/samdwyer/gravedelve/internal/gamedata"
)

// Cast casts a spell the player knows. Target is required for ranged and
// touch spells; TX, TY is the chosen tile for summon and area spells.
type Cast struct {
	Engine *engine.Engine
	Spell  *gamedata.SpellDef
	Target *entity.Entity
	TX, TY int
}

func (a *Cast) Perform() error {
	e := a.Engine
	b := &e.Player.Actor.Battler
	if _, known := b.Spells[a.Spell.Name]; !known {
		return engine.Impossiblef("You do not know that spell.")
	}
	if b.Mana < a.Spell.Mana {
		return engine.Impossiblef("You don't have enough mana.")
	}

	var err error
	switch a.Spell.Kind {
	case gamedata.SpellSelfBuff:
		err = a.castBuff()
	case gamedata.SpellSelfHeal:
		err = a.castHeal()
	case gamedata.SpellRanged:
		err = a.castRanged()
	case gamedata.SpellTouch:
		err = a.castTouch()
	case gamedata.SpellArea:
		err = a.castArea()
	case gamedata.SpellSummon:
		err = a.castSummon()
	default:
		err = engine.Impossiblef("Nothing happens.")
	}
	if err != nil {
		return err
	}
	b.Mana -= a.Spell.Mana
	return nil
}

func (a *Cast) castBuff() error {
	e := a.Engine
	buff := entity.Buff{Expires: e.Turn + a.Spell.Duration}
	if a.Spell.BuffStat == "hit" {
		buff.HitBonus = a.Spell.Power
	} else {
		buff.ACBonus = a.Spell.Power
	}
	e.Player.Actor.Battler.Buffs[a.Spell.Name] = buff
	e.Log.Add("You cast "+a.Spell.Name+".", tcell.ColorAqua)
	return nil
}

func (a *Cast) castHeal() error {
	e := a.Engine
	b := &e.Player.Actor.Battler
	if b.HP >= b.MaxHP {
		return engine.Impossiblef("Your health is already full.")
	}
	healed := a.Spell.Power
	if b.HP+healed > b.MaxHP {
		healed = b.MaxHP - b.HP
	}
	b.HP += healed
	e.Log.Add("You cast "+a.Spell.Name+" and recover "+
		"some of your wounds.", tcell.ColorGreen)
	return nil
}

func (a *Cast) castRanged() error {
	e := a.Engine
	if a.Target == nil || !a.Target.IsAlive() {
		return engine.Impossiblef("Nothing to target.")
	}
	if !e.Map.Visible[a.Target.Y][a.Target.X] {
		return engine.Impossiblef("You cannot see your target.")
	}
	dmg := e.Resolver.Roll(a.Spell.Power, a.Spell.DieSize)
	if a.Spell.Name == "Ray of Enfeeblement" {
		// Saps strength rather than flesh.
		a.Target.Actor.Battler.Buffs[a.Spell.Name] = entity.Buff{
			Expires:  e.Turn + 30,
			HitBonus: -(dmg + 1) / 2,
		}
		e.Log.Addf("A sickly ray strikes the %s, weakening it.", a.Target.Name)
	} else {
		a.Target.Actor.Battler.HP -= dmg
		e.Log.Addf("The %s hits the %s for %d damage.", a.Spell.Name, a.Target.Name, dmg)
		if !a.Target.IsAlive() {
			e.HandleDeath(a.Target, e.Player)
		}
	}
	e.LastTarget = a.Target
	return nil
}

func (a *Cast) castTouch() error {
	e := a.Engine
	if a.Target == nil || !a.Target.IsAlive() {
		return engine.Impossiblef("Nothing to target.")
	}
	dx, dy := a.Target.X-e.Player.X, a.Target.Y-e.Player.Y
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
		return engine.Impossiblef("That is out of reach.")
	}
	dmg := e.Resolver.Roll(a.Spell.Power, a.Spell.DieSize)
	a.Target.Actor.Battler.HP -= dmg
	e.Log.Addf("Your %s shocks the %s for %d damage!", a.Spell.Name, a.Target.Name, dmg)
	if !a.Target.IsAlive() {
		e.HandleDeath(a.Target, e.Player)
	}
	e.LastTarget = a.Target
	return nil
}

func (a *Cast) castArea() error {
	e := a.Engine
	if !e.Map.InBounds(a.TX, a.TY) || !e.Map.Visible[a.TY][a.TX] {
		return engine.Impossiblef("You cannot see that spot.")
	}
	e.Log.Addf("The %s explodes, burning everything within %d tiles!",
		a.Spell.Name, a.Spell.Radius)
	actors := e.Map.Actors()
	snapshot := make([]*entity.Entity, len(actors))
	copy(snapshot, actors)
	for _, actor := range snapshot {
		if !actor.IsAlive() || chebyshev(a.TX, a.TY, actor.X, actor.Y) > a.Spell.Radius {
			continue
		}
		dmg := e.Resolver.Roll(a.Spell.Power, a.Spell.DieSize)
		actor.Actor.Battler.HP -= dmg
		e.Log.Addf("The %s gets burned for %d damage.", actor.Name, dmg)
		if !actor.IsAlive() {
			e.HandleDeath(actor, e.Player)
		}
	}
	return nil
}

// chebyshev is the grid distance blast radii are measured in.
func chebyshev(x1, y1, x2, y2 int) int {
	dx, dy := x2-x1, y2-y1
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

func (a *Cast) castSummon() error {
	e := a.Engine
	def := e.Enemies.GetByID(a.Spell.SummonID)
	if def == nil {
		return engine.Impossiblef("Nothing answers your call.")
	}
	x, y := a.TX, a.TY
	if !e.Map.InBounds(x, y) || !e.Map.Walkable(x, y) || e.Map.BlockingEntityAt(x, y) != nil {
		return engine.Impossiblef("There is no room for a summon there.")
	}
	ally := entity.NewEnemy(def)
	ally.Actor.AI = entity.AIAlly
	ally.Name = "summoned " + ally.Name
	ally.Place(x, y)
	e.Map.Add(ally)
	e.Log.Add("A "+ally.Name+" appears!", tcell.ColorAqua)
	return nil
}

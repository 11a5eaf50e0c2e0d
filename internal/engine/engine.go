// Package engine owns the session state and the turn cycle: the current
// map, the player, the message log, and the sweep that gives every other
// actor a turn after each successful player action.
package engine

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gravedelve/internal/combat"
	"github.com/samdwyer/gravedelve/internal/config"
	"github.com/samdwyer/gravedelve/internal/entity"
	"github.com/samdwyer/gravedelve/internal/gamedata"
	"github.com/samdwyer/gravedelve/internal/telemetry"
	"github.com/samdwyer/gravedelve/internal/world"
)

// Action is a single attempt at a game action by the player. Perform
// returns nil on success (a turn passes), an Impossible error when the
// action cannot happen (reported, no turn), or another error for defects.
type Action interface {
	Perform() error
}

// Engine holds the live game session.
type Engine struct {
	Config   config.Config
	RNG      *rand.Rand
	Resolver *combat.Resolver

	Map    *world.GameMap
	Player *entity.Entity
	Log    *MessageLog
	Turn   int

	Enemies  *gamedata.EnemyRegistry
	Items    *gamedata.ItemRegistry
	Classes  *gamedata.ClassRegistry
	Feats    *gamedata.FeatRegistry
	Spells   *gamedata.SpellRegistry
	Enchants map[string][]gamedata.EnchantOption

	// Scratch state shared between the engine and the input handlers.
	LastTarget     *entity.Entity
	LastDX, LastDY int
	NumPressed     int
	EnchantTarget  *entity.Entity
	MouseX, MouseY int
	// PortalDepth is the dungeon level the last town portal left from,
	// so a portal read in town leads back down.
	PortalDepth int

	ctx    context.Context
	logger *log.Logger
}

// New creates an engine with all game data loaded. A zero seed derives
// one from the clock.
func New(ctx context.Context, cfg config.Config) *Engine {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	e := &Engine{
		Config:   cfg,
		RNG:      rng,
		Resolver: combat.NewResolver(rng),
		Log:      NewMessageLog(500),
		Enemies:  gamedata.MustLoadEnemyRegistry(),
		Items:    gamedata.MustLoadItemRegistry(),
		Classes:  gamedata.MustLoadClassRegistry(),
		Feats:    gamedata.MustLoadFeatRegistry(),
		Spells:   gamedata.MustLoadSpellRegistry(),
		Enchants: gamedata.MustLoadEnchants(),
		ctx:      ctx,
		logger:   log.WithPrefix("engine"),
	}
	e.logger.Debug("engine created", "seed", seed)
	return e
}

// Context returns the session context used for tracing.
func (e *Engine) Context() context.Context {
	return e.ctx
}

// NewGame creates the player with the given class and drops them in the
// town, then opens the log with a welcome line.
func (e *Engine) NewGame(playerName, classID string) {
	def := e.Classes.GetByID(classID)
	if def == nil {
		def = e.Classes.GetByID("fighter")
	}
	player := entity.NewActor(playerName, '@', tcell.ColorWhite, entity.AINone)
	player.Actor.Inventory = entity.NewInventory(e.Config.Player.InventoryCapacity)
	b := &player.Actor.Battler
	switch def.ID {
	case "wizard":
		b.Strength, b.Dexterity, b.Constitution = 10, 14, 14
		b.Intelligence, b.Wisdom, b.Charisma = 16, 12, 10
	default:
		b.Strength, b.Dexterity, b.Constitution = 16, 14, 14
		b.Intelligence, b.Wisdom, b.Charisma = 10, 12, 10
	}
	b.Gold = 100
	player.Actor.ApplyClass(def)
	e.Player = player

	e.Map = world.GenerateTown(e.ctx, e.genParams(), e.RNG, e.Items, player)
	e.UpdateFOV()
	e.Log.Add("Hello and welcome, adventurer, to yet another dungeon!", tcell.ColorAqua)
}

// ChangeFloor moves the player delta levels (+1 down, -1 up), generating
// the destination floor. Level 0 is the town.
func (e *Engine) ChangeFloor(delta int) {
	level := 0
	if e.Map != nil {
		level = e.Map.Level + delta
	}
	if level < 0 {
		level = 0
	}
	e.LastTarget = nil
	if level == 0 {
		e.Map = world.GenerateTown(e.ctx, e.genParams(), e.RNG, e.Items, e.Player)
	} else {
		e.Map = world.GenerateDungeon(e.ctx, e.genParams(), level, delta, e.RNG, e.Enemies, e.Items, e.Player)
	}
	e.UpdateFOV()
}

func (e *Engine) genParams() world.Params {
	m := e.Config.Map
	p := world.DefaultParams()
	if m.Width > 0 {
		p.Width, p.Height = m.Width, m.Height
		p.MinRoomSize, p.MaxRoomSize, p.MinLeafSize = m.MinRoomSize, m.MaxRoomSize, m.MinLeafSize
		p.MonstersPerRoom, p.ItemsPerRoom = m.MonstersPerRoom, m.ItemsPerRoom
	}
	return p
}

// UpdateFOV recomputes visibility around the player. Explored tiles only
// ever accumulate.
func (e *Engine) UpdateFOV() {
	radius := e.Config.Vision.Radius
	if radius <= 0 {
		radius = 12
	}
	e.Map.ComputeFOV(e.Player.X, e.Player.Y, radius)
}

// ResolvePlayerAction performs one player action and, when it succeeds,
// runs everyone else's turn and advances the turn counter. Returns true
// when a turn passed.
func (e *Engine) ResolvePlayerAction(act Action) bool {
	tracer := telemetry.Tracer("engine")
	_, span := tracer.Start(e.ctx, "turn.resolve")
	defer span.End()

	if err := act.Perform(); err != nil {
		if reason, ok := IsImpossible(err); ok {
			e.Log.Add(reason, tcell.ColorGray)
			span.SetAttributes(attribute.String("turn.impossible", reason))
			return false
		}
		// Defects are logged and swallowed so a bad action cannot kill
		// the session, but the player still hears about them.
		e.logger.Error("action failed", "err", err)
		e.Log.Add("Something went badly wrong, but you press on.", tcell.ColorRed)
		span.RecordError(err)
		return false
	}

	e.handleEnemyTurns()
	e.endTurn()
	span.SetAttributes(attribute.Int("turn.number", e.Turn))
	return true
}

// endTurn advances the clock and expires timed effects.
func (e *Engine) endTurn() {
	e.Turn++
	for _, actor := range e.Map.Actors() {
		if !actor.IsAlive() {
			continue
		}
		for _, name := range actor.Actor.Battler.ExpireBuffs(e.Turn) {
			if actor == e.Player {
				e.Log.Addf("%s wears off.", name)
			}
		}
	}
	e.UpdateFOV()
}

// handleEnemyTurns walks a snapshot of the map's actors in insertion
// order and runs each one's behavior. Failures never propagate: an actor
// whose turn is impossible simply does nothing this turn.
func (e *Engine) handleEnemyTurns() {
	actors := e.Map.Actors()
	snapshot := make([]*entity.Entity, len(actors))
	copy(snapshot, actors)
	for _, actor := range snapshot {
		if actor == e.Player || !actor.IsAlive() || actor.Actor.AI == entity.AINone {
			continue
		}
		if err := e.runAI(actor); err != nil {
			if _, ok := IsImpossible(err); !ok {
				e.logger.Error("ai turn failed", "actor", actor.Name, "err", err)
			}
		}
	}
}

// HandleDeath converts the victim to a corpse and pays out XP and gold
// when the player (or one of their allies) made the kill.
func (e *Engine) HandleDeath(victim, killer *entity.Entity) {
	if victim == e.Player {
		e.Log.Add("You died!", tcell.ColorRed)
		victim.Die()
		return
	}
	e.Log.Add(victim.Name+" is dead!", tcell.ColorOrange)
	xp := victim.Actor.Battler.XPValue
	gold := victim.Actor.Battler.Gold
	victim.Die()
	if e.LastTarget == victim {
		e.LastTarget = nil
	}
	if killer == nil {
		return
	}
	if killer == e.Player || (killer.Actor != nil && killer.Actor.AI == entity.AIAlly) {
		pb := &e.Player.Actor.Battler
		e.Player.Actor.Level.XP += xp
		if gold > 0 {
			pb.Gold += gold
			e.Log.Addf("You loot %d gold.", gold)
		}
		if xp > 0 {
			e.Log.Addf("You gain %d experience points.", xp)
		}
	}
}

// Defender adapts a map entity to the combat resolver.
type Defender struct {
	Entity *entity.Entity
}

func (d Defender) DefenderName() string {
	return d.Entity.Name
}

func (d Defender) DefenderAC() int {
	return d.Entity.Actor.ArmorClass()
}

func (d Defender) ApplyDamage(amount int) {
	d.Entity.Actor.Battler.HP -= amount
}

// AttackProfileFor builds the resolver profile for an actor's current
// attack mode.
func AttackProfileFor(attacker *entity.Entity, ranged bool) (combat.AttackProfile, bool) {
	a := attacker.Actor
	if ranged {
		toHit, num, size, bonus, ok := a.RangedProfile()
		if !ok {
			return combat.AttackProfile{}, false
		}
		return combat.AttackProfile{
			Name: attacker.Name, ToHit: toHit,
			NumDice: num, DieSize: size, DamageBonus: bonus,
		}, true
	}
	toHit, num, size, bonus := a.MeleeProfile()
	return combat.AttackProfile{
		Name: attacker.Name, ToHit: toHit,
		NumDice: num, DieSize: size, DamageBonus: bonus,
	}, true
}

// ReadiedAttackProfile builds the profile for the weapon set the actor
// has readied, falling back to melee when no ranged weapon is equipped.
func ReadiedAttackProfile(attacker *entity.Entity) combat.AttackProfile {
	if attacker.Actor.RangedMode {
		if profile, ok := AttackProfileFor(attacker, true); ok {
			return profile
		}
	}
	profile, _ := AttackProfileFor(attacker, false)
	return profile
}

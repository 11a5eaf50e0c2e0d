package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gravedelve/internal/config"
	"github.com/samdwyer/gravedelve/internal/entity"
	"github.com/samdwyer/gravedelve/internal/world"
)

type fakeAction func() error

func (f fakeAction) Perform() error { return f() }

// newTestEngine builds an engine around a small open floor with the
// player in the middle, skipping procedural generation.
func newTestEngine(t *testing.T, seed int64) *Engine {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = seed
	e := New(context.Background(), cfg)

	m := world.NewGameMap(21, 21, 1)
	for y := 1; y < 20; y++ {
		for x := 1; x < 20; x++ {
			m.SetTile(x, y, world.TileFloor)
		}
	}
	player := entity.NewActor("Rogue", '@', tcell.ColorWhite, entity.AINone)
	b := &player.Actor.Battler
	b.Strength, b.Dexterity, b.Constitution = 16, 14, 14
	b.Intelligence, b.Wisdom, b.Charisma = 10, 12, 10
	player.Actor.ApplyClass(e.Classes.GetByID("fighter"))
	player.Place(10, 10)
	m.Add(player)

	e.Player = player
	e.Map = m
	e.UpdateFOV()
	return e
}

func spawnEnemy(e *Engine, id string, x, y int) *entity.Entity {
	enemy := entity.NewEnemy(e.Enemies.GetByID(id))
	enemy.Place(x, y)
	e.Map.Add(enemy)
	return enemy
}

func TestResolvePlayerActionSuccess(t *testing.T) {
	e := newTestEngine(t, 1)

	if !e.ResolvePlayerAction(fakeAction(func() error { return nil })) {
		t.Fatal("successful action should pass a turn")
	}
	if e.Turn != 1 {
		t.Errorf("Turn = %d, want 1", e.Turn)
	}
}

func TestResolvePlayerActionImpossible(t *testing.T) {
	e := newTestEngine(t, 1)

	passed := e.ResolvePlayerAction(fakeAction(func() error {
		return Impossiblef("That way is blocked.")
	}))
	if passed {
		t.Fatal("impossible action should not pass a turn")
	}
	if e.Turn != 0 {
		t.Errorf("Turn = %d, want 0", e.Turn)
	}

	// The refusal is reported to the player.
	msgs := e.Log.Messages
	if len(msgs) == 0 || msgs[len(msgs)-1].Text != "That way is blocked." {
		t.Error("impossible reason not logged")
	}
}

func TestResolvePlayerActionDefect(t *testing.T) {
	e := newTestEngine(t, 1)

	passed := e.ResolvePlayerAction(fakeAction(func() error {
		return errors.New("boom")
	}))
	if passed {
		t.Fatal("defective action should not pass a turn")
	}
	if e.Turn != 0 {
		t.Errorf("Turn = %d, want 0", e.Turn)
	}

	// The failure still reaches the message feed.
	msgs := e.Log.Messages
	if len(msgs) == 0 || msgs[len(msgs)-1].Text != "Something went badly wrong, but you press on." {
		t.Error("defect not reported to the player")
	}
}

func TestReadiedAttackProfile(t *testing.T) {
	e := newTestEngine(t, 1)
	items := e.Items
	sword := entity.NewItemFromDef(items.GetByID("long_sword"))
	bow := entity.NewItemFromDef(items.GetByID("short_bow"))
	e.Player.Actor.Inventory.Add(sword)
	e.Player.Actor.Inventory.Add(bow)
	e.Player.Actor.Equipment.Equip(sword)
	e.Player.Actor.Equipment.Equip(bow)

	// Melee readied: the long sword's d8.
	if p := ReadiedAttackProfile(e.Player); p.DieSize != 8 {
		t.Errorf("melee DieSize = %d, want 8", p.DieSize)
	}

	// Ranged readied: the short bow's d6.
	e.Player.Actor.RangedMode = true
	if p := ReadiedAttackProfile(e.Player); p.DieSize != 6 {
		t.Errorf("ranged DieSize = %d, want 6", p.DieSize)
	}

	// With no bow the readied ranged set falls back to melee.
	e.Player.Actor.Equipment.Clear(bow)
	if p := ReadiedAttackProfile(e.Player); p.DieSize != 8 {
		t.Errorf("fallback DieSize = %d, want 8", p.DieSize)
	}
}

func TestImpossibleErrors(t *testing.T) {
	err := Impossiblef("no %s here", "shop")
	reason, ok := IsImpossible(err)
	if !ok {
		t.Fatal("Impossiblef result not recognized")
	}
	if reason != "no shop here" {
		t.Errorf("reason = %q", reason)
	}
	if _, ok := IsImpossible(errors.New("other")); ok {
		t.Error("plain error recognized as impossible")
	}
	if _, ok := IsImpossible(nil); ok {
		t.Error("nil recognized as impossible")
	}
}

func TestBuffExpiryOnEndTurn(t *testing.T) {
	e := newTestEngine(t, 1)
	e.Player.Actor.Battler.Buffs["Shield"] = entity.Buff{Expires: 1, ACBonus: 4}

	e.ResolvePlayerAction(fakeAction(func() error { return nil }))

	if _, active := e.Player.Actor.Battler.Buffs["Shield"]; active {
		t.Error("buff should have expired at its turn")
	}
	msgs := e.Log.Messages
	if len(msgs) == 0 || msgs[len(msgs)-1].Text != "Shield wears off." {
		t.Error("expiry not announced")
	}
}

func TestHostileIdlesOutOfSight(t *testing.T) {
	e := newTestEngine(t, 2)
	// Far corner, beyond the vision radius of 12? The floor is open, so
	// use a wall pocket instead.
	for y := 2; y <= 4; y++ {
		e.Map.SetTile(3, y, world.TileWall)
		e.Map.SetTile(5, y, world.TileWall)
	}
	e.Map.SetTile(4, 2, world.TileWall)
	e.Map.SetTile(4, 4, world.TileWall)
	e.UpdateFOV()

	enemy := spawnEnemy(e, "goblin", 4, 3)
	if e.Map.Visible[3][4] {
		t.Fatal("test setup: pocket should be out of sight")
	}

	x, y := enemy.X, enemy.Y
	e.ResolvePlayerAction(fakeAction(func() error { return nil }))
	if enemy.X != x || enemy.Y != y {
		t.Error("out-of-sight hostile moved")
	}
}

func TestHostileChasesPlayer(t *testing.T) {
	e := newTestEngine(t, 3)
	enemy := spawnEnemy(e, "goblin", 15, 10)
	e.UpdateFOV()

	before := chebyshevDist(enemy, e.Player)
	e.ResolvePlayerAction(fakeAction(func() error { return nil }))
	after := chebyshevDist(enemy, e.Player)
	if after >= before {
		t.Errorf("visible hostile did not close distance: %d -> %d", before, after)
	}
}

func TestHostileAttacksWhenAdjacent(t *testing.T) {
	e := newTestEngine(t, 4)
	spawnEnemy(e, "goblin", 11, 10)
	e.UpdateFOV()

	logLen := len(e.Log.Messages)
	e.ResolvePlayerAction(fakeAction(func() error { return nil }))
	if len(e.Log.Messages) == logLen {
		t.Error("adjacent hostile produced no combat message")
	}
}

func TestHandleDeathPaysThePlayer(t *testing.T) {
	e := newTestEngine(t, 5)
	enemy := spawnEnemy(e, "orc", 12, 10)
	enemy.Actor.Battler.HP = 0

	xpBefore := e.Player.Actor.Level.XP
	goldBefore := e.Player.Actor.Battler.Gold
	e.HandleDeath(enemy, e.Player)

	if e.Player.Actor.Level.XP != xpBefore+100 {
		t.Errorf("XP = %d, want +100", e.Player.Actor.Level.XP)
	}
	if e.Player.Actor.Battler.Gold != goldBefore+20 {
		t.Errorf("gold = %d, want +20", e.Player.Actor.Battler.Gold)
	}
	if enemy.BlocksMovement {
		t.Error("corpse still blocks")
	}
}

func TestHandleDeathNoPayoutForMonsterKills(t *testing.T) {
	e := newTestEngine(t, 6)
	victim := spawnEnemy(e, "rat", 12, 10)
	killer := spawnEnemy(e, "orc", 13, 10)
	victim.Actor.Battler.HP = 0

	xpBefore := e.Player.Actor.Level.XP
	e.HandleDeath(victim, killer)
	if e.Player.Actor.Level.XP != xpBefore {
		t.Error("player gained XP from a monster-on-monster kill")
	}
}

func TestHandleDeathClearsLastTarget(t *testing.T) {
	e := newTestEngine(t, 7)
	enemy := spawnEnemy(e, "rat", 12, 10)
	e.LastTarget = enemy
	enemy.Actor.Battler.HP = 0

	e.HandleDeath(enemy, e.Player)
	if e.LastTarget != nil {
		t.Error("LastTarget not cleared on death")
	}
}

func TestHandleDeathPlayer(t *testing.T) {
	e := newTestEngine(t, 8)
	e.Player.Actor.Battler.HP = 0

	e.HandleDeath(e.Player, nil)
	msgs := e.Log.Messages
	if len(msgs) == 0 || msgs[len(msgs)-1].Text != "You died!" {
		t.Error("player death not announced")
	}
}

func TestChangeFloorClampsAtTown(t *testing.T) {
	e := newTestEngine(t, 9)
	e.Map.Level = 0
	e.ChangeFloor(-1)
	if e.Map.Level != 0 {
		t.Errorf("level = %d, want town (0)", e.Map.Level)
	}
}

func TestChangeFloorDescends(t *testing.T) {
	e := newTestEngine(t, 10)
	e.Map.Level = 0
	e.ChangeFloor(+1)
	if e.Map.Level != 1 {
		t.Errorf("level = %d, want 1", e.Map.Level)
	}
	// Destination floors place the player on walkable ground.
	if !e.Map.Walkable(e.Player.X, e.Player.Y) {
		t.Error("player stranded on unwalkable tile after floor change")
	}
}

func TestMessageLogStacking(t *testing.T) {
	l := NewMessageLog(10)
	l.Addf("You hit the rat.")
	l.Addf("You hit the rat.")
	l.Addf("The rat bites you.")

	if len(l.Messages) != 2 {
		t.Fatalf("got %d entries, want 2", len(l.Messages))
	}
	if l.Messages[0].Count != 2 {
		t.Errorf("repeat count = %d, want 2", l.Messages[0].Count)
	}
	if l.Messages[0].FullText() != "You hit the rat. (x2)" {
		t.Errorf("FullText = %q", l.Messages[0].FullText())
	}
}

func TestMessageLogBounded(t *testing.T) {
	l := NewMessageLog(5)
	for i := 0; i < 20; i++ {
		l.Add(string(rune('a'+i)), tcell.ColorWhite)
	}
	if len(l.Messages) > 5 {
		t.Errorf("log grew to %d entries, limit is 5", len(l.Messages))
	}
}

func chebyshevDist(a, b *entity.Entity) int {
	return chebyshev(a.X, a.Y, b.X, b.Y)
}

package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gravedelve/internal/action"
	"github.com/samdwyer/gravedelve/internal/engine"
)

// MainHandler is the default play mode: movement, bump attacks and the
// keys that open every other mode.
type MainHandler struct {
	sessionHandler
}

// NewMain creates the main play mode.
func NewMain(eng *engine.Engine) *MainHandler {
	return &MainHandler{sessionHandler{eng: eng}}
}

func (h *MainHandler) HandleEvent(ev tcell.Event) Handler {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return h
	}
	eng := h.eng

	if dx, dy, isMove := moveKeyDelta(key); isMove {
		if key.Modifiers()&tcell.ModShift != 0 {
			return resolve(eng, &action.FastMove{Engine: eng, DX: dx, DY: dy}, h)
		}
		return resolve(eng, &action.Bump{Engine: eng, DX: dx, DY: dy}, h)
	}
	if isWaitKey(key) {
		return resolve(eng, &action.Wait{Engine: eng}, h)
	}

	switch key.Key() {
	case tcell.KeyEscape:
		return NewQuitConfirm(eng)
	case tcell.KeyRune:
		switch key.Rune() {
		case 'g', ',':
			return resolve(eng, &action.Pickup{Engine: eng}, h)
		case '>':
			return resolve(eng, &action.TakeStairs{Engine: eng, Delta: 1}, h)
		case '<':
			return resolve(eng, &action.TakeStairs{Engine: eng, Delta: -1}, h)
		case 'i':
			return NewInventoryActivate(eng)
		case 'd':
			return NewInventoryDrop(eng)
		case 'e':
			return NewEquipmentScreen(eng)
		case 'c':
			return NewCharacterScreen(eng)
		case 'v':
			return NewHistoryViewer(eng)
		case 'x':
			return resolve(eng, &action.ToggleCombatMode{Engine: eng}, h)
		case 'f':
			return h.startFire()
		case 'a':
			return NewSpellMenu(eng)
		case 'b':
			return h.enterShop(true)
		case 't':
			return h.enterShop(false)
		case 'U':
			return h.enterEnchanter()
		case 'B':
			return NewBuffsScreen(eng)
		case 'r':
			return NewBagChooser(eng, bagTakeOut)
		case 'p':
			return NewBagChooser(eng, bagPutIn)
		case 'n':
			return NewRename(eng)
		case '/':
			return NewLook(eng)
		case '?':
			return NewHelp(eng)
		case 'Q':
			return NewQuitConfirm(eng)
		}
	}
	return h
}

// startFire opens monster targeting for a ranged weapon attack, refusing
// when nothing is equipped to fire.
func (h *MainHandler) startFire() Handler {
	eng := h.eng
	if _, ok := engine.AttackProfileFor(eng.Player, true); !ok {
		eng.Log.Add("You have no ranged weapon equipped.", tcell.ColorGray)
		return h
	}
	return NewSelectMonster(eng, func(target *targetPick) Handler {
		return resolve(eng, &action.FullAttack{Engine: eng, Target: target.Entity}, NewMain(eng))
	})
}

// enterShop opens the buy or sell screen when the player stands at a
// shop.
func (h *MainHandler) enterShop(buying bool) Handler {
	eng := h.eng
	shop := eng.Map.ShopAt(eng.Player.X, eng.Player.Y)
	if shop == nil {
		eng.Log.Add("There is no shop here.", tcell.ColorGray)
		return h
	}
	if buying {
		return NewShopBuy(eng, shop)
	}
	return NewShopSell(eng, shop)
}

// enterEnchanter opens the enchanting flow at an enchanter station.
func (h *MainHandler) enterEnchanter() Handler {
	eng := h.eng
	if eng.Map.EnchanterAt(eng.Player.X, eng.Player.Y) == nil {
		eng.Log.Add("There is no enchanter here.", tcell.ColorGray)
		return h
	}
	return NewEnchant(eng)
}

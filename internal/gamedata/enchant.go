package gamedata

// Cost formulas for enchant options. "square" prices an upgrade at
// bonus^2 * unitPrice; "square+2" at (bonus+2)^2 * unitPrice.
const (
	FormulaSquare      = "square"
	FormulaSquarePlus2 = "square+2"
)

// EnchantOption is one upgrade row offered by the enchanter for a slot:
// raise the named bonus to Bonus at the formula's price.
type EnchantOption struct {
	Stat      string `json:"stat"`  // Bonus name, e.g. "Str", "Armor", "Weapon"
	Bonus     int    `json:"bonus"` // Target bonus value
	Formula   string `json:"formula"`
	UnitPrice int    `json:"unitPrice"`
}

// Cost returns the full (undiscounted) gold cost of the option.
func (o EnchantOption) Cost() (int, bool) {
	switch o.Formula {
	case FormulaSquare:
		return o.Bonus * o.Bonus * o.UnitPrice, true
	case FormulaSquarePlus2:
		return (o.Bonus + 2) * (o.Bonus + 2) * o.UnitPrice, true
	default:
		return 0, false
	}
}

// DiscountAt returns the refund for the bonus the item already carries,
// priced with the same formula and unit price as the option. An
// unenchanted item earns no refund.
func (o EnchantOption) DiscountAt(current int) int {
	if current <= 0 {
		return 0
	}
	switch o.Formula {
	case FormulaSquarePlus2:
		return (current + 2) * (current + 2) * o.UnitPrice
	default:
		return current * current * o.UnitPrice
	}
}

// EnchantsFile represents the structure of enchants.json: equipment slot
// name to the upgrade rows an enchanter offers for items in that slot.
type EnchantsFile struct {
	Slots map[string][]EnchantOption `json:"slots"`
}

// LoadEnchants loads the enchant option tables from enchants.json.
func LoadEnchants() (map[string][]EnchantOption, error) {
	file, err := Load[EnchantsFile]("enchants.json")
	if err != nil {
		return nil, err
	}
	return file.Slots, nil
}

// MustLoadEnchants loads the enchant tables, panicking on error.
func MustLoadEnchants() map[string][]EnchantOption {
	slots, err := LoadEnchants()
	if err != nil {
		panic(err)
	}
	return slots
}

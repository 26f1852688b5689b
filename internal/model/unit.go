package model

import "strings"

// UnitKind identifies one of the fixed unit variants
type UnitKind string

const (
	UnitCastle UnitKind = "castle"
	UnitFarmer UnitKind = "farmer"
	UnitArcher UnitKind = "archer"
	UnitKnight UnitKind = "knight"
)

// UnitStats is the static stat block shared by every unit of a kind
type UnitStats struct {
	Kind    UnitKind `json:"kind"`
	Name    string   `json:"name"`
	ForSale bool     `json:"for_sale"`
	Cost    int      `json:"cost"` // Base gold cost before price escalation
	BaseHP  int      `json:"base_hp"`
	Armor   int      `json:"armor"`  // Subtracted from every incoming hit
	Damage  int      `json:"damage"` // Dealt to the target on attack
}

var unitStats = map[UnitKind]UnitStats{
	UnitCastle: {Kind: UnitCastle, Name: "Castle", ForSale: false, Cost: 0, BaseHP: 100},
	UnitFarmer: {Kind: UnitFarmer, Name: "Farmer", ForSale: true, Cost: 5, BaseHP: 20},
	UnitArcher: {Kind: UnitArcher, Name: "Archer", ForSale: true, Cost: 20, BaseHP: 20, Armor: 1, Damage: 10},
	UnitKnight: {Kind: UnitKnight, Name: "Knight", ForSale: true, Cost: 30, BaseHP: 20, Armor: 5, Damage: 3},
}

// StatsFor returns the stat block for a kind
func StatsFor(kind UnitKind) (UnitStats, error) {
	stats, ok := unitStats[kind]
	if !ok {
		return UnitStats{}, ErrInvalidUnitType
	}
	return stats, nil
}

// IsValid returns true if the kind is one of the known variants
func (k UnitKind) IsValid() bool {
	_, ok := unitStats[k]
	return ok
}

// DisplayName returns a human-readable label for the kind
func (k UnitKind) DisplayName() string {
	if stats, ok := unitStats[k]; ok {
		return stats.Name
	}
	return string(k)
}

// IsCombatant returns true for kinds that attack on their turn
func (k UnitKind) IsCombatant() bool {
	return k == UnitArcher || k == UnitKnight
}

// AllUnitKinds returns every known kind in display order
func AllUnitKinds() []UnitKind {
	return []UnitKind{UnitCastle, UnitFarmer, UnitArcher, UnitKnight}
}

// PurchasableKinds returns the kinds offered for sale, in menu order
func PurchasableKinds() []UnitKind {
	return []UnitKind{UnitFarmer, UnitArcher, UnitKnight}
}

// ParseUnitKind converts a case-insensitive name into a UnitKind
func ParseUnitKind(s string) (UnitKind, error) {
	kind := UnitKind(strings.ToLower(strings.TrimSpace(s)))
	if !kind.IsValid() {
		return "", ErrInvalidUnitType
	}
	return kind, nil
}

package model

import "fmt"

// Stat identifies one of the six monster stats.
type Stat string

const (
	StatArmour Stat = "armour"
	StatDodge  Stat = "dodge"
	StatHP     Stat = "hp"
	StatMelee  Stat = "melee"
	StatRanged Stat = "ranged"
	StatSpeed  Stat = "speed"
)

// AllStats lists the stats in their canonical order.
var AllStats = []Stat{StatArmour, StatDodge, StatHP, StatMelee, StatRanged, StatSpeed}

// ParseStat converts a stat name to Stat.
func ParseStat(s string) (Stat, error) {
	for _, st := range AllStats {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown stat %q", s)
}

// Growth constants for derived stats.
const (
	// CoeffStats is added to the level before multiplying by the shape stat.
	CoeffStats = 7
	MaxLevel   = 999
	MaxMoves   = 4
)

// ShapeStats are the per-shape base multipliers of a species.
type ShapeStats struct {
	Armour int `yaml:"armour" json:"armour"`
	Dodge  int `yaml:"dodge" json:"dodge"`
	HP     int `yaml:"hp" json:"hp"`
	Melee  int `yaml:"melee" json:"melee"`
	Ranged int `yaml:"ranged" json:"ranged"`
	Speed  int `yaml:"speed" json:"speed"`
}

// Get returns the shape value for stat s.
func (s ShapeStats) Get(st Stat) int {
	switch st {
	case StatArmour:
		return s.Armour
	case StatDodge:
		return s.Dodge
	case StatHP:
		return s.HP
	case StatMelee:
		return s.Melee
	case StatRanged:
		return s.Ranged
	case StatSpeed:
		return s.Speed
	default:
		return 0
	}
}

// Shape couples the shape slug with its stats.
type Shape struct {
	Slug  string
	Stats ShapeStats
}

// BaseStat computes shape_stat * (level + CoeffStats) + modifier.
func BaseStat(shapeStat, level, modifier int) int {
	return shapeStat*(level+CoeffStats) + modifier
}

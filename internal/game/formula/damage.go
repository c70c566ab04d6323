// Package formula holds the stat formulas shared by technique effects and
// the battle loop.
package formula

import (
	"github.com/udisondev/tuxbattle/internal/model"
)

// StatCoefficient is added to the level when scaling stats in formulas.
const StatCoefficient = model.CoeffStats

// strengthAndResist picks the attacking and defending stat for a range.
//
//	melee    melee  vs armour
//	touch    melee  vs dodge
//	ranged   ranged vs dodge
//	reach    ranged vs armour
//	reliable level  vs 1
func strengthAndResist(r model.Range, user, target *model.Monster) (float64, float64, bool) {
	lvl := float64(StatCoefficient + user.Level)
	switch r {
	case model.RangeMelee:
		return float64(user.Melee) * lvl, float64(target.Armour), true
	case model.RangeTouch:
		return float64(user.Melee) * lvl, float64(target.Dodge), true
	case model.RangeRanged:
		return float64(user.Ranged) * lvl, float64(target.Dodge), true
	case model.RangeReach:
		return float64(user.Ranged) * lvl, float64(target.Armour), true
	case model.RangeReliable:
		return lvl, 1, true
	default:
		return 0, 1, false
	}
}

// Damage returns the damage t deals from user to target and the element
// multiplier it applied. Special-range techniques deal no damage.
func Damage(t *model.Technique, user, target *model.Monster) (int, float64) {
	mult := model.TypeMultiplier(t.Types, target.Types)
	strength, resist, ok := strengthAndResist(t.Range, user, target)
	if !ok {
		return 0, mult
	}
	if resist < 1 {
		resist = 1
	}
	dmg := int(strength * t.Power * mult / resist)
	if dmg < 0 {
		dmg = 0
	}
	return dmg, mult
}

// Heal returns the HP restored by a healing technique used by user.
func Heal(t *model.Technique, user *model.Monster) int {
	return int(float64(StatCoefficient+user.Level) * t.HealingPower)
}

// Chance rolls a probability in [0, 1].
func Chance(p float64, rng model.Source) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return rng.Float64() < p
}

package model

// Element is an elemental type shared by monsters and techniques.
type Element string

const (
	ElementAether Element = "aether"
	ElementWood   Element = "wood"
	ElementFire   Element = "fire"
	ElementEarth  Element = "earth"
	ElementMetal  Element = "metal"
	ElementWater  Element = "water"
)

// Element multiplier bounds applied to the product over all type pairs.
const (
	MinElementMultiplier = 0.25
	MaxElementMultiplier = 4.0
)

// elementChart maps attacking element → defending element → multiplier.
// Pairs not listed are neutral (1.0). Each element beats the next one in
// the cycle wood → earth → water → fire → metal → wood and is resisted by
// the element it loses to.
var elementChart = map[Element]map[Element]float64{
	ElementWood: {
		ElementEarth: 2.0,
		ElementMetal: 0.5,
	},
	ElementEarth: {
		ElementWater: 2.0,
		ElementWood:  0.5,
	},
	ElementWater: {
		ElementFire:  2.0,
		ElementEarth: 0.5,
	},
	ElementFire: {
		ElementMetal: 2.0,
		ElementWater: 0.5,
	},
	ElementMetal: {
		ElementWood: 2.0,
		ElementFire: 0.5,
	},
}

// Elements returns all known elements in a stable order.
func Elements() []Element {
	return []Element{ElementAether, ElementWood, ElementFire, ElementEarth, ElementMetal, ElementWater}
}

// IsValid reports whether e is a known element.
func (e Element) IsValid() bool {
	switch e {
	case ElementAether, ElementWood, ElementFire, ElementEarth, ElementMetal, ElementWater:
		return true
	default:
		return false
	}
}

// ElementMultiplier returns the multiplier for a single attacking element
// against a single defending element.
func ElementMultiplier(attack, defend Element) float64 {
	if row, ok := elementChart[attack]; ok {
		if m, ok := row[defend]; ok {
			return m
		}
	}
	return 1.0
}

// TypeMultiplier multiplies the chart value of every (attack, defend) pair
// and clamps the product to [MinElementMultiplier, MaxElementMultiplier].
// Empty type lists yield 1.0.
func TypeMultiplier(attack, defend []Element) float64 {
	m := 1.0
	for _, a := range attack {
		for _, d := range defend {
			m *= ElementMultiplier(a, d)
		}
	}
	if m < MinElementMultiplier {
		return MinElementMultiplier
	}
	if m > MaxElementMultiplier {
		return MaxElementMultiplier
	}
	return m
}

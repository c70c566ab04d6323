package model

import (
	"errors"
	"fmt"
)

// ErrInvalidTaste is returned when a taste change is not allowed.
var ErrInvalidTaste = errors.New("invalid taste")

// TasteKind distinguishes the two taste slots of a monster.
type TasteKind string

const (
	TasteCold TasteKind = "cold"
	TasteWarm TasteKind = "warm"
)

// TasteNone is the neutral taste.
const TasteNone = "tasteless"

// Taste multipliers applied to the affected stat.
const (
	warmTasteMultiplier = 1.1
	coldTasteMultiplier = 0.9
)

// warmTastes raise one stat by 10%.
var warmTastes = map[string]Stat{
	"salty":   StatArmour,
	"hearty":  StatHP,
	"zesty":   StatMelee,
	"refined": StatRanged,
	"peppy":   StatSpeed,
	"savory":  StatDodge,
}

// coldTastes lower one stat by 10%.
var coldTastes = map[string]Stat{
	"mild":   StatArmour,
	"flakey": StatHP,
	"dry":    StatMelee,
	"soft":   StatRanged,
	"sweet":  StatSpeed,
	"bitter": StatDodge,
}

// Tastes returns the tastes available for a slot, TasteNone first.
func Tastes(kind TasteKind) []string {
	var src map[string]Stat
	var order []string
	switch kind {
	case TasteWarm:
		src = warmTastes
		order = []string{"salty", "hearty", "zesty", "refined", "peppy", "savory"}
	case TasteCold:
		src = coldTastes
		order = []string{"mild", "flakey", "dry", "soft", "sweet", "bitter"}
	default:
		return nil
	}
	out := make([]string, 0, len(src)+1)
	out = append(out, TasteNone)
	return append(out, order...)
}

// IsTaste reports whether taste belongs to the given slot.
func IsTaste(kind TasteKind, taste string) bool {
	if taste == TasteNone {
		return true
	}
	switch kind {
	case TasteWarm:
		_, ok := warmTastes[taste]
		return ok
	case TasteCold:
		_, ok := coldTastes[taste]
		return ok
	}
	return false
}

// applyTastes returns v scaled by the warm and cold tastes that affect st.
func applyTastes(st Stat, v int, warm, cold string) int {
	f := float64(v)
	if s, ok := warmTastes[warm]; ok && s == st {
		f *= warmTasteMultiplier
	}
	if s, ok := coldTastes[cold]; ok && s == st {
		f *= coldTasteMultiplier
	}
	return int(f)
}

// SetTaste changes one taste slot. Unknown tastes and a taste equal to the
// current one are rejected.
func (m *Monster) SetTaste(kind TasteKind, taste string) error {
	if !IsTaste(kind, taste) {
		return fmt.Errorf("%w: %q is not a %s taste", ErrInvalidTaste, taste, kind)
	}
	current := m.TasteWarm
	if kind == TasteCold {
		current = m.TasteCold
	}
	if current == taste {
		return fmt.Errorf("%w: %s taste is already %q", ErrInvalidTaste, kind, taste)
	}
	if kind == TasteCold {
		m.TasteCold = taste
	} else {
		m.TasteWarm = taste
	}
	m.SetStats()
	return nil
}

// RerollTaste picks a random taste for the slot that differs from the
// current one and applies it.
func (m *Monster) RerollTaste(kind TasteKind, rng Source) (string, error) {
	current := m.TasteWarm
	if kind == TasteCold {
		current = m.TasteCold
	}
	all := Tastes(kind)
	if len(all) == 0 {
		return "", fmt.Errorf("%w: unknown taste kind %q", ErrInvalidTaste, kind)
	}
	candidates := make([]string, 0, len(all))
	for _, t := range all {
		if t != current && t != TasteNone {
			candidates = append(candidates, t)
		}
	}
	taste := candidates[rng.IntN(len(candidates))]
	if err := m.SetTaste(kind, taste); err != nil {
		return "", err
	}
	return taste, nil
}

// Package evolution decides when a monster may evolve and performs the
// species change.
package evolution

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/udisondev/tuxbattle/internal/model"
)

// ErrMalformed is returned for stat, bond or variable expressions that
// cannot be parsed.
var ErrMalformed = errors.New("malformed evolution expression")

// Context carries the world state an evolution check needs.
type Context struct {
	// Inside is true when the party is in an indoor map.
	Inside bool
	// UseItem is true when the check is triggered by using the evolution item.
	UseItem bool
	// Party lists the species slugs of the trainer's party.
	Party []string
	// Variables are game variables compared by the variables field.
	Variables map[string]string
}

// CanEvolve reports whether every field set on evo holds for m. Unset
// fields are skipped. When evo.Item is set only ctx.UseItem decides.
//
// A steps-gated candidate increments m.Steps and sets LevellingUp and
// GotExperience on every evaluation, so the check is not idempotent.
func CanEvolve(m *model.Monster, evo model.Evolution, ctx Context) (bool, error) {
	if evo.Item != "" {
		return ctx.UseItem, nil
	}

	ok := true
	check := func(v bool) { ok = ok && v }

	if evo.Level > 0 {
		check(m.Level >= evo.Level)
	}
	if evo.Gender != "" {
		check(m.Gender == evo.Gender)
	}
	if evo.Element != "" {
		check(m.HasType(evo.Element))
	}
	if evo.Inside != nil {
		check(*evo.Inside == ctx.Inside)
	}
	if evo.Tech != "" {
		check(m.FindTechnique(evo.Tech) != nil)
	}
	if evo.Traded != nil {
		check(*evo.Traded == m.Traded)
	}
	if len(evo.Moves) > 0 {
		check(knowsAll(m, evo.Moves))
	}
	if len(evo.Party) > 0 {
		check(subset(evo.Party, ctx.Party))
	}
	if evo.TasteCold != "" {
		check(m.TasteCold == evo.TasteCold)
	}
	if evo.TasteWarm != "" {
		check(m.TasteWarm == evo.TasteWarm)
	}
	if evo.Stats != "" {
		v, err := compareStats(m, evo.Stats)
		if err != nil {
			return false, err
		}
		check(v)
	}
	if len(evo.Variables) > 0 {
		v, err := matchVariables(evo.Variables, ctx.Variables)
		if err != nil {
			return false, err
		}
		check(v)
	}
	if evo.Steps > 0 {
		m.Steps++
		m.LevellingUp = true
		m.GotExperience = true
		check(m.Steps == evo.Steps)
	}
	if evo.Bond != "" {
		v, err := compareBond(m, evo.Bond)
		if err != nil {
			return false, err
		}
		check(v)
	}
	return ok, nil
}

// FirstEligible returns the first evolution of m that passes CanEvolve.
func FirstEligible(m *model.Monster, ctx Context) (model.Evolution, bool, error) {
	for _, evo := range m.Evolutions {
		ok, err := CanEvolve(m, evo, ctx)
		if err != nil {
			return model.Evolution{}, false, fmt.Errorf("evolution %s -> %s: %w", m.Slug, evo.MonsterSlug, err)
		}
		if ok {
			return evo, true, nil
		}
	}
	return model.Evolution{}, false, nil
}

func knowsAll(m *model.Monster, moves []string) bool {
	for _, slug := range moves {
		if m.FindTechnique(slug) == nil {
			return false
		}
	}
	return true
}

func subset(want, have []string) bool {
	for _, w := range want {
		if !slices.Contains(have, w) {
			return false
		}
	}
	return true
}

// compareStats evaluates "<stat>:<op>:<stat>".
func compareStats(m *model.Monster, expr string) (bool, error) {
	parts := strings.Split(expr, ":")
	if len(parts) != 3 {
		return false, fmt.Errorf("stats %q: want lhs:op:rhs: %w", expr, ErrMalformed)
	}
	lhs, err := model.ParseStat(parts[0])
	if err != nil {
		return false, fmt.Errorf("stats %q: %w: %w", expr, err, ErrMalformed)
	}
	rhs, err := model.ParseStat(parts[2])
	if err != nil {
		return false, fmt.Errorf("stats %q: %w: %w", expr, err, ErrMalformed)
	}
	return model.Compare(parts[1], float64(m.Stat(lhs)), float64(m.Stat(rhs)))
}

// compareBond evaluates "<op>:<value>" against the bond value.
func compareBond(m *model.Monster, expr string) (bool, error) {
	op, raw, found := strings.Cut(expr, ":")
	if !found {
		return false, fmt.Errorf("bond %q: want op:value: %w", expr, ErrMalformed)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return false, fmt.Errorf("bond %q: %w", expr, ErrMalformed)
	}
	return model.Compare(op, float64(m.Bond), float64(v))
}

// matchVariables checks every "<key>:<value>" pair.
func matchVariables(pairs []string, vars map[string]string) (bool, error) {
	ok := true
	for _, p := range pairs {
		k, v, found := strings.Cut(p, ":")
		if !found || k == "" {
			return false, fmt.Errorf("variable %q: want key:value: %w", p, ErrMalformed)
		}
		ok = ok && vars[k] == v
	}
	return ok, nil
}

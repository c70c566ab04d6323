package data

import (
	"errors"
	"fmt"
	"strings"

	"github.com/udisondev/tuxbattle/internal/model"
)

// specialIncompatible lists effects that need a damage range and therefore
// cannot be combined with range "special".
var specialIncompatible = map[string]bool{
	"damage":    true,
	"area":      true,
	"retaliate": true,
	"revenge":   true,
	"money":     true,
	"splash":    true,
}

var validRanges = map[model.Range]bool{
	model.RangeMelee:    true,
	model.RangeTouch:    true,
	model.RangeRanged:   true,
	model.RangeReach:    true,
	model.RangeReliable: true,
	model.RangeSpecial:  true,
}

var validCategories = map[string]bool{
	model.CategoryPositive: true,
	model.CategoryNegative: true,
	model.CategoryNeutral:  true,
}

// Validate checks every record and cross-reference. All problems are
// returned joined; each one wraps ErrInvalid.
func (c *Catalog) Validate() error {
	var errs []error
	for _, slug := range sortedKeys(c.shapes) {
		errs = append(errs, validateShape(c.shapes[slug]))
	}
	for _, slug := range sortedKeys(c.techniques) {
		errs = append(errs, validateTechnique(c.techniques[slug]))
	}
	for _, slug := range sortedKeys(c.conditions) {
		errs = append(errs, validateCondition(c.conditions[slug]))
	}
	for _, slug := range sortedKeys(c.species) {
		errs = append(errs, c.validateSpecies(c.species[slug]))
	}
	if _, ok := c.conditions[model.FaintSlug]; !ok {
		errs = append(errs, fmt.Errorf("condition %q is required: %w", model.FaintSlug, ErrInvalid))
	}
	return errors.Join(errs...)
}

func invalid(kind, slug, format string, args ...any) error {
	return fmt.Errorf("%s %q: %w: %s", kind, slug, ErrInvalid, fmt.Sprintf(format, args...))
}

func validateShape(r *ShapeRecord) error {
	for _, st := range model.AllStats {
		if r.Stats.Get(st) <= 0 {
			return invalid("shape", r.Slug, "stat %s must be positive", st)
		}
	}
	return nil
}

func validateTechnique(r *TechniqueRecord) error {
	if r.Slug == "" {
		return invalid("technique", r.Slug, "empty slug")
	}
	if !validRanges[r.Range] {
		return invalid("technique", r.Slug, "unknown range %q", r.Range)
	}
	if err := validateTypes("technique", r.Slug, r.Types); err != nil {
		return err
	}
	if r.Accuracy < 0 || r.Accuracy > 1 {
		return invalid("technique", r.Slug, "accuracy %v out of [0, 1]", r.Accuracy)
	}
	if r.Potency < 0 || r.Potency > 1 {
		return invalid("technique", r.Slug, "potency %v out of [0, 1]", r.Potency)
	}
	if r.RechargeLength < 0 {
		return invalid("technique", r.Slug, "negative recharge")
	}
	switch r.Target {
	case "", model.TargetEnemy, model.TargetSelf:
	default:
		return invalid("technique", r.Slug, "unknown target %q", r.Target)
	}
	for _, spec := range r.Effects {
		name := SpecName(spec)
		if name == "" {
			return invalid("technique", r.Slug, "empty effect spec")
		}
		if r.Range == model.RangeSpecial && specialIncompatible[name] {
			return invalid("technique", r.Slug, "range special cannot use effect %q", name)
		}
	}
	return validatePredicates("technique", r.Slug, r.Predicates)
}

func validateCondition(r *ConditionRecord) error {
	if r.Slug == "" {
		return invalid("condition", r.Slug, "empty slug")
	}
	if !validCategories[r.Category] {
		return invalid("condition", r.Slug, "unknown category %q", r.Category)
	}
	if r.Duration < 0 {
		return invalid("condition", r.Slug, "negative duration")
	}
	for _, spec := range r.Effects {
		if SpecName(spec) == "" {
			return invalid("condition", r.Slug, "empty effect spec")
		}
	}
	return validatePredicates("condition", r.Slug, r.Predicates)
}

func validatePredicates(kind, slug string, specs []string) error {
	for _, spec := range specs {
		fields := strings.Fields(spec)
		if len(fields) < 2 || (fields[0] != "is" && fields[0] != "not") {
			return invalid(kind, slug, "predicate %q must start with is/not", spec)
		}
	}
	return nil
}

func validateTypes(kind, slug string, types []model.Element) error {
	for _, e := range types {
		if !e.IsValid() {
			return invalid(kind, slug, "unknown element %q", e)
		}
	}
	return nil
}

func (c *Catalog) validateSpecies(r *SpeciesRecord) error {
	if _, ok := c.shapes[r.Shape]; !ok {
		return invalid("species", r.Slug, "unknown shape %q", r.Shape)
	}
	if len(r.Types) == 0 {
		return invalid("species", r.Slug, "no types")
	}
	if err := validateTypes("species", r.Slug, r.Types); err != nil {
		return err
	}
	for _, mv := range r.Moveset {
		if _, ok := c.techniques[mv.Technique]; !ok {
			return invalid("species", r.Slug, "moveset references unknown technique %q", mv.Technique)
		}
		if mv.LevelLearned < 1 || mv.LevelLearned > model.MaxLevel {
			return invalid("species", r.Slug, "technique %q learned at level %d", mv.Technique, mv.LevelLearned)
		}
	}
	for _, evo := range r.Evolutions {
		if _, ok := c.species[evo.MonsterSlug]; !ok {
			return invalid("species", r.Slug, "evolves into unknown species %q", evo.MonsterSlug)
		}
		if evo.Tech != "" {
			if _, ok := c.techniques[evo.Tech]; !ok {
				return invalid("species", r.Slug, "evolution requires unknown technique %q", evo.Tech)
			}
		}
	}
	return nil
}

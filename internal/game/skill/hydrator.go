package skill

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/udisondev/tuxbattle/internal/data"
	"github.com/udisondev/tuxbattle/internal/model"
)

// Hydrator turns catalog records into live techniques, conditions and
// monsters. It only reads the catalog and is safe to share between
// goroutines.
type Hydrator struct {
	catalog *data.Catalog
}

// NewHydrator creates a hydrator over catalog.
func NewHydrator(catalog *data.Catalog) *Hydrator {
	return &Hydrator{catalog: catalog}
}

// Catalog returns the underlying catalog.
func (h *Hydrator) Catalog() *data.Catalog {
	return h.catalog
}

// NewTechnique creates a fresh technique instance. Malformed effect or
// predicate specs are logged and skipped.
func (h *Hydrator) NewTechnique(slug string) (*model.Technique, error) {
	rec, err := h.catalog.Technique(slug)
	if err != nil {
		return nil, err
	}
	t := &model.Technique{
		Slug:           rec.Slug,
		InstanceID:     uuid.New(),
		Sort:           rec.Sort,
		Range:          rec.Range,
		Types:          slices.Clone(rec.Types),
		Accuracy:       rec.Accuracy,
		Power:          rec.Power,
		Potency:        rec.Potency,
		DefaultPower:   rec.Power,
		DefaultPotency: rec.Potency,
		HealingPower:   rec.HealingPower,
		RechargeLength: rec.RechargeLength,
		IsFast:         rec.IsFast,
		Target:         rec.Target,
	}
	if t.Target == "" {
		t.Target = model.TargetEnemy
	}
	for _, spec := range rec.Effects {
		e, err := CreateTechEffect(spec)
		if err != nil {
			slog.Warn("skipping technique effect", "technique", slug, "spec", spec, "error", err)
			continue
		}
		t.Effects = append(t.Effects, e)
	}
	t.Predicates = h.clauses("technique", slug, rec.Predicates)
	return t, nil
}

// NewCondition creates a fresh condition instance.
func (h *Hydrator) NewCondition(slug string) (*model.Condition, error) {
	rec, err := h.catalog.Condition(slug)
	if err != nil {
		return nil, err
	}
	c := &model.Condition{
		Slug:       rec.Slug,
		InstanceID: uuid.New(),
		Sort:       rec.Sort,
		Category:   rec.Category,
		Duration:   rec.Duration,
		Bond:       rec.Bond,
		Reactive:   rec.Reactive,
		ReplPos:    rec.ReplPos,
		ReplNeg:    rec.ReplNeg,
		ReplTech:   rec.ReplTech,
		ReplItem:   rec.ReplItem,
	}
	for _, spec := range rec.Effects {
		e, err := CreateCondEffect(spec)
		if err != nil {
			slog.Warn("skipping condition effect", "condition", slug, "spec", spec, "error", err)
			continue
		}
		c.Effects = append(c.Effects, e)
	}
	c.Predicates = h.clauses("condition", slug, rec.Predicates)
	return c, nil
}

func (h *Hydrator) clauses(kind, slug string, specs []string) []model.Clause {
	var out []model.Clause
	for _, spec := range specs {
		cl, err := CreatePredicate(spec)
		if err != nil {
			slog.Warn("skipping predicate", kind, slug, "spec", spec, "error", err)
			continue
		}
		out = append(out, cl)
	}
	return out
}

// NewMonster creates a fresh individual of species slug at level with
// random gender and tastes. It knows the last MaxMoves techniques of its
// moveset learnable at that level.
func (h *Hydrator) NewMonster(slug string, level int, rng model.Source) (*model.Monster, error) {
	if level < 1 || level > model.MaxLevel {
		return nil, fmt.Errorf("creating %s: level %d out of range", slug, level)
	}
	m := &model.Monster{
		InstanceID: uuid.New(),
		Level:      level,
		Wild:       true,
	}
	if err := h.ApplySpecies(m, slug); err != nil {
		return nil, err
	}
	sp, _ := h.catalog.Species(slug)
	m.Name = sp.Slug

	m.Gender = model.GenderNeuter
	if len(sp.PossibleGenders) > 0 {
		m.Gender = sp.PossibleGenders[rng.IntN(len(sp.PossibleGenders))]
	}
	warm := model.Tastes(model.TasteWarm)
	cold := model.Tastes(model.TasteCold)
	m.TasteWarm = warm[rng.IntN(len(warm))]
	m.TasteCold = cold[rng.IntN(len(cold))]

	m.TotalExperience = m.ExperienceRequired(0)
	if err := h.LearnMoveset(m); err != nil {
		return nil, err
	}
	m.SetStats()
	m.SetCurrentHP(m.HP)
	return m, nil
}

// LearnMoveset teaches m the latest techniques of its species moveset up
// to its level, keeping at most MaxMoves.
func (h *Hydrator) LearnMoveset(m *model.Monster) error {
	sp, err := h.catalog.Species(m.Slug)
	if err != nil {
		return err
	}
	var slugs []string
	for _, mv := range sp.Moveset {
		if mv.LevelLearned <= m.Level && !slices.Contains(slugs, mv.Technique) {
			slugs = append(slugs, mv.Technique)
		}
	}
	if len(slugs) > model.MaxMoves {
		slugs = slugs[len(slugs)-model.MaxMoves:]
	}
	for _, slug := range slugs {
		if m.FindTechnique(slug) != nil {
			continue
		}
		t, err := h.NewTechnique(slug)
		if err != nil {
			return fmt.Errorf("learning moveset of %s: %w", m.Slug, err)
		}
		if err := m.Learn(t); err != nil {
			break
		}
	}
	return nil
}

// ApplySpecies sets the species-derived fields of m (slug, types, shape,
// experience modifiers and evolutions) and rebuilds its stats.
func (h *Hydrator) ApplySpecies(m *model.Monster, slug string) error {
	sp, err := h.catalog.Species(slug)
	if err != nil {
		return err
	}
	shape, err := h.catalog.Shape(sp.Shape)
	if err != nil {
		return fmt.Errorf("species %s: %w", slug, err)
	}
	m.Slug = sp.Slug
	m.Types = slices.Clone(sp.Types)
	m.BaseTypes = slices.Clone(sp.Types)
	m.Shape = shape.Shape()
	m.ExperienceModifier = sp.ExperienceModifier
	m.ExpGiveModifier = sp.ExpGiveModifier
	m.Evolutions = slices.Clone(sp.Evolutions)
	m.SetStats()
	return nil
}

// RestoreMonster rebuilds a monster from its persisted state: species data
// from the catalog, then the allow-listed fields, moves and status.
func (h *Hydrator) RestoreMonster(s model.MonsterState) (*model.Monster, error) {
	m := &model.Monster{Level: s.Level}
	if err := h.ApplySpecies(m, s.Slug); err != nil {
		return nil, fmt.Errorf("restoring monster %s: %w", s.InstanceID, err)
	}
	m.SetState(s)

	for _, ts := range s.Moves {
		t, err := h.NewTechnique(ts.Slug)
		if err != nil {
			return nil, fmt.Errorf("restoring monster %s: %w", s.InstanceID, err)
		}
		t.SetState(ts)
		if err := m.Learn(t); err != nil {
			return nil, fmt.Errorf("restoring monster %s: %w", s.InstanceID, err)
		}
	}

	conds := make([]*model.Condition, 0, len(s.Status))
	for _, cs := range s.Status {
		c, err := h.NewCondition(cs.Slug)
		if err != nil {
			return nil, fmt.Errorf("restoring monster %s: %w", s.InstanceID, err)
		}
		c.SetState(cs)
		conds = append(conds, c)
	}
	m.RestoreStatus(conds)
	return m, nil
}

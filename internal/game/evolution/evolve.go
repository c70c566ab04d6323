package evolution

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/tuxbattle/internal/model"
)

// SpeciesApplier rebinds a monster to a new species. skill.Hydrator
// implements it.
type SpeciesApplier interface {
	ApplySpecies(m *model.Monster, slug string) error
}

// Evolve turns m into evo.MonsterSlug, appends the change to its history
// and keeps its HP ratio. Moves and status are kept.
func Evolve(s SpeciesApplier, m *model.Monster, evo model.Evolution) error {
	from := m.Slug
	ratio := m.HPRatio()
	if err := s.ApplySpecies(m, evo.MonsterSlug); err != nil {
		return fmt.Errorf("evolving %s into %s: %w", from, evo.MonsterSlug, err)
	}
	m.History = append(m.History, model.EvolutionRecord{From: from, To: m.Slug, Level: m.Level})
	if m.Name == from {
		m.Name = m.Slug
	}
	if !m.IsFainted() {
		m.SetCurrentHP(max(int(float64(m.HP)*ratio), 1))
	}

	slog.Info("monster evolved",
		"instance_id", m.InstanceID,
		"from", from,
		"to", m.Slug,
		"level", m.Level)
	return nil
}

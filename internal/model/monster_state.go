package model

import "github.com/google/uuid"

// MonsterState is the allow-list of persisted monster attributes. Stats are
// not stored: they are rebuilt from species, level and modifiers on load.
type MonsterState struct {
	Slug            string            `json:"slug" yaml:"slug"`
	InstanceID      uuid.UUID         `json:"instance_id" yaml:"instance_id"`
	Name            string            `json:"name" yaml:"name"`
	Level           int               `json:"level" yaml:"level"`
	TotalExperience int               `json:"total_experience" yaml:"total_experience"`
	CurrentHP       int               `json:"current_hp" yaml:"current_hp"`
	Gender          Gender            `json:"gender" yaml:"gender"`
	TasteCold       string            `json:"taste_cold" yaml:"taste_cold"`
	TasteWarm       string            `json:"taste_warm" yaml:"taste_warm"`
	ModArmour       int               `json:"mod_armour" yaml:"mod_armour"`
	ModDodge        int               `json:"mod_dodge" yaml:"mod_dodge"`
	ModHP           int               `json:"mod_hp" yaml:"mod_hp"`
	ModMelee        int               `json:"mod_melee" yaml:"mod_melee"`
	ModRanged       int               `json:"mod_ranged" yaml:"mod_ranged"`
	ModSpeed        int               `json:"mod_speed" yaml:"mod_speed"`
	Traded          bool              `json:"traded" yaml:"traded"`
	Wild            bool              `json:"wild" yaml:"wild"`
	Steps           int               `json:"steps" yaml:"steps"`
	Bond            int               `json:"bond" yaml:"bond"`
	Moves           []TechniqueState  `json:"moves" yaml:"moves"`
	Status          []ConditionState  `json:"status" yaml:"status"`
	History         []EvolutionRecord `json:"history,omitempty" yaml:"history,omitempty"`
}

// GetState snapshots the persisted attributes, including move and status
// states.
func (m *Monster) GetState() MonsterState {
	s := MonsterState{
		Slug:            m.Slug,
		InstanceID:      m.InstanceID,
		Name:            m.Name,
		Level:           m.Level,
		TotalExperience: m.TotalExperience,
		CurrentHP:       m.currentHP,
		Gender:          m.Gender,
		TasteCold:       m.TasteCold,
		TasteWarm:       m.TasteWarm,
		ModArmour:       m.ModArmour,
		ModDodge:        m.ModDodge,
		ModHP:           m.ModHP,
		ModMelee:        m.ModMelee,
		ModRanged:       m.ModRanged,
		ModSpeed:        m.ModSpeed,
		Traded:          m.Traded,
		Wild:            m.Wild,
		Steps:           m.Steps,
		Bond:            m.Bond,
		History:         append([]EvolutionRecord(nil), m.History...),
	}
	s.Moves = make([]TechniqueState, 0, len(m.moves))
	for _, t := range m.moves {
		s.Moves = append(s.Moves, t.GetState())
	}
	s.Status = make([]ConditionState, 0, len(m.status))
	for _, c := range m.status {
		s.Status = append(s.Status, c.GetState())
	}
	return s
}

// SetState restores the scalar attributes and rebuilds stats. Moves and
// status are rehydrated by the caller from s.Moves and s.Status since they
// need the catalog.
func (m *Monster) SetState(s MonsterState) {
	m.Slug = s.Slug
	if s.InstanceID != uuid.Nil {
		m.InstanceID = s.InstanceID
	}
	m.Name = s.Name
	m.Level = s.Level
	m.TotalExperience = s.TotalExperience
	m.Gender = s.Gender
	m.TasteCold = s.TasteCold
	m.TasteWarm = s.TasteWarm
	m.ModArmour = s.ModArmour
	m.ModDodge = s.ModDodge
	m.ModHP = s.ModHP
	m.ModMelee = s.ModMelee
	m.ModRanged = s.ModRanged
	m.ModSpeed = s.ModSpeed
	m.Traded = s.Traded
	m.Wild = s.Wild
	m.Steps = s.Steps
	m.Bond = s.Bond
	m.History = append([]EvolutionRecord(nil), s.History...)
	m.SetStats()
	m.SetCurrentHP(s.CurrentHP)
}

// RestoreStatus attaches already-hydrated conditions without running the
// replacement policy.
func (m *Monster) RestoreStatus(conds []*Condition) {
	m.status = nil
	for _, c := range conds {
		c.Link = m
		m.status = append(m.status, c)
	}
}

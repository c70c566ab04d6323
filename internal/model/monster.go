package model

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/google/uuid"
)

var (
	// ErrMovesFull is returned by Learn when MaxMoves is reached.
	ErrMovesFull = errors.New("monster already knows the maximum number of moves")
	// ErrAlreadyKnown is returned by Learn for a duplicate technique slug.
	ErrAlreadyKnown = errors.New("technique already known")
)

// Gender of a monster.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderNeuter Gender = "neuter"
)

// Monster is the primary mutable subject of combat.
type Monster struct {
	Slug       string
	InstanceID uuid.UUID
	Name       string
	Types      []Element
	// BaseTypes are the species types; EndCombat restores Types from them.
	BaseTypes []Element
	Shape     Shape

	Level              int
	TotalExperience    int
	ExperienceModifier float64
	// ExpGiveModifier scales the experience granted when this monster faints.
	ExpGiveModifier float64

	Gender    Gender
	TasteCold string
	TasteWarm string

	// Live stats. Combat writes transient changes here; SetStats rebuilds them.
	Armour int
	Dodge  int
	HP     int
	Melee  int
	Ranged int
	Speed  int

	// Permanent stat offsets.
	ModArmour int
	ModDodge  int
	ModHP     int
	ModMelee  int
	ModRanged int
	ModSpeed  int

	Evolutions []Evolution
	History    []EvolutionRecord

	Traded bool
	Wild   bool
	// OutOfRange is "flying" or "submerged" while the monster cannot be
	// targeted, empty otherwise.
	OutOfRange    string
	GotExperience bool
	LevellingUp   bool
	Steps         int
	Bond          int

	currentHP int
	moves     []*Technique
	status    []*Condition
	owner     *Party
}

// Stat returns the live value of st.
func (m *Monster) Stat(st Stat) int {
	switch st {
	case StatArmour:
		return m.Armour
	case StatDodge:
		return m.Dodge
	case StatHP:
		return m.HP
	case StatMelee:
		return m.Melee
	case StatRanged:
		return m.Ranged
	case StatSpeed:
		return m.Speed
	default:
		return 0
	}
}

// SetStat writes a live stat. Values below 1 are raised to 1; lowering HP
// clamps the current HP.
func (m *Monster) SetStat(st Stat, v int) {
	if v < 1 {
		v = 1
	}
	switch st {
	case StatArmour:
		m.Armour = v
	case StatDodge:
		m.Dodge = v
	case StatHP:
		m.HP = v
		m.SetCurrentHP(m.currentHP)
	case StatMelee:
		m.Melee = v
	case StatRanged:
		m.Ranged = v
	case StatSpeed:
		m.Speed = v
	}
}

// Modifier returns the permanent offset of st.
func (m *Monster) Modifier(st Stat) int {
	switch st {
	case StatArmour:
		return m.ModArmour
	case StatDodge:
		return m.ModDodge
	case StatHP:
		return m.ModHP
	case StatMelee:
		return m.ModMelee
	case StatRanged:
		return m.ModRanged
	case StatSpeed:
		return m.ModSpeed
	default:
		return 0
	}
}

// AddModifier changes the permanent offset of st and rebuilds the stats.
func (m *Monster) AddModifier(st Stat, delta int) {
	switch st {
	case StatArmour:
		m.ModArmour += delta
	case StatDodge:
		m.ModDodge += delta
	case StatHP:
		m.ModHP += delta
	case StatMelee:
		m.ModMelee += delta
	case StatRanged:
		m.ModRanged += delta
	case StatSpeed:
		m.ModSpeed += delta
	}
	m.SetStats()
}

// SetStats rebuilds the live stats from shape, level, modifiers and tastes,
// discarding transient combat changes. Current HP is clamped to the new HP.
func (m *Monster) SetStats() {
	for _, st := range AllStats {
		base := BaseStat(m.Shape.Stats.Get(st), m.Level, m.Modifier(st))
		v := applyTastes(st, base, m.TasteWarm, m.TasteCold)
		if v < 1 {
			v = 1
		}
		switch st {
		case StatArmour:
			m.Armour = v
		case StatDodge:
			m.Dodge = v
		case StatHP:
			m.HP = v
		case StatMelee:
			m.Melee = v
		case StatRanged:
			m.Ranged = v
		case StatSpeed:
			m.Speed = v
		}
	}
	m.SetCurrentHP(m.currentHP)
}

// CurrentHP returns the current hit points.
func (m *Monster) CurrentHP() int {
	return m.currentHP
}

// SetCurrentHP sets current HP clamped to [0, HP].
func (m *Monster) SetCurrentHP(hp int) {
	if hp < 0 {
		hp = 0
	}
	if hp > m.HP {
		hp = m.HP
	}
	m.currentHP = hp
}

// Damage reduces current HP and returns the HP actually lost.
func (m *Monster) Damage(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := m.currentHP
	m.SetCurrentHP(before - amount)
	return before - m.currentHP
}

// Heal restores current HP and returns the HP actually gained.
func (m *Monster) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := m.currentHP
	m.SetCurrentHP(before + amount)
	return m.currentHP - before
}

// HPRatio returns current HP as a fraction of HP (0.0 - 1.0).
func (m *Monster) HPRatio() float64 {
	if m.HP <= 0 {
		return 0
	}
	return float64(m.currentHP) / float64(m.HP)
}

// IsFainted reports whether the monster is out of the fight.
func (m *Monster) IsFainted() bool {
	return m.currentHP <= 0 || m.HasStatus(FaintSlug)
}

// Faint knocks the monster out: HP 0, status cleared and replaced by the
// terminal faint condition. Returns false if it had already fainted.
func (m *Monster) Faint(faint *Condition) bool {
	if m.HasStatus(FaintSlug) {
		return false
	}
	m.currentHP = 0
	m.status = nil
	if faint != nil {
		faint.Link = m
		m.status = append(m.status, faint)
	}
	return true
}

// Targetable reports whether techniques can reach the monster.
func (m *Monster) Targetable() bool {
	return m.OutOfRange == ""
}

// HasType reports whether the monster has element e.
func (m *Monster) HasType(e Element) bool {
	for _, t := range m.Types {
		if t == e {
			return true
		}
	}
	return false
}

// Moves returns the techniques in learn order.
func (m *Monster) Moves() []*Technique {
	return m.moves
}

// Learn appends a technique.
func (m *Monster) Learn(t *Technique) error {
	if len(m.moves) >= MaxMoves {
		return fmt.Errorf("learning %s: %w", t.Slug, ErrMovesFull)
	}
	if m.FindTechnique(t.Slug) != nil {
		return fmt.Errorf("learning %s: %w", t.Slug, ErrAlreadyKnown)
	}
	m.moves = append(m.moves, t)
	return nil
}

// Forget removes the technique with the given slug.
func (m *Monster) Forget(slug string) bool {
	for i, t := range m.moves {
		if t.Slug == slug {
			m.moves = append(m.moves[:i], m.moves[i+1:]...)
			return true
		}
	}
	return false
}

// FindTechnique returns the known technique with the given slug, or nil.
func (m *Monster) FindTechnique(slug string) *Technique {
	for _, t := range m.moves {
		if t.Slug == slug {
			return t
		}
	}
	return nil
}

// Status returns the active conditions.
func (m *Monster) Status() []*Condition {
	return m.status
}

// HasStatus reports whether a condition with slug is active.
func (m *Monster) HasStatus(slug string) bool {
	for _, c := range m.status {
		if c.Slug == slug {
			return true
		}
	}
	return false
}

// ApplyStatus attaches c following the one-active-status policy:
//   - no status: c is appended
//   - same slug active: no-op
//   - otherwise the old category decides: positive uses c.ReplPos,
//     negative uses c.ReplNeg ("replaced" swaps to [c], "removed" clears,
//     anything else keeps the old one); neutral always replaces.
//
// Returns true if c became active.
func (m *Monster) ApplyStatus(c *Condition) bool {
	if len(m.status) == 0 {
		c.Link = m
		m.status = append(m.status, c)
		return true
	}
	for _, s := range m.status {
		if s.Slug == c.Slug {
			return false
		}
	}
	old := m.status[0]
	old.NrTurn = 0
	c.NrTurn = 1

	policy := ReplReplaced
	switch old.Category {
	case CategoryPositive:
		policy = c.ReplPos
	case CategoryNegative:
		policy = c.ReplNeg
	}
	switch policy {
	case ReplReplaced:
		c.Link = m
		m.status = []*Condition{c}
		return true
	case ReplRemoved:
		m.status = nil
	}
	return false
}

// RemoveStatus drops the condition with slug.
func (m *Monster) RemoveStatus(slug string) bool {
	for i, c := range m.status {
		if c.Slug == slug {
			m.status = append(m.status[:i], m.status[i+1:]...)
			return true
		}
	}
	return false
}

// ClearStatus drops every condition.
func (m *Monster) ClearStatus() {
	m.status = nil
}

// Owner returns the party holding the monster, nil for wild ones.
func (m *Monster) Owner() *Party {
	return m.owner
}

// EndCombat restores the monster after a battle: moves fully recharged,
// transient status dropped unless fainted, stats rebuilt.
func (m *Monster) EndCombat() {
	for _, t := range m.moves {
		t.NextUse = 0
		t.SetStats()
	}
	if !m.HasStatus(FaintSlug) {
		m.ClearStatus()
	}
	m.OutOfRange = ""
	if len(m.BaseTypes) > 0 {
		m.Types = slices.Clone(m.BaseTypes)
	}
	m.SetStats()
}

// ExperienceRequired returns the total experience needed for level+ofs.
func (m *Monster) ExperienceRequired(ofs int) int {
	lvl := float64(m.Level + ofs)
	mod := m.ExperienceModifier
	if mod <= 0 {
		mod = 1
	}
	return int(math.Pow(lvl, 3) * mod)
}

// GiveExperience adds experience and levels up while the curve allows it.
// Returns the number of levels gained.
func (m *Monster) GiveExperience(amount int) int {
	if amount <= 0 {
		return 0
	}
	m.TotalExperience += amount
	m.GotExperience = true
	levels := 0
	for m.Level < MaxLevel && m.TotalExperience >= m.ExperienceRequired(1) {
		m.Level++
		levels++
	}
	if levels > 0 {
		m.LevellingUp = true
		m.SetStats()
	}
	return levels
}

package model

import "github.com/google/uuid"

// Condition categories.
const (
	CategoryPositive = "positive"
	CategoryNegative = "negative"
	CategoryNeutral  = "neutral"
)

// Replacement policies used by ApplyStatus.
const (
	ReplReplaced = "replaced"
	ReplRemoved  = "removed"
)

// FaintSlug is the terminal condition applied on faint.
const FaintSlug = "faint"

// Condition is a status effect attached to one monster.
type Condition struct {
	Slug       string
	InstanceID uuid.UUID
	Sort       string
	Category   string
	Duration   int
	// NrTurn counts the turns the condition has been active.
	NrTurn int
	// Bond keeps the condition on its monster when it is swapped out.
	Bond bool
	// Reactive conditions run their effects when the holder is tackled.
	Reactive bool

	ReplPos  string
	ReplNeg  string
	ReplTech string
	ReplItem string

	// Link is the afflicted monster (non-owning).
	Link *Monster

	Effects    []CondEffect
	Predicates []Clause
}

func (c *Condition) Name() string      { return c.Slug }
func (c *Condition) SortGroup() string { return c.Sort }
func (c *Condition) Fast() bool        { return false }

// Validate reports whether all predicates hold for target.
func (c *Condition) Validate(target *Monster) bool {
	return clausesHold(c.Predicates, target)
}

// Use runs every effect in order and aggregates the results.
func (c *Condition) Use(a Arena, target *Monster) Result {
	res := NewResult(false)
	for _, e := range c.Effects {
		res = res.Merge(e.ApplyCond(a, c, target))
	}
	return res
}

// Expired reports whether the condition outlived its duration. A zero
// duration never expires.
func (c *Condition) Expired() bool {
	return c.Duration > 0 && c.NrTurn > c.Duration
}

// ConditionState is the persisted subset of a condition.
type ConditionState struct {
	Slug       string    `json:"slug" yaml:"slug"`
	InstanceID uuid.UUID `json:"instance_id" yaml:"instance_id"`
	NrTurn     int       `json:"nr_turn" yaml:"nr_turn"`
	Duration   int       `json:"duration" yaml:"duration"`
}

// GetState returns the persisted fields.
func (c *Condition) GetState() ConditionState {
	return ConditionState{
		Slug:       c.Slug,
		InstanceID: c.InstanceID,
		NrTurn:     c.NrTurn,
		Duration:   c.Duration,
	}
}

// SetState restores the persisted fields onto a hydrated condition.
func (c *Condition) SetState(s ConditionState) {
	if s.InstanceID != uuid.Nil {
		c.InstanceID = s.InstanceID
	}
	c.NrTurn = s.NrTurn
	c.Duration = s.Duration
}

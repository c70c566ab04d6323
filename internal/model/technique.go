package model

import "github.com/google/uuid"

// Range selects which stats the damage formula reads.
type Range string

const (
	RangeMelee    Range = "melee"
	RangeTouch    Range = "touch"
	RangeRanged   Range = "ranged"
	RangeReach    Range = "reach"
	RangeReliable Range = "reliable"
	RangeSpecial  Range = "special"
)

// Targeting tells who a technique is meant for.
type Targeting string

const (
	TargetEnemy Targeting = "enemy"
	TargetSelf  Targeting = "self"
)

// Technique is a move instance owned by one monster.
type Technique struct {
	Slug       string
	InstanceID uuid.UUID
	Sort       string
	Range      Range
	Types      []Element
	Target     Targeting

	Accuracy       float64
	Power          float64
	Potency        float64
	DefaultPower   float64
	DefaultPotency float64
	HealingPower   float64
	RechargeLength int
	IsFast         bool

	Effects    []TechEffect
	Predicates []Clause

	// NextUse is the number of turns until the technique can be used again.
	NextUse int
	// Hit records whether the accuracy check of the current use succeeded.
	Hit bool
	// Counter is the number of times the technique was used.
	Counter int
}

func (t *Technique) Name() string      { return t.Slug }
func (t *Technique) SortGroup() string { return t.Sort }
func (t *Technique) Fast() bool        { return t.IsFast }

// Use starts the recharge, rolls the accuracy check into Hit, then runs
// every effect in order and aggregates the results. Effects mutate user and
// target as they run and read Hit instead of rolling again.
func (t *Technique) Use(a Arena, user, target *Monster) Result {
	t.NextUse = t.RechargeLength
	t.Counter++
	t.Hit = true
	if a != nil {
		t.Hit = a.Rand().Float64() <= t.Accuracy
	}
	res := NewResult(false)
	for _, e := range t.Effects {
		res = res.Merge(e.ApplyTech(a, t, user, target))
	}
	return res
}

// Validate reports whether all predicates hold for target.
func (t *Technique) Validate(target *Monster) bool {
	return clausesHold(t.Predicates, target)
}

// Recharge advances the recharge counter by one turn.
func (t *Technique) Recharge() {
	t.NextUse--
}

// Ready reports whether the technique can be used this turn.
func (t *Technique) Ready() bool {
	return t.NextUse <= 0
}

// SetStats restores power and potency changed during combat.
func (t *Technique) SetStats() {
	t.Power = t.DefaultPower
	t.Potency = t.DefaultPotency
}

// HasEffect reports whether an effect with the given name is attached.
func (t *Technique) HasEffect(name string) bool {
	for _, e := range t.Effects {
		if e.Name() == name {
			return true
		}
	}
	return false
}

// TechniqueState is the persisted subset of a technique.
type TechniqueState struct {
	Slug       string    `json:"slug" yaml:"slug"`
	InstanceID uuid.UUID `json:"instance_id" yaml:"instance_id"`
	Counter    int       `json:"counter" yaml:"counter"`
	NextUse    int       `json:"next_use" yaml:"next_use"`
}

// GetState returns the persisted fields.
func (t *Technique) GetState() TechniqueState {
	return TechniqueState{
		Slug:       t.Slug,
		InstanceID: t.InstanceID,
		Counter:    t.Counter,
		NextUse:    t.NextUse,
	}
}

// SetState restores the persisted fields onto a hydrated technique.
func (t *Technique) SetState(s TechniqueState) {
	if s.InstanceID != uuid.Nil {
		t.InstanceID = s.InstanceID
	}
	t.Counter = s.Counter
	t.NextUse = s.NextUse
}

package skill

import (
	"github.com/udisondev/tuxbattle/internal/model"
)

// HasStatus is true when the monster carries the condition slug.
type HasStatus struct{ slug string }

func newHasStatus(p Params) (model.Predicate, error) {
	if err := p.want(1); err != nil {
		return nil, err
	}
	return HasStatus{slug: p.Args[0]}, nil
}

func (c HasStatus) Name() string               { return "has_status" }
func (c HasStatus) Test(m *model.Monster) bool { return m.HasStatus(c.slug) }

// HasType is true when the monster has the element.
type HasType struct{ element model.Element }

func newHasType(p Params) (model.Predicate, error) {
	if err := p.want(1); err != nil {
		return nil, err
	}
	el, err := p.element(0)
	if err != nil {
		return nil, err
	}
	return HasType{element: el}, nil
}

func (c HasType) Name() string               { return "has_type" }
func (c HasType) Test(m *model.Monster) bool { return m.HasType(c.element) }

// StatusCategory is true when any active condition has the category.
type StatusCategory struct{ category string }

func newStatusCategory(p Params) (model.Predicate, error) {
	if err := p.want(1); err != nil {
		return nil, err
	}
	switch p.Args[0] {
	case model.CategoryPositive, model.CategoryNegative, model.CategoryNeutral:
	default:
		return nil, p.errorf("unknown category %q", p.Args[0])
	}
	return StatusCategory{category: p.Args[0]}, nil
}

func (c StatusCategory) Name() string { return "status_category" }

func (c StatusCategory) Test(m *model.Monster) bool {
	for _, s := range m.Status() {
		if s.Category == c.category {
			return true
		}
	}
	return false
}

// CurrentHP compares current HP as a percentage of max HP.
type CurrentHP struct {
	op      string
	percent float64
}

func newCurrentHP(p Params) (model.Predicate, error) {
	if err := p.want(2); err != nil {
		return nil, err
	}
	op, err := p.operator(0)
	if err != nil {
		return nil, err
	}
	pct, err := p.float(1)
	if err != nil {
		return nil, err
	}
	return CurrentHP{op: op, percent: pct}, nil
}

func (c CurrentHP) Name() string { return "current_hp" }

func (c CurrentHP) Test(m *model.Monster) bool {
	ok, _ := model.Compare(c.op, m.HPRatio()*100, c.percent)
	return ok
}

// Level compares the monster level.
type Level struct {
	op    string
	value float64
}

func newLevel(p Params) (model.Predicate, error) {
	if err := p.want(2); err != nil {
		return nil, err
	}
	op, err := p.operator(0)
	if err != nil {
		return nil, err
	}
	v, err := p.float(1)
	if err != nil {
		return nil, err
	}
	return Level{op: op, value: v}, nil
}

func (c Level) Name() string { return "level" }

func (c Level) Test(m *model.Monster) bool {
	ok, _ := model.Compare(c.op, float64(m.Level), c.value)
	return ok
}

// Wild is true for monsters without a trainer.
type Wild struct{}

func newWild(p Params) (model.Predicate, error) {
	if err := p.want(0); err != nil {
		return nil, err
	}
	return Wild{}, nil
}

func (Wild) Name() string               { return "wild" }
func (Wild) Test(m *model.Monster) bool { return m.Wild }

// OutOfRange is true while the monster is flying or submerged.
type OutOfRange struct{}

func newOutOfRange(p Params) (model.Predicate, error) {
	if err := p.want(0); err != nil {
		return nil, err
	}
	return OutOfRange{}, nil
}

func (OutOfRange) Name() string               { return "out_of_range" }
func (OutOfRange) Test(m *model.Monster) bool { return !m.Targetable() }

// Fainted is true for knocked out monsters.
type Fainted struct{}

func newFainted(p Params) (model.Predicate, error) {
	if err := p.want(0); err != nil {
		return nil, err
	}
	return Fainted{}, nil
}

func (Fainted) Name() string               { return "fainted" }
func (Fainted) Test(m *model.Monster) bool { return m.IsFainted() }

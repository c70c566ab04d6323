package skill

import (
	"github.com/udisondev/tuxbattle/internal/model"
)

// changeStat scales a live stat by (1 + amount). A non-zero amount moves
// the stat by at least one point.
func changeStat(m *model.Monster, st model.Stat, amount float64) {
	cur := m.Stat(st)
	delta := int(float64(cur) * amount)
	if delta == 0 {
		switch {
		case amount > 0:
			delta = 1
		case amount < 0:
			delta = -1
		}
	}
	m.SetStat(st, cur+delta)
}

// StatChangeEffect changes a live stat of the user or the target until the
// end of combat.
type StatChangeEffect struct {
	stat      model.Stat
	amount    float64
	objective objective
}

func newStatChangeEffect(p Params) (model.TechEffect, error) {
	if err := p.want(3); err != nil {
		return nil, err
	}
	st, err := p.stat(0)
	if err != nil {
		return nil, err
	}
	amount, err := p.float(1)
	if err != nil {
		return nil, err
	}
	obj, err := p.objective(2)
	if err != nil {
		return nil, err
	}
	return &StatChangeEffect{stat: st, amount: amount, objective: obj}, nil
}

func (e *StatChangeEffect) Name() string { return "statchange" }

func (e *StatChangeEffect) ApplyTech(_ model.Arena, t *model.Technique, user, target *model.Monster) model.Result {
	subject := e.objective.pick(user, target)
	if subject == nil || subject.IsFainted() || !t.Hit {
		return model.Failed(tokenMiss)
	}
	changeStat(subject, e.stat, e.amount)
	res := model.NewResult(true)
	res.Extra = tokenStatChanged
	return res
}

// SwitchEffect replaces the types of the user or the target with one
// element until the end of combat.
type SwitchEffect struct {
	element   model.Element
	objective objective
}

func newSwitchEffect(p Params) (model.TechEffect, error) {
	if err := p.want(2); err != nil {
		return nil, err
	}
	el, err := p.element(0)
	if err != nil {
		return nil, err
	}
	obj, err := p.objective(1)
	if err != nil {
		return nil, err
	}
	return &SwitchEffect{element: el, objective: obj}, nil
}

func (e *SwitchEffect) Name() string { return "switch" }

func (e *SwitchEffect) ApplyTech(_ model.Arena, t *model.Technique, user, target *model.Monster) model.Result {
	subject := e.objective.pick(user, target)
	if subject == nil || subject.IsFainted() || !t.Hit {
		return model.Failed(tokenMiss)
	}
	if len(subject.Types) == 1 && subject.Types[0] == e.element {
		return model.Failed(tokenTypeSwitched)
	}
	subject.Types = []model.Element{e.element}
	res := model.NewResult(true)
	res.Extra = tokenTypeSwitched
	return res
}

// DisappearEffect takes the user out of range (flying or submerged).
type DisappearEffect struct {
	where string
}

func newDisappearEffect(p Params) (model.TechEffect, error) {
	if err := p.want(1); err != nil {
		return nil, err
	}
	switch p.Args[0] {
	case "flying", "submerged":
	default:
		return nil, p.errorf("unknown range %q", p.Args[0])
	}
	return &DisappearEffect{where: p.Args[0]}, nil
}

func (e *DisappearEffect) Name() string { return "disappear" }

func (e *DisappearEffect) ApplyTech(_ model.Arena, _ *model.Technique, user, _ *model.Monster) model.Result {
	if !user.Targetable() {
		return model.Failed(tokenDisappeared)
	}
	user.OutOfRange = e.where
	res := model.NewResult(true)
	res.Extra = tokenDisappeared
	return res
}

// AppearEffect brings the user back into range.
type AppearEffect struct{}

func newAppearEffect(p Params) (model.TechEffect, error) {
	if err := p.want(0); err != nil {
		return nil, err
	}
	return &AppearEffect{}, nil
}

func (e *AppearEffect) Name() string { return "appear" }

func (e *AppearEffect) ApplyTech(_ model.Arena, _ *model.Technique, user, _ *model.Monster) model.Result {
	if user.Targetable() {
		return model.NewResult(false)
	}
	user.OutOfRange = ""
	res := model.NewResult(true)
	res.Extra = tokenAppeared
	return res
}

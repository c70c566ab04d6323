package skill

import (
	"log/slog"
	"slices"

	"github.com/udisondev/tuxbattle/internal/game/formula"
	"github.com/udisondev/tuxbattle/internal/model"
)

// GiveEffect applies a condition to the user or the target. The technique
// must have hit and the potency roll must pass.
type GiveEffect struct {
	condition string
	objective objective
}

func newGiveEffect(p Params) (model.TechEffect, error) {
	if err := p.want(2); err != nil {
		return nil, err
	}
	obj, err := p.objective(1)
	if err != nil {
		return nil, err
	}
	return &GiveEffect{condition: p.Args[0], objective: obj}, nil
}

func (e *GiveEffect) Name() string { return "give" }

func (e *GiveEffect) ApplyTech(a model.Arena, t *model.Technique, user, target *model.Monster) model.Result {
	subject := e.objective.pick(user, target)
	if subject == nil || subject.IsFainted() {
		return model.Failed(tokenStatusFailed)
	}
	if e.objective == objectiveTarget && !subject.Targetable() {
		return model.Failed(tokenOutOfRange)
	}
	if !t.Hit || !formula.Chance(t.Potency, a.Rand()) {
		return model.Failed(tokenStatusFailed)
	}
	cond, err := a.NewCondition(e.condition)
	if err != nil {
		slog.Warn("give: cannot create condition",
			"technique", t.Slug,
			"condition", e.condition,
			"error", err)
		return model.Failed(tokenStatusFailed)
	}
	if !subject.ApplyStatus(cond) {
		return model.Failed(tokenStatusFailed)
	}
	res := model.NewResult(true)
	res.Extra = tokenStatusApplied
	return res
}

// RemoveEffect removes one condition, or every non-terminal one with "all".
type RemoveEffect struct {
	condition string
	objective objective
}

func newRemoveEffect(p Params) (model.TechEffect, error) {
	if err := p.want(2); err != nil {
		return nil, err
	}
	obj, err := p.objective(1)
	if err != nil {
		return nil, err
	}
	return &RemoveEffect{condition: p.Args[0], objective: obj}, nil
}

func (e *RemoveEffect) Name() string { return "remove" }

func (e *RemoveEffect) ApplyTech(_ model.Arena, t *model.Technique, user, target *model.Monster) model.Result {
	subject := e.objective.pick(user, target)
	if subject == nil || subject.IsFainted() || !t.Hit {
		return model.Failed(tokenStatusFailed)
	}
	removed := false
	if e.condition == "all" {
		for _, c := range slices.Clone(subject.Status()) {
			if c.Slug != model.FaintSlug {
				removed = subject.RemoveStatus(c.Slug) || removed
			}
		}
	} else {
		removed = subject.RemoveStatus(e.condition)
	}
	if !removed {
		return model.Failed(tokenStatusFailed)
	}
	res := model.NewResult(true)
	res.Extra = tokenStatusRemoved
	return res
}

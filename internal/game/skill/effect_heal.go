package skill

import (
	"github.com/udisondev/tuxbattle/internal/game/formula"
	"github.com/udisondev/tuxbattle/internal/model"
)

// HealingEffect restores the user's HP by (7 + level) * healing_power.
type HealingEffect struct{}

func newHealingEffect(p Params) (model.TechEffect, error) {
	if err := p.want(0); err != nil {
		return nil, err
	}
	return &HealingEffect{}, nil
}

func (e *HealingEffect) Name() string { return "healing" }

func (e *HealingEffect) ApplyTech(_ model.Arena, t *model.Technique, user, _ *model.Monster) model.Result {
	if !t.Hit || user.IsFainted() {
		return model.Failed(tokenMiss)
	}
	if user.Heal(formula.Heal(t, user)) == 0 {
		return model.Failed(tokenHealed)
	}
	res := model.NewResult(true)
	res.Extra = tokenHealed
	return res
}

// LifeLeechEffect drains fraction of the target's max HP and gives it to
// the user.
type LifeLeechEffect struct {
	fraction float64
}

func newLifeLeechEffect(p Params) (model.TechEffect, error) {
	if err := p.want(1); err != nil {
		return nil, err
	}
	f, err := p.probability(0)
	if err != nil {
		return nil, err
	}
	return &LifeLeechEffect{fraction: f}, nil
}

func (e *LifeLeechEffect) Name() string { return "lifeleech" }

func (e *LifeLeechEffect) ApplyTech(_ model.Arena, t *model.Technique, user, target *model.Monster) model.Result {
	if res, ok := strike(t, target); !ok {
		return res
	}
	drain := max(int(float64(target.HP)*e.fraction), 1)
	res := hit(target, drain, 1.0)
	user.Heal(res.Damage)
	res.Extra = tokenDrained
	return res
}

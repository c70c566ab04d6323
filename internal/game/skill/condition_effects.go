package skill

import (
	"github.com/udisondev/tuxbattle/internal/game/formula"
	"github.com/udisondev/tuxbattle/internal/model"
)

// PoisonEffect deals hp / divisor damage every turn.
type PoisonEffect struct {
	divisor int
}

func newPoisonEffect(p Params) (model.CondEffect, error) {
	if err := p.want(1); err != nil {
		return nil, err
	}
	d, err := p.divisor(0)
	if err != nil {
		return nil, err
	}
	return &PoisonEffect{divisor: d}, nil
}

func (e *PoisonEffect) Name() string { return "poison" }

func (e *PoisonEffect) ApplyCond(_ model.Arena, _ *model.Condition, target *model.Monster) model.Result {
	if target.IsFainted() {
		return model.NewResult(false)
	}
	res := model.NewResult(true)
	res.Damage = target.Damage(max(target.HP/e.divisor, 1))
	res.Extra = tokenPoisoned
	return res
}

// RecoverEffect heals hp / divisor every turn.
type RecoverEffect struct {
	divisor int
}

func newRecoverEffect(p Params) (model.CondEffect, error) {
	if err := p.want(1); err != nil {
		return nil, err
	}
	d, err := p.divisor(0)
	if err != nil {
		return nil, err
	}
	return &RecoverEffect{divisor: d}, nil
}

func (e *RecoverEffect) Name() string { return "recover" }

func (e *RecoverEffect) ApplyCond(_ model.Arena, _ *model.Condition, target *model.Monster) model.Result {
	if target.IsFainted() || target.Heal(max(target.HP/e.divisor, 1)) == 0 {
		return model.NewResult(false)
	}
	res := model.NewResult(true)
	res.Extra = tokenRecovered
	return res
}

// CondStatChangeEffect changes a live stat once, on the first turn the
// condition runs.
type CondStatChangeEffect struct {
	stat   model.Stat
	amount float64
	done   bool
}

func newCondStatChangeEffect(p Params) (model.CondEffect, error) {
	if err := p.want(2); err != nil {
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
	return &CondStatChangeEffect{stat: st, amount: amount}, nil
}

func (e *CondStatChangeEffect) Name() string { return "statchange" }

func (e *CondStatChangeEffect) ApplyCond(_ model.Arena, c *model.Condition, target *model.Monster) model.Result {
	if e.done || c.NrTurn > 1 || target.IsFainted() {
		return model.NewResult(false)
	}
	e.done = true
	changeStat(target, e.stat, e.amount)
	res := model.NewResult(true)
	res.Extra = tokenStatChanged
	return res
}

// lastAttack returns the most recent entry of this turn that targeted m.
func lastAttack(a model.Arena, m *model.Monster) (model.HistoryEntry, bool) {
	h := a.History(a.Turn())
	for i := len(h) - 1; i >= 0; i-- {
		if h[i].Action.Target == m && h[i].Action.User != m && h[i].Action.User != nil {
			return h[i], true
		}
	}
	return model.HistoryEntry{}, false
}

// PricklyEffect hurts whoever tackled the holder for attacker.hp / divisor.
type PricklyEffect struct {
	divisor int
}

func newPricklyEffect(p Params) (model.CondEffect, error) {
	if err := p.want(1); err != nil {
		return nil, err
	}
	d, err := p.divisor(0)
	if err != nil {
		return nil, err
	}
	return &PricklyEffect{divisor: d}, nil
}

func (e *PricklyEffect) Name() string { return "prickly" }

func (e *PricklyEffect) ApplyCond(a model.Arena, _ *model.Condition, target *model.Monster) model.Result {
	last, ok := lastAttack(a, target)
	if !ok || last.Action.User.IsFainted() {
		return model.NewResult(false)
	}
	attacker := last.Action.User
	res := model.NewResult(true)
	res.Damage = attacker.Damage(max(attacker.HP/e.divisor, 1))
	res.Extra = tokenPrickly
	return res
}

// FeedbackEffect returns fraction of the damage the holder just took to
// the attacker.
type FeedbackEffect struct {
	fraction float64
}

func newFeedbackEffect(p Params) (model.CondEffect, error) {
	if err := p.want(1); err != nil {
		return nil, err
	}
	f, err := p.probability(0)
	if err != nil {
		return nil, err
	}
	return &FeedbackEffect{fraction: f}, nil
}

func (e *FeedbackEffect) Name() string { return "feedback" }

func (e *FeedbackEffect) ApplyCond(a model.Arena, _ *model.Condition, target *model.Monster) model.Result {
	last, ok := lastAttack(a, target)
	if !ok || last.Result.Damage <= 0 || last.Action.User.IsFainted() {
		return model.NewResult(false)
	}
	res := model.NewResult(true)
	res.Damage = last.Action.User.Damage(int(float64(last.Result.Damage) * e.fraction))
	res.Extra = tokenFeedback
	return res
}

// NoddingOffEffect makes the holder lose its queued action unless it wakes
// up. Waking removes the condition.
type NoddingOffEffect struct {
	wakeChance float64
}

func newNoddingOffEffect(p Params) (model.CondEffect, error) {
	if err := p.want(1); err != nil {
		return nil, err
	}
	w, err := p.probability(0)
	if err != nil {
		return nil, err
	}
	return &NoddingOffEffect{wakeChance: w}, nil
}

func (e *NoddingOffEffect) Name() string { return "noddingoff" }

func (e *NoddingOffEffect) ApplyCond(a model.Arena, c *model.Condition, target *model.Monster) model.Result {
	if target.IsFainted() {
		return model.NewResult(false)
	}
	if c.NrTurn > 0 && formula.Chance(e.wakeChance, a.Rand()) {
		target.RemoveStatus(c.Slug)
		return model.Failed(tokenWokeUp)
	}
	a.RemoveActions(target)
	res := model.NewResult(true)
	res.Extra = tokenNoddingOff
	return res
}

// FaintEffect marks the terminal faint condition. It does nothing.
type FaintEffect struct{}

func newFaintEffect(p Params) (model.CondEffect, error) {
	if err := p.want(0); err != nil {
		return nil, err
	}
	return &FaintEffect{}, nil
}

func (e *FaintEffect) Name() string { return "faint" }

func (e *FaintEffect) ApplyCond(_ model.Arena, _ *model.Condition, _ *model.Monster) model.Result {
	return model.NewResult(true)
}

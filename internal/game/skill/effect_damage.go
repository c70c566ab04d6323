package skill

import (
	"github.com/udisondev/tuxbattle/internal/game/formula"
	"github.com/udisondev/tuxbattle/internal/model"
)

// Narration tokens returned in Result.Extra.
const (
	tokenMiss          = "combat_miss"
	tokenOutOfRange    = "combat_target_out_of_range"
	tokenNothingToHit  = "combat_retaliate_nothing"
	tokenMoneyGained   = "combat_money_gained"
	tokenStatusFailed  = "combat_status_failed"
	tokenStatusApplied = "combat_status_applied"
	tokenStatusRemoved = "combat_status_removed"
	tokenStatChanged   = "combat_stat_changed"
	tokenTypeSwitched  = "combat_type_switched"
	tokenDisappeared   = "combat_disappeared"
	tokenAppeared      = "combat_appeared"
	tokenSwapped       = "combat_swap"
	tokenSwapFailed    = "combat_swap_failed"
	tokenRanAway       = "combat_ran_away"
	tokenCantRun       = "combat_cant_run"
	tokenForfeited     = "combat_forfeited"
	tokenCantForfeit   = "combat_cant_forfeit"
	tokenHealed        = "combat_healed"
	tokenDrained       = "combat_drained"
	tokenPoisoned      = "combat_poison_damage"
	tokenRecovered     = "combat_recover_heal"
	tokenPrickly       = "combat_prickly"
	tokenFeedback      = "combat_feedback"
	tokenNoddingOff    = "combat_noddingoff"
	tokenWokeUp        = "combat_wake_up"
)

// strike runs the accuracy and range gate shared by every damaging effect.
func strike(t *model.Technique, target *model.Monster) (model.Result, bool) {
	if target == nil || target.IsFainted() {
		return model.Failed(tokenMiss), false
	}
	if !target.Targetable() {
		return model.Failed(tokenOutOfRange), false
	}
	if !t.Hit {
		return model.Failed(tokenMiss), false
	}
	return model.Result{}, true
}

// hit deals dmg to target and builds the tackling result.
func hit(target *model.Monster, dmg int, mult float64) model.Result {
	dealt := target.Damage(dmg)
	res := model.NewResult(true)
	res.Damage = dealt
	res.ElementMultiplier = mult
	res.ShouldTackle = dealt > 0
	return res
}

// DamageEffect deals formula damage to the target.
type DamageEffect struct{}

func newDamageEffect(p Params) (model.TechEffect, error) {
	if err := p.want(0); err != nil {
		return nil, err
	}
	return &DamageEffect{}, nil
}

func (e *DamageEffect) Name() string { return "damage" }

func (e *DamageEffect) ApplyTech(_ model.Arena, t *model.Technique, user, target *model.Monster) model.Result {
	if res, ok := strike(t, target); !ok {
		return res
	}
	dmg, mult := formula.Damage(t, user, target)
	return hit(target, dmg, mult)
}

// AreaEffect hits every opponent of the user for damage / divisor.
type AreaEffect struct {
	divisor int
}

func newAreaEffect(p Params) (model.TechEffect, error) {
	if err := p.want(1); err != nil {
		return nil, err
	}
	d, err := p.divisor(0)
	if err != nil {
		return nil, err
	}
	return &AreaEffect{divisor: d}, nil
}

func (e *AreaEffect) Name() string { return "area" }

func (e *AreaEffect) ApplyTech(a model.Arena, t *model.Technique, user, target *model.Monster) model.Result {
	if res, ok := strike(t, target); !ok {
		return res
	}
	dmg, mult := formula.Damage(t, user, target)
	res := hit(target, dmg/e.divisor, mult)
	for _, o := range a.Opponents(user) {
		if o == target || o.IsFainted() || !o.Targetable() {
			continue
		}
		od, _ := formula.Damage(t, user, o)
		res.Damage += o.Damage(od / e.divisor)
	}
	return res
}

// SplashEffect deals full damage to the target and damage / divisor to
// each of the target's allies.
type SplashEffect struct {
	divisor int
}

func newSplashEffect(p Params) (model.TechEffect, error) {
	if err := p.want(1); err != nil {
		return nil, err
	}
	d, err := p.divisor(0)
	if err != nil {
		return nil, err
	}
	return &SplashEffect{divisor: d}, nil
}

func (e *SplashEffect) Name() string { return "splash" }

func (e *SplashEffect) ApplyTech(a model.Arena, t *model.Technique, user, target *model.Monster) model.Result {
	if res, ok := strike(t, target); !ok {
		return res
	}
	dmg, mult := formula.Damage(t, user, target)
	res := hit(target, dmg, mult)
	for _, ally := range a.Allies(target) {
		if ally.IsFainted() || !ally.Targetable() {
			continue
		}
		ad, _ := formula.Damage(t, user, ally)
		res.Damage += ally.Damage(ad / e.divisor)
	}
	return res
}

// RetaliateEffect returns multiplier times the damage the target dealt to
// the user earlier this turn.
type RetaliateEffect struct {
	multiplier float64
}

func newRetaliateEffect(p Params) (model.TechEffect, error) {
	if err := p.want(1); err != nil {
		return nil, err
	}
	m, err := p.float(0)
	if err != nil {
		return nil, err
	}
	return &RetaliateEffect{multiplier: m}, nil
}

func (e *RetaliateEffect) Name() string { return "retaliate" }

func (e *RetaliateEffect) ApplyTech(a model.Arena, t *model.Technique, user, target *model.Monster) model.Result {
	if res, ok := strike(t, target); !ok {
		return res
	}
	taken := 0
	for _, h := range a.History(a.Turn()) {
		if h.Action.User == target && h.Action.Target == user {
			taken += h.Result.Damage
		}
	}
	if taken == 0 {
		return model.Failed(tokenNothingToHit)
	}
	return hit(target, int(float64(taken)*e.multiplier), 1.0)
}

// RevengeEffect deals formula damage, multiplied when the user was hurt
// earlier this turn.
type RevengeEffect struct {
	multiplier float64
}

func newRevengeEffect(p Params) (model.TechEffect, error) {
	if err := p.want(1); err != nil {
		return nil, err
	}
	m, err := p.float(0)
	if err != nil {
		return nil, err
	}
	return &RevengeEffect{multiplier: m}, nil
}

func (e *RevengeEffect) Name() string { return "revenge" }

func (e *RevengeEffect) ApplyTech(a model.Arena, t *model.Technique, user, target *model.Monster) model.Result {
	if res, ok := strike(t, target); !ok {
		return res
	}
	dmg, mult := formula.Damage(t, user, target)
	for _, h := range a.History(a.Turn()) {
		if h.Action.Target == user && h.Action.User != user && h.Result.Damage > 0 {
			dmg = int(float64(dmg) * e.multiplier)
			break
		}
	}
	return hit(target, dmg, mult)
}

// MoneyEffect deals formula damage and pays the user's party
// multiplier times the damage dealt.
type MoneyEffect struct {
	multiplier float64
}

func newMoneyEffect(p Params) (model.TechEffect, error) {
	if err := p.want(1); err != nil {
		return nil, err
	}
	m, err := p.float(0)
	if err != nil {
		return nil, err
	}
	return &MoneyEffect{multiplier: m}, nil
}

func (e *MoneyEffect) Name() string { return "money" }

func (e *MoneyEffect) ApplyTech(_ model.Arena, t *model.Technique, user, target *model.Monster) model.Result {
	if res, ok := strike(t, target); !ok {
		return res
	}
	dmg, mult := formula.Damage(t, user, target)
	res := hit(target, dmg, mult)
	if owner := user.Owner(); owner != nil && res.Damage > 0 {
		gain := int(float64(res.Damage) * e.multiplier)
		owner.Money += gain
		res.Extra = tokenMoneyGained
	}
	return res
}

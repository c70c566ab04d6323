package ai

import (
	"log/slog"

	"github.com/udisondev/tuxbattle/internal/game/formula"
	"github.com/udisondev/tuxbattle/internal/model"
)

// Field is the part of a running battle the AI looks at. *combat.Battle
// implements it.
type Field interface {
	Opponents(m *model.Monster) []*model.Monster
}

// AI tuning.
const (
	lowHPRatio     = 0.3 // below this a healer heals itself first
	healBonus      = 1000
	finisherFactor = 2.0 // expected knock-outs are worth double
)

// ChooseAction picks a technique and a target for user.
//
// Healing wins when user is low on HP. Otherwise the damaging technique with
// the best expected damage against any targetable opponent wins, and
// techniques that deal no damage get a small random score so that they are
// used now and then. Techniques that are recharging or whose predicates
// reject the target are skipped. When nothing qualifies the first move is
// returned anyway and will fail as recharging.
//
// Returns false if user knows no moves or there is nobody to fight.
func ChooseAction(f Field, user *model.Monster, rng model.Source) (model.EnqueuedAction, bool) {
	opponents := f.Opponents(user)
	moves := user.Moves()
	if len(opponents) == 0 || len(moves) == 0 {
		return model.EnqueuedAction{}, false
	}

	var (
		best      model.EnqueuedAction
		bestScore = -1.0
	)
	for _, t := range moves {
		if !t.Ready() {
			continue
		}
		target, score := evaluate(t, user, opponents, rng)
		if target == nil {
			continue
		}
		if score > bestScore {
			best = model.EnqueuedAction{User: user, Method: t, Target: target}
			bestScore = score
		}
	}
	if best.Method == nil {
		best = model.EnqueuedAction{User: user, Method: moves[0], Target: opponents[0]}
	}
	if IsDebugEnabled() {
		slog.Debug("ai chose action",
			"monster", user.Name,
			"technique", best.Method.Name(),
			"target", best.Target.Name,
			"score", bestScore)
	}
	return best, true
}

// evaluate returns the best target for t and its score, nil if no target
// passes the predicates.
func evaluate(t *model.Technique, user *model.Monster, opponents []*model.Monster, rng model.Source) (*model.Monster, float64) {
	if t.Target == model.TargetSelf {
		if !t.Validate(user) {
			return nil, 0
		}
		if t.HealingPower > 0 {
			if user.HPRatio() < lowHPRatio {
				return user, healBonus + float64(formula.Heal(t, user))
			}
			return user, 0
		}
		return user, rng.Float64()
	}

	var (
		target *model.Monster
		score  = -1.0
	)
	for _, o := range opponents {
		if !o.Targetable() || !t.Validate(o) {
			continue
		}
		s := expectedDamage(t, user, o)
		if s == 0 {
			s = rng.Float64()
		}
		if s > score {
			target, score = o, s
		}
	}
	return target, score
}

func expectedDamage(t *model.Technique, user, target *model.Monster) float64 {
	if t.Range == model.RangeSpecial {
		return 0
	}
	dmg, _ := formula.Damage(t, user, target)
	expected := float64(dmg) * t.Accuracy
	if dmg >= target.CurrentHP() {
		expected *= finisherFactor
	}
	return expected
}

// ChooseReplacement picks the healthy candidate with the most HP left, nil
// if none is healthy.
func ChooseReplacement(candidates []*model.Monster) *model.Monster {
	var best *model.Monster
	for _, m := range candidates {
		if m.IsFainted() {
			continue
		}
		if best == nil || m.CurrentHP() > best.CurrentHP() {
			best = m
		}
	}
	return best
}

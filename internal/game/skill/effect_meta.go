package skill

import (
	"log/slog"

	"github.com/udisondev/tuxbattle/internal/model"
)

// SwapEffect withdraws the user and sends in the next healthy monster of
// its party.
type SwapEffect struct{}

func newSwapEffect(p Params) (model.TechEffect, error) {
	if err := p.want(0); err != nil {
		return nil, err
	}
	return &SwapEffect{}, nil
}

func (e *SwapEffect) Name() string { return "swap" }

func (e *SwapEffect) ApplyTech(a model.Arena, _ *model.Technique, user, _ *model.Monster) model.Result {
	next, err := a.Swap(user)
	if err != nil {
		slog.Debug("swap failed", "monster", user.Slug, "error", err)
		return model.Failed(tokenSwapFailed)
	}
	slog.Debug("swapped", "out", user.Slug, "in", next.Slug)
	res := model.NewResult(true)
	res.Extra = tokenSwapped
	return res
}

// RunEffect tries to escape the battle.
type RunEffect struct{}

func newRunEffect(p Params) (model.TechEffect, error) {
	if err := p.want(0); err != nil {
		return nil, err
	}
	return &RunEffect{}, nil
}

func (e *RunEffect) Name() string { return "run" }

func (e *RunEffect) ApplyTech(a model.Arena, _ *model.Technique, user, _ *model.Monster) model.Result {
	if !a.Escape(user) {
		return model.Failed(tokenCantRun)
	}
	res := model.NewResult(true)
	res.Extra = tokenRanAway
	return res
}

// ForfeitEffect concedes the battle.
type ForfeitEffect struct{}

func newForfeitEffect(p Params) (model.TechEffect, error) {
	if err := p.want(0); err != nil {
		return nil, err
	}
	return &ForfeitEffect{}, nil
}

func (e *ForfeitEffect) Name() string { return "forfeit" }

func (e *ForfeitEffect) ApplyTech(a model.Arena, _ *model.Technique, user, _ *model.Monster) model.Result {
	if !a.Forfeit(user) {
		return model.Failed(tokenCantForfeit)
	}
	res := model.NewResult(true)
	res.Extra = tokenForfeited
	return res
}

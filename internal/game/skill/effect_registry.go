package skill

import (
	"errors"
	"fmt"

	"github.com/udisondev/tuxbattle/internal/model"
)

var (
	// ErrUnknownEffect is returned for effect or predicate names that are
	// not registered.
	ErrUnknownEffect = errors.New("unknown effect")
	// ErrMalformedSpec is returned when a spec string or its parameters
	// cannot be parsed.
	ErrMalformedSpec = errors.New("malformed spec")
)

// TechEffectFactory builds a technique effect from its parsed parameters.
type TechEffectFactory func(p Params) (model.TechEffect, error)

// CondEffectFactory builds a condition effect from its parsed parameters.
type CondEffectFactory func(p Params) (model.CondEffect, error)

// PredicateFactory builds a predicate from its parsed parameters.
type PredicateFactory func(p Params) (model.Predicate, error)

// Registries map a name to its factory. They are filled by init() and are
// read-only once main starts; registering later is not supported.
var (
	techEffectRegistry = map[string]TechEffectFactory{}
	condEffectRegistry = map[string]CondEffectFactory{}
	predicateRegistry  = map[string]PredicateFactory{}
)

// RegisterTechEffect registers a technique effect factory by name.
func RegisterTechEffect(name string, f TechEffectFactory) {
	techEffectRegistry[name] = f
}

// RegisterCondEffect registers a condition effect factory by name.
func RegisterCondEffect(name string, f CondEffectFactory) {
	condEffectRegistry[name] = f
}

// RegisterPredicate registers a predicate factory by name.
func RegisterPredicate(name string, f PredicateFactory) {
	predicateRegistry[name] = f
}

// CreateTechEffect parses "<name> <csv>" and builds the technique effect.
func CreateTechEffect(spec string) (model.TechEffect, error) {
	p, err := ParseEffectSpec(spec)
	if err != nil {
		return nil, err
	}
	f, ok := techEffectRegistry[p.Name]
	if !ok {
		return nil, fmt.Errorf("technique effect %q: %w", p.Name, ErrUnknownEffect)
	}
	return f(p)
}

// CreateCondEffect parses "<name> <csv>" and builds the condition effect.
func CreateCondEffect(spec string) (model.CondEffect, error) {
	p, err := ParseEffectSpec(spec)
	if err != nil {
		return nil, err
	}
	f, ok := condEffectRegistry[p.Name]
	if !ok {
		return nil, fmt.Errorf("condition effect %q: %w", p.Name, ErrUnknownEffect)
	}
	return f(p)
}

// CreatePredicate parses "is|not <name> <csv>" and builds the clause.
func CreatePredicate(spec string) (model.Clause, error) {
	is, p, err := ParsePredicateSpec(spec)
	if err != nil {
		return model.Clause{}, err
	}
	f, ok := predicateRegistry[p.Name]
	if !ok {
		return model.Clause{}, fmt.Errorf("predicate %q: %w", p.Name, ErrUnknownEffect)
	}
	pred, err := f(p)
	if err != nil {
		return model.Clause{}, err
	}
	return model.Clause{Is: is, Predicate: pred}, nil
}

func init() {
	RegisterTechEffect("damage", newDamageEffect)
	RegisterTechEffect("area", newAreaEffect)
	RegisterTechEffect("splash", newSplashEffect)
	RegisterTechEffect("retaliate", newRetaliateEffect)
	RegisterTechEffect("revenge", newRevengeEffect)
	RegisterTechEffect("money", newMoneyEffect)
	RegisterTechEffect("healing", newHealingEffect)
	RegisterTechEffect("lifeleech", newLifeLeechEffect)
	RegisterTechEffect("give", newGiveEffect)
	RegisterTechEffect("remove", newRemoveEffect)
	RegisterTechEffect("statchange", newStatChangeEffect)
	RegisterTechEffect("switch", newSwitchEffect)
	RegisterTechEffect("disappear", newDisappearEffect)
	RegisterTechEffect("appear", newAppearEffect)
	RegisterTechEffect("swap", newSwapEffect)
	RegisterTechEffect("run", newRunEffect)
	RegisterTechEffect("forfeit", newForfeitEffect)

	RegisterCondEffect("poison", newPoisonEffect)
	RegisterCondEffect("recover", newRecoverEffect)
	RegisterCondEffect("statchange", newCondStatChangeEffect)
	RegisterCondEffect("prickly", newPricklyEffect)
	RegisterCondEffect("feedback", newFeedbackEffect)
	RegisterCondEffect("noddingoff", newNoddingOffEffect)
	RegisterCondEffect("faint", newFaintEffect)

	RegisterPredicate("has_status", newHasStatus)
	RegisterPredicate("has_type", newHasType)
	RegisterPredicate("status_category", newStatusCategory)
	RegisterPredicate("current_hp", newCurrentHP)
	RegisterPredicate("level", newLevel)
	RegisterPredicate("wild", newWild)
	RegisterPredicate("out_of_range", newOutOfRange)
	RegisterPredicate("fainted", newFainted)
}

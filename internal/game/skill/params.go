package skill

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/udisondev/tuxbattle/internal/model"
)

// Params is a parsed spec: the effect name and its csv arguments.
type Params struct {
	Name string
	Args []string
}

// ParseEffectSpec splits "<name> <csv>" into name and arguments. Spaces
// after commas are tolerated.
func ParseEffectSpec(spec string) (Params, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Params{}, fmt.Errorf("empty spec: %w", ErrMalformedSpec)
	}
	name, rest, _ := strings.Cut(spec, " ")
	p := Params{Name: name}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return p, nil
	}
	for _, a := range strings.Split(rest, ",") {
		p.Args = append(p.Args, strings.TrimSpace(a))
	}
	return p, nil
}

// ParsePredicateSpec parses "is|not <name> <csv>".
func ParsePredicateSpec(spec string) (bool, Params, error) {
	spec = strings.TrimSpace(spec)
	prefix, rest, ok := strings.Cut(spec, " ")
	if !ok {
		return false, Params{}, fmt.Errorf("predicate %q: missing is/not prefix: %w", spec, ErrMalformedSpec)
	}
	var is bool
	switch prefix {
	case "is":
		is = true
	case "not":
		is = false
	default:
		return false, Params{}, fmt.Errorf("predicate %q: prefix %q: %w", spec, prefix, ErrMalformedSpec)
	}
	p, err := ParseEffectSpec(rest)
	return is, p, err
}

func (p Params) errorf(format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", p.Name, fmt.Sprintf(format, args...), ErrMalformedSpec)
}

// want checks the argument count.
func (p Params) want(n int) error {
	if len(p.Args) != n {
		return p.errorf("want %d arguments, got %d", n, len(p.Args))
	}
	return nil
}

func (p Params) float(i int) (float64, error) {
	v, err := strconv.ParseFloat(p.Args[i], 64)
	if err != nil {
		return 0, p.errorf("argument %d %q is not a number", i+1, p.Args[i])
	}
	return v, nil
}

// divisor parses a positive integer divisor.
func (p Params) divisor(i int) (int, error) {
	v, err := strconv.Atoi(p.Args[i])
	if err != nil || v <= 0 {
		return 0, p.errorf("argument %d %q is not a positive integer", i+1, p.Args[i])
	}
	return v, nil
}

// probability parses a number in [0, 1].
func (p Params) probability(i int) (float64, error) {
	v, err := p.float(i)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 1 {
		return 0, p.errorf("argument %d %v is outside [0, 1]", i+1, v)
	}
	return v, nil
}

func (p Params) stat(i int) (model.Stat, error) {
	st, err := model.ParseStat(p.Args[i])
	if err != nil {
		return "", p.errorf("%v", err)
	}
	return st, nil
}

func (p Params) element(i int) (model.Element, error) {
	e := model.Element(p.Args[i])
	if !e.IsValid() {
		return "", p.errorf("unknown element %q", p.Args[i])
	}
	return e, nil
}

func (p Params) operator(i int) (string, error) {
	op := p.Args[i]
	if !model.IsOperator(op) {
		return "", fmt.Errorf("%s: operator %q: %w: %w", p.Name, op, model.ErrUnknownOperator, ErrMalformedSpec)
	}
	return op, nil
}

// objective selects which side of the action an effect works on.
type objective int

const (
	objectiveUser objective = iota
	objectiveTarget
)

func (p Params) objective(i int) (objective, error) {
	switch p.Args[i] {
	case "user":
		return objectiveUser, nil
	case "target":
		return objectiveTarget, nil
	default:
		return 0, p.errorf("objective %q must be user or target", p.Args[i])
	}
}

func (o objective) pick(user, target *model.Monster) *model.Monster {
	if o == objectiveUser {
		return user
	}
	return target
}

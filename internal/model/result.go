package model

// Result is the aggregated outcome of a technique or condition use, and
// also the outcome of a single effect.
type Result struct {
	Success           bool
	Damage            int
	ElementMultiplier float64
	ShouldTackle      bool
	// Extra is an optional narration token.
	Extra string
}

// NewResult returns a neutral result. Effects build on it so that the
// multiplier starts at 1.0.
func NewResult(success bool) Result {
	return Result{Success: success, ElementMultiplier: 1.0}
}

// Failed returns an unsuccessful result carrying a narration token.
func Failed(extra string) Result {
	r := NewResult(false)
	r.Extra = extra
	return r
}

// Merge folds o into r: Success and ShouldTackle are ORed, Damage summed,
// ElementMultiplier multiplied and a non-empty Extra overrides.
func (r Result) Merge(o Result) Result {
	r.Success = r.Success || o.Success
	r.ShouldTackle = r.ShouldTackle || o.ShouldTackle
	r.Damage += o.Damage
	r.ElementMultiplier *= o.ElementMultiplier
	if o.Extra != "" {
		r.Extra = o.Extra
	}
	return r
}

// Narration is an opaque message token plus parameters, rendered by the UI.
type Narration struct {
	Token  string
	Params map[string]string
}

// Narrate is a helper that builds a Narration from key/value pairs.
func Narrate(token string, kv ...string) Narration {
	n := Narration{Token: token}
	if len(kv) > 1 {
		n.Params = make(map[string]string, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			n.Params[kv[i]] = kv[i+1]
		}
	}
	return n
}

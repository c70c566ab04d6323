package model

// Source is the random number source used by effects, the action queue and
// the battle. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
}

package formula

// Escape tuning.
const (
	EscapeBase = 0.4
	EscapeStep = 0.15
)

// EscapeChance returns the probability that a run attempt succeeds.
// attempts counts the earlier failed tries of the same side.
func EscapeChance(attempts, userLevel, targetLevel int) float64 {
	p := EscapeBase + EscapeStep*float64(attempts+userLevel-targetLevel)
	return min(max(p, 0), 1)
}

// Experience returns the experience granted for defeating a monster at
// level with the given give-modifier, before it is split among receivers.
func Experience(level int, giveModifier float64) int {
	if giveModifier <= 0 {
		giveModifier = 1
	}
	return max(int(float64(level*level)*giveModifier), 1)
}

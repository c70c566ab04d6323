package model

// Method is something a monster can use in an action: a Technique or a
// Condition.
type Method interface {
	Name() string
	SortGroup() string
	Fast() bool
}

// TechEffect is one named behaviour of a technique.
type TechEffect interface {
	Name() string
	ApplyTech(a Arena, t *Technique, user, target *Monster) Result
}

// CondEffect is one named behaviour of a condition. target is the monster
// the condition is attached to.
type CondEffect interface {
	Name() string
	ApplyCond(a Arena, c *Condition, target *Monster) Result
}

// Predicate is a named boolean test on a monster.
type Predicate interface {
	Name() string
	Test(target *Monster) bool
}

// Clause is a predicate with its "is"/"not" prefix.
type Clause struct {
	Is bool
	Predicate
}

// Holds evaluates the clause: Is ? test : !test.
func (c Clause) Holds(target *Monster) bool {
	return c.Test(target) == c.Is
}

// clausesHold ANDs all clauses; an empty list is vacuously true.
func clausesHold(clauses []Clause, target *Monster) bool {
	for _, c := range clauses {
		if !c.Holds(target) {
			return false
		}
	}
	return true
}

// EnqueuedAction is one submitted action for a turn. User and Target are
// non-owning references into party rosters.
type EnqueuedAction struct {
	User   *Monster
	Method Method
	Target *Monster
}

// HistoryEntry records a resolved action for the turn it happened in.
type HistoryEntry struct {
	Turn   int
	Action EnqueuedAction
	Result Result
}

// Arena is the view of the running battle that effects may use. It is
// implemented by the combat package.
type Arena interface {
	Rand() Source
	Turn() int
	// History returns the entries recorded for the given turn, oldest first.
	History(turn int) []HistoryEntry
	// Opponents returns the in-play monsters facing m.
	Opponents(m *Monster) []*Monster
	// Allies returns the in-play monsters on m's side, excluding m.
	Allies(m *Monster) []*Monster
	// Enqueue appends a follow-up action to the current turn's queue.
	Enqueue(action EnqueuedAction)
	// RemoveActions drops every queued action of user and returns the count.
	RemoveActions(user *Monster) int
	// NewCondition hydrates a fresh condition from the catalog.
	NewCondition(slug string) (*Condition, error)
	// Swap withdraws m and sends in the first healthy benched monster.
	Swap(m *Monster) (*Monster, error)
	// Escape attempts to run from the battle on behalf of user.
	Escape(user *Monster) bool
	// Forfeit concedes the battle on behalf of user.
	Forfeit(user *Monster) bool
	// IsTrainerBattle reports whether both sides are trainers.
	IsTrainerBattle() bool
}

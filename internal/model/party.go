package model

import (
	"errors"
	"fmt"
)

// MaxPartySize is the number of monsters a party can carry.
const MaxPartySize = 6

var (
	ErrPartyFull    = errors.New("party is full")
	ErrAlreadyOwned = errors.New("monster already has an owner")
	ErrNotInParty   = errors.New("monster is not in this party")
	ErrNotInStorage = errors.New("monster is not in storage")
)

// Party is a trainer (player or NPC) that owns monsters. Monsters are owned
// by exactly one container: the party list or its storage.
type Party struct {
	ID       string
	Name     string
	IsPlayer bool
	Money    int

	wild     bool
	monsters []*Monster
	storage  []*Monster
}

// NewParty creates an empty party.
func NewParty(id, name string, isPlayer bool) *Party {
	return &Party{ID: id, Name: name, IsPlayer: isPlayer}
}

// NewWildParty creates the container for wild monsters met in an encounter.
// Monsters added to it stay wild.
func NewWildParty(id string) *Party {
	return &Party{ID: id, Name: "wild", wild: true}
}

// IsWild reports whether the party holds wild monsters.
func (p *Party) IsWild() bool {
	return p.wild
}

// Monsters returns the party list in slot order.
func (p *Party) Monsters() []*Monster {
	return p.monsters
}

// Storage returns the monsters kept in storage.
func (p *Party) Storage() []*Monster {
	return p.storage
}

// HealthyMonsters returns monsters that have not fainted.
func (p *Party) HealthyMonsters() []*Monster {
	var out []*Monster
	for _, m := range p.monsters {
		if !m.IsFainted() {
			out = append(out, m)
		}
	}
	return out
}

// Contains reports whether m is in the party list.
func (p *Party) Contains(m *Monster) bool {
	return indexOf(p.monsters, m) >= 0
}

// AddMonster takes ownership of an unowned monster. When the party list is
// full the monster goes to storage.
func (p *Party) AddMonster(m *Monster) error {
	if m.owner != nil {
		return fmt.Errorf("adding %s to %s: %w", m.Slug, p.Name, ErrAlreadyOwned)
	}
	m.owner = p
	m.Wild = p.wild
	if len(p.monsters) >= MaxPartySize {
		p.storage = append(p.storage, m)
		return nil
	}
	p.monsters = append(p.monsters, m)
	return nil
}

// RemoveMonster releases m from the party list or storage and clears its
// owner. Returns false if p does not own m.
func (p *Party) RemoveMonster(m *Monster) bool {
	if i := indexOf(p.monsters, m); i >= 0 {
		p.monsters = append(p.monsters[:i], p.monsters[i+1:]...)
		m.owner = nil
		return true
	}
	if i := indexOf(p.storage, m); i >= 0 {
		p.storage = append(p.storage[:i], p.storage[i+1:]...)
		m.owner = nil
		return true
	}
	return false
}

// Store moves m from the party list to storage.
func (p *Party) Store(m *Monster) error {
	i := indexOf(p.monsters, m)
	if i < 0 {
		return fmt.Errorf("storing %s: %w", m.Slug, ErrNotInParty)
	}
	p.monsters = append(p.monsters[:i], p.monsters[i+1:]...)
	p.storage = append(p.storage, m)
	return nil
}

// Withdraw moves m from storage to the party list.
func (p *Party) Withdraw(m *Monster) error {
	i := indexOf(p.storage, m)
	if i < 0 {
		return fmt.Errorf("withdrawing %s: %w", m.Slug, ErrNotInStorage)
	}
	if len(p.monsters) >= MaxPartySize {
		return fmt.Errorf("withdrawing %s: %w", m.Slug, ErrPartyFull)
	}
	p.storage = append(p.storage[:i], p.storage[i+1:]...)
	p.monsters = append(p.monsters, m)
	return nil
}

// Transfer trades m to another party and marks it as traded.
func (p *Party) Transfer(m *Monster, to *Party) error {
	if m.owner != p {
		return fmt.Errorf("trading %s: %w", m.Slug, ErrNotInParty)
	}
	p.RemoveMonster(m)
	if err := to.AddMonster(m); err != nil {
		_ = p.AddMonster(m)
		return fmt.Errorf("trading %s: %w", m.Slug, err)
	}
	m.Traded = true
	return nil
}

// SpeciesSlugs returns the slugs of the party list, used by evolution checks.
func (p *Party) SpeciesSlugs() []string {
	out := make([]string, 0, len(p.monsters))
	for _, m := range p.monsters {
		out = append(out, m.Slug)
	}
	return out
}

func indexOf(list []*Monster, m *Monster) int {
	for i, x := range list {
		if x == m {
			return i
		}
	}
	return -1
}

package combat

import (
	"log/slog"
	"slices"
	"strconv"

	"github.com/udisondev/tuxbattle/internal/game/formula"
	"github.com/udisondev/tuxbattle/internal/model"
)

// ExperienceFor returns the experience pool granted for defeating m.
func ExperienceFor(defeated *model.Monster) int {
	return formula.Experience(defeated.Level, defeated.ExpGiveModifier)
}

// awardExperience splits the pool of defeated among the healthy player
// monsters that faced it. Every receiver gets at least 1.
func (b *Battle) awardExperience(defeated *model.Monster) {
	var receivers []*model.Monster
	for m := range b.met[defeated] {
		if m.IsFainted() {
			continue
		}
		if owner := m.Owner(); owner == nil || !owner.IsPlayer {
			continue
		}
		receivers = append(receivers, m)
	}
	if len(receivers) == 0 {
		return
	}
	// map order is random; narration must not depend on it
	b.sortByParty(receivers)

	share := max(ExperienceFor(defeated)/len(receivers), 1)
	for _, m := range receivers {
		oldLevel := m.Level
		levels := m.GiveExperience(share)
		b.narrate(model.Narrate("combat_gain_exp",
			"monster", m.Name,
			"exp", strconv.Itoa(share)))
		if levels == 0 {
			continue
		}
		b.narrate(model.Narrate("combat_level_up",
			"monster", m.Name,
			"level", strconv.Itoa(m.Level)))
		slog.Info("monster levelled up",
			"battle_id", b.id,
			"monster", m.Name,
			"oldLevel", oldLevel,
			"newLevel", m.Level)
	}
}

// sortByParty orders monsters by side, then party slot.
func (b *Battle) sortByParty(ms []*model.Monster) {
	pos := func(m *model.Monster) int {
		for s, p := range b.parties {
			for i, x := range p.Monsters() {
				if x == m {
					return s*model.MaxPartySize + i
				}
			}
		}
		return len(b.parties) * model.MaxPartySize
	}
	slices.SortFunc(ms, func(x, y *model.Monster) int { return pos(x) - pos(y) })
}

package data

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/tuxbattle/internal/model"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	if got := len(c.SpeciesSlugs()); got < 10 {
		t.Errorf("SpeciesSlugs() = %d entries; want >= 10", got)
	}

	ram, err := c.Technique("ram")
	require.NoError(t, err)
	assert.Equal(t, "damage", ram.Sort)
	assert.Equal(t, []string{"damage"}, ram.Effects)

	faint, err := c.Condition(model.FaintSlug)
	require.NoError(t, err)
	assert.Equal(t, model.CategoryNegative, faint.Category)

	poison, err := c.Condition("poison")
	require.NoError(t, err)
	assert.True(t, poison.Bond)

	sp, err := c.Species("rockitten")
	require.NoError(t, err)
	shape, err := c.Shape(sp.Shape)
	require.NoError(t, err)
	assert.Equal(t, "varmint", shape.Shape().Slug)
}

func TestCatalog_NotFound(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	_, err = c.Technique("hyper_beam")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "hyper_beam")

	_, err = c.Species("missingno")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.Condition("confused")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.Shape("cube")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		pack Pack
	}{
		{
			name: "special range with damage",
			pack: Pack{Techniques: []TechniqueRecord{{
				Slug: "bad_beam", Sort: "damage", Range: model.RangeSpecial,
				Accuracy: 1, Effects: []string{"damage"},
			}}},
		},
		{
			name: "special range with splash",
			pack: Pack{Techniques: []TechniqueRecord{{
				Slug: "bad_splash", Sort: "damage", Range: model.RangeSpecial,
				Accuracy: 1, Effects: []string{"give poison,target", "splash 2"},
			}}},
		},
		{
			name: "accuracy out of range",
			pack: Pack{Techniques: []TechniqueRecord{{
				Slug: "sure_thing", Sort: "damage", Range: model.RangeMelee,
				Accuracy: 1.5, Effects: []string{"damage"},
			}}},
		},
		{
			name: "unknown target",
			pack: Pack{Techniques: []TechniqueRecord{{
				Slug: "boomerang", Sort: "damage", Range: model.RangeRanged, Target: "everyone",
				Accuracy: 1, Effects: []string{"damage"},
			}}},
		},
		{
			name: "unknown element",
			pack: Pack{Techniques: []TechniqueRecord{{
				Slug: "plasma_bolt", Sort: "damage", Range: model.RangeRanged,
				Types: []model.Element{"plasma"}, Accuracy: 1, Effects: []string{"damage"},
			}}},
		},
		{
			name: "predicate without prefix",
			pack: Pack{Conditions: []ConditionRecord{{
				Slug: "dizzy", Category: model.CategoryNegative,
				Effects: []string{"poison 4"}, Predicates: []string{"fainted"},
			}}},
		},
		{
			name: "unknown category",
			pack: Pack{Conditions: []ConditionRecord{{
				Slug: "weird", Category: "mixed",
			}}},
		},
		{
			name: "species with unknown move",
			pack: Pack{Species: []SpeciesRecord{{
				Slug: "glitch", Shape: "blob", Types: []model.Element{model.ElementAether},
				Moveset: []MoveEntry{{Technique: "hyper_beam", LevelLearned: 1}},
			}}},
		},
		{
			name: "evolution into unknown species",
			pack: Pack{Species: []SpeciesRecord{{
				Slug: "glitch", Shape: "blob", Types: []model.Element{model.ElementAether},
				Evolutions: []model.Evolution{{MonsterSlug: "missingno", Level: 5}},
			}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCatalog()
			c.merge(builtinPack())
			c.merge(&tt.pack)

			err := c.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v; want ErrInvalid", err)
			}
		})
	}
}

func TestValidate_SpecialRangeUtility(t *testing.T) {
	c := newCatalog()
	c.merge(builtinPack())
	c.merge(&Pack{Techniques: []TechniqueRecord{{
		Slug: "calm_mind", Sort: "utility", Range: model.RangeSpecial,
		Accuracy: 1, Effects: []string{"statchange ranged,0.2,user"},
	}}})
	assert.NoError(t, c.Validate())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pack.yaml")
	content := `
techniques:
  - slug: ram
    sort: damage
    range: melee
    types: [aether]
    accuracy: 1.0
    power: 2.0
    recharge: 1
    effects: ["damage"]
  - slug: ember
    sort: damage
    range: ranged
    types: [fire]
    accuracy: 0.95
    power: 1.1
    effects: ["damage", "give poison,target"]
    conditions: ["not has_status poison"]
species:
  - slug: sparkit
    shape: varmint
    types: [fire]
    possible_genders: [male, female]
    experience_modifier: 1.0
    exp_give_modifier: 1.0
    moveset:
      - technique: ember
        level_learned: 1
    evolutions:
      - monster_slug: agnite
        at_level: 10
        bond: "greater_than:50"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)

	ram, err := c.Technique("ram")
	require.NoError(t, err)
	assert.Equal(t, 2.0, ram.Power, "pack record overrides built-in")

	ember, err := c.Technique("ember")
	require.NoError(t, err)
	assert.Equal(t, []string{"not has_status poison"}, ember.Predicates)

	sp, err := c.Species("sparkit")
	require.NoError(t, err)
	require.Len(t, sp.Evolutions, 1)
	assert.Equal(t, 10, sp.Evolutions[0].Level)
	assert.Equal(t, "greater_than:50", sp.Evolutions[0].Bond)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("techniques: [{slug: x, range: special, effects: [damage], accuracy: 1}]"), 0o600))
	_, err = LoadFile(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestSpecName(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"damage", "damage"},
		{"give poison,target", "give"},
		{"is current_hp less_than,50", "current_hp"},
		{"not fainted", "fainted"},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := SpecName(tt.spec); got != tt.want {
			t.Errorf("SpecName(%q) = %q; want %q", tt.spec, got, tt.want)
		}
	}
}

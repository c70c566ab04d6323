package skill

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/tuxbattle/internal/model"
)

func TestParseEffectSpec(t *testing.T) {
	tests := []struct {
		spec     string
		wantName string
		wantArgs []string
	}{
		{"damage", "damage", nil},
		{"poison 8", "poison", []string{"8"}},
		{"give poison,target", "give", []string{"poison", "target"}},
		{"statchange melee, 0.5, user", "statchange", []string{"melee", "0.5", "user"}},
		{"  area 2  ", "area", []string{"2"}},
	}

	for _, tt := range tests {
		p, err := ParseEffectSpec(tt.spec)
		if err != nil {
			t.Fatalf("ParseEffectSpec(%q) error: %v", tt.spec, err)
		}
		if p.Name != tt.wantName {
			t.Errorf("ParseEffectSpec(%q).Name = %q; want %q", tt.spec, p.Name, tt.wantName)
		}
		assert.Equal(t, tt.wantArgs, p.Args, "args of %q", tt.spec)
	}

	_, err := ParseEffectSpec("   ")
	assert.ErrorIs(t, err, ErrMalformedSpec)
}

func TestParsePredicateSpec(t *testing.T) {
	is, p, err := ParsePredicateSpec("is current_hp less_than,50")
	require.NoError(t, err)
	assert.True(t, is)
	assert.Equal(t, "current_hp", p.Name)
	assert.Equal(t, []string{"less_than", "50"}, p.Args)

	is, p, err = ParsePredicateSpec("not fainted")
	require.NoError(t, err)
	assert.False(t, is)
	assert.Equal(t, "fainted", p.Name)

	_, _, err = ParsePredicateSpec("maybe fainted")
	assert.ErrorIs(t, err, ErrMalformedSpec)
	_, _, err = ParsePredicateSpec("fainted")
	assert.ErrorIs(t, err, ErrMalformedSpec)
}

func TestCreateTechEffect_Errors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"hyperbeam", ErrUnknownEffect},
		{"damage 3", ErrMalformedSpec},
		{"area zero", ErrMalformedSpec},
		{"area 0", ErrMalformedSpec},
		{"give poison", ErrMalformedSpec},
		{"give poison,everyone", ErrMalformedSpec},
		{"statchange luck,0.5,user", ErrMalformedSpec},
		{"switch plasma,user", ErrMalformedSpec},
		{"disappear underground", ErrMalformedSpec},
		{"lifeleech 2", ErrMalformedSpec},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			_, err := CreateTechEffect(tt.spec)
			if !errors.Is(err, tt.want) {
				t.Errorf("CreateTechEffect(%q) = %v; want %v", tt.spec, err, tt.want)
			}
		})
	}
}

func TestCreatePredicate_UnknownOperator(t *testing.T) {
	_, err := CreatePredicate("is current_hp roughly,50")
	assert.ErrorIs(t, err, model.ErrUnknownOperator)
	assert.ErrorIs(t, err, ErrMalformedSpec)

	_, err = CreatePredicate("is lucky")
	assert.ErrorIs(t, err, ErrUnknownEffect)
}

func TestRegistries(t *testing.T) {
	for _, name := range []string{
		"damage", "area", "splash", "retaliate", "revenge", "money", "healing",
		"give", "remove", "statchange", "switch", "disappear", "appear",
		"lifeleech", "swap", "run", "forfeit",
	} {
		if _, ok := techEffectRegistry[name]; !ok {
			t.Errorf("technique effect %q is not registered", name)
		}
	}
	for _, name := range []string{"poison", "recover", "statchange", "prickly", "feedback", "noddingoff", "faint"} {
		if _, ok := condEffectRegistry[name]; !ok {
			t.Errorf("condition effect %q is not registered", name)
		}
	}
	for _, name := range []string{"has_status", "has_type", "status_category", "current_hp", "level", "wild", "out_of_range", "fainted"} {
		if _, ok := predicateRegistry[name]; !ok {
			t.Errorf("predicate %q is not registered", name)
		}
	}
}

package data

import (
	"strings"

	"github.com/udisondev/tuxbattle/internal/model"
)

// TechniqueRecord is the catalog definition of a technique. Effects and
// Predicates hold raw "<name> <csv>" specs; the skill package parses them.
type TechniqueRecord struct {
	Slug           string          `yaml:"slug"`
	Sort           string          `yaml:"sort"`
	Range          model.Range     `yaml:"range"`
	Types          []model.Element `yaml:"types"`
	Target         model.Targeting `yaml:"target"`
	Accuracy       float64         `yaml:"accuracy"`
	Power          float64         `yaml:"power"`
	Potency        float64         `yaml:"potency"`
	HealingPower   float64         `yaml:"healing_power"`
	RechargeLength int             `yaml:"recharge"`
	IsFast         bool            `yaml:"is_fast"`
	Effects        []string        `yaml:"effects"`
	Predicates     []string        `yaml:"conditions"`
}

// ConditionRecord is the catalog definition of a status condition.
type ConditionRecord struct {
	Slug       string   `yaml:"slug"`
	Sort       string   `yaml:"sort"`
	Category   string   `yaml:"category"`
	Duration   int      `yaml:"duration"`
	Bond       bool     `yaml:"bond"`
	Reactive   bool     `yaml:"reactive"`
	ReplPos    string   `yaml:"repl_pos"`
	ReplNeg    string   `yaml:"repl_neg"`
	ReplTech   string   `yaml:"repl_tech"`
	ReplItem   string   `yaml:"repl_item"`
	Effects    []string `yaml:"effects"`
	Predicates []string `yaml:"conditions"`
}

// MoveEntry is one technique of a species moveset.
type MoveEntry struct {
	Technique    string `yaml:"technique"`
	LevelLearned int    `yaml:"level_learned"`
}

// SpeciesRecord is the catalog definition of a monster species.
type SpeciesRecord struct {
	Slug               string            `yaml:"slug"`
	Shape              string            `yaml:"shape"`
	Types              []model.Element   `yaml:"types"`
	PossibleGenders    []model.Gender    `yaml:"possible_genders"`
	ExperienceModifier float64           `yaml:"experience_modifier"`
	ExpGiveModifier    float64           `yaml:"exp_give_modifier"`
	Moveset            []MoveEntry       `yaml:"moveset"`
	Evolutions         []model.Evolution `yaml:"evolutions"`
}

// ShapeRecord holds the base stats shared by every species of a shape.
type ShapeRecord struct {
	Slug  string           `yaml:"slug"`
	Stats model.ShapeStats `yaml:"stats"`
}

// Shape converts the record to the model form.
func (s *ShapeRecord) Shape() model.Shape {
	return model.Shape{Slug: s.Slug, Stats: s.Stats}
}

// Pack is a YAML content pack. Records in a pack override built-in records
// with the same slug.
type Pack struct {
	Shapes     []ShapeRecord     `yaml:"shapes"`
	Techniques []TechniqueRecord `yaml:"techniques"`
	Conditions []ConditionRecord `yaml:"conditions"`
	Species    []SpeciesRecord   `yaml:"species"`
}

// SpecName returns the effect or predicate name of a raw spec string,
// without the optional "is"/"not" prefix.
func SpecName(spec string) string {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return ""
	}
	if (fields[0] == "is" || fields[0] == "not") && len(fields) > 1 {
		return fields[1]
	}
	return fields[0]
}

// statsOf builds ShapeStats in the armour, dodge, hp, melee, ranged, speed
// order used by the content tables.
func statsOf(armour, dodge, hp, melee, ranged, speed int) model.ShapeStats {
	return model.ShapeStats{
		Armour: armour,
		Dodge:  dodge,
		HP:     hp,
		Melee:  melee,
		Ranged: ranged,
		Speed:  speed,
	}
}

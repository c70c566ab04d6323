package data

import "github.com/udisondev/tuxbattle/internal/model"

var bothGenders = []model.Gender{model.GenderMale, model.GenderFemale}

func boolPtr(v bool) *bool { return &v }

// speciesDefs — встроенные виды монстров с movesets и эволюциями.
var speciesDefs = []SpeciesRecord{
	{
		Slug: "agnite", Shape: "varmint",
		Types:              []model.Element{model.ElementFire},
		PossibleGenders:    bothGenders,
		ExperienceModifier: 1.0, ExpGiveModifier: 1.0,
		Moveset: []MoveEntry{
			{Technique: "ram", LevelLearned: 1},
			{Technique: "fire_claw", LevelLearned: 3},
			{Technique: "enrage", LevelLearned: 8},
			{Technique: "vengeance", LevelLearned: 14},
		},
		Evolutions: []model.Evolution{
			{MonsterSlug: "agnidon", Level: 20},
		},
	},
	{
		Slug: "agnidon", Shape: "dragon",
		Types:              []model.Element{model.ElementFire},
		PossibleGenders:    bothGenders,
		ExperienceModifier: 1.2, ExpGiveModifier: 1.5,
		Moveset: []MoveEntry{
			{Technique: "fire_claw", LevelLearned: 1},
			{Technique: "enrage", LevelLearned: 1},
			{Technique: "vengeance", LevelLearned: 1},
			{Technique: "take_flight", LevelLearned: 22},
			{Technique: "sky_dive", LevelLearned: 24},
		},
	},
	{
		Slug: "dollfin", Shape: "aquatic",
		Types:              []model.Element{model.ElementWater},
		PossibleGenders:    bothGenders,
		ExperienceModifier: 1.0, ExpGiveModifier: 1.0,
		Moveset: []MoveEntry{
			{Technique: "ram", LevelLearned: 1},
			{Technique: "water_jet", LevelLearned: 3},
			{Technique: "mend", LevelLearned: 6},
			{Technique: "tidal_splash", LevelLearned: 12},
			{Technique: "submerge", LevelLearned: 15},
		},
		Evolutions: []model.Evolution{
			{MonsterSlug: "orcanade", Item: "tidal_stone"},
		},
	},
	{
		Slug: "orcanade", Shape: "leviathan",
		Types:              []model.Element{model.ElementWater},
		PossibleGenders:    bothGenders,
		ExperienceModifier: 1.2, ExpGiveModifier: 1.5,
		Moveset: []MoveEntry{
			{Technique: "water_jet", LevelLearned: 1},
			{Technique: "tidal_splash", LevelLearned: 1},
			{Technique: "cleanse", LevelLearned: 1},
			{Technique: "mend", LevelLearned: 1},
		},
	},
	{
		Slug: "rockitten", Shape: "varmint",
		Types:              []model.Element{model.ElementEarth},
		PossibleGenders:    bothGenders,
		ExperienceModifier: 1.0, ExpGiveModifier: 1.0,
		Moveset: []MoveEntry{
			{Technique: "ram", LevelLearned: 1},
			{Technique: "pebble_toss", LevelLearned: 2},
			{Technique: "harden", LevelLearned: 5},
			{Technique: "avalanche", LevelLearned: 16},
		},
		Evolutions: []model.Evolution{
			{MonsterSlug: "rockat", Level: 18, Inside: boolPtr(false)},
			{MonsterSlug: "rockat", Traded: boolPtr(true)},
		},
	},
	{
		Slug: "rockat", Shape: "brute",
		Types:              []model.Element{model.ElementEarth, model.ElementMetal},
		PossibleGenders:    bothGenders,
		ExperienceModifier: 1.2, ExpGiveModifier: 1.4,
		Moveset: []MoveEntry{
			{Technique: "pebble_toss", LevelLearned: 1},
			{Technique: "harden", LevelLearned: 1},
			{Technique: "avalanche", LevelLearned: 1},
			{Technique: "metal_fang", LevelLearned: 20},
		},
	},
	{
		Slug: "budaye", Shape: "sprite",
		Types:              []model.Element{model.ElementWood},
		PossibleGenders:    bothGenders,
		ExperienceModifier: 0.9, ExpGiveModifier: 0.9,
		Moveset: []MoveEntry{
			{Technique: "vine_whip", LevelLearned: 1},
			{Technique: "sleep_powder", LevelLearned: 4},
			{Technique: "regrow", LevelLearned: 7},
			{Technique: "thorn_shield", LevelLearned: 10},
			{Technique: "life_drain", LevelLearned: 13},
		},
		Evolutions: []model.Evolution{
			{MonsterSlug: "bloomage", Bond: "greater_or_equal:80", TasteWarm: "refined"},
		},
	},
	{
		Slug: "bloomage", Shape: "humanoid",
		Types:              []model.Element{model.ElementWood, model.ElementAether},
		PossibleGenders:    []model.Gender{model.GenderFemale},
		ExperienceModifier: 1.1, ExpGiveModifier: 1.3,
		Moveset: []MoveEntry{
			{Technique: "vine_whip", LevelLearned: 1},
			{Technique: "life_drain", LevelLearned: 1},
			{Technique: "poison_sting", LevelLearned: 1},
			{Technique: "thorn_shield", LevelLearned: 1},
		},
	},
	{
		Slug: "nut", Shape: "blob",
		Types:              []model.Element{model.ElementMetal},
		PossibleGenders:    []model.Gender{model.GenderNeuter},
		ExperienceModifier: 1.0, ExpGiveModifier: 0.8,
		Moveset: []MoveEntry{
			{Technique: "ram", LevelLearned: 1},
			{Technique: "harden", LevelLearned: 1},
			{Technique: "payday", LevelLearned: 6},
			{Technique: "mirror_coat", LevelLearned: 11},
		},
		Evolutions: []model.Evolution{
			{MonsterSlug: "hardnut", Steps: 500},
		},
	},
	{
		Slug: "hardnut", Shape: "landrace",
		Types:              []model.Element{model.ElementMetal},
		PossibleGenders:    []model.Gender{model.GenderNeuter},
		ExperienceModifier: 1.1, ExpGiveModifier: 1.2,
		Moveset: []MoveEntry{
			{Technique: "metal_fang", LevelLearned: 1},
			{Technique: "harden", LevelLearned: 1},
			{Technique: "payday", LevelLearned: 1},
			{Technique: "counter", LevelLearned: 15},
		},
	},
	{
		Slug: "eyenemy", Shape: "flier",
		Types:              []model.Element{model.ElementAether},
		PossibleGenders:    bothGenders,
		ExperienceModifier: 1.0, ExpGiveModifier: 1.0,
		Moveset: []MoveEntry{
			{Technique: "quick_jab", LevelLearned: 1},
			{Technique: "growl", LevelLearned: 2},
			{Technique: "take_flight", LevelLearned: 6},
			{Technique: "sky_dive", LevelLearned: 6},
			{Technique: "chameleon", LevelLearned: 12},
		},
	},
	{
		Slug: "jelillow", Shape: "polliwog",
		Types:              []model.Element{model.ElementWater},
		PossibleGenders:    bothGenders,
		ExperienceModifier: 1.0, ExpGiveModifier: 1.0,
		Moveset: []MoveEntry{
			{Technique: "water_jet", LevelLearned: 1},
			{Technique: "poison_sting", LevelLearned: 3},
			{Technique: "counter", LevelLearned: 9},
		},
	},
}

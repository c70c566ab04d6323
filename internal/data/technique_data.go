package data

import "github.com/udisondev/tuxbattle/internal/model"

// techniqueDefs — встроенные техники. Порядок эффектов значим.
var techniqueDefs = []TechniqueRecord{
	// Damage
	{
		Slug: "ram", Sort: "damage", Range: model.RangeMelee,
		Types:    []model.Element{model.ElementAether},
		Accuracy: 0.9, Power: 1.0, RechargeLength: 1,
		Effects: []string{"damage"},
	},
	{
		Slug: "fire_claw", Sort: "damage", Range: model.RangeMelee,
		Types:    []model.Element{model.ElementFire},
		Accuracy: 0.85, Power: 1.5, RechargeLength: 2,
		Effects: []string{"damage"},
	},
	{
		Slug: "water_jet", Sort: "damage", Range: model.RangeRanged,
		Types:    []model.Element{model.ElementWater},
		Accuracy: 0.9, Power: 1.3, RechargeLength: 2,
		Effects: []string{"damage"},
	},
	{
		Slug: "vine_whip", Sort: "damage", Range: model.RangeReach,
		Types:    []model.Element{model.ElementWood},
		Accuracy: 0.9, Power: 1.2, RechargeLength: 1,
		Effects: []string{"damage"},
	},
	{
		Slug: "metal_fang", Sort: "damage", Range: model.RangeTouch,
		Types:    []model.Element{model.ElementMetal},
		Accuracy: 0.85, Power: 1.4, RechargeLength: 2,
		Effects: []string{"damage"},
	},
	{
		Slug: "pebble_toss", Sort: "damage", Range: model.RangeReliable,
		Types:    []model.Element{model.ElementEarth},
		Accuracy: 1.0, Power: 3.0, RechargeLength: 0,
		Effects: []string{"damage"},
	},
	{
		Slug: "quick_jab", Sort: "damage", Range: model.RangeMelee,
		Types:    []model.Element{model.ElementAether},
		Accuracy: 0.95, Power: 0.7, RechargeLength: 1, IsFast: true,
		Effects: []string{"damage"},
	},
	{
		Slug: "poison_sting", Sort: "damage", Range: model.RangeTouch,
		Types:    []model.Element{model.ElementWood},
		Accuracy: 0.85, Power: 0.8, Potency: 0.5, RechargeLength: 2,
		Effects: []string{"damage", "give poison,target"},
	},
	{
		Slug: "avalanche", Sort: "damage", Range: model.RangeRanged,
		Types:    []model.Element{model.ElementEarth},
		Accuracy: 0.8, Power: 1.6, RechargeLength: 3,
		Effects: []string{"area 2"},
	},
	{
		Slug: "tidal_splash", Sort: "damage", Range: model.RangeRanged,
		Types:    []model.Element{model.ElementWater},
		Accuracy: 0.85, Power: 1.4, RechargeLength: 3,
		Effects: []string{"splash 2"},
	},
	{
		Slug: "counter", Sort: "damage", Range: model.RangeMelee,
		Types:    []model.Element{model.ElementAether},
		Accuracy: 1.0, Power: 1.0, RechargeLength: 2,
		Effects: []string{"retaliate 1.5"},
	},
	{
		Slug: "vengeance", Sort: "damage", Range: model.RangeMelee,
		Types:    []model.Element{model.ElementFire},
		Accuracy: 0.9, Power: 1.0, RechargeLength: 2,
		Effects: []string{"revenge 2"},
	},
	{
		Slug: "payday", Sort: "damage", Range: model.RangeRanged,
		Types:    []model.Element{model.ElementMetal},
		Accuracy: 0.95, Power: 0.8, RechargeLength: 1,
		Effects: []string{"money 2"},
	},
	{
		Slug: "sky_dive", Sort: "damage", Range: model.RangeMelee,
		Types:    []model.Element{model.ElementAether},
		Accuracy: 0.9, Power: 1.8, RechargeLength: 3,
		Effects: []string{"appear", "damage"},
		Predicates: []string{
			"not out_of_range",
		},
	},
	{
		Slug: "life_drain", Sort: "damage", Range: model.RangeTouch,
		Types:    []model.Element{model.ElementWood},
		Accuracy: 0.9, Power: 0.6, Potency: 1.0, RechargeLength: 2,
		Effects: []string{"lifeleech 0.125"},
	},

	// Utility
	{
		Slug: "mend", Sort: "utility", Range: model.RangeSpecial,
		Target:   model.TargetSelf,
		Types:    []model.Element{model.ElementWater},
		Accuracy: 1.0, HealingPower: 2, RechargeLength: 3,
		Effects: []string{"healing"},
		Predicates: []string{
			"is current_hp less_than,100",
		},
	},
	{
		Slug: "harden", Sort: "utility", Range: model.RangeSpecial,
		Target:   model.TargetSelf,
		Types:    []model.Element{model.ElementMetal},
		Accuracy: 1.0, Potency: 1.0, RechargeLength: 2,
		Effects: []string{"statchange armour,0.5,user"},
	},
	{
		Slug: "growl", Sort: "utility", Range: model.RangeSpecial,
		Types:    []model.Element{model.ElementAether},
		Accuracy: 1.0, Potency: 1.0, RechargeLength: 2,
		Effects: []string{"give softened,target"},
		Predicates: []string{
			"not has_status softened",
		},
	},
	{
		Slug: "enrage", Sort: "utility", Range: model.RangeSpecial,
		Target:   model.TargetSelf,
		Types:    []model.Element{model.ElementFire},
		Accuracy: 1.0, Potency: 1.0, RechargeLength: 3,
		Effects: []string{"give enraged,user"},
	},
	{
		Slug: "sleep_powder", Sort: "utility", Range: model.RangeSpecial,
		Types:    []model.Element{model.ElementWood},
		Accuracy: 0.75, Potency: 0.75, RechargeLength: 3,
		Effects: []string{"give noddingoff,target"},
		Predicates: []string{
			"not has_status noddingoff",
			"not fainted",
		},
	},
	{
		Slug: "regrow", Sort: "utility", Range: model.RangeSpecial,
		Target:   model.TargetSelf,
		Types:    []model.Element{model.ElementWood},
		Accuracy: 1.0, Potency: 1.0, RechargeLength: 4,
		Effects: []string{"give recover,user"},
	},
	{
		Slug: "thorn_shield", Sort: "utility", Range: model.RangeSpecial,
		Target:   model.TargetSelf,
		Types:    []model.Element{model.ElementWood},
		Accuracy: 1.0, Potency: 1.0, RechargeLength: 4,
		Effects: []string{"give prickly,user"},
	},
	{
		Slug: "mirror_coat", Sort: "utility", Range: model.RangeSpecial,
		Target:   model.TargetSelf,
		Types:    []model.Element{model.ElementMetal},
		Accuracy: 1.0, Potency: 1.0, RechargeLength: 4,
		Effects: []string{"give feedback,user"},
	},
	{
		Slug: "cleanse", Sort: "utility", Range: model.RangeSpecial,
		Target:   model.TargetSelf,
		Types:    []model.Element{model.ElementWater},
		Accuracy: 1.0, Potency: 1.0, RechargeLength: 3,
		Effects: []string{"remove all,user"},
		Predicates: []string{
			"is status_category negative",
		},
	},
	{
		Slug: "chameleon", Sort: "utility", Range: model.RangeSpecial,
		Target:   model.TargetSelf,
		Types:    []model.Element{model.ElementAether},
		Accuracy: 1.0, Potency: 1.0, RechargeLength: 4,
		Effects: []string{"switch water,user"},
	},
	{
		Slug: "take_flight", Sort: "utility", Range: model.RangeSpecial,
		Target:   model.TargetSelf,
		Types:    []model.Element{model.ElementAether},
		Accuracy: 1.0, Potency: 1.0, RechargeLength: 3, IsFast: true,
		Effects: []string{"disappear flying"},
	},
	{
		Slug: "submerge", Sort: "utility", Range: model.RangeSpecial,
		Target:   model.TargetSelf,
		Types:    []model.Element{model.ElementWater},
		Accuracy: 1.0, Potency: 1.0, RechargeLength: 3, IsFast: true,
		Effects: []string{"disappear submerged"},
	},

	// Meta
	{
		Slug: "swap", Sort: "meta", Range: model.RangeSpecial,
		Accuracy: 1.0,
		Effects:  []string{"swap"},
	},
	{
		Slug: "run", Sort: "meta", Range: model.RangeSpecial,
		Accuracy: 1.0,
		Effects:  []string{"run"},
	},
	{
		Slug: "forfeit", Sort: "meta", Range: model.RangeSpecial,
		Accuracy: 1.0,
		Effects:  []string{"forfeit"},
	},
}

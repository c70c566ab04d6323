package data

import "github.com/udisondev/tuxbattle/internal/model"

// conditionDefs — встроенные статусы. faint обязателен: его применяет
// combat при нокауте.
var conditionDefs = []ConditionRecord{
	{
		Slug:     model.FaintSlug,
		Sort:     "meta",
		Category: model.CategoryNegative,
		Bond:     true,
		ReplPos:  model.ReplReplaced,
		ReplNeg:  model.ReplReplaced,
		Effects:  []string{"faint"},
	},
	{
		Slug:     "poison",
		Sort:     "meta",
		Category: model.CategoryNegative,
		Bond:     true,
		ReplPos:  model.ReplReplaced,
		ReplNeg:  model.ReplReplaced,
		Effects:  []string{"poison 8"},
		Predicates: []string{
			"not fainted",
		},
	},
	{
		Slug:     "recover",
		Sort:     "meta",
		Category: model.CategoryPositive,
		Duration: 4,
		ReplPos:  model.ReplReplaced,
		ReplNeg:  model.ReplRemoved,
		Effects:  []string{"recover 16"},
		Predicates: []string{
			"is current_hp less_than,100",
		},
	},
	{
		Slug:     "noddingoff",
		Sort:     "meta",
		Category: model.CategoryNegative,
		Duration: 3,
		ReplPos:  model.ReplReplaced,
		ReplNeg:  model.ReplReplaced,
		Effects:  []string{"noddingoff 0.3"},
	},
	{
		Slug:     "enraged",
		Sort:     "meta",
		Category: model.CategoryPositive,
		Duration: 3,
		ReplPos:  model.ReplReplaced,
		ReplNeg:  model.ReplReplaced,
		Effects:  []string{"statchange melee,0.5"},
	},
	{
		Slug:     "softened",
		Sort:     "meta",
		Category: model.CategoryNegative,
		Duration: 3,
		ReplPos:  model.ReplReplaced,
		ReplNeg:  model.ReplReplaced,
		Effects:  []string{"statchange armour,-0.3"},
	},
	{
		Slug:     "prickly",
		Sort:     "meta",
		Category: model.CategoryPositive,
		Duration: 4,
		Reactive: true,
		ReplPos:  model.ReplReplaced,
		ReplNeg:  model.ReplReplaced,
		Effects:  []string{"prickly 8"},
	},
	{
		Slug:     "feedback",
		Sort:     "meta",
		Category: model.CategoryPositive,
		Duration: 3,
		Reactive: true,
		ReplPos:  model.ReplReplaced,
		ReplNeg:  model.ReplReplaced,
		Effects:  []string{"feedback 0.5"},
	},
	{
		Slug:     "focused",
		Sort:     "meta",
		Category: model.CategoryNeutral,
		Duration: 2,
		ReplPos:  model.ReplReplaced,
		ReplNeg:  model.ReplReplaced,
		Effects:  []string{"statchange ranged,0.3"},
	},
}

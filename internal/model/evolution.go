package model

// Evolution is one evolution candidate of a species. Zero-valued fields are
// absent and do not take part in the check.
type Evolution struct {
	MonsterSlug string   `yaml:"monster_slug" json:"monster_slug"`
	Level       int      `yaml:"at_level,omitempty" json:"at_level,omitempty"`
	Gender      Gender   `yaml:"gender,omitempty" json:"gender,omitempty"`
	Element     Element  `yaml:"element,omitempty" json:"element,omitempty"`
	Inside      *bool    `yaml:"inside,omitempty" json:"inside,omitempty"`
	Tech        string   `yaml:"tech,omitempty" json:"tech,omitempty"`
	Traded      *bool    `yaml:"traded,omitempty" json:"traded,omitempty"`
	Moves       []string `yaml:"moves,omitempty" json:"moves,omitempty"`
	Party       []string `yaml:"party,omitempty" json:"party,omitempty"`
	TasteCold   string   `yaml:"taste_cold,omitempty" json:"taste_cold,omitempty"`
	TasteWarm   string   `yaml:"taste_warm,omitempty" json:"taste_warm,omitempty"`
	// Stats is "<stat>:<op>:<stat>", e.g. "melee:greater_than:armour".
	Stats string `yaml:"stats,omitempty" json:"stats,omitempty"`
	// Variables is a list of "<key>:<value>" game variable equalities.
	Variables []string `yaml:"variables,omitempty" json:"variables,omitempty"`
	Steps     int      `yaml:"steps,omitempty" json:"steps,omitempty"`
	// Bond is "<op>:<value>", e.g. "greater_or_equal:70".
	Bond string `yaml:"bond,omitempty" json:"bond,omitempty"`
	Item string `yaml:"item,omitempty" json:"item,omitempty"`
}

// EvolutionRecord is one entry of a monster's form history.
type EvolutionRecord struct {
	From  string `yaml:"from" json:"from"`
	To    string `yaml:"to" json:"to"`
	Level int    `yaml:"level" json:"level"`
}

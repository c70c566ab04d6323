package data

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound is returned when a slug is missing from a catalog table.
	ErrNotFound = errors.New("not found in catalog")
	// ErrInvalid is returned for records that fail validation.
	ErrInvalid = errors.New("invalid catalog record")
)

// Catalog is the read-only content database. It is built once at startup
// and shared by pointer; nothing mutates it after Load returns.
type Catalog struct {
	shapes     map[string]*ShapeRecord
	techniques map[string]*TechniqueRecord
	conditions map[string]*ConditionRecord
	species    map[string]*SpeciesRecord
}

func newCatalog() *Catalog {
	return &Catalog{
		shapes:     make(map[string]*ShapeRecord),
		techniques: make(map[string]*TechniqueRecord),
		conditions: make(map[string]*ConditionRecord),
		species:    make(map[string]*SpeciesRecord),
	}
}

// Load строит каталог из Go-литералов и валидирует его.
func Load() (*Catalog, error) {
	c := newCatalog()
	c.merge(builtinPack())
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validating built-in catalog: %w", err)
	}

	slog.Info("loaded catalog",
		"shapes", len(c.shapes),
		"techniques", len(c.techniques),
		"conditions", len(c.conditions),
		"species", len(c.species))
	return c, nil
}

// LoadFile builds the built-in catalog and overlays the YAML pack at path.
// An empty path is the same as Load.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Load()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content pack %s: %w", path, err)
	}
	var pack Pack
	if err := yaml.Unmarshal(raw, &pack); err != nil {
		return nil, fmt.Errorf("parsing content pack %s: %w", path, err)
	}

	c := newCatalog()
	c.merge(builtinPack())
	c.merge(&pack)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validating content pack %s: %w", path, err)
	}

	slog.Info("loaded content pack",
		"path", path,
		"techniques", len(pack.Techniques),
		"conditions", len(pack.Conditions),
		"species", len(pack.Species))
	return c, nil
}

func builtinPack() *Pack {
	return &Pack{
		Shapes:     shapeDefs,
		Techniques: techniqueDefs,
		Conditions: conditionDefs,
		Species:    speciesDefs,
	}
}

// merge copies the pack records; later records replace earlier ones.
func (c *Catalog) merge(p *Pack) {
	for i := range p.Shapes {
		r := p.Shapes[i]
		c.shapes[r.Slug] = &r
	}
	for i := range p.Techniques {
		r := p.Techniques[i]
		c.techniques[r.Slug] = &r
	}
	for i := range p.Conditions {
		r := p.Conditions[i]
		c.conditions[r.Slug] = &r
	}
	for i := range p.Species {
		r := p.Species[i]
		c.species[r.Slug] = &r
	}
}

// Technique returns the technique record for slug.
func (c *Catalog) Technique(slug string) (*TechniqueRecord, error) {
	r, ok := c.techniques[slug]
	if !ok {
		return nil, fmt.Errorf("technique %q: %w", slug, ErrNotFound)
	}
	return r, nil
}

// Condition returns the condition record for slug.
func (c *Catalog) Condition(slug string) (*ConditionRecord, error) {
	r, ok := c.conditions[slug]
	if !ok {
		return nil, fmt.Errorf("condition %q: %w", slug, ErrNotFound)
	}
	return r, nil
}

// Species returns the species record for slug.
func (c *Catalog) Species(slug string) (*SpeciesRecord, error) {
	r, ok := c.species[slug]
	if !ok {
		return nil, fmt.Errorf("species %q: %w", slug, ErrNotFound)
	}
	return r, nil
}

// Shape returns the shape record for slug.
func (c *Catalog) Shape(slug string) (*ShapeRecord, error) {
	r, ok := c.shapes[slug]
	if !ok {
		return nil, fmt.Errorf("shape %q: %w", slug, ErrNotFound)
	}
	return r, nil
}

// TechniqueSlugs returns all technique slugs, sorted.
func (c *Catalog) TechniqueSlugs() []string {
	return sortedKeys(c.techniques)
}

// ConditionSlugs returns all condition slugs, sorted.
func (c *Catalog) ConditionSlugs() []string {
	return sortedKeys(c.conditions)
}

// SpeciesSlugs returns all species slugs, sorted.
func (c *Catalog) SpeciesSlugs() []string {
	return sortedKeys(c.species)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

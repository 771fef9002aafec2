package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nazroll/wzrdbrain/internal/trick"
)

// FormatVersion is the catalog document version this build understands.
const FormatVersion = 1

// Load reads, parses and validates a catalog file. Either a complete
// immutable catalog comes back or an error; the engine never sees a
// half-loaded one.
func Load(path string) (*trick.Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return LoadBytes(b, path)
}

// LoadBytes parses and validates catalog YAML. source only labels errors,
// so tests and embedded data can pass anything descriptive.
func LoadBytes(data []byte, source string) (*trick.Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", source, err)
	}
	if errs := validate(doc); len(errs) > 0 {
		return nil, &CatalogError{Source: source, Problems: errs}
	}
	return build(doc)
}

// Default returns the catalog embedded in the binary.
func Default() (*trick.Catalog, error) {
	return LoadBytes(defaultCatalog, "embedded")
}

// build converts a validated document into engine types.
func build(doc Document) (*trick.Catalog, error) {
	moves := make([]trick.Move, len(doc.Moves))
	for i, m := range doc.Moves {
		rotation := m.Mechanics.Rotation
		if rotation == "none" {
			rotation = ""
		}
		moves[i] = trick.Move{
			ID:          m.ID,
			Name:        m.Name,
			Category:    trick.Category(m.Category),
			Stage:       m.Stage,
			Description: m.Description,
			Aliases:     append([]string(nil), m.Aliases...),
			UseFakie:    m.UseFakie,
			NoStance:    m.NoStance,
			Mechanics: trick.Mechanics{
				Feet:     m.Mechanics.Feet,
				Rotates:  m.Mechanics.Rotates,
				Degrees:  m.Mechanics.Degrees,
				Rotation: rotation,
			},
			Entry: trick.State{
				Direction: trick.Direction(m.Entry.Direction),
				Edge:      trick.Edge(m.Entry.Edge),
				Stance:    trick.Stance(m.Entry.Stance),
				Point:     trick.Point(m.Entry.Point),
			},
			Exit: trick.ExitSpec{
				Direction: trick.SpecValue(m.Exit.Direction),
				Edge:      trick.SpecValue(m.Exit.Edge),
				Stance:    trick.SpecValue(m.Exit.Stance),
				Point:     trick.Point(m.Exit.Point),
			},
		}
	}

	rules := trick.Rules{}
	if len(doc.Rules.OnlyFirst) > 0 {
		rules.OnlyFirst = make(map[string]bool, len(doc.Rules.OnlyFirst))
		for _, id := range doc.Rules.OnlyFirst {
			rules.OnlyFirst[id] = true
		}
	}

	return trick.NewCatalog(doc.Version, moves, rules)
}

package trick

import "fmt"

// Catalog holds the full set of move definitions plus the placement rules
// loaded with them. It is immutable after construction, so any number of
// goroutines may read it without locking; hot reload swaps in a whole new
// Catalog rather than mutating one in place.
type Catalog struct {
	version int
	moves   []Move
	byID    map[string]int
	rules   Rules
}

// NewCatalog builds a catalog from validated definitions. It still guards
// the invariants the type itself depends on (non-empty, unique ids) so a
// broken Catalog cannot be constructed by skipping the loader.
func NewCatalog(version int, moves []Move, rules Rules) (*Catalog, error) {
	c := &Catalog{
		version: version,
		moves:   make([]Move, len(moves)),
		byID:    make(map[string]int, len(moves)),
		rules:   rules.clone(),
	}
	for i, m := range moves {
		if m.ID == "" {
			return nil, fmt.Errorf("catalog: move at index %d has no id", i)
		}
		if _, dup := c.byID[m.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate move id %q", m.ID)
		}
		c.moves[i] = m.clone()
		c.byID[m.ID] = i
	}
	return c, nil
}

func (c *Catalog) Version() int { return c.version }

func (c *Catalog) Len() int { return len(c.moves) }

// Moves returns every definition in catalog order.
func (c *Catalog) Moves() []Move {
	out := make([]Move, len(c.moves))
	for i, m := range c.moves {
		out[i] = m.clone()
	}
	return out
}

// ByID looks up one definition.
func (c *Catalog) ByID(id string) (Move, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Move{}, false
	}
	return c.moves[i].clone(), true
}

// ByStage returns every move with Stage <= maxStage, in catalog order.
// An empty result is not an error; callers treat it as nothing available.
func (c *Catalog) ByStage(maxStage int) []Move {
	var out []Move
	for _, m := range c.moves {
		if m.Stage <= maxStage {
			out = append(out, m.clone())
		}
	}
	return out
}

// Rules returns the placement rule sets loaded with the catalog.
func (c *Catalog) Rules() Rules { return c.rules.clone() }

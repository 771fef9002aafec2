package trick

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSpec = errors.New("invalid trick spec")
	ErrNoMatch     = errors.New("no catalog move matches the given constraints")
)

// TrickSpec constrains a single random trick draw. Zero fields are filled
// from whatever the catalog offers; set fields are validated before any
// defaulting happens. MaxStage <= 0 leaves the difficulty ceiling open.
type TrickSpec struct {
	MoveID    string
	Direction Direction
	Edge      Edge
	Stance    Stance
	Point     Point
	MaxStage  int
}

func (s TrickSpec) validate() error {
	if s.Direction != "" && !s.Direction.Valid() {
		return fmt.Errorf("%w: direction %q", ErrInvalidSpec, s.Direction)
	}
	if s.Edge != "" && !s.Edge.Valid() {
		return fmt.Errorf("%w: edge %q", ErrInvalidSpec, s.Edge)
	}
	if s.Stance != "" && !s.Stance.Valid() {
		return fmt.Errorf("%w: stance %q", ErrInvalidSpec, s.Stance)
	}
	if s.Point != "" && !s.Point.Valid() {
		return fmt.Errorf("%w: point %q", ErrInvalidSpec, s.Point)
	}
	return nil
}

func (s TrickSpec) matches(m Move) bool {
	if s.MoveID != "" && m.ID != s.MoveID {
		return false
	}
	if s.MaxStage > 0 && m.Stage > s.MaxStage {
		return false
	}
	if s.Direction != "" && m.Entry.Direction != s.Direction {
		return false
	}
	if s.Edge != "" && m.Entry.Edge != s.Edge {
		return false
	}
	if s.Stance != "" && m.Entry.Stance != s.Stance {
		return false
	}
	if s.Point != "" && m.Entry.Point != s.Point {
		return false
	}
	return true
}

// RandomTrick draws one trick uniformly among the definitions matching the
// spec: pin the attributes you care about, everything else is rolled. An
// explicit but out-of-domain value fails with ErrInvalidSpec before any
// drawing happens; a spec no catalog move satisfies fails with ErrNoMatch.
func (g *Generator) RandomTrick(spec TrickSpec) (Instance, error) {
	if err := spec.validate(); err != nil {
		return Instance{}, err
	}
	if spec.MoveID != "" {
		if _, ok := g.cat.byID[spec.MoveID]; !ok {
			return Instance{}, fmt.Errorf("%w: %q", ErrUnknownMove, spec.MoveID)
		}
	}
	var pool []Move
	for _, m := range g.cat.moves {
		if spec.matches(m) {
			pool = append(pool, m)
		}
	}
	if len(pool) == 0 {
		return Instance{}, ErrNoMatch
	}
	return Materialize(pool[g.rng.IntN(len(pool))]), nil
}

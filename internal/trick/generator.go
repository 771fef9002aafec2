package trick

import (
	"errors"
	"fmt"
)

// Default combo length bounds used when the caller does not pin a length.
const (
	DefaultMinLength = 2
	DefaultMaxLength = 5
)

var ErrUnknownMove = errors.New("unknown move id")

// Params control one generation call.
type Params struct {
	// Length pins the target combo length. Nil rolls a uniform length in
	// [DefaultMinLength, DefaultMaxLength]; zero or negative yields an
	// empty combo.
	Length *int
	// MaxStage is the difficulty ceiling. Only moves with
	// Stage <= MaxStage are considered.
	MaxStage int
}

// Generator builds combos over one catalog. The catalog is shared and
// read-only; the random source is stateful, so use one Generator per
// goroutine. Building one is cheap (a server builds one per request).
type Generator struct {
	cat   *Catalog
	rules Rules
	rng   RandomSource
}

// NewGenerator wires a generator. rules normally come from cat.Rules();
// a zero Rules disables placement restrictions. A nil rng falls back to
// the crypto-backed default.
func NewGenerator(cat *Catalog, rules Rules, rng RandomSource) *Generator {
	if rng == nil {
		rng = DefaultRNG()
	}
	return &Generator{cat: cat, rules: rules, rng: rng}
}

// Generate builds one combo: a uniform opening pick over the stage pool,
// then a constrained random walk where each next move must enter on the
// previous trick's exit direction and weight point.
//
// The walk can stop early: when no eligible move continues from the
// current exit, the combo simply ends at its current length. That is a
// normal outcome on sparse catalogs, not a failure, which is why Generate
// has no error return. An empty stage pool yields an empty combo.
func (g *Generator) Generate(p Params) Combo {
	length := g.rollLength(p.Length)
	if length <= 0 {
		return Combo{}
	}
	pool := g.stagePool(p.MaxStage)
	if len(pool) == 0 {
		return Combo{}
	}
	combo := make(Combo, 0, length)
	combo = append(combo, Materialize(pool[g.rng.IntN(len(pool))]))
	return g.extend(combo, length, pool)
}

// GenerateFrom builds a combo that opens with a named move. The opening
// bypasses the stage ceiling (the caller asked for it outright); the rest
// of the walk respects Params exactly as Generate does. It errors only
// when the opening id is not in the catalog.
func (g *Generator) GenerateFrom(openingID string, p Params) (Combo, error) {
	opening, ok := g.cat.ByID(openingID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMove, openingID)
	}
	length := g.rollLength(p.Length)
	if length <= 0 {
		return Combo{}, nil
	}
	combo := make(Combo, 0, length)
	combo = append(combo, Materialize(opening))
	return g.extend(combo, length, g.stagePool(p.MaxStage)), nil
}

// walks attempted before GenerateIncluding gives up on a mid-combo slot
const includeAttempts = 4

// GenerateIncluding builds a combo containing the named move somewhere.
// Only-first moves and single-trick combos open with it (the only legal
// slot). Otherwise a target position is rolled and the move is dropped in
// at the first slot from there whose state it can enter; the move itself
// bypasses the stage ceiling, like a requested opening. A walk can miss
// the move's entry state entirely, so after a few futile walks the combo
// simply opens with the move instead. Errors only on an unknown id.
func (g *Generator) GenerateIncluding(moveID string, p Params) (Combo, error) {
	move, ok := g.cat.ByID(moveID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMove, moveID)
	}
	length := g.rollLength(p.Length)
	if length <= 0 {
		return Combo{}, nil
	}
	pinned := Params{Length: &length, MaxStage: p.MaxStage}
	if g.rules.OnlyFirst[move.ID] || length == 1 {
		return g.GenerateFrom(moveID, pinned)
	}
	pool := g.stagePool(p.MaxStage)
	if len(pool) == 0 {
		return g.GenerateFrom(moveID, pinned)
	}

	for attempt := 0; attempt < includeAttempts; attempt++ {
		target := 1 + g.rng.IntN(length-1)
		combo := make(Combo, 0, length)
		combo = append(combo, Materialize(pool[g.rng.IntN(len(pool))]))
		placed := combo[0].MoveID == move.ID
		for len(combo) < length {
			prev := combo[len(combo)-1].Exit
			if !placed && len(combo) >= target &&
				move.Entry.Direction == prev.Direction && move.Entry.Point == prev.Point {
				combo = append(combo, Materialize(move))
				placed = true
				continue
			}
			cands := g.continuations(pool, prev)
			if len(cands) == 0 {
				break
			}
			pick := cands[g.rng.IntN(len(cands))]
			if pick.ID == move.ID {
				placed = true
			}
			combo = append(combo, Materialize(pick))
		}
		if placed {
			return combo, nil
		}
	}
	return g.GenerateFrom(moveID, pinned)
}

func (g *Generator) rollLength(want *int) int {
	if want != nil {
		return *want
	}
	return DefaultMinLength + g.rng.IntN(DefaultMaxLength-DefaultMinLength+1)
}

func (g *Generator) extend(combo Combo, length int, pool []Move) Combo {
	for len(combo) < length {
		cands := g.continuations(pool, combo[len(combo)-1].Exit)
		if len(cands) == 0 {
			break // dead end, combo ends here
		}
		combo = append(combo, Materialize(cands[g.rng.IntN(len(cands))]))
	}
	return combo
}

// stagePool reads catalog storage directly; definitions are immutable so
// no copies are needed on this hot path.
func (g *Generator) stagePool(maxStage int) []Move {
	var out []Move
	for _, m := range g.cat.moves {
		if m.Stage <= maxStage {
			out = append(out, m)
		}
	}
	return out
}

// continuations keeps the moves that can follow the given exit state.
// Only-first moves never continue a combo.
func (g *Generator) continuations(pool []Move, exit State) []Move {
	var out []Move
	for _, m := range pool {
		if g.rules.OnlyFirst[m.ID] {
			continue
		}
		if m.Entry.Direction != exit.Direction || m.Entry.Point != exit.Point {
			continue
		}
		out = append(out, m)
	}
	return out
}

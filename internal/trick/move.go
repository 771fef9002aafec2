package trick

// Stage bounds supported by the catalog format. Stage 1 is the easiest.
const (
	StageMin = 1
	StageMax = 5
)

// SpecValue is one attribute of an exit spec: an absolute domain value, or
// a reference to the entry state ("same" / "opposite").
type SpecValue string

const (
	SpecSame     SpecValue = "same"
	SpecOpposite SpecValue = "opposite"
)

// Relative reports whether the value refers to the entry state.
func (v SpecValue) Relative() bool { return v == SpecSame || v == SpecOpposite }

// ExitSpec describes how a move's exit state derives from its entry state.
// Point never derives: a move always lands on a named weight point.
type ExitSpec struct {
	Direction SpecValue `json:"direction"`
	Edge      SpecValue `json:"edge"`
	Stance    SpecValue `json:"stance"`
	Point     Point     `json:"point"`
}

// Mechanics is descriptive metadata about how a move is performed. The
// engine never reads it; continuity and resolution work only off entry
// states and exit specs. A full 360 has Rotates true yet keeps direction.
type Mechanics struct {
	Feet     int    `json:"feet"`
	Rotates  bool   `json:"rotates"`
	Degrees  int    `json:"degrees,omitempty"`
	Rotation string `json:"rotation,omitempty"` // "spin" | "carve" | ""
}

// Move is an immutable catalog definition.
type Move struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    Category  `json:"category"`
	Stage       int       `json:"stage"`
	Description string    `json:"description,omitempty"`
	Aliases     []string  `json:"aliases,omitempty"`
	UseFakie    bool      `json:"use_fakie,omitempty"`
	NoStance    bool      `json:"no_stance,omitempty"`
	Mechanics   Mechanics `json:"mechanics"`
	Entry       State     `json:"entry"`
	Exit        ExitSpec  `json:"exit"`
}

func (m Move) clone() Move {
	out := m
	if len(m.Aliases) > 0 {
		out.Aliases = append([]string(nil), m.Aliases...)
	}
	return out
}

// Rules are placement restrictions that live beside the catalog rather than
// inside any single move. They are loaded once and passed explicitly into
// the generator; a zero Rules disables the overlay.
type Rules struct {
	// OnlyFirst lists move ids allowed only as the opening trick.
	OnlyFirst map[string]bool
}

func (r Rules) clone() Rules {
	out := Rules{}
	if len(r.OnlyFirst) > 0 {
		out.OnlyFirst = make(map[string]bool, len(r.OnlyFirst))
		for id, v := range r.OnlyFirst {
			out.OnlyFirst[id] = v
		}
	}
	return out
}

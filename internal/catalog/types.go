// types.go
package catalog

// Document is the on-disk catalog format; mirrors data/tricks.yaml.
// The jsonschema tags feed cmd/schemagen.
type Document struct {
	Version int       `yaml:"version" json:"version" jsonschema:"required,minimum=1,description=Catalog format version; currently 1"`
	Moves   []MoveDoc `yaml:"moves" json:"moves" jsonschema:"required,minItems=1"`
	Rules   RulesDoc  `yaml:"rules,omitempty" json:"rules,omitempty"`
	Notes   string    `yaml:"notes,omitempty" json:"notes,omitempty"`
}

type MoveDoc struct {
	ID          string       `yaml:"id" json:"id" jsonschema:"required,pattern=^[a-z0-9-]+$"`
	Name        string       `yaml:"name" json:"name" jsonschema:"required,minLength=1"`
	Category    string       `yaml:"category" json:"category" jsonschema:"required,enum=stance,enum=transition,enum=press,enum=roll,enum=spin,enum=slide,enum=pivot"`
	Stage       int          `yaml:"stage" json:"stage" jsonschema:"required,minimum=1,maximum=5"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Aliases     []string     `yaml:"aliases,omitempty" json:"aliases,omitempty"`
	UseFakie    bool         `yaml:"use_fakie,omitempty" json:"use_fakie,omitempty" jsonschema:"description=Render back/front as fakie/forward"`
	NoStance    bool         `yaml:"no_stance,omitempty" json:"no_stance,omitempty" jsonschema:"description=Suppress the stance word in display names"`
	Mechanics   MechanicsDoc `yaml:"mechanics" json:"mechanics"`
	Entry       EntryDoc     `yaml:"entry" json:"entry" jsonschema:"required"`
	Exit        ExitDoc      `yaml:"exit" json:"exit" jsonschema:"required"`
}

// MechanicsDoc captures how the move is performed. Descriptive only: the
// engine resolves states from entry/exit, never from here.
type MechanicsDoc struct {
	Feet     int    `yaml:"feet" json:"feet" jsonschema:"minimum=1,maximum=2"`
	Rotates  bool   `yaml:"rotates,omitempty" json:"rotates,omitempty"`
	Degrees  int    `yaml:"degrees,omitempty" json:"degrees,omitempty" jsonschema:"minimum=0"`
	Rotation string `yaml:"rotation,omitempty" json:"rotation,omitempty" jsonschema:"enum=spin,enum=carve,enum=none"`
}

// EntryDoc is the absolute state a move starts from.
type EntryDoc struct {
	Direction string `yaml:"direction" json:"direction" jsonschema:"required,enum=front,enum=back"`
	Edge      string `yaml:"edge" json:"edge" jsonschema:"required,enum=inside,enum=outside"`
	Stance    string `yaml:"stance" json:"stance" jsonschema:"required,enum=open,enum=closed"`
	Point     string `yaml:"point" json:"point" jsonschema:"required,enum=heel,enum=toe"`
}

// ExitDoc derives the exit state. Direction/edge/stance accept an absolute
// value or same/opposite; point must always be absolute.
type ExitDoc struct {
	Direction string `yaml:"direction" json:"direction" jsonschema:"required,enum=front,enum=back,enum=same,enum=opposite"`
	Edge      string `yaml:"edge" json:"edge" jsonschema:"required,enum=inside,enum=outside,enum=same,enum=opposite"`
	Stance    string `yaml:"stance" json:"stance" jsonschema:"required,enum=open,enum=closed,enum=same,enum=opposite"`
	Point     string `yaml:"point" json:"point" jsonschema:"required,enum=heel,enum=toe"`
}

type RulesDoc struct {
	// OnlyFirst lists move ids allowed only as a combo's opening trick.
	OnlyFirst []string `yaml:"only_first,omitempty" json:"only_first,omitempty"`
}

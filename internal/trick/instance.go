package trick

// Instance is one resolved trick inside a combo: a reference to its move
// definition plus the concrete entry and exit states it was placed with.
// Instances are plain values; nothing mutates them after Materialize.
type Instance struct {
	MoveID   string   `json:"move_id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Stage    int      `json:"stage"`
	UseFakie bool     `json:"use_fakie,omitempty"`
	NoStance bool     `json:"no_stance,omitempty"`
	Entry    State    `json:"entry"`
	Exit     State    `json:"exit"`
}

// Combo is an ordered sequence of resolved tricks. It may be empty.
type Combo []Instance

// Continuous reports whether every adjacent pair links up: exit direction
// and exit weight point must equal the next trick's entry. Edge and stance
// are free to jump between tricks.
func (c Combo) Continuous() bool {
	for i := 1; i < len(c); i++ {
		if c[i-1].Exit.Direction != c[i].Entry.Direction {
			return false
		}
		if c[i-1].Exit.Point != c[i].Entry.Point {
			return false
		}
	}
	return true
}

// MoveIDs returns the id sequence, handy for validation round trips.
func (c Combo) MoveIDs() []string {
	out := make([]string, len(c))
	for i, t := range c {
		out[i] = t.MoveID
	}
	return out
}

package trick

// ResolveExit computes the concrete exit state for a move entered at the
// given state. Absolute spec values pass through as-is, "same" copies the
// entry attribute, "opposite" flips it. The weight point always comes from
// the spec verbatim. Pure and total: loaders reject anything outside the
// closed domains, so there is no error path here.
func ResolveExit(entry State, spec ExitSpec) State {
	return State{
		Direction: resolveDirection(entry.Direction, spec.Direction),
		Edge:      resolveEdge(entry.Edge, spec.Edge),
		Stance:    resolveStance(entry.Stance, spec.Stance),
		Point:     spec.Point,
	}
}

func resolveDirection(in Direction, v SpecValue) Direction {
	switch v {
	case SpecSame:
		return in
	case SpecOpposite:
		return in.Opposite()
	}
	return Direction(v)
}

func resolveEdge(in Edge, v SpecValue) Edge {
	switch v {
	case SpecSame:
		return in
	case SpecOpposite:
		return in.Opposite()
	}
	return Edge(v)
}

func resolveStance(in Stance, v SpecValue) Stance {
	switch v {
	case SpecSame:
		return in
	case SpecOpposite:
		return in.Opposite()
	}
	return Stance(v)
}

// Materialize resolves a definition into a combo-ready instance.
func Materialize(m Move) Instance {
	return Instance{
		MoveID:   m.ID,
		Name:     m.Name,
		Category: m.Category,
		Stage:    m.Stage,
		UseFakie: m.UseFakie,
		NoStance: m.NoStance,
		Entry:    m.Entry,
		Exit:     ResolveExit(m.Entry, m.Exit),
	}
}

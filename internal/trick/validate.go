package trick

import "fmt"

// ViolationKind labels one class of combo rule break.
type ViolationKind string

const (
	ViolationUnknownMove ViolationKind = "unknown_move"
	ViolationStage       ViolationKind = "stage_exceeded"
	ViolationOnlyFirst   ViolationKind = "only_first_misplaced"
	ViolationDirection   ViolationKind = "direction_break"
	ViolationPoint       ViolationKind = "point_break"
)

// Violation points at one broken rule in a submitted sequence.
type Violation struct {
	Index  int           `json:"index"`
	Kind   ViolationKind `json:"kind"`
	Detail string        `json:"detail"`
}

// Check audits an ordered move id sequence against the same rules the
// generator enforces: every id known, stages under the ceiling, only-first
// moves nowhere but position 0, direction and weight point linking between
// neighbours. maxStage <= 0 disables the ceiling check. All violations are
// reported, not just the first; an unknown id suppresses the continuity
// checks touching it (there is no state to link) while the rest of the
// sequence is still audited.
func Check(cat *Catalog, rules Rules, maxStage int, moveIDs []string) []Violation {
	var out []Violation
	resolved := make([]*Instance, len(moveIDs))
	for i, id := range moveIDs {
		m, ok := cat.ByID(id)
		if !ok {
			out = append(out, Violation{
				Index:  i,
				Kind:   ViolationUnknownMove,
				Detail: fmt.Sprintf("no move %q in catalog", id),
			})
			continue
		}
		ins := Materialize(m)
		resolved[i] = &ins
		if maxStage > 0 && m.Stage > maxStage {
			out = append(out, Violation{
				Index:  i,
				Kind:   ViolationStage,
				Detail: fmt.Sprintf("%s is stage %d, ceiling is %d", id, m.Stage, maxStage),
			})
		}
		if i > 0 && rules.OnlyFirst[id] {
			out = append(out, Violation{
				Index:  i,
				Kind:   ViolationOnlyFirst,
				Detail: fmt.Sprintf("%s can only open a combo", id),
			})
		}
	}
	for i := 1; i < len(resolved); i++ {
		prev, cur := resolved[i-1], resolved[i]
		if prev == nil || cur == nil {
			continue
		}
		if prev.Exit.Direction != cur.Entry.Direction {
			out = append(out, Violation{
				Index: i,
				Kind:  ViolationDirection,
				Detail: fmt.Sprintf("%s exits %s but %s enters %s",
					prev.MoveID, prev.Exit.Direction, cur.MoveID, cur.Entry.Direction),
			})
		}
		if prev.Exit.Point != cur.Entry.Point {
			out = append(out, Violation{
				Index: i,
				Kind:  ViolationPoint,
				Detail: fmt.Sprintf("%s exits on the %s but %s enters on the %s",
					prev.MoveID, prev.Exit.Point, cur.MoveID, cur.Entry.Point),
			})
		}
	}
	return out
}

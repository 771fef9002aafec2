package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nazroll/wzrdbrain/internal/trick"
)

// CatalogError reports structurally invalid catalog data. Every problem
// found is collected, not just the first.
type CatalogError struct {
	Source   string
	Problems []string
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog %s: %s", e.Source, strings.Join(e.Problems, "; "))
}

var idRE = regexp.MustCompile(`^[a-z0-9-]+$`)

// validate checks semantic constraints of a parsed Document.
func validate(doc Document) []string {
	var errs []string

	if doc.Version != FormatVersion {
		errs = append(errs, fmt.Sprintf("version must be %d, got %d", FormatVersion, doc.Version))
	}
	if len(doc.Moves) == 0 {
		errs = append(errs, "catalog has no moves")
	}

	seen := make(map[string]bool, len(doc.Moves))
	for i, m := range doc.Moves {
		at := fmt.Sprintf("moves[%d]", i)
		if m.ID != "" {
			at = fmt.Sprintf("moves[%d] (%s)", i, m.ID)
		}

		switch {
		case m.ID == "":
			errs = append(errs, at+": id is required")
		case !idRE.MatchString(m.ID):
			errs = append(errs, at+": id must match ^[a-z0-9-]+$")
		case seen[m.ID]:
			errs = append(errs, at+": duplicate id")
		default:
			seen[m.ID] = true
		}

		if m.Name == "" {
			errs = append(errs, at+": name is required")
		}
		if !trick.Category(m.Category).Valid() {
			errs = append(errs, fmt.Sprintf("%s: unknown category %q", at, m.Category))
		}
		if m.Stage < trick.StageMin || m.Stage > trick.StageMax {
			errs = append(errs, fmt.Sprintf("%s: stage %d outside %d..%d", at, m.Stage, trick.StageMin, trick.StageMax))
		}

		// entry: all four attributes absolute
		if !trick.Direction(m.Entry.Direction).Valid() {
			errs = append(errs, fmt.Sprintf("%s: entry.direction must be front or back, got %q", at, m.Entry.Direction))
		}
		if !trick.Edge(m.Entry.Edge).Valid() {
			errs = append(errs, fmt.Sprintf("%s: entry.edge must be inside or outside, got %q", at, m.Entry.Edge))
		}
		if !trick.Stance(m.Entry.Stance).Valid() {
			errs = append(errs, fmt.Sprintf("%s: entry.stance must be open or closed, got %q", at, m.Entry.Stance))
		}
		if !trick.Point(m.Entry.Point).Valid() {
			errs = append(errs, fmt.Sprintf("%s: entry.point must be heel or toe, got %q", at, m.Entry.Point))
		}

		// exit: direction/edge/stance may be relative, point never
		if !exitValue(m.Exit.Direction, trick.Direction(m.Exit.Direction).Valid()) {
			errs = append(errs, fmt.Sprintf("%s: exit.direction must be front, back, same or opposite, got %q", at, m.Exit.Direction))
		}
		if !exitValue(m.Exit.Edge, trick.Edge(m.Exit.Edge).Valid()) {
			errs = append(errs, fmt.Sprintf("%s: exit.edge must be inside, outside, same or opposite, got %q", at, m.Exit.Edge))
		}
		if !exitValue(m.Exit.Stance, trick.Stance(m.Exit.Stance).Valid()) {
			errs = append(errs, fmt.Sprintf("%s: exit.stance must be open, closed, same or opposite, got %q", at, m.Exit.Stance))
		}
		if trick.SpecValue(m.Exit.Point).Relative() {
			errs = append(errs, at+": exit.point must name heel or toe outright; relative values are not allowed")
		} else if !trick.Point(m.Exit.Point).Valid() {
			errs = append(errs, fmt.Sprintf("%s: exit.point must be heel or toe, got %q", at, m.Exit.Point))
		}

		if m.Mechanics.Feet < 1 || m.Mechanics.Feet > 2 {
			errs = append(errs, fmt.Sprintf("%s: mechanics.feet must be 1 or 2, got %d", at, m.Mechanics.Feet))
		}
		if m.Mechanics.Degrees < 0 {
			errs = append(errs, fmt.Sprintf("%s: mechanics.degrees must be >= 0, got %d", at, m.Mechanics.Degrees))
		}
		switch m.Mechanics.Rotation {
		case "", "none", "spin", "carve":
		default:
			errs = append(errs, fmt.Sprintf("%s: mechanics.rotation must be one of: spin, carve, none", at))
		}
	}

	for _, id := range doc.Rules.OnlyFirst {
		if !seen[id] {
			errs = append(errs, fmt.Sprintf("rules.only_first: unknown move id %q", id))
		}
	}

	return errs
}

// exitValue accepts same/opposite plus whatever the domain check passed.
func exitValue(v string, absoluteOK bool) bool {
	return trick.SpecValue(v).Relative() || absoluteOK
}

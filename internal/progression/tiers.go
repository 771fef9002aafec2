// Package progression maps catalog stages onto a learning path: named
// tiers with the skills to build and combos worth drilling at each step.
package progression

import "github.com/nazroll/wzrdbrain/internal/trick"

// Tier describes one step of the learning path. Level matches the catalog
// stage of the moves introduced there.
type Tier struct {
	Level       int      `json:"level"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Practice    []string `json:"practice"` // combos worth drilling, in display form
}

// Default returns the built-in five-tier path, one tier per catalog stage.
func Default() []Tier {
	return []Tier{
		{
			Level:       1,
			Name:        "Foundations",
			Description: "Static stances and balance on both directions before anything links.",
			Skills:      []string{"low crouch", "one-foot balance", "riding backward"},
			Practice:    []string{"front open parallel, front open tree", "back predator, back open tree"},
		},
		{
			Level:       2,
			Name:        "First Links",
			Description: "The first direction changes and weight shifts, linked in pairs.",
			Skills:      []string{"heel-to-toe weight shifts", "carving through a half rotation"},
			Practice:    []string{"front open gazelle, back open tree", "forward toe press, forward heel press"},
		},
		{
			Level:       3,
			Name:        "Flow Work",
			Description: "Switch stance work, single-wheel rolls and the first flat spin.",
			Skills:      []string{"stance swaps mid-line", "single-wheel balance", "spotting a half spin"},
			Practice:    []string{"front open gazelle s, front open heel pivot", "forward 180, fakie heel roll"},
		},
		{
			Level:       4,
			Name:        "Rotation and Slides",
			Description: "Committed spins and the first real slides at speed.",
			Skills:      []string{"full rotation on the toes", "controlled drifting"},
			Practice:    []string{"forward 360, forward toe roll", "front closed stunami, fakie parallel slide"},
		},
		{
			Level:       5,
			Name:        "Wizardry",
			Description: "Everything at once: big spins, technical slides, long lines.",
			Skills:      []string{"spin and a half landings", "slide-to-slide linking", "improvised lines"},
			Practice:    []string{"forward 540, fakie star slide", "front closed ufo swivel, back open gazelle"},
		},
	}
}

// Tips returns general pacing advice that applies across tiers.
func Tips() []string {
	return []string{
		"Drill every move in both directions before moving up a level.",
		"Link two moves cleanly before chasing longer combos.",
		"Slides come last in a line; spins and carves set them up.",
	}
}

// ForStage finds the tier whose level matches the given stage.
func ForStage(tiers []Tier, stage int) (Tier, bool) {
	for _, t := range tiers {
		if t.Level == stage {
			return t, true
		}
	}
	return Tier{}, false
}

// Next returns the tier after the given stage, if any.
func Next(tiers []Tier, stage int) (Tier, bool) {
	return ForStage(tiers, stage+1)
}

// MovesAt lists the catalog moves introduced at a tier's level (not the
// cumulative pool, just that level's new material).
func MovesAt(cat *trick.Catalog, level int) []trick.Move {
	var out []trick.Move
	for _, m := range cat.Moves() {
		if m.Stage == level {
			out = append(out, m)
		}
	}
	return out
}

package trick

import (
	"fmt"
	"strings"
)

// DisplayName builds the spoken name of a trick: direction word, stance,
// move name. Fakie-display moves swap the direction vocabulary (back
// becomes "fakie", front becomes "forward") and moves flagged NoStance
// drop the stance word entirely.
func (t Instance) DisplayName() string {
	dir := string(t.Entry.Direction)
	if t.UseFakie {
		if t.Entry.Direction == DirectionBack {
			dir = "fakie"
		} else {
			dir = "forward"
		}
	}
	if t.NoStance {
		return dir + " " + t.Name
	}
	return dir + " " + string(t.Entry.Stance) + " " + t.Name
}

// FormatCombo renders a combo as a numbered list, one trick per line:
//
//  1. front open gazelle
//  2. back open tree
func FormatCombo(c Combo) string {
	var b strings.Builder
	for i, t := range c {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, t.DisplayName())
	}
	return b.String()
}

// FormatComboDetailed renders the numbered list with the link between each
// pair of tricks spelled out under the earlier trick.
func FormatComboDetailed(c Combo) string {
	var b strings.Builder
	for i, t := range c {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, t.DisplayName())
		if i < len(c)-1 {
			fmt.Fprintf(&b, "\n   (exit: %s → next entry: %s)", t.Exit.Direction, c[i+1].Entry.Direction)
		}
	}
	return b.String()
}

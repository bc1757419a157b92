package diagnosis

import "strings"

// confusionPairs lists domain term pairs learners routinely swap. A wrong
// answer containing one half when the correct answer contains the other is
// a conceptual confusion, whatever the raw text similarity says.
var confusionPairs = [][2]string{
	{"revenue", "profit"},
	{"gross profit", "net profit"},
	{"asset", "liability"},
	{"fixed cost", "variable cost"},
	{"demand", "supply"},
	{"debit", "credit"},
	{"penetration", "skimming"},
	{"internal", "external"},
	{"primary", "secondary"},
	{"sole trader", "partnership"},
	{"planned economy", "free economy"},
	{"inflow", "outflow"},
}

// confusionPairHit reports whether the selected/correct texts hit a known
// confusion pair in either direction (substring match, case-insensitive).
func confusionPairHit(selected, correct string) bool {
	s := strings.ToLower(selected)
	c := strings.ToLower(correct)
	for _, pair := range confusionPairs {
		if (strings.Contains(s, pair[0]) && strings.Contains(c, pair[1])) ||
			(strings.Contains(s, pair[1]) && strings.Contains(c, pair[0])) {
			return true
		}
	}
	return false
}

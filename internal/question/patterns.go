package question

import "regexp"

// Pattern families for degenerate and meta options. Matching is
// case-insensitive and tolerant of surrounding punctuation. The phrase
// variants come from the CXC item-writing guidance the question bank is
// validated against ("all of the above", "all of these", "both A and C",
// "A, B and C", "B and C only").
var (
	allAbovePattern  = regexp.MustCompile(`(?i)^\W*all\s+of\s+(?:the\s+)?(?:above|these)\W*$|(?i)^\W*all\s+the\s+above\W*$`)
	noneAbovePattern = regexp.MustCompile(`(?i)^\W*none\s+of\s+(?:the\s+)?(?:above|these)\W*$`)

	// Composite options reference other options by letter.
	bothPattern = regexp.MustCompile(`(?i)^\W*both\s+[a-d]\s+and\s+[a-d]\W*$`)
	listPattern = regexp.MustCompile(`(?i)^\W*[a-d](?:\s*,\s*[a-d])+(?:\s*,)?\s+and\s+[a-d]\W*$`)
	onlyPattern = regexp.MustCompile(`(?i)^\W*[a-d](?:\s*(?:,|and)\s*[a-d])*\s+only\W*$`)

	// Degenerate option forms.
	letterOnlyPattern = regexp.MustCompile(`(?i)^\W*[a-d]\W*$`)
	marksOnlyPattern  = regexp.MustCompile(`(?i)^\W*[\(\[]?\s*\d+\s*marks?\s*[\)\]]?\W*$`)

	// Cleaning expressions.
	marksSuffixPattern  = regexp.MustCompile(`(?i)\s*[\(\[]\s*\d+\s*marks?\s*[\)\]]\s*$`)
	letterPrefixPattern = regexp.MustCompile(`^\s*\(?[A-Da-d][\).:]\s+`)
	whitespacePattern   = regexp.MustCompile(`\s+`)
)

// isMetaOption reports whether the cleaned text is an "all of the above"
// or "none of the above" style option.
func isMetaOption(s string) bool {
	return allAbovePattern.MatchString(s) || noneAbovePattern.MatchString(s)
}

// isCompositeOption reports whether the cleaned text references other
// options by letter ("both A and C", "A, B and C", "B and C only").
func isCompositeOption(s string) bool {
	return bothPattern.MatchString(s) || listPattern.MatchString(s) || onlyPattern.MatchString(s)
}

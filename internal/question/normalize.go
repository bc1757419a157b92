package question

import (
	"fmt"
	"strings"
)

// QuestionType classifies a question by the structure of its options.
type QuestionType string

const (
	TypeStandard  QuestionType = "standard"
	TypeAllAbove  QuestionType = "all-above"
	TypeNoneAbove QuestionType = "none-above"
	// TypeComposite covers questions with letter-referencing options
	// ("both A and C") or with more than one meta option present.
	TypeComposite QuestionType = "composite"
)

// Normalized is the sanitized view of a question's options. Downstream
// components (classifier, scaler) consume Cleaned and the index sets and
// must tolerate Valid == false.
type Normalized struct {
	Original []string
	Cleaned  []string

	EmptyIndices      []int
	LetterOnlyIndices []int
	MarksOnlyIndices  []int
	CompositeIndices  []int

	// AllAboveIndex / NoneAboveIndex are -1 when no such option exists.
	AllAboveIndex  int
	NoneAboveIndex int

	Type QuestionType
	// Valid is true iff at least two non-degenerate options remain.
	Valid    bool
	Warnings []string
}

// IsDegenerate reports whether the option at index i carries no usable
// answer text (empty, letter-only, or marks-only).
func (n *Normalized) IsDegenerate(i int) bool {
	return containsIndex(n.EmptyIndices, i) ||
		containsIndex(n.LetterOnlyIndices, i) ||
		containsIndex(n.MarksOnlyIndices, i)
}

// Normalize sanitizes a raw option list. It never fails: malformed input
// produces warnings and Valid == false, not an error. Normalize is
// idempotent: running it on its own Cleaned output changes nothing.
func Normalize(options []string) Normalized {
	n := Normalized{
		Original:       options,
		Cleaned:        make([]string, len(options)),
		AllAboveIndex:  -1,
		NoneAboveIndex: -1,
		Type:           TypeStandard,
	}

	if len(options) == 0 {
		n.Warnings = append(n.Warnings, "question has no options")
		return n
	}

	usable := 0
	metaCount := 0
	for i, raw := range options {
		cleaned := CleanOption(raw)
		n.Cleaned[i] = cleaned

		switch {
		case cleaned == "":
			n.EmptyIndices = append(n.EmptyIndices, i)
			n.Warnings = append(n.Warnings, fmt.Sprintf("option %d is empty", i))
			continue
		case marksOnlyPattern.MatchString(cleaned):
			n.MarksOnlyIndices = append(n.MarksOnlyIndices, i)
			n.Warnings = append(n.Warnings, fmt.Sprintf("option %d contains only a marks annotation: %q", i, cleaned))
			continue
		case letterOnlyPattern.MatchString(cleaned):
			n.LetterOnlyIndices = append(n.LetterOnlyIndices, i)
			n.Warnings = append(n.Warnings, fmt.Sprintf("option %d contains only an option letter: %q", i, cleaned))
			continue
		}

		usable++

		switch {
		case isMetaOption(cleaned):
			metaCount++
			if allAbovePattern.MatchString(cleaned) {
				n.AllAboveIndex = i
			} else {
				n.NoneAboveIndex = i
			}
		case isCompositeOption(cleaned):
			n.CompositeIndices = append(n.CompositeIndices, i)
		}
	}

	switch {
	case metaCount > 1 || len(n.CompositeIndices) > 0:
		n.Type = TypeComposite
	case n.AllAboveIndex >= 0:
		n.Type = TypeAllAbove
	case n.NoneAboveIndex >= 0:
		n.Type = TypeNoneAbove
	}

	n.Valid = usable >= 2
	if !n.Valid {
		n.Warnings = append(n.Warnings, fmt.Sprintf("only %d usable option(s); question is degraded", usable))
	}

	return n
}

// CleanOption canonicalizes one option string: trims, collapses internal
// whitespace, and strips letter prefixes ("B) Profit") and trailing marks
// annotations ("(2 marks)"). Degenerate inputs come back unchanged apart
// from whitespace so the index sets can still identify them.
func CleanOption(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	s = whitespacePattern.ReplaceAllString(s, " ")
	s = marksSuffixPattern.ReplaceAllString(s, "")

	// Strip a leading option letter only when real text follows it,
	// otherwise "A) " would collapse a letter-only option to nothing.
	if stripped := letterPrefixPattern.ReplaceAllString(s, ""); strings.TrimSpace(stripped) != "" {
		s = stripped
	}

	return strings.TrimSpace(s)
}

func containsIndex(xs []int, i int) bool {
	for _, x := range xs {
		if x == i {
			return true
		}
	}
	return false
}

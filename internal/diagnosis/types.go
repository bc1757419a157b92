package diagnosis

import "errors"

// ErrorType labels the nature of an incorrect answer.
type ErrorType string

const (
	// ErrorConceptual marks a wrong answer logically related to the
	// correct one: a misunderstanding worth remediating.
	ErrorConceptual ErrorType = "conceptual"
	// ErrorCareless marks a wrong answer unrelated to the correct one:
	// inattention rather than misunderstanding.
	ErrorCareless ErrorType = "careless"
)

// ErrNotAnError is returned when classification is requested for an
// answer that is actually correct. That is a programming error in the
// caller, not a runtime condition to recover from.
var ErrNotAnError = errors.New("diagnosis: classify called on a correct answer")

// Classification is the result of classifying one incorrect answer.
type Classification struct {
	Type ErrorType
	// Rule names the rule that produced the label ("confusion-pair",
	// "similarity", "similarity-gap", "meta-pattern", "out-of-range",
	// "default").
	Rule string
	// IsPartiallyCorrect is set when the selected option would have been
	// right on its own but a meta option ("all of the above") was the
	// answer.
	IsPartiallyCorrect bool
	// ConceptualHint is a learner-facing hint, set by the meta-pattern
	// rule.
	ConceptualHint string
	// Similarity is the text similarity between the selected and correct
	// options, recorded for diagnostics.
	Similarity float64
}

// ClassifyInput carries the context a rule needs to label an error.
type ClassifyInput struct {
	SelectedIndex int
	CorrectIndex  int
	// Options is the cleaned option text list (already normalized).
	Options []string
	// AllAboveIndex / NoneAboveIndex are -1 when absent; supplied by the
	// question normalizer for the meta-pattern rule.
	AllAboveIndex  int
	NoneAboveIndex int
}

func (in *ClassifyInput) selectedText() string {
	if in.SelectedIndex < 0 || in.SelectedIndex >= len(in.Options) {
		return ""
	}
	return in.Options[in.SelectedIndex]
}

func (in *ClassifyInput) correctText() string {
	if in.CorrectIndex < 0 || in.CorrectIndex >= len(in.Options) {
		return ""
	}
	return in.Options[in.CorrectIndex]
}

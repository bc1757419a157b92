package diagnosis

import (
	"fmt"

	"github.com/brighted/nable/internal/question"
)

// Rule is one classification heuristic. Rules run in priority order;
// the first rule that fires decides the label.
type Rule interface {
	Name() string
	Apply(in *ClassifyInput) (Classification, bool)
}

// DefaultRules returns the rule chain in priority order. The meta-pattern
// rule runs first: missing an "all/none of the above" pattern is a
// stronger signal than any text-similarity measure.
func DefaultRules() []Rule {
	return []Rule{
		&MetaPatternRule{},
		&ConfusionPairRule{},
		&SimilarityRule{},
		&SimilarityGapRule{},
	}
}

// ClassifyError labels an incorrect answer using the basic rule chain
// (no normalizer context). Returns ErrNotAnError when selected == correct.
func ClassifyError(selected, correct int, options []string) (Classification, error) {
	return classify(&ClassifyInput{
		SelectedIndex:  selected,
		CorrectIndex:   correct,
		Options:        options,
		AllAboveIndex:  -1,
		NoneAboveIndex: -1,
	})
}

// ClassifyWithQuestion labels an incorrect answer with normalizer
// awareness, enabling the meta-pattern rule.
func ClassifyWithQuestion(selected, correct int, norm *question.Normalized) (Classification, error) {
	return classify(&ClassifyInput{
		SelectedIndex:  selected,
		CorrectIndex:   correct,
		Options:        norm.Cleaned,
		AllAboveIndex:  norm.AllAboveIndex,
		NoneAboveIndex: norm.NoneAboveIndex,
	})
}

func classify(in *ClassifyInput) (Classification, error) {
	if in.SelectedIndex == in.CorrectIndex {
		return Classification{}, ErrNotAnError
	}

	// Out-of-range selections are random noise by definition.
	if in.SelectedIndex < 0 || in.SelectedIndex >= len(in.Options) ||
		in.CorrectIndex < 0 || in.CorrectIndex >= len(in.Options) {
		return Classification{Type: ErrorCareless, Rule: "out-of-range"}, nil
	}

	for _, r := range DefaultRules() {
		if c, ok := r.Apply(in); ok {
			return c, nil
		}
	}

	sim := Similarity(in.selectedText(), in.correctText())
	return Classification{Type: ErrorCareless, Rule: "default", Similarity: sim}, nil
}

// MetaPatternRule handles meta options. Selecting "none of the above"
// when an individual option was correct, or an individual correct-seeming
// option when "all of the above" was correct, reflects a missed
// meta-pattern rather than random noise. When both meta options appear on
// one (malformed) question the none-of-the-above check runs first.
type MetaPatternRule struct{}

func (r *MetaPatternRule) Name() string { return "meta-pattern" }

func (r *MetaPatternRule) Apply(in *ClassifyInput) (Classification, bool) {
	if in.NoneAboveIndex >= 0 && in.SelectedIndex == in.NoneAboveIndex {
		return Classification{
			Type:           ErrorConceptual,
			Rule:           r.Name(),
			ConceptualHint: fmt.Sprintf("One of the listed options is correct. Re-read option %d before reaching for \"none of the above\".", in.CorrectIndex+1),
		}, true
	}

	if in.AllAboveIndex >= 0 && in.CorrectIndex == in.AllAboveIndex && in.SelectedIndex != in.AllAboveIndex {
		return Classification{
			Type:               ErrorConceptual,
			Rule:               r.Name(),
			IsPartiallyCorrect: true,
			ConceptualHint:     "Your choice is true, but so are the others. Check whether every option holds before picking just one.",
		}, true
	}

	return Classification{}, false
}

// ConfusionPairRule checks the fixed table of domain confusion pairs.
type ConfusionPairRule struct{}

func (r *ConfusionPairRule) Name() string { return "confusion-pair" }

func (r *ConfusionPairRule) Apply(in *ClassifyInput) (Classification, bool) {
	if confusionPairHit(in.selectedText(), in.correctText()) {
		return Classification{
			Type:       ErrorConceptual,
			Rule:       r.Name(),
			Similarity: Similarity(in.selectedText(), in.correctText()),
		}, true
	}
	return Classification{}, false
}

// SimilarityRule fires when the selected option is textually close to the
// correct one.
type SimilarityRule struct{}

func (r *SimilarityRule) Name() string { return "similarity" }

func (r *SimilarityRule) Apply(in *ClassifyInput) (Classification, bool) {
	sim := Similarity(in.selectedText(), in.correctText())
	if sim >= SimilarityThreshold {
		return Classification{Type: ErrorConceptual, Rule: r.Name(), Similarity: sim}, true
	}
	return Classification{}, false
}

// SimilarityGapRule fires when the selected option is markedly closer to
// the correct answer than the other distractors are: the learner was
// drawn to the near-miss, not guessing.
type SimilarityGapRule struct{}

func (r *SimilarityGapRule) Name() string { return "similarity-gap" }

func (r *SimilarityGapRule) Apply(in *ClassifyInput) (Classification, bool) {
	sim, gap, ok := gapToDistractors(in)
	if ok && gap > SimilarityGapThreshold {
		return Classification{Type: ErrorConceptual, Rule: r.Name(), Similarity: sim}, true
	}
	return Classification{}, false
}

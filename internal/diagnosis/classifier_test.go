package diagnosis

import (
	"errors"
	"testing"

	"github.com/brighted/nable/internal/question"
)

func TestClassifyError_CorrectAnswerIsProgrammerError(t *testing.T) {
	cases := []struct {
		selected, correct int
		options           []string
	}{
		{0, 0, []string{"Revenue", "Profit"}},
		{2, 2, []string{"A", "B", "C"}},
		{-1, -1, nil},
	}
	for _, c := range cases {
		_, err := ClassifyError(c.selected, c.correct, c.options)
		if !errors.Is(err, ErrNotAnError) {
			t.Errorf("ClassifyError(%d, %d) error = %v, want ErrNotAnError", c.selected, c.correct, err)
		}
	}
}

func TestClassifyError_OutOfRangeIsCareless(t *testing.T) {
	got, err := ClassifyError(7, 1, []string{"Revenue", "Profit", "Assets"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Type != ErrorCareless || got.Rule != "out-of-range" {
		t.Errorf("got %+v, want careless/out-of-range", got)
	}
}

func TestClassifyError_ConfusionPair(t *testing.T) {
	got, err := ClassifyError(0, 1, []string{"Revenue", "Net profit", "Number of employees", "Factory location"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Type != ErrorConceptual || got.Rule != "confusion-pair" {
		t.Errorf("got %+v, want conceptual/confusion-pair", got)
	}
}

func TestClassifyError_SimilarTextIsConceptual(t *testing.T) {
	got, err := ClassifyError(1, 0, []string{
		"Total sales income for the period",
		"Total sales income after expenses",
		"Blue",
		"Paris",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Type != ErrorConceptual {
		t.Errorf("Type = %q, want conceptual", got.Type)
	}
}

func TestClassifyError_UnrelatedTextIsCareless(t *testing.T) {
	got, err := ClassifyError(2, 0, []string{
		"Money received from sales",
		"Money paid to workers as wages",
		"Kingston",
		"Money kept by owners after costs",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Type != ErrorCareless {
		t.Errorf("Type = %q (rule %q), want careless", got.Type, got.Rule)
	}
}

func TestClassifyWithQuestion_AllAboveMissed(t *testing.T) {
	norm := question.Normalize([]string{"Revenue", "Profit", "Assets", "All of the above"})
	got, err := ClassifyWithQuestion(0, 3, &norm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Type != ErrorConceptual {
		t.Errorf("Type = %q, want conceptual", got.Type)
	}
	if !got.IsPartiallyCorrect {
		t.Error("expected IsPartiallyCorrect for an individually-true choice")
	}
	if got.ConceptualHint == "" {
		t.Error("expected a non-empty conceptual hint")
	}
}

func TestClassifyWithQuestion_NoneAboveSelected(t *testing.T) {
	norm := question.Normalize([]string{"Revenue", "Wages", "None of the above"})
	got, err := ClassifyWithQuestion(2, 0, &norm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Type != ErrorConceptual || got.ConceptualHint == "" {
		t.Errorf("got %+v, want conceptual with hint", got)
	}
	if got.IsPartiallyCorrect {
		t.Error("none-of-the-above miss is not partially correct")
	}
}

func TestClassifyWithQuestion_BothMetaOptions(t *testing.T) {
	// Malformed question carrying both meta options: selecting
	// "none of the above" resolves through the none-above rule first.
	norm := question.Normalize([]string{"Revenue", "Profit", "All of the above", "None of the above"})
	got, err := ClassifyWithQuestion(3, 2, &norm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Type != ErrorConceptual || got.Rule != "meta-pattern" {
		t.Errorf("got %+v, want conceptual/meta-pattern", got)
	}
}

func TestSimilarity_ExactMatch(t *testing.T) {
	if got := Similarity("Gross profit", "gross  profit "); got < 0.99 {
		// Case and outer whitespace are normalized away.
		t.Errorf("Similarity() = %f, want 1.0", got)
	}
}

func TestSimilarity_Unrelated(t *testing.T) {
	if got := Similarity("Kingston", "Variable cost"); got >= SimilarityThreshold {
		t.Errorf("Similarity() = %f, want below threshold", got)
	}
}

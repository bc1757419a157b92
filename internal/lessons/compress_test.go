package lessons

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/brighted/nable/internal/llm"
)

func TestCompressor_SessionCompression(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary": "Student consistently treats revenue as if it were profit"}`),
	})
	comp := NewCompressor(mock, DefaultCompressorConfig())

	errs := []string{
		"Chose 'Revenue' for the amount left after expenses; correct was 'Profit'",
		"Chose '$2,000 revenue' as the stall's profit; correct was '$600'",
		"Chose 'Total sales' when asked for net profit",
	}

	done := make(chan string, 1)
	comp.CompressErrors(t.Context(), "pob.income-types", errs, func(skillID, summary string) {
		done <- summary
	})

	select {
	case summary := <-done:
		if summary != "Student consistently treats revenue as if it were profit" {
			t.Errorf("unexpected summary: %q", summary)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("compression did not complete in time")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "error-summary" {
		t.Error("expected schema name 'error-summary'")
	}
}

func TestCompressor_ProfileGeneration(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"summary": "Student is strong on business organisation but confuses profitability terms.",
			"strengths": ["solid on forms of business organisation", "good marketing-mix recall"],
			"weaknesses": ["confuses gross and net profit", "mixes up fixed and variable costs"],
			"patterns": ["picks the option sharing words with the question"]
		}`),
	})
	comp := NewCompressor(mock, DefaultCompressorConfig())

	input := ProfileInput{
		PerSkillResults: map[string]SkillResultSummary{
			"pob.business-organisation": {Attempted: 5, Correct: 5},
			"pob.income-types":          {Attempted: 6, Correct: 2},
		},
		MasteryData: map[string]MasteryDataSummary{
			"pob.business-organisation": {Mastery: 0.9, Confidence: 0.8},
			"pob.income-types":          {Mastery: 0.3, Confidence: 0.4},
		},
	}

	profile, err := comp.GenerateProfile(t.Context(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.Summary == "" {
		t.Error("expected non-empty summary")
	}
	if len(profile.Strengths) != 2 {
		t.Errorf("expected 2 strengths, got %d", len(profile.Strengths))
	}
	if len(profile.Weaknesses) != 2 {
		t.Errorf("expected 2 weaknesses, got %d", len(profile.Weaknesses))
	}
	if len(profile.Patterns) != 1 {
		t.Errorf("expected 1 pattern, got %d", len(profile.Patterns))
	}
	if profile.GeneratedAt.IsZero() {
		t.Error("expected non-zero GeneratedAt")
	}
}

func TestCompressor_ProfileWithPrevious(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"summary": "Updated profile.",
			"strengths": ["s1"],
			"weaknesses": ["w1"],
			"patterns": ["p1"]
		}`),
	})
	comp := NewCompressor(mock, DefaultCompressorConfig())

	input := ProfileInput{
		PerSkillResults: map[string]SkillResultSummary{
			"pob.income-types": {Attempted: 10, Correct: 8},
		},
		PreviousProfile: &LearnerProfile{
			Summary:    "Previous summary",
			Strengths:  []string{"old strength"},
			Weaknesses: []string{"old weakness"},
		},
	}

	profile, err := comp.GenerateProfile(t.Context(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile == nil {
		t.Fatal("expected non-nil profile")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if len(req.Messages) == 0 {
		t.Fatal("expected messages")
	}
	userMsg := req.Messages[0].Content
	if !strings.Contains(userMsg, "Previous profile") {
		t.Error("expected prompt to include the previous profile section")
	}
	if !strings.Contains(userMsg, "Previous summary") {
		t.Error("expected prompt to include previous summary")
	}
}

func TestCompressor_ProfileFirstSession(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"summary": "First session profile.",
			"strengths": ["s1"],
			"weaknesses": ["w1"],
			"patterns": ["p1"]
		}`),
	})
	comp := NewCompressor(mock, DefaultCompressorConfig())

	input := ProfileInput{
		PerSkillResults: map[string]SkillResultSummary{
			"pob.income-types": {Attempted: 5, Correct: 4},
		},
		PreviousProfile: nil,
	}

	profile, err := comp.GenerateProfile(t.Context(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile == nil {
		t.Fatal("expected non-nil profile")
	}

	req := mock.Calls[0]
	userMsg := req.Messages[0].Content
	if strings.Contains(userMsg, "Previous profile") {
		t.Error("did not expect a previous-profile section in the first session prompt")
	}
}

func TestCompressor_LLMError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	comp := NewCompressor(mock, DefaultCompressorConfig())

	_, err := comp.GenerateProfile(t.Context(), ProfileInput{})
	if err == nil {
		t.Error("expected error on LLM failure")
	}
}

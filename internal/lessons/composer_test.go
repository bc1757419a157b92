package lessons

import (
	"strings"
	"testing"
	"time"

	"github.com/brighted/nable/internal/diagnosis"
	"github.com/brighted/nable/internal/llm"
	"github.com/brighted/nable/internal/mastery"
)

func TestAsyncComposer_FallsBackThenServesGenerated(t *testing.T) {
	// A deep queue so every background request succeeds regardless of
	// how the poll below interleaves with generation.
	responses := make([]llm.MockResponse, 0, 50)
	for i := 0; i < 50; i++ {
		responses = append(responses, llm.MockLessonResponse("Cash Flow"))
	}
	comp := NewAsyncComposer(NewService(llm.NewMockProvider(responses...), DefaultConfig()), nil)

	// Nothing generated yet: the first call must serve the template
	// lesson synchronously.
	lesson, ok := comp.Compose("pob.cash-flow", mastery.SubSkillScore{Mastery: 0.4}, nil)
	if !ok {
		t.Fatal("expected a fallback lesson for a known skill")
	}
	if lesson.SkillID != "pob.cash-flow" {
		t.Errorf("skill = %q, want pob.cash-flow", lesson.SkillID)
	}

	const generated = "A fixed explanation used by tests."
	deadline := time.Now().Add(5 * time.Second)
	for {
		lesson, ok = comp.Compose("pob.cash-flow", mastery.SubSkillScore{Mastery: 0.4}, nil)
		if ok && lesson.Explanation == generated {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("generated lesson never surfaced")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestAsyncComposer_UnknownSkill(t *testing.T) {
	comp := NewAsyncComposer(NewService(llm.NewMockProvider(), DefaultConfig()), nil)
	if _, ok := comp.Compose("pob.no-such-skill", mastery.SubSkillScore{}, nil); ok {
		t.Error("expected no lesson for an unknown skill")
	}
}

func TestAsyncComposer_CompressesLongErrorNotes(t *testing.T) {
	responses := make([]llm.MockResponse, 0, 50)
	for i := 0; i < 50; i++ {
		responses = append(responses, llm.MockLessonResponse("Cash Flow"))
	}
	lessonMock := llm.NewMockProvider(responses...)

	const summary = "Consistently confuses money flowing in with money the business keeps."
	compressMock := llm.NewMockProvider(
		llm.MockResponse{Content: []byte(`{"summary":"` + summary + `"}`)},
	)

	comp := NewAsyncComposer(
		NewService(lessonMock, DefaultConfig()),
		NewCompressor(compressMock, DefaultCompressorConfig()),
	)

	cls := &diagnosis.Classification{
		Type: diagnosis.ErrorConceptual,
		Rule: "similarity",
		ConceptualHint: "Cash flowing into the business is not the same as the profit " +
			"it keeps after paying wages, suppliers, and rent. Trace each amount " +
			"through the statement before deciding which figure the question wants. " +
			"Watch for receipts that arrive in a later period than the sale.",
	}
	score := mastery.SubSkillScore{Mastery: 0.3}

	// Each error appends a long note; a few of them push the notes past
	// the compression threshold.
	for i := 0; i < 4; i++ {
		comp.Compose("pob.cash-flow", score, cls)
	}

	deadline := time.Now().Add(5 * time.Second)
	for compressMock.CallCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("long error notes never reached the compressor")
		}
		time.Sleep(10 * time.Millisecond)
	}

	// Once the summary lands it replaces the raw notes in lesson prompts.
	for {
		comp.Compose("pob.cash-flow", score, cls)
		if req, ok := lessonMock.LastCall(); ok {
			if len(req.Messages) > 0 && strings.Contains(req.Messages[0].Content, summary) {
				break
			}
		}
		if time.Now().After(deadline) {
			t.Fatal("compressed summary never fed a lesson prompt")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

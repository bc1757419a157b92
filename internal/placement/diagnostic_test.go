package placement

import (
	"testing"
	"time"

	"github.com/brighted/nable/internal/content"
)

var probeNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func TestDiagnostic_StartsAtMiddle(t *testing.T) {
	d := NewDiagnostic("pob.cash-flow")
	if d.CurrentLevel() != StartLevel {
		t.Errorf("first probe level = %d, want %d", d.CurrentLevel(), StartLevel)
	}
}

func TestDiagnostic_FirstAnswerJumps(t *testing.T) {
	d := NewDiagnostic("pob.cash-flow")
	d.Record(true, 12, probeNow)
	if d.CurrentLevel() != 8 {
		t.Errorf("level after first correct = %d, want 8", d.CurrentLevel())
	}

	d = NewDiagnostic("pob.cash-flow")
	d.Record(false, 12, probeNow)
	if d.CurrentLevel() != 3 {
		t.Errorf("level after first incorrect = %d, want 3", d.CurrentLevel())
	}
}

func TestDiagnostic_BinarySearchPlacement(t *testing.T) {
	// Passes level 5, fails level 8, passes level 6: the session has
	// pinned the learner between 6 and 8 and stops at three probes.
	d := NewDiagnostic("pob.demand-supply")
	d.Record(true, 10, probeNow)
	if d.CurrentLevel() != 8 {
		t.Fatalf("second probe level = %d, want 8", d.CurrentLevel())
	}
	d.Record(false, 30, probeNow)
	if d.CurrentLevel() != 6 {
		t.Fatalf("third probe level = %d, want 6", d.CurrentLevel())
	}
	d.Record(true, 14, probeNow)

	if !d.Done() {
		t.Fatal("session not done after converging on three probes")
	}
	res := d.Result()
	if res.HighestPassed != 6 {
		t.Errorf("highest passed = %d, want 6", res.HighestPassed)
	}
	if res.LowestFailed != 8 {
		t.Errorf("lowest failed = %d, want 8", res.LowestFailed)
	}
	if res.Level != 7 {
		t.Errorf("placement level = %d, want 7", res.Level)
	}
	if res.Mastery != 0.7 {
		t.Errorf("mastery = %f, want 0.7", res.Mastery)
	}
	if res.Confidence > maxConfidence {
		t.Errorf("confidence = %f exceeds cap %f", res.Confidence, maxConfidence)
	}
}

func TestDiagnostic_AlwaysCorrectSaturatesAtCeiling(t *testing.T) {
	d := NewDiagnostic("pob.production-types")
	for i := 0; !d.Done() && i < MaxQuestions+1; i++ {
		d.Record(true, 8, probeNow)
	}
	if !d.Done() {
		t.Fatal("session exceeded the probe cap")
	}
	res := d.Result()
	if res.Level != MaxLevel {
		t.Errorf("placement level = %d, want ceiling %d", res.Level, MaxLevel)
	}
	if res.Mastery != 1.0 {
		t.Errorf("mastery = %f, want 1.0", res.Mastery)
	}
}

func TestDiagnostic_AlwaysWrongLandsAtFloor(t *testing.T) {
	d := NewDiagnostic("pob.production-types")
	for i := 0; !d.Done() && i < MaxQuestions+1; i++ {
		d.Record(false, 40, probeNow)
	}
	res := d.Result()
	if res.Level != MinLevel {
		t.Errorf("placement level = %d, want floor %d", res.Level, MinLevel)
	}
}

func TestDiagnostic_NeverExceedsProbeCap(t *testing.T) {
	// Alternating answers keep the band wide as long as possible.
	for _, first := range []bool{true, false} {
		d := NewDiagnostic("pob.cash-flow")
		answer := first
		for i := 0; i < 20; i++ {
			d.Record(answer, 10, probeNow)
			answer = !answer
		}
		if got := d.QuestionsAnswered(); got > MaxQuestions {
			t.Errorf("answered %d probes, cap is %d", got, MaxQuestions)
		}
		if got := d.QuestionsAnswered(); got < MinQuestions {
			t.Errorf("answered %d probes, minimum is %d", got, MinQuestions)
		}
	}
}

func TestDiagnostic_LevelsStayInBounds(t *testing.T) {
	d := NewDiagnostic("pob.cash-flow")
	for i := 0; !d.Done(); i++ {
		if d.CurrentLevel() < MinLevel || d.CurrentLevel() > MaxLevel {
			t.Fatalf("probe level %d out of bounds", d.CurrentLevel())
		}
		d.Record(i%2 == 0, 10, probeNow)
	}
}

func TestDiagnostic_PriorSeedsStartLevel(t *testing.T) {
	d := NewDiagnosticWithPrior("pob.demand-supply", 0.82)
	if d.CurrentLevel() != 8 {
		t.Errorf("prior 0.82 start level = %d, want 8", d.CurrentLevel())
	}
	d = NewDiagnosticWithPrior("pob.demand-supply", 0.0)
	if d.CurrentLevel() != MinLevel {
		t.Errorf("prior 0.0 start level = %d, want floor %d", d.CurrentLevel(), MinLevel)
	}
}

func TestDiagnostic_EmptySessionFallsBackToPriors(t *testing.T) {
	res := NewDiagnostic("pob.cash-flow").Result()
	if res.Level != StartLevel || res.Mastery != fallbackMastery {
		t.Errorf("empty session result = %+v, want start-level fallback", res)
	}
}

func TestPickProbe(t *testing.T) {
	items := []content.Item{
		{ID: "q1", Difficulty: 2},
		{ID: "q2", Difficulty: 5},
		{ID: "q3", Difficulty: 5, Verified: true},
		{ID: "q4", Difficulty: 8, Archived: true},
		{ID: "q5", Difficulty: 8, Type: content.TypeMicroLesson},
		{ID: "q6", Difficulty: 9},
	}

	got, ok := PickProbe(items, 5, nil)
	if !ok || got.ID != "q3" {
		t.Errorf("probe at level 5 = %q, want q3 (verified wins the tie)", got.ID)
	}

	got, ok = PickProbe(items, 8, map[string]bool{"q6": true})
	if !ok || got.ID != "q3" {
		t.Errorf("probe at level 8 = %q, want q3 (archived and lesson items skipped)", got.ID)
	}

	_, ok = PickProbe(nil, 5, nil)
	if ok {
		t.Error("empty catalogue yielded a probe")
	}
}

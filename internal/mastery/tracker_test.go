package mastery

import (
	"math/rand"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func TestApplyAnswer_CorrectIncreasesMastery(t *testing.T) {
	s := SubSkillScore{Mastery: 0.5, Confidence: 0.5, HalfLife: 7}
	u := ApplyAnswer(s, AnswerContext{
		Correct:          true,
		TimeToAnswerSecs: 15,
		ExpectedTimeSecs: 20,
		Difficulty:       5,
	}, testNow)

	if u.Score.Mastery <= s.Mastery {
		t.Errorf("mastery did not increase: %f -> %f", s.Mastery, u.Score.Mastery)
	}
	if u.Score.StreakCount != 1 {
		t.Errorf("StreakCount = %d, want 1", u.Score.StreakCount)
	}
	if !u.Score.LastTested.Equal(testNow) {
		t.Error("LastTested not reset on test")
	}
}

func TestApplyAnswer_IncorrectResetsStreakAndRecordsError(t *testing.T) {
	s := SubSkillScore{Mastery: 0.5, Confidence: 0.5, StreakCount: 4, HalfLife: 7}
	u := ApplyAnswer(s, AnswerContext{
		Correct:          false,
		TimeToAnswerSecs: 30,
		ExpectedTimeSecs: 20,
		Difficulty:       3,
		ErrorLabel:       "conceptual",
	}, testNow)

	if u.Score.StreakCount != 0 {
		t.Errorf("StreakCount = %d, want 0", u.Score.StreakCount)
	}
	if u.Score.Mastery >= s.Mastery {
		t.Errorf("mastery did not decrease on easy miss: %f -> %f", s.Mastery, u.Score.Mastery)
	}
	if len(u.Score.ErrorHistory) != 1 || u.Score.ErrorHistory[0] != "conceptual" {
		t.Errorf("ErrorHistory = %v, want [conceptual]", u.Score.ErrorHistory)
	}
}

func TestApplyAnswer_ErrorHistoryBounded(t *testing.T) {
	s := DefaultScore(testNow)
	for i := 0; i < 15; i++ {
		u := ApplyAnswer(s, AnswerContext{
			Correct:          false,
			TimeToAnswerSecs: 25,
			ExpectedTimeSecs: 20,
			Difficulty:       5,
			ErrorLabel:       "careless",
		}, testNow)
		s = u.Score
	}
	if len(s.ErrorHistory) != ErrorHistorySize {
		t.Errorf("ErrorHistory length = %d, want %d", len(s.ErrorHistory), ErrorHistorySize)
	}
}

func TestApplyAnswer_UpsetBonus(t *testing.T) {
	// Beating a difficulty-9 question at mastery 0.3 earns more than
	// beating a difficulty-3 question.
	s := SubSkillScore{Mastery: 0.3, Confidence: 0.5, HalfLife: 7}
	hard := ApplyAnswer(s, AnswerContext{Correct: true, TimeToAnswerSecs: 20, ExpectedTimeSecs: 20, Difficulty: 9}, testNow)
	easy := ApplyAnswer(s, AnswerContext{Correct: true, TimeToAnswerSecs: 20, ExpectedTimeSecs: 20, Difficulty: 3}, testNow)
	if hard.MasteryDelta <= easy.MasteryDelta {
		t.Errorf("hard delta %f should exceed easy delta %f", hard.MasteryDelta, easy.MasteryDelta)
	}
}

func TestApplyAnswer_ConfidenceBeatExpectation(t *testing.T) {
	s := SubSkillScore{Mastery: 0.3, Confidence: 0.5, HalfLife: 7}
	u := ApplyAnswer(s, AnswerContext{Correct: true, TimeToAnswerSecs: 20, ExpectedTimeSecs: 20, Difficulty: 8}, testNow)
	got := u.Score.Confidence - s.Confidence
	if got < 0.079 || got > 0.081 {
		t.Errorf("confidence delta = %f, want 0.08", got)
	}
}

func TestApplyAnswer_ConfidenceDropOnExpectedPass(t *testing.T) {
	s := SubSkillScore{Mastery: 0.8, Confidence: 0.5, HalfLife: 7}
	u := ApplyAnswer(s, AnswerContext{Correct: false, TimeToAnswerSecs: 20, ExpectedTimeSecs: 20, Difficulty: 3, ErrorLabel: "careless"}, testNow)
	got := u.Score.Confidence - s.Confidence
	if got > -0.099 || got < -0.101 {
		t.Errorf("confidence delta = %f, want -0.10", got)
	}
}

func TestApplyAnswer_TheoreticalOnlyFlag(t *testing.T) {
	s := SubSkillScore{Mastery: 0.7, Confidence: 0.6, HalfLife: 7}
	u := ApplyAnswer(s, AnswerContext{Correct: false, Applied: true, TimeToAnswerSecs: 25, ExpectedTimeSecs: 20, Difficulty: 5, ErrorLabel: "conceptual"}, testNow)
	if !u.Score.TheoreticalOnly {
		t.Error("expected TheoreticalOnly after failing an applied check at high mastery")
	}

	u2 := ApplyAnswer(u.Score, AnswerContext{Correct: true, Applied: true, TimeToAnswerSecs: 18, ExpectedTimeSecs: 20, Difficulty: 5}, testNow)
	if u2.Score.TheoreticalOnly {
		t.Error("expected TheoreticalOnly cleared after passing an applied check")
	}
}

// Invariant fuzz: mastery and confidence stay in [0,1] and half-life in
// bounds across arbitrary answer sequences.
func TestApplyAnswer_InvariantsUnderRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := DefaultScore(testNow)

	for i := 0; i < 5000; i++ {
		label := ""
		correct := rng.Intn(2) == 0
		if !correct {
			if rng.Intn(2) == 0 {
				label = "conceptual"
			} else {
				label = "careless"
			}
		}
		u := ApplyAnswer(s, AnswerContext{
			Correct:          correct,
			TimeToAnswerSecs: rng.Float64() * 120,
			ExpectedTimeSecs: rng.Float64() * 60,
			Difficulty:       rng.Float64() * 10,
			ErrorLabel:       label,
			Applied:          rng.Intn(5) == 0,
		}, testNow)
		s = u.Score

		if s.Mastery < 0 || s.Mastery > 1 {
			t.Fatalf("iteration %d: mastery out of range: %f", i, s.Mastery)
		}
		if s.Confidence < 0 || s.Confidence > 1 {
			t.Fatalf("iteration %d: confidence out of range: %f", i, s.Confidence)
		}
		if s.HalfLife < MinHalfLifeDays || s.HalfLife > MaxHalfLifeDays {
			t.Fatalf("iteration %d: half-life out of range: %f", i, s.HalfLife)
		}
	}
}

func TestKnowledgeGraph_CloneIsDeep(t *testing.T) {
	g := KnowledgeGraph{
		"pob.profit-calculation": {Mastery: 0.5, ErrorHistory: []string{"careless"}},
	}
	c := g.Clone()
	c["pob.profit-calculation"] = SubSkillScore{Mastery: 0.9}
	if g["pob.profit-calculation"].Mastery != 0.5 {
		t.Error("clone mutation leaked into original graph")
	}
}

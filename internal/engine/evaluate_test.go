package engine

import (
	"testing"
	"time"

	"github.com/brighted/nable/internal/diagnosis"
	"github.com/brighted/nable/internal/difficulty"
	"github.com/brighted/nable/internal/mastery"
)

var evalNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func activeState(graph mastery.KnowledgeGraph) State {
	s := NewState("learner-1", graph, evalNow)
	s.Phase = PhaseActive
	s.Diagnostic = nil
	return s
}

func TestEvaluate_ConfidentStreakOnCorrectAnswer(t *testing.T) {
	graph := mastery.KnowledgeGraph{
		"pob.cash-flow": {Mastery: 0.6, Confidence: 0.8, HalfLife: 7, LastTested: evalNow},
	}
	state := activeState(graph)
	state.Streak = 3
	state.LastSimilarity = 0.5

	eng := New(Config{})
	resp, next := eng.Evaluate(state, Request{
		UserID:           "learner-1",
		QuestionID:       "q-301",
		ObjectiveID:      "POB-00301",
		SelectedIndex:    1,
		CorrectIndex:     1,
		Options:          []string{"Cash inflow", "Cash outflow", "Net profit", "Working capital"},
		TimeToAnswerSecs: 10,
		ExpectedTimeSecs: 20,
		SkillIDs:         []string{"pob.cash-flow"},
		Difficulty:       5,
	}, evalNow)

	if !resp.Correct {
		t.Fatal("matching indices reported incorrect")
	}
	if resp.CurrentStreak != 4 {
		t.Errorf("streak = %d, want 4", resp.CurrentStreak)
	}
	if resp.MasteryDeltas["pob.cash-flow"] <= 0 {
		t.Errorf("mastery delta = %f, want positive", resp.MasteryDeltas["pob.cash-flow"])
	}
	if next.LastSimilarity <= 0.5 {
		t.Errorf("distractor similarity = %f, want one step above 0.5", next.LastSimilarity)
	}
	if resp.Mood != difficulty.MoodChallenging {
		t.Errorf("mood = %v, want challenging", resp.Mood)
	}
	if resp.HeartsRemaining != MaxHearts {
		t.Errorf("hearts = %d, want untouched %d", resp.HeartsRemaining, MaxHearts)
	}
	if state.Graph["pob.cash-flow"].Mastery != 0.6 {
		t.Error("input state mutated")
	}
}

func TestEvaluate_MissedAllOfTheAboveIsConceptual(t *testing.T) {
	graph := mastery.KnowledgeGraph{
		"pob.income-types": {Mastery: 0.5, Confidence: 0.5, HalfLife: 7, LastTested: evalNow},
	}
	eng := New(Config{})
	resp, next := eng.Evaluate(activeState(graph), Request{
		QuestionID:       "q-110",
		SelectedIndex:    0,
		CorrectIndex:     3,
		Options:          []string{"Revenue", "Profit", "Assets", "All of the above"},
		TimeToAnswerSecs: 18,
		ExpectedTimeSecs: 20,
		SkillIDs:         []string{"pob.income-types"},
		Difficulty:       4,
	}, evalNow)

	cls := resp.Classification
	if cls == nil {
		t.Fatal("no classification for an incorrect answer")
	}
	if cls.Type != diagnosis.ErrorConceptual {
		t.Errorf("error type = %v, want conceptual", cls.Type)
	}
	if !cls.IsPartiallyCorrect {
		t.Error("individual option under all-of-the-above should be partially correct")
	}
	if cls.ConceptualHint == "" {
		t.Error("conceptual hint missing")
	}
	if !resp.MicroLessonRequired {
		t.Error("conceptual error should require a micro-lesson")
	}
	if resp.HeartsRemaining != MaxHearts-1 {
		t.Errorf("hearts = %d, want %d", resp.HeartsRemaining, MaxHearts-1)
	}
	if !next.LastErrorConceptual {
		t.Error("state did not record the conceptual error")
	}
}

func TestEvaluate_ErrorRunSwitchesToVisualAided(t *testing.T) {
	graph := mastery.KnowledgeGraph{
		"pob.markets": {Mastery: 0.5, Confidence: 0.6, HalfLife: 7, LastTested: evalNow},
	}
	eng := New(Config{})
	state := activeState(graph)

	req := Request{
		QuestionID:       "q-1",
		SelectedIndex:    2,
		CorrectIndex:     0,
		Options:          []string{"A market", "Nine", "Blue", "Seven"},
		TimeToAnswerSecs: 15,
		ExpectedTimeSecs: 20,
		SkillIDs:         []string{"pob.markets"},
		Difficulty:       5,
	}
	var resp Response
	resp, state = eng.Evaluate(state, req, evalNow)
	if resp.ShouldSwitchToVisualAided {
		t.Error("one error should not yet force visual-aided content")
	}
	req.QuestionID = "q-2"
	resp, state = eng.Evaluate(state, req, evalNow)
	if !resp.ShouldSwitchToVisualAided {
		t.Error("two consecutive errors should force visual-aided content")
	}
	if state.ConsecutiveErrors != 2 {
		t.Errorf("consecutive errors = %d, want 2", state.ConsecutiveErrors)
	}
}

func TestEvaluate_HeartsFloorAndRefill(t *testing.T) {
	graph := mastery.KnowledgeGraph{
		"pob.markets": {Mastery: 0.5, Confidence: 0.6, HalfLife: 7, LastTested: evalNow},
	}
	eng := New(Config{})
	state := activeState(graph)

	req := Request{
		SelectedIndex:    1,
		CorrectIndex:     0,
		Options:          []string{"Right", "Wrong", "Also wrong", "Still wrong"},
		TimeToAnswerSecs: 15,
		ExpectedTimeSecs: 20,
		SkillIDs:         []string{"pob.markets"},
		Difficulty:       5,
	}
	var resp Response
	for i := 0; i < MaxHearts+2; i++ {
		resp, state = eng.Evaluate(state, req, evalNow)
	}
	if resp.HeartsRemaining != 0 {
		t.Errorf("hearts = %d, want floor 0", resp.HeartsRemaining)
	}
	if !resp.RequiresRefill {
		t.Error("empty hearts did not signal refill")
	}
}

func TestEvaluate_ColdStartPlacement(t *testing.T) {
	eng := New(Config{})
	state := NewState("newcomer", nil, evalNow)
	if state.Phase != PhaseColdStart {
		t.Fatalf("new learner phase = %v, want cold start", state.Phase)
	}

	req := Request{
		Options:          []string{"Right", "Wrong", "Also wrong", "Still wrong"},
		TimeToAnswerSecs: 12,
		SkillIDs:         []string{"pob.nature-of-business"},
		Difficulty:       5,
	}
	var resp Response

	req.QuestionID, req.SelectedIndex, req.CorrectIndex = "d-1", 0, 0
	resp, state = eng.Evaluate(state, req, evalNow)
	if resp.Placement != nil {
		t.Fatal("placement reported before the diagnostic converged")
	}
	req.QuestionID, req.SelectedIndex = "d-2", 1
	_, state = eng.Evaluate(state, req, evalNow)
	req.QuestionID, req.SelectedIndex = "d-3", 0
	resp, state = eng.Evaluate(state, req, evalNow)

	if resp.Placement == nil {
		t.Fatal("diagnostic did not complete after three probes")
	}
	if resp.Placement.Level != 7 {
		t.Errorf("placement level = %d, want 7", resp.Placement.Level)
	}
	if resp.Placement.Confidence > 0.8 {
		t.Errorf("placement confidence = %f, want at most 0.8", resp.Placement.Confidence)
	}
	if state.Phase != PhaseActive {
		t.Errorf("phase after placement = %v, want active", state.Phase)
	}
	score, ok := state.Graph["pob.nature-of-business"]
	if !ok {
		t.Fatal("probed skill not seeded in the graph")
	}
	if score.Mastery != 0.7 {
		t.Errorf("seeded mastery = %f, want 0.7", score.Mastery)
	}
}

func TestEvaluate_LowConfidenceBlocksProgression(t *testing.T) {
	graph := mastery.KnowledgeGraph{
		"pob.markets": {Mastery: 0.4, Confidence: 0.25, HalfLife: 7, LastTested: evalNow},
	}
	eng := New(Config{})
	resp, next := eng.Evaluate(activeState(graph), Request{
		QuestionID:       "q-1",
		SelectedIndex:    1,
		CorrectIndex:     0,
		Options:          []string{"Right", "Wrong", "Also wrong", "Still wrong"},
		TimeToAnswerSecs: 15,
		ExpectedTimeSecs: 20,
		SkillIDs:         []string{"pob.markets"},
		Difficulty:       3,
	}, evalNow)

	if !resp.BlockedProgression {
		t.Error("collapsed confidence did not block progression")
	}
	if next.Phase != PhaseBlocked {
		t.Errorf("phase = %v, want blocked", next.Phase)
	}
}

func TestEvaluate_InvariantsUnderAnySequence(t *testing.T) {
	graph := mastery.KnowledgeGraph{
		"pob.markets":   {Mastery: 0.5, Confidence: 0.5, HalfLife: 7, LastTested: evalNow},
		"pob.cash-flow": {Mastery: 0.2, Confidence: 0.3, HalfLife: 3, LastTested: evalNow},
	}
	eng := New(Config{})
	state := activeState(graph)

	now := evalNow
	for i := 0; i < 500; i++ {
		selected := i % 4
		now = now.Add(time.Duration(i%30) * time.Hour)
		_, state = eng.Evaluate(state, Request{
			QuestionID:       "q",
			SelectedIndex:    selected,
			CorrectIndex:     1,
			Options:          []string{"Demand", "Supply", "Price", "Cost"},
			TimeToAnswerSecs: float64(i % 90),
			ExpectedTimeSecs: 20,
			SkillIDs:         []string{"pob.markets", "pob.cash-flow"},
			Difficulty:       float64(i % 11),
		}, now)

		for id, score := range state.Graph {
			if score.Mastery < 0 || score.Mastery > 1 {
				t.Fatalf("step %d: %s mastery %f out of range", i, id, score.Mastery)
			}
			if score.Confidence < 0 || score.Confidence > 1 {
				t.Fatalf("step %d: %s confidence %f out of range", i, id, score.Confidence)
			}
			if score.HalfLife < 1 || score.HalfLife > 365 {
				t.Fatalf("step %d: %s half-life %f out of range", i, id, score.HalfLife)
			}
		}
		if state.Hearts < 0 {
			t.Fatalf("step %d: hearts went negative", i)
		}
	}
}

func TestStateClone_Isolated(t *testing.T) {
	state := NewState("learner-1", mastery.KnowledgeGraph{
		"pob.markets": {Mastery: 0.5, HalfLife: 7},
	}, evalNow)
	state.Seen = []string{"q-1"}
	state.Completed["q-1"] = true

	clone := state.Clone()
	clone.Graph["pob.markets"] = mastery.SubSkillScore{Mastery: 0.9, HalfLife: 7}
	clone.Seen = append(clone.Seen, "q-2")
	clone.Completed["q-2"] = true

	if state.Graph["pob.markets"].Mastery != 0.5 {
		t.Error("clone mutation leaked into the original graph")
	}
	if len(state.Seen) != 1 || state.Completed["q-2"] {
		t.Error("clone mutation leaked into session collections")
	}
}

func TestEvaluate_ConceptualHistoryForcesMicroLesson(t *testing.T) {
	options := []string{
		"Money received from sales",
		"Money paid to workers as wages",
		"Kingston",
		"Money kept by owners after costs",
	}
	wrong := Request{
		QuestionID:       "q-115",
		SelectedIndex:    2,
		CorrectIndex:     0,
		Options:          options,
		TimeToAnswerSecs: 18,
		ExpectedTimeSecs: 20,
		SkillIDs:         []string{"pob.income-types"},
		Difficulty:       4,
	}
	eng := New(Config{})

	// A lone careless slip on a clean history stays a drill.
	clean := mastery.KnowledgeGraph{
		"pob.income-types": {Mastery: 0.5, Confidence: 0.5, HalfLife: 7, LastTested: evalNow},
	}
	resp, _ := eng.Evaluate(activeState(clean), wrong, evalNow)
	if resp.Classification == nil || resp.Classification.Type != diagnosis.ErrorCareless {
		t.Fatalf("classification = %+v, want careless", resp.Classification)
	}
	if resp.MicroLessonRequired {
		t.Error("single careless slip demanded a micro-lesson")
	}

	// The same slip on a conceptual-dominated window triggers
	// remediation: the learner misunderstands, drilling won't help.
	loaded := mastery.KnowledgeGraph{
		"pob.income-types": {
			Mastery: 0.5, Confidence: 0.5, HalfLife: 7, LastTested: evalNow,
			ErrorHistory: []string{"conceptual", "conceptual"},
		},
	}
	resp, _ = eng.Evaluate(activeState(loaded), wrong, evalNow)
	if !resp.MicroLessonRequired {
		t.Error("conceptual-dominated history did not force a micro-lesson")
	}
}

package app

import (
	"context"
	"testing"
	"time"

	"github.com/brighted/nable/internal/content"
	"github.com/brighted/nable/internal/engine"
	"github.com/brighted/nable/internal/mastery"
	"github.com/brighted/nable/internal/quality"
	"github.com/brighted/nable/internal/spacedrep"
	"github.com/brighted/nable/internal/store"
)

func newTestService(t *testing.T, dsn string) *Service {
	t.Helper()
	s, err := store.Open(dsn)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return New(Config{
		Events:    s.EventRepo(),
		Snapshots: s.SnapshotRepo(),
	})
}

func correctAnswer(user, questionID string) engine.Request {
	return engine.Request{
		UserID:           user,
		QuestionID:       questionID,
		SelectedIndex:    1,
		CorrectIndex:     1,
		Options:          []string{"4", "8", "12", "16"},
		TimeToAnswerSecs: 20,
		ExpectedTimeSecs: 40,
		SkillIDs:         []string{"pob.nature-of-business"},
		Difficulty:       5,
	}
}

func TestLoadStateNewLearner(t *testing.T) {
	svc := newTestService(t, "file:app_new_learner?mode=memory&cache=shared")
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	state, err := svc.LoadState(ctx, "fresh", now)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	if state.Phase != engine.PhaseColdStart {
		t.Errorf("phase = %v, want cold start", state.Phase)
	}
	if state.Hearts != engine.MaxHearts {
		t.Errorf("hearts = %d, want %d", state.Hearts, engine.MaxHearts)
	}
	if len(state.Graph) != 0 {
		t.Errorf("graph has %d skills, want 0", len(state.Graph))
	}
}

func TestEvaluatePlacementFlowPersists(t *testing.T) {
	svc := newTestService(t, "file:app_placement?mode=memory&cache=shared")
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	state, err := svc.LoadState(ctx, "learner-1", now)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}

	// Three straight correct probes converge the diagnostic at the
	// ceiling: 5 then 8 then 9, every band below resolved.
	var resp engine.Response
	for i, q := range []string{"q1", "q2", "q3"} {
		resp, state, err = svc.Evaluate(ctx, state, correctAnswer("learner-1", q), now)
		if err != nil {
			t.Fatalf("evaluate %d: %v", i, err)
		}
	}

	if resp.Placement == nil {
		t.Fatal("expected placement after three correct probes")
	}
	if resp.Placement.Level != 10 {
		t.Errorf("placement level = %d, want 10", resp.Placement.Level)
	}
	if resp.Placement.QuestionsAnswered != 3 {
		t.Errorf("questions answered = %d, want 3", resp.Placement.QuestionsAnswered)
	}
	if state.Phase != engine.PhaseActive {
		t.Errorf("phase = %v, want active", state.Phase)
	}

	// A fresh load must restore the placed graph, not cold-start again.
	reloaded, err := svc.LoadState(ctx, "learner-1", now)
	if err != nil {
		t.Fatalf("reload state: %v", err)
	}
	if reloaded.Phase != engine.PhaseActive {
		t.Errorf("reloaded phase = %v, want active", reloaded.Phase)
	}
	score, ok := reloaded.Graph["pob.nature-of-business"]
	if !ok {
		t.Fatal("placed skill missing from reloaded graph")
	}
	if score.Mastery != 1.0 {
		t.Errorf("mastery = %v, want 1.0", score.Mastery)
	}
}

func TestResetLearner(t *testing.T) {
	svc := newTestService(t, "file:app_reset?mode=memory&cache=shared")
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	state, err := svc.LoadState(ctx, "learner-1", now)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	for _, q := range []string{"q1", "q2", "q3"} {
		if _, state, err = svc.Evaluate(ctx, state, correctAnswer("learner-1", q), now); err != nil {
			t.Fatalf("evaluate: %v", err)
		}
	}

	if err := svc.ResetLearner(ctx, "learner-1"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	state, err = svc.LoadState(ctx, "learner-1", now)
	if err != nil {
		t.Fatalf("load after reset: %v", err)
	}
	if state.Phase != engine.PhaseColdStart {
		t.Errorf("phase after reset = %v, want cold start", state.Phase)
	}
}

func TestFlagItemAndHydrate(t *testing.T) {
	svc := newTestService(t, "file:app_flags?mode=memory&cache=shared")
	ctx := context.Background()

	it := content.Item{
		ID:               "pob-q001",
		Text:             "What is a sole trader?",
		Options:          []string{"a", "b", "c", "d"},
		ExpectedTimeSecs: 30,
	}

	// Well inside the expected time: no flag, no event.
	reason, flagged, err := svc.FlagItem(ctx, it, 25, "sess-1")
	if err != nil {
		t.Fatalf("flag item: %v", err)
	}
	if flagged {
		t.Errorf("flagged = true (reason %q), want false", reason)
	}

	// Over three times the expected time flags the item.
	reason, flagged, err = svc.FlagItem(ctx, it, 120, "sess-1")
	if err != nil {
		t.Fatalf("flag item: %v", err)
	}
	if !flagged {
		t.Fatal("expected a flag for a 120s answer on a 30s item")
	}
	if reason != quality.ReasonSlowAnswer {
		t.Errorf("reason = %q, want %q", reason, quality.ReasonSlowAnswer)
	}

	hydrated, err := svc.HydrateCatalogue(ctx, []content.Item{it})
	if err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if hydrated[0].FlagCount != 1 {
		t.Errorf("flag count = %d, want 1", hydrated[0].FlagCount)
	}
	if hydrated[0].Archived {
		t.Error("item archived after a single flag")
	}
}

func TestSessionLifecycleEvents(t *testing.T) {
	svc := newTestService(t, "file:app_session?mode=memory&cache=shared")
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	state, err := svc.LoadState(ctx, "learner-1", now)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	if err := svc.StartSession(ctx, state); err != nil {
		t.Fatalf("start session: %v", err)
	}
	if err := svc.EndSession(ctx, state, 0, now.Add(5*time.Minute)); err != nil {
		t.Fatalf("end session: %v", err)
	}
}

func TestSaveStateKeepsStoredMasteryUndecayed(t *testing.T) {
	s, err := store.Open("file:app_decay?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	svc := New(Config{
		Events:    s.EventRepo(),
		Snapshots: s.SnapshotRepo(),
	})

	ctx := context.Background()
	seeded := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	err = s.SnapshotRepo().Save(ctx, &store.Snapshot{
		UserID:    "learner-1",
		Timestamp: seeded,
		Data: store.SnapshotData{
			Version: 1,
			UserID:  "learner-1",
			Phase:   "active",
			Graph: mastery.KnowledgeGraph{
				"pob.nature-of-business": {Mastery: 0.5, Confidence: 0.5, HalfLife: 7, LastTested: seeded},
				"pob.cash-flow":          {Mastery: 0.8, Confidence: 0.6, HalfLife: 7, LastTested: seeded},
			},
		},
	})
	if err != nil {
		t.Fatalf("seed snapshot: %v", err)
	}

	// Two daily sessions answer one skill and never touch the other.
	for day := 1; day <= 2; day++ {
		now := seeded.Add(time.Duration(day) * 24 * time.Hour)
		state, err := svc.LoadState(ctx, "learner-1", now)
		if err != nil {
			t.Fatalf("load day %d: %v", day, err)
		}
		if _, _, err := svc.Evaluate(ctx, state, correctAnswer("learner-1", "q1"), now); err != nil {
			t.Fatalf("evaluate day %d: %v", day, err)
		}
	}

	snap, err := s.SnapshotRepo().Latest(ctx, "learner-1")
	if err != nil {
		t.Fatalf("latest snapshot: %v", err)
	}
	stored := snap.Data.Graph["pob.cash-flow"]
	if stored.Mastery != 0.8 {
		t.Errorf("stored mastery = %v, want the seeded 0.8 untouched by session loads", stored.Mastery)
	}
	if !stored.LastTested.Equal(seeded) {
		t.Errorf("stored last-tested = %v, want %v", stored.LastTested, seeded)
	}

	// Reads still decay, from the raw value, so the mastery seen three
	// days out is a single forgetting-curve application.
	day3 := seeded.Add(3 * 24 * time.Hour)
	state, err := svc.LoadState(ctx, "learner-1", day3)
	if err != nil {
		t.Fatalf("load day 3: %v", err)
	}
	want := spacedrep.ApplyDecay(mastery.KnowledgeGraph{"pob.cash-flow": stored}, day3)["pob.cash-flow"].Mastery
	if got := state.Graph["pob.cash-flow"].Mastery; got != want {
		t.Errorf("loaded mastery = %v, want %v from one decay application", got, want)
	}

	again, err := svc.LoadState(ctx, "learner-1", day3)
	if err != nil {
		t.Fatalf("reload day 3: %v", err)
	}
	if again.Graph["pob.cash-flow"].Mastery != state.Graph["pob.cash-flow"].Mastery {
		t.Error("loaded mastery depends on how many loads came before it")
	}
}

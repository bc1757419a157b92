package store

import (
	"context"
	"testing"
	"time"

	"github.com/brighted/nable/internal/mastery"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func testGraph() map[string]mastery.SubSkillScore {
	return map[string]mastery.SubSkillScore{
		"pob.cash-flow": {Mastery: 0.6, Confidence: 0.7, HalfLife: 4, StreakCount: 2},
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx, "learner-1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		UserID:    "learner-1",
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			UserID:  "learner-1",
			Phase:   "active",
			Graph:   testGraph(),
			Hearts:  5,
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx, "learner-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Phase != "active" {
		t.Errorf("data.phase = %q, want %q", snap.Data.Phase, "active")
	}
	got := snap.Data.Graph["pob.cash-flow"]
	if got.Mastery != 0.6 || got.HalfLife != 4 {
		t.Errorf("graph entry = %+v, want mastery 0.6 half-life 4", got)
	}
}

func TestSnapshotLatestIsPerLearner(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i, user := range []string{"learner-1", "learner-2", "learner-1"} {
		err := repo.Save(ctx, &Snapshot{
			UserID:    user,
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1, UserID: user, Hearts: i},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx, "learner-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("learner-1 sequence = %d, want 3", snap.Sequence)
	}

	snap, err = repo.Latest(ctx, "learner-2")
	if err != nil {
		t.Fatalf("latest learner-2: %v", err)
	}
	if snap.Sequence != 2 {
		t.Errorf("learner-2 sequence = %d, want 2", snap.Sequence)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			UserID:    "learner-1",
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	// Another learner's snapshot must survive the prune.
	err := repo.Save(ctx, &Snapshot{
		UserID:    "learner-2",
		Sequence:  1,
		Timestamp: base,
		Data:      SnapshotData{Version: 1},
	})
	if err != nil {
		t.Fatalf("save learner-2: %v", err)
	}

	if err := repo.Prune(ctx, "learner-1", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 6 {
		t.Errorf("remaining snapshots = %d, want 6 (5 kept + 1 other learner)", count)
	}

	snap, err := repo.Latest(ctx, "learner-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			UserID:    "learner-1",
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, "learner-1", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	// Check that the snapshots table exists.
	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}

func TestAppendAnswerAndItemStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", UserID: "learner-1", QuestionID: "q1", SkillIDs: []string{"pob.cash-flow"}, SelectedIndex: 1, CorrectIndex: 1, Correct: true, TimeMs: 9000, Difficulty: 5},
		{SessionID: "s1", UserID: "learner-1", QuestionID: "q1", SkillIDs: []string{"pob.cash-flow"}, SelectedIndex: 2, CorrectIndex: 1, Correct: false, TimeMs: 14000, Difficulty: 5, ErrorType: "conceptual", ErrorRule: "all-of-the-above"},
		{SessionID: "s2", UserID: "learner-2", QuestionID: "q2", SkillIDs: []string{"pob.budgeting"}, SelectedIndex: 0, CorrectIndex: 0, Correct: true, TimeMs: 21000, Difficulty: 6},
	}
	for i, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	if err := repo.AppendItemFlag(ctx, ItemFlagEventData{QuestionID: "q1", Reason: "slow_answer", FlagCount: 1}); err != nil {
		t.Fatalf("append flag: %v", err)
	}
	if err := repo.AppendItemFlag(ctx, ItemFlagEventData{QuestionID: "q1", Reason: "low_success", FlagCount: 2}); err != nil {
		t.Fatalf("append flag: %v", err)
	}

	stats, err := repo.ItemStats(ctx)
	if err != nil {
		t.Fatalf("item stats: %v", err)
	}

	q1 := stats["q1"]
	if q1.Attempts != 2 || q1.Correct != 1 {
		t.Errorf("q1 stats = %+v, want 2 attempts 1 correct", q1)
	}
	if q1.FlagCount != 2 {
		t.Errorf("q1 flag count = %d, want 2", q1.FlagCount)
	}
	if q1.Archived {
		t.Error("q1 should not be archived")
	}

	q2 := stats["q2"]
	if q2.Attempts != 1 || q2.Correct != 1 || q2.FlagCount != 0 {
		t.Errorf("q2 stats = %+v, want 1 attempt 1 correct 0 flags", q2)
	}
}

func TestSkillPriorsAveragesLatestPerLearner(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []MasteryEventData{
		{UserID: "learner-1", SkillID: "pob.cash-flow", MasteryBefore: 0.5, MasteryAfter: 0.6, HalfLifeDays: 2, Trigger: "answer"},
		{UserID: "learner-1", SkillID: "pob.cash-flow", MasteryBefore: 0.6, MasteryAfter: 0.8, HalfLifeDays: 3, Trigger: "answer"},
		{UserID: "learner-2", SkillID: "pob.cash-flow", MasteryBefore: 0.3, MasteryAfter: 0.4, HalfLifeDays: 1, Trigger: "answer"},
		{UserID: "learner-2", SkillID: "pob.budgeting", MasteryBefore: 0.2, MasteryAfter: 0.5, HalfLifeDays: 1, Trigger: "placement"},
	}
	for i, e := range events {
		if err := repo.AppendMastery(ctx, e); err != nil {
			t.Fatalf("append mastery %d: %v", i, err)
		}
	}

	priors, err := repo.SkillPriors(ctx)
	if err != nil {
		t.Fatalf("skill priors: %v", err)
	}

	// learner-1 latest 0.8 and learner-2 latest 0.4 average to 0.6.
	got := priors["pob.cash-flow"]
	if got < 0.599 || got > 0.601 {
		t.Errorf("cash-flow prior = %f, want 0.6", got)
	}
	if priors["pob.budgeting"] != 0.5 {
		t.Errorf("budgeting prior = %f, want 0.5", priors["pob.budgeting"])
	}
}

func TestLLMEventQueryAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	reqs := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "lesson", InputTokens: 400, OutputTokens: 200, LatencyMs: 900, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "lesson", InputTokens: 350, OutputTokens: 0, LatencyMs: 120, Success: false, ErrorMessage: "rate limited"},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "profile", InputTokens: 100, OutputTokens: 80, LatencyMs: 500, Success: true},
	}
	for i, r := range reqs {
		if err := repo.AppendLLMRequest(ctx, r); err != nil {
			t.Fatalf("append LLM request %d: %v", i, err)
		}
	}

	records, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query LLM events: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// Newest first.
	if records[0].Purpose != "profile" {
		t.Errorf("first record purpose = %q, want %q", records[0].Purpose, "profile")
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("got %d usage rows, want 2", len(usage))
	}
	// Sorted by purpose: lesson, profile.
	if usage[0].Key != "lesson" || usage[0].Calls != 2 || usage[0].Failures != 1 {
		t.Errorf("lesson usage = %+v, want 2 calls 1 failure", usage[0])
	}
	if usage[0].InputTokens != 750 {
		t.Errorf("lesson input tokens = %d, want 750", usage[0].InputTokens)
	}
	if usage[1].Key != "profile" || usage[1].Calls != 1 {
		t.Errorf("profile usage = %+v, want 1 call", usage[1])
	}
}

func TestSessionAndPlacementEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSession(ctx, SessionEventData{
		SessionID: "s1", UserID: "learner-1", Action: "start", Phase: "cold-start",
	})
	if err != nil {
		t.Fatalf("append session start: %v", err)
	}

	err = repo.AppendPlacement(ctx, PlacementEventData{
		UserID: "learner-1", SessionID: "s1", Level: 7, Mastery: 0.7,
		Confidence: 0.7, QuestionsAsked: 3,
		ProbedSkills: []string{"pob.cash-flow", "pob.budgeting"},
	})
	if err != nil {
		t.Fatalf("append placement: %v", err)
	}

	err = repo.AppendSession(ctx, SessionEventData{
		SessionID: "s1", UserID: "learner-1", Action: "end", Phase: "active",
		QuestionsServed: 8, CorrectAnswers: 6, HeartsRemaining: 4, DurationSecs: 540,
	})
	if err != nil {
		t.Fatalf("append session end: %v", err)
	}

	placements, err := s.Client().PlacementEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query placements: %v", err)
	}
	if len(placements) != 1 {
		t.Fatalf("got %d placements, want 1", len(placements))
	}
	if placements[0].Level != 7 {
		t.Errorf("placement level = %d, want 7", placements[0].Level)
	}
	if len(placements[0].ProbedSkills) != 2 {
		t.Errorf("probed skills = %v, want 2 entries", placements[0].ProbedSkills)
	}

	sessions, err := s.Client().SessionEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if sessions != 2 {
		t.Errorf("session events = %d, want 2", sessions)
	}
}

func TestUserSkillResults(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", UserID: "learner-1", QuestionID: "q1", SkillIDs: []string{"pob.cash-flow"}, SelectedIndex: 1, CorrectIndex: 1, Correct: true, TimeMs: 9000, Difficulty: 5},
		{SessionID: "s1", UserID: "learner-1", QuestionID: "q2", SkillIDs: []string{"pob.cash-flow", "pob.budgeting"}, SelectedIndex: 2, CorrectIndex: 1, Correct: false, TimeMs: 14000, Difficulty: 5, ErrorType: "conceptual"},
		{SessionID: "s2", UserID: "learner-2", QuestionID: "q1", SkillIDs: []string{"pob.cash-flow"}, SelectedIndex: 0, CorrectIndex: 1, Correct: false, TimeMs: 12000, Difficulty: 5},
	}
	for i, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	results, err := repo.UserSkillResults(ctx, "learner-1")
	if err != nil {
		t.Fatalf("user skill results: %v", err)
	}

	if got := results["pob.cash-flow"]; got.Attempted != 2 || got.Correct != 1 {
		t.Errorf("cash-flow = %+v, want 2 attempted 1 correct", got)
	}
	if got := results["pob.budgeting"]; got.Attempted != 1 || got.Correct != 0 {
		t.Errorf("budgeting = %+v, want 1 attempted 0 correct", got)
	}
	// learner-2's miss must not leak in.
	if len(results) != 2 {
		t.Errorf("skills tracked = %d, want 2", len(results))
	}
}

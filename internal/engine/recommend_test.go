package engine

import (
	"testing"
	"time"

	"github.com/brighted/nable/internal/content"
	"github.com/brighted/nable/internal/mastery"
	"github.com/brighted/nable/internal/placement"
)

func TestRecommend_ColdStartServesProbe(t *testing.T) {
	eng := New(Config{})
	state := NewState("newcomer", nil, evalNow)
	catalogue := []content.Item{
		{ID: "easy", Difficulty: 2},
		{ID: "mid", Difficulty: 5},
		{ID: "hard", Difficulty: 9},
	}

	rec := eng.Recommend(state, catalogue, nil, evalNow)
	if rec.Question == nil || rec.Question.ID != "mid" {
		t.Fatalf("cold-start recommendation = %v, want the probe at level %d", rec.Question, placement.StartLevel)
	}
}

func TestRecommend_RefreshFirstAtSessionStart(t *testing.T) {
	graph := mastery.KnowledgeGraph{
		"pob.cash-flow": {Mastery: 0.7, Confidence: 0.6, HalfLife: 2,
			LastTested: evalNow.Add(-10 * 24 * time.Hour)},
		"pob.markets": {Mastery: 0.6, Confidence: 0.6, HalfLife: 60, LastTested: evalNow},
	}
	state := activeState(graph)
	catalogue := []content.Item{
		{ID: "fresh-topic", Difficulty: 5, DistractorSimilarity: 0.3, SkillIDs: []string{"pob.markets"}},
		{ID: "decayed-topic", Difficulty: 5, DistractorSimilarity: 0.3, SkillIDs: []string{"pob.cash-flow"}},
	}

	eng := New(Config{})
	rec := eng.Recommend(state, catalogue, nil, evalNow)
	if !rec.RefreshFirst {
		t.Fatal("session start with a decayed skill did not serve refresh first")
	}
	if rec.Question == nil || rec.Question.ID != "decayed-topic" {
		t.Errorf("refresh question = %v, want the decayed skill's item", rec.Question)
	}
	if len(rec.RefreshQueue) == 0 || rec.RefreshQueue[0].SkillID != "pob.cash-flow" {
		t.Errorf("refresh queue = %v, want the decayed skill first", rec.RefreshQueue)
	}
}

func TestRecommend_NoRefreshAfterFirstQuestion(t *testing.T) {
	graph := mastery.KnowledgeGraph{
		"pob.cash-flow": {Mastery: 0.7, Confidence: 0.6, HalfLife: 2,
			LastTested: evalNow.Add(-10 * 24 * time.Hour)},
	}
	state := activeState(graph)
	state.QuestionsAsked = 3
	catalogue := []content.Item{
		{ID: "decayed-topic", Difficulty: 5, DistractorSimilarity: 0.3, SkillIDs: []string{"pob.cash-flow"}},
	}

	rec := New(Config{}).Recommend(state, catalogue, nil, evalNow)
	if rec.RefreshFirst {
		t.Error("refresh-first applies only before the first question of a session")
	}
	if rec.RefreshQueue != nil {
		t.Error("refresh queue computed mid-session")
	}
}

func TestRecommend_ErrorRunPrefersVisualAided(t *testing.T) {
	graph := mastery.KnowledgeGraph{
		"pob.markets": {Mastery: 0.5, Confidence: 0.6, HalfLife: 7, LastTested: evalNow},
	}
	state := activeState(graph)
	state.QuestionsAsked = 4
	state.ConsecutiveErrors = 2
	state.LastDifficulty = 5
	state.LastSimilarity = 0.5

	catalogue := []content.Item{
		{ID: "plain", Type: content.TypeStandard, Difficulty: 5, DistractorSimilarity: 0.5,
			SkillIDs: []string{"pob.markets"}},
		{ID: "visual", Type: content.TypeVisualAided, Difficulty: 5, DistractorSimilarity: 0.5,
			SkillIDs: []string{"pob.markets"}},
	}

	rec := New(Config{}).Recommend(state, catalogue, nil, evalNow)
	if rec.Question == nil || rec.Question.ID != "visual" {
		t.Errorf("recommendation = %v, want the visual-aided item after an error run", rec.Question)
	}
}

func TestRecommend_FiltersSeenExcludedAndGated(t *testing.T) {
	graph := mastery.KnowledgeGraph{
		"pob.nature-of-business": {Mastery: 0.2, Confidence: 0.5, HalfLife: 7, LastTested: evalNow},
	}
	state := activeState(graph)
	state.QuestionsAsked = 1
	state.Seen = []string{"seen"}
	state.LastDifficulty = 5
	state.LastSimilarity = 0.3

	catalogue := []content.Item{
		{ID: "seen", Difficulty: 5, DistractorSimilarity: 0.3},
		{ID: "excluded", Difficulty: 5, DistractorSimilarity: 0.3},
		{ID: "gated", Difficulty: 5, DistractorSimilarity: 0.3,
			Prerequisites: []string{"pob.nature-of-business"}},
		{ID: "open", Difficulty: 4, DistractorSimilarity: 0.3,
			Prerequisites: []string{"pob.untracked"}},
	}

	rec := New(Config{}).Recommend(state, catalogue, []string{"excluded"}, evalNow)
	if rec.Question == nil || rec.Question.ID != "open" {
		t.Errorf("recommendation = %v, want the only eligible item", rec.Question)
	}
}

func TestRecommend_EmptyPoolReturnsNil(t *testing.T) {
	state := activeState(mastery.KnowledgeGraph{
		"pob.markets": {Mastery: 0.5, Confidence: 0.5, HalfLife: 7, LastTested: evalNow},
	})
	state.QuestionsAsked = 1

	catalogue := []content.Item{{ID: "gone", Archived: true}}
	rec := New(Config{}).Recommend(state, catalogue, nil, evalNow)
	if rec.Question != nil {
		t.Errorf("recommendation = %v, want nil for an empty pool", rec.Question)
	}
}

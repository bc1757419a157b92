package difficulty

import (
	"math"
	"testing"

	"github.com/brighted/nable/internal/content"
)

func TestTarget(t *testing.T) {
	cases := []struct {
		name       string
		mastery    float64
		confidence float64
		streak     int
		want       float64
	}{
		{"baseline", 0.5, 0.5, 0, 5.5},
		{"confident learner gets a push", 0.5, 0.8, 0, 6.0},
		{"streak bonus from three", 0.5, 0.5, 3, 5.7},
		{"streak bonus grows", 0.5, 0.5, 5, 6.1},
		{"streak bonus capped", 0.5, 0.5, 20, 6.5},
		{"ceiling", 1.0, 0.9, 20, MaxDifficulty},
		{"floor stays at half point", 0.0, 0.1, 0, 0.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Target(c.mastery, c.confidence, c.streak)
			if math.Abs(got-c.want) > 1e-9 {
				t.Errorf("Target(%.1f, %.1f, %d) = %f, want %f",
					c.mastery, c.confidence, c.streak, got, c.want)
			}
		})
	}
}

func TestNextSimilarity(t *testing.T) {
	if got := NextSimilarity(0.5, 4, 0); math.Abs(got-0.55) > 1e-9 {
		t.Errorf("streak 4 similarity = %f, want one step up to 0.55", got)
	}
	if got := NextSimilarity(0.5, 3, 0); got != 0.5 {
		t.Errorf("streak 3 similarity = %f, want unchanged 0.5", got)
	}
	if got := NextSimilarity(0.5, 0, 2); math.Abs(got-0.4) > 1e-9 {
		t.Errorf("two errors similarity = %f, want 0.4", got)
	}
	if got := NextSimilarity(0.35, 0, 6); got != MinSimilarity {
		t.Errorf("error run similarity = %f, want floor %f", got, MinSimilarity)
	}
	if got := NextSimilarity(0.89, 6, 0); got != MaxSimilarity {
		t.Errorf("long streak similarity = %f, want ceiling %f", got, MaxSimilarity)
	}
}

func TestNextContentType(t *testing.T) {
	if got := NextContentType(true, 0); got != content.TypeMicroLesson {
		t.Errorf("conceptual error content type = %v, want micro-lesson", got)
	}
	if got := NextContentType(false, 2); got != content.TypeVisualAided {
		t.Errorf("error run content type = %v, want visual-aided", got)
	}
	if got := NextContentType(false, 1); got != content.TypeStandard {
		t.Errorf("single error content type = %v, want standard", got)
	}
}

func TestMoodFor(t *testing.T) {
	cases := []struct {
		name       string
		confidence float64
		streak     int
		errors     int
		declining  bool
		want       Mood
	}{
		{"long streak celebrates", 0.5, 5, 0, false, MoodCelebratory},
		{"confident streak challenges", 0.8, 4, 0, false, MoodChallenging},
		{"declining mastery withholds challenge", 0.8, 4, 0, true, MoodEncouraging},
		{"error run supports", 0.6, 0, 2, false, MoodSupportive},
		{"low confidence supports", 0.3, 1, 0, false, MoodSupportive},
		{"default encourages", 0.6, 1, 0, false, MoodEncouraging},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := MoodFor(c.confidence, c.streak, c.errors, c.declining)
			if got != c.want {
				t.Errorf("MoodFor(%.1f, %d, %d, %v) = %v, want %v",
					c.confidence, c.streak, c.errors, c.declining, got, c.want)
			}
		})
	}
}

func TestBlocked(t *testing.T) {
	if Blocked(0.3) {
		t.Error("confidence 0.3 should not block progression")
	}
	if !Blocked(0.2) {
		t.Error("confidence 0.2 should block progression")
	}
}

func TestBestFit_RanksByDistanceFromTarget(t *testing.T) {
	ctx := RankContext{TargetDifficulty: 6, TargetSimilarity: 0.5}
	items := []content.Item{
		{ID: "far", Difficulty: 2, DistractorSimilarity: 0.5},
		{ID: "near", Difficulty: 6, DistractorSimilarity: 0.6},
		{ID: "exact", Difficulty: 6, DistractorSimilarity: 0.5},
	}
	got, ok := BestFit(items, ctx)
	if !ok || got.ID != "exact" {
		t.Errorf("best fit = %q, want exact", got.ID)
	}
}

func TestBestFit_WeakSkillAndRecentTopic(t *testing.T) {
	ctx := RankContext{
		TargetDifficulty: 5,
		TargetSimilarity: 0.5,
		WeakSkills:       map[string]bool{"pob.cash-flow": true},
		RecentObjectives: []string{"POB-00301"},
	}
	items := []content.Item{
		{ID: "stale", ObjectiveID: "POB-00301", Difficulty: 5, DistractorSimilarity: 0.5},
		{ID: "weak", ObjectiveID: "POB-00502", Difficulty: 6, DistractorSimilarity: 0.5,
			SkillIDs: []string{"pob.cash-flow"}},
	}
	got, ok := BestFit(items, ctx)
	if !ok || got.ID != "weak" {
		t.Errorf("best fit = %q, want the weak-skill item over the repeated topic", got.ID)
	}
}

func TestBestFit_PreferredTypeBreaksTie(t *testing.T) {
	ctx := RankContext{
		TargetDifficulty: 5,
		TargetSimilarity: 0.5,
		PreferType:       content.TypeVisualAided,
	}
	items := []content.Item{
		{ID: "plain", Type: content.TypeStandard, Difficulty: 5, DistractorSimilarity: 0.5},
		{ID: "visual", Type: content.TypeVisualAided, Difficulty: 5, DistractorSimilarity: 0.5},
	}
	got, ok := BestFit(items, ctx)
	if !ok || got.ID != "visual" {
		t.Errorf("best fit = %q, want the visual item on an equal score", got.ID)
	}
}

func TestBestFit_EmptyPool(t *testing.T) {
	if _, ok := BestFit(nil, RankContext{}); ok {
		t.Error("empty pool yielded an item")
	}
}

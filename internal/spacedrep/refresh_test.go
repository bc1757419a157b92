package spacedrep

import (
	"testing"
	"time"

	"github.com/brighted/nable/internal/mastery"
)

var refreshNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func daysAgo(d float64) time.Time {
	return refreshNow.Add(-time.Duration(d * 24 * float64(time.Hour)))
}

func TestUrgencyFor_Buckets(t *testing.T) {
	cases := []struct {
		recall float64
		days   float64
		want   Urgency
	}{
		{0.3, 5, UrgencyCritical},
		{0.9, 70, UrgencyCritical},
		{0.5, 5, UrgencyHigh},
		{0.9, 40, UrgencyHigh},
		{0.7, 5, UrgencyMedium},
		{0.95, 5, UrgencyLow},
	}
	for _, c := range cases {
		if got := UrgencyFor(c.recall, c.days); got != c.want {
			t.Errorf("UrgencyFor(%.2f, %.0f) = %v, want %v", c.recall, c.days, got, c.want)
		}
	}
}

func TestRefreshQueue_RanksByUrgencyThenDecay(t *testing.T) {
	g := mastery.KnowledgeGraph{
		"fresh":    {Mastery: 0.8, HalfLife: 30, LastTested: daysAgo(1)},
		"fading":   {Mastery: 0.7, HalfLife: 7, LastTested: daysAgo(5)},
		"critical": {Mastery: 0.6, HalfLife: 2, LastTested: daysAgo(10)},
	}

	queue := RefreshQueue(g, refreshNow, 3)
	if len(queue) != 2 {
		t.Fatalf("queue length = %d, want 2 (fresh skill excluded)", len(queue))
	}
	if queue[0].SkillID != "critical" {
		t.Errorf("queue[0] = %q, want critical skill first", queue[0].SkillID)
	}
	if queue[1].SkillID != "fading" {
		t.Errorf("queue[1] = %q, want fading skill second", queue[1].SkillID)
	}
}

func TestRefreshQueue_LimitApplied(t *testing.T) {
	g := mastery.KnowledgeGraph{}
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		g[id] = mastery.SubSkillScore{Mastery: 0.5, HalfLife: 1, LastTested: daysAgo(20)}
	}
	queue := RefreshQueue(g, refreshNow, 0) // 0 -> default limit
	if len(queue) != DefaultRefreshLimit {
		t.Errorf("queue length = %d, want default %d", len(queue), DefaultRefreshLimit)
	}
}

func TestRefreshQueue_DeterministicTieBreak(t *testing.T) {
	g := mastery.KnowledgeGraph{
		"b": {Mastery: 0.5, HalfLife: 2, LastTested: daysAgo(10)},
		"a": {Mastery: 0.5, HalfLife: 2, LastTested: daysAgo(10)},
	}
	queue := RefreshQueue(g, refreshNow, 2)
	if len(queue) != 2 || queue[0].SkillID != "a" {
		t.Errorf("tie not broken by skill ID: %+v", queue)
	}
}

func TestApplyDecay_ReducesMasteryWithoutMutatingInput(t *testing.T) {
	g := mastery.KnowledgeGraph{
		"pob.demand-supply": {Mastery: 0.8, Confidence: 0.6, HalfLife: 7, LastTested: daysAgo(14)},
	}
	decayed := ApplyDecay(g, refreshNow)

	if got := decayed["pob.demand-supply"].Mastery; got >= 0.8 {
		t.Errorf("decayed mastery = %f, want < 0.8", got)
	}
	if g["pob.demand-supply"].Mastery != 0.8 {
		t.Error("input graph mutated")
	}
	// Floor: even full forgetting keeps half the estimate.
	if got := decayed["pob.demand-supply"].Mastery; got < 0.8*decayMasteryFloor {
		t.Errorf("decayed mastery = %f fell below the relearning floor", got)
	}
}

func TestApplyDecay_FreshSkillUnchanged(t *testing.T) {
	g := mastery.KnowledgeGraph{
		"pob.cash-flow": {Mastery: 0.75, HalfLife: 7, LastTested: refreshNow},
	}
	decayed := ApplyDecay(g, refreshNow)
	if got := decayed["pob.cash-flow"].Mastery; got != 0.75 {
		t.Errorf("mastery = %f, want unchanged 0.75", got)
	}
}

package spacedrep

import (
	"sort"
	"time"

	"github.com/brighted/nable/internal/mastery"
)

// Urgency buckets a decayed skill by how badly it needs refreshing.
type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyMedium
	UrgencyHigh
	UrgencyCritical
)

// Urgency cutoffs. A skill is critical when recall has collapsed or it
// has gone untested for two months; the remaining buckets step down from
// there.
const (
	criticalRecall = 0.4
	criticalDays   = 60.0
	highRecall     = 0.6
	highDays       = 30.0
	mediumRecall   = RefreshRecallThreshold
	mediumDays     = RefreshDayThreshold
)

func (u Urgency) String() string {
	switch u {
	case UrgencyCritical:
		return "critical"
	case UrgencyHigh:
		return "high"
	case UrgencyMedium:
		return "medium"
	default:
		return "low"
	}
}

// UrgencyFor derives the urgency bucket from recall probability and
// elapsed days.
func UrgencyFor(recall, elapsedDays float64) Urgency {
	switch {
	case recall < criticalRecall || elapsedDays > criticalDays:
		return UrgencyCritical
	case recall < highRecall || elapsedDays > highDays:
		return UrgencyHigh
	case recall < mediumRecall || elapsedDays > mediumDays:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

// DefaultRefreshLimit is the default size of the session-start refresh queue.
const DefaultRefreshLimit = 3

// RefreshCandidate is one decayed skill queued for re-testing.
type RefreshCandidate struct {
	SkillID     string
	Recall      float64
	DecayLevel  float64
	ElapsedDays float64
	Urgency     Urgency
}

// RefreshQueue scans the knowledge graph at session start and returns up
// to limit skills needing refresh, most urgent first, ties broken by
// decay level descending then skill ID for determinism.
func RefreshQueue(g mastery.KnowledgeGraph, now time.Time, limit int) []RefreshCandidate {
	if limit <= 0 {
		limit = DefaultRefreshLimit
	}

	var due []RefreshCandidate
	for skillID, s := range g {
		elapsed := elapsedDays(s.LastTested, now)
		if !NeedsRefresh(elapsed, s.HalfLife) {
			continue
		}
		p := Recall(elapsed, s.HalfLife)
		due = append(due, RefreshCandidate{
			SkillID:     skillID,
			Recall:      p,
			DecayLevel:  1 - p,
			ElapsedDays: elapsed,
			Urgency:     UrgencyFor(p, elapsed),
		})
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].Urgency != due[j].Urgency {
			return due[i].Urgency > due[j].Urgency
		}
		if due[i].DecayLevel != due[j].DecayLevel {
			return due[i].DecayLevel > due[j].DecayLevel
		}
		return due[i].SkillID < due[j].SkillID
	})

	if len(due) > limit {
		due = due[:limit]
	}
	return due
}

// decayMasteryFloor bounds how much of the stored mastery survives full
// forgetting: at recall 0 half the estimate remains (the skill was
// learned once; relearning is faster than learning).
const decayMasteryFloor = 0.5

// ApplyDecay returns a copy of the graph with forgetting applied to each
// skill's mastery based on time since it was last tested. The persistence
// layer stores raw (undecayed) mastery and calls this on every load;
// testing a skill resets its clock.
func ApplyDecay(g mastery.KnowledgeGraph, now time.Time) mastery.KnowledgeGraph {
	out := g.Clone()
	for skillID, s := range out {
		p := Recall(elapsedDays(s.LastTested, now), s.HalfLife)
		s.Mastery *= decayMasteryFloor + (1.0-decayMasteryFloor)*p
		s.Clamp()
		out[skillID] = s
	}
	return out
}

func elapsedDays(lastTested, now time.Time) float64 {
	if lastTested.IsZero() || now.Before(lastTested) {
		return 0
	}
	return now.Sub(lastTested).Hours() / 24.0
}

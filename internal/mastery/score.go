package mastery

import (
	"maps"
	"time"
)

const (
	// DefaultMastery is the prior for a skill with no diagnostic data.
	DefaultMastery = 0.3
	// DefaultConfidence is the prior confidence for an unseen skill.
	DefaultConfidence = 0.2
	// DefaultHalfLifeDays seeds the forgetting curve for a new skill.
	DefaultHalfLifeDays = 7.0

	// MinHalfLifeDays and MaxHalfLifeDays bound the forgetting-curve
	// parameter. The floor stops a bad streak from scheduling a skill
	// for refresh every session; the ceiling keeps every skill
	// re-testable within a school year.
	MinHalfLifeDays = 1.0
	MaxHalfLifeDays = 365.0

	// ErrorHistorySize bounds the trailing error-label window.
	ErrorHistorySize = 10
)

// SubSkillScore is the per-learner, per-skill mastery record.
// Mastery and Confidence are always clamped to [0,1]; HalfLife to
// [MinHalfLifeDays, MaxHalfLifeDays].
type SubSkillScore struct {
	Mastery    float64   `json:"mastery"`
	Confidence float64   `json:"confidence"`
	LastTested time.Time `json:"last_tested"`
	// ErrorHistory holds the last ErrorHistorySize error labels
	// ("conceptual"/"careless"), oldest first.
	ErrorHistory []string `json:"error_history,omitempty"`
	StreakCount  int      `json:"streak_count"`
	// HalfLife is the forgetting-curve half-life in days.
	HalfLife float64 `json:"half_life"`
	// TheoreticalOnly marks a skill that passes drills but failed an
	// applied/contextual check.
	TheoreticalOnly bool `json:"theoretical_only,omitempty"`
}

// DefaultScore returns a SubSkillScore seeded with priors for a skill the
// learner has never been tested on.
func DefaultScore(now time.Time) SubSkillScore {
	return SubSkillScore{
		Mastery:    DefaultMastery,
		Confidence: DefaultConfidence,
		LastTested: now,
		HalfLife:   DefaultHalfLifeDays,
	}
}

// Clamp enforces the score invariants in place.
func (s *SubSkillScore) Clamp() {
	s.Mastery = clamp(s.Mastery, 0, 1)
	s.Confidence = clamp(s.Confidence, 0, 1)
	s.HalfLife = clamp(s.HalfLife, MinHalfLifeDays, MaxHalfLifeDays)
}

// RecordError appends an error label to the bounded history.
// Empty labels are dropped.
func (s *SubSkillScore) RecordError(label string) {
	if label == "" {
		return
	}
	s.ErrorHistory = append(s.ErrorHistory, label)
	if len(s.ErrorHistory) > ErrorHistorySize {
		s.ErrorHistory = s.ErrorHistory[len(s.ErrorHistory)-ErrorHistorySize:]
	}
}

// KnowledgeGraph maps skill ID to the learner's score for that skill.
// Values are plain records; callers clone before mutating so a previous
// state snapshot is never changed behind the engine's back.
type KnowledgeGraph map[string]SubSkillScore

// Clone returns a deep copy of the graph.
func (g KnowledgeGraph) Clone() KnowledgeGraph {
	out := make(KnowledgeGraph, len(g))
	maps.Copy(out, g)
	for id, s := range out {
		if s.ErrorHistory != nil {
			hist := make([]string, len(s.ErrorHistory))
			copy(hist, s.ErrorHistory)
			s.ErrorHistory = hist
			out[id] = s
		}
	}
	return out
}

// Get returns the score for a skill, falling back to default priors
// when the skill has never been encountered.
func (g KnowledgeGraph) Get(skillID string, now time.Time) SubSkillScore {
	if s, ok := g[skillID]; ok {
		return s
	}
	return DefaultScore(now)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

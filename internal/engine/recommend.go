package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/brighted/nable/internal/content"
	"github.com/brighted/nable/internal/difficulty"
	"github.com/brighted/nable/internal/placement"
	"github.com/brighted/nable/internal/quality"
	"github.com/brighted/nable/internal/spacedrep"
)

// weakMasteryFloor marks a tracked skill as weak for ranking, and gates
// items behind unmet prerequisites.
const weakMasteryFloor = 0.4

// Recommendation is the outcome of a recommend call. A nil Question
// means the pool emptied; serving fallback content is the caller's
// decision.
type Recommendation struct {
	Question     *content.Item
	RefreshFirst bool
	RefreshQueue []spacedrep.RefreshCandidate
}

// Recommend selects the next item for the learner. Session-start calls
// serve decayed skills first; otherwise the catalogue is filtered for
// quality, exclusions, and prerequisites, then ranked for fit.
func (e *Engine) Recommend(state State, catalogue []content.Item, excludeIDs []string, now time.Time) Recommendation {
	pool := quality.Pool(catalogue)
	seen := state.servedSet(excludeIDs)

	if state.Phase == PhaseColdStart && state.Diagnostic != nil {
		if probe, ok := placement.PickProbe(pool, state.Diagnostic.CurrentLevel(), seen); ok {
			return Recommendation{Question: &probe}
		}
		return Recommendation{}
	}

	var rec Recommendation
	if state.QuestionsAsked == 0 {
		rec.RefreshQueue = spacedrep.RefreshQueue(state.Graph, now, spacedrep.DefaultRefreshLimit)
	}

	ctx := difficulty.RankContext{
		TargetDifficulty: state.LastDifficulty,
		TargetSimilarity: state.LastSimilarity,
		WeakSkills:       state.weakSkills(),
		RecentObjectives: state.RecentTopics,
		PreferType:       difficulty.NextContentType(state.LastErrorConceptual, state.ConsecutiveErrors),
	}

	candidates := state.eligible(pool, seen)

	// A decayed skill at session start preempts everything else.
	for _, cand := range rec.RefreshQueue {
		tagged := itemsForSkill(candidates, cand.SkillID)
		if len(tagged) == 0 {
			continue
		}
		if best, ok := difficulty.BestFit(tagged, ctx); ok {
			rec.Question = &best
			rec.RefreshFirst = true
			e.log.Debug("serving refresh question",
				zap.String("skill", cand.SkillID),
				zap.String("question", best.ID),
				zap.Stringer("urgency", cand.Urgency))
			return rec
		}
	}

	if best, ok := difficulty.BestFit(candidates, ctx); ok {
		rec.Question = &best
	}
	return rec
}

func (s State) servedSet(excludeIDs []string) map[string]bool {
	set := make(map[string]bool, len(s.Seen)+len(excludeIDs))
	for _, id := range s.Seen {
		set[id] = true
	}
	for _, id := range excludeIDs {
		set[id] = true
	}
	return set
}

func (s State) weakSkills() map[string]bool {
	weak := make(map[string]bool)
	for id, score := range s.Graph {
		if score.Mastery < weakMasteryFloor {
			weak[id] = true
		}
	}
	return weak
}

// eligible drops served items and items whose prerequisite skills are
// tracked but still weak. Untracked prerequisites do not block; the
// learner gets the benefit of the doubt until evidence says otherwise.
func (s State) eligible(pool []content.Item, seen map[string]bool) []content.Item {
	out := make([]content.Item, 0, len(pool))
	for _, it := range pool {
		if seen[it.ID] || !s.prerequisitesMet(it) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func (s State) prerequisitesMet(it content.Item) bool {
	for _, prereq := range it.Prerequisites {
		if score, ok := s.Graph[prereq]; ok && score.Mastery < weakMasteryFloor {
			return false
		}
	}
	return true
}

func itemsForSkill(items []content.Item, skillID string) []content.Item {
	var out []content.Item
	for _, it := range items {
		for _, id := range it.SkillIDs {
			if id == skillID {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

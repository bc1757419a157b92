package difficulty

import (
	"math"

	"github.com/brighted/nable/internal/content"
)

const (
	similarityWeight   = 3.0
	weakSkillBonus     = 2.0
	recentTopicPenalty = 5.0
)

// RankContext carries everything the item ranker needs about the
// learner's current state.
type RankContext struct {
	TargetDifficulty float64
	TargetSimilarity float64
	// WeakSkills are skills the learner should see more of; an item
	// tagging one ranks better.
	WeakSkills map[string]bool
	// RecentObjectives are the objectives of the last few served
	// questions, penalised to keep topics rotating.
	RecentObjectives []string
	// PreferType breaks ties between otherwise equally fitting items.
	PreferType content.ContentType
}

// FitScore measures how far an item sits from the learner's target;
// lower is better.
func FitScore(it content.Item, ctx RankContext) float64 {
	score := math.Abs(it.Difficulty - ctx.TargetDifficulty)
	score += similarityWeight * math.Abs(it.DistractorSimilarity-ctx.TargetSimilarity)
	for _, id := range it.SkillIDs {
		if ctx.WeakSkills[id] {
			score -= weakSkillBonus
			break
		}
	}
	for _, obj := range ctx.RecentObjectives {
		if obj == it.ObjectiveID {
			score += recentTopicPenalty
			break
		}
	}
	return score
}

// BestFit returns the candidate with the lowest fit score. Among equal
// scores an item of the preferred content type wins; remaining ties keep
// catalogue order.
func BestFit(items []content.Item, ctx RankContext) (content.Item, bool) {
	var best content.Item
	bestScore := math.Inf(1)
	found := false

	for _, it := range items {
		score := FitScore(it, ctx)
		if score < bestScore {
			best, bestScore, found = it, score, true
			continue
		}
		if score == bestScore && ctx.PreferType != "" &&
			it.Type == ctx.PreferType && best.Type != ctx.PreferType {
			best = it
		}
	}
	return best, found
}

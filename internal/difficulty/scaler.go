// Package difficulty keeps each question inside the learner's zone of
// proximal development: hard enough to stretch, never hard enough to
// overwhelm.
package difficulty

import (
	"github.com/brighted/nable/internal/content"
)

const (
	MinDifficulty = 0.0
	MaxDifficulty = 10.0

	// AdvanceConfidence is the confidence above which the target gets a
	// half-point push; BlockConfidence is the floor below which forward
	// progression is withheld until the learner stabilises.
	AdvanceConfidence = 0.7
	BlockConfidence   = 0.25

	baseOffset      = 0.5
	advanceBonus    = 0.5
	streakBonusMin  = 3
	streakBonusStep = 0.2
	streakBonusCap  = 1.0
)

const (
	MinSimilarity  = 0.3
	MaxSimilarity  = 0.9
	SimilarityStep = 0.05

	similarityRampStreak = 3
	errorBackoffMin      = 2
)

// Target converts a skill estimate into the difficulty to aim for next.
func Target(mastery, confidence float64, streak int) float64 {
	target := mastery*MaxDifficulty + baseOffset
	if confidence > AdvanceConfidence {
		target += advanceBonus
	}
	if streak >= streakBonusMin {
		bonus := float64(streak-streakBonusMin+1) * streakBonusStep
		if bonus > streakBonusCap {
			bonus = streakBonusCap
		}
		target += bonus
	}
	return clampDifficulty(target)
}

// NextSimilarity ratchets the distractor-similarity knob. Sustained
// streaks tighten the distractors every second correct answer; repeated
// errors loosen them in proportion to the error run.
func NextSimilarity(current float64, streak, consecutiveErrors int) float64 {
	if consecutiveErrors >= errorBackoffMin {
		current -= SimilarityStep * float64(consecutiveErrors)
	} else if streak >= similarityRampStreak && streak%2 == 0 {
		current += SimilarityStep
	}
	return clampSimilarity(current)
}

// NextContentType decides the presentation of the next item. A
// conceptual error calls for reteaching, a run of errors for a visual
// scaffold.
func NextContentType(lastErrorConceptual bool, consecutiveErrors int) content.ContentType {
	switch {
	case lastErrorConceptual:
		return content.TypeMicroLesson
	case consecutiveErrors >= errorBackoffMin:
		return content.TypeVisualAided
	default:
		return content.TypeStandard
	}
}

// Blocked reports whether forward progression should pause because the
// mastery estimate has become too unreliable to build on.
func Blocked(confidence float64) bool {
	return confidence < BlockConfidence
}

func clampDifficulty(d float64) float64 {
	if d < MinDifficulty {
		return MinDifficulty
	}
	if d > MaxDifficulty {
		return MaxDifficulty
	}
	return d
}

func clampSimilarity(s float64) float64 {
	if s < MinSimilarity {
		return MinSimilarity
	}
	if s > MaxSimilarity {
		return MaxSimilarity
	}
	return s
}

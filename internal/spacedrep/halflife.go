package spacedrep

import (
	"math"

	"github.com/brighted/nable/internal/mastery"
)

const (
	// RefreshRecallThreshold: below this recall probability a skill
	// needs a refresh question.
	RefreshRecallThreshold = 0.8
	// RefreshDayThreshold: a skill untested this many days needs a
	// refresh regardless of its modeled recall.
	RefreshDayThreshold = 14.0

	// Half-life growth bounds for a correct answer. Harder questions
	// grow the half-life less (the model already expected struggle);
	// a stable learner grows it more.
	MinGrowthFactor = 1.5
	MaxGrowthFactor = 2.5

	// MaxDecayFactor caps the half-life shrink on an incorrect answer.
	MaxDecayFactor = 0.8

	difficultyGrowthWeight = 0.6
	stabilityGrowthWeight  = 0.4
	stabilityDecayWeight   = 0.2
)

// Recall returns the modeled probability of recalling a skill after
// elapsedDays given its current half-life: p = 2^(-Δt/h).
func Recall(elapsedDays, halfLife float64) float64 {
	if halfLife < mastery.MinHalfLifeDays {
		halfLife = mastery.MinHalfLifeDays
	}
	if elapsedDays <= 0 {
		return 1.0
	}
	return math.Pow(2, -elapsedDays/halfLife)
}

// DecayLevel is the complement of recall: 0 right after testing, rising
// toward 1 as the skill fades.
func DecayLevel(elapsedDays, halfLife float64) float64 {
	return 1.0 - Recall(elapsedDays, halfLife)
}

// NeedsRefresh reports whether a skill is due for a refresh question.
func NeedsRefresh(elapsedDays, halfLife float64) bool {
	return elapsedDays > RefreshDayThreshold || Recall(elapsedDays, halfLife) < RefreshRecallThreshold
}

// UpdateHalfLife regresses the half-life after an answer. Correct answers
// multiply by a growth factor in (MinGrowthFactor, MaxGrowthFactor) that
// shrinks with question difficulty and grows with the learner's personal
// stability multiplier. Incorrect answers multiply by a decay factor
// capped at MaxDecayFactor and reduced further by low stability. The
// result is always clamped to [MinHalfLifeDays, MaxHalfLifeDays].
func UpdateHalfLife(halfLife float64, correct bool, difficulty, stability float64) float64 {
	normDiff := difficulty / 10.0
	if normDiff < 0 {
		normDiff = 0
	}
	if normDiff > 1 {
		normDiff = 1
	}

	var factor float64
	if correct {
		factor = MinGrowthFactor +
			(1.0-normDiff)*difficultyGrowthWeight +
			(stability-1.0)*stabilityGrowthWeight
		if factor < MinGrowthFactor {
			factor = MinGrowthFactor
		}
		if factor > MaxGrowthFactor {
			factor = MaxGrowthFactor
		}
	} else {
		factor = 0.6 + stabilityDecayWeight*stability
		if factor > MaxDecayFactor {
			factor = MaxDecayFactor
		}
	}

	h := halfLife * factor
	if h < mastery.MinHalfLifeDays {
		h = mastery.MinHalfLifeDays
	}
	if h > mastery.MaxHalfLifeDays {
		h = mastery.MaxHalfLifeDays
	}
	return h
}

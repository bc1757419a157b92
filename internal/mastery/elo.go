package mastery

import "math"

const (
	// KFactor scales the ELO-style rating update. Deltas land in
	// roughly [-0.32, +0.32] before the upset term.
	KFactor = 32.0

	// LogisticSteepness controls how sharply the expected score reacts
	// to the mastery/difficulty gap.
	LogisticSteepness = 5.0

	// UpsetWeight scales the symmetric bonus/penalty for beating a
	// harder question or failing an easier one.
	UpsetWeight = 0.1

	// Confidence adjustments per outcome versus the a-priori expectation.
	confidenceMatched  = 0.05
	confidenceBeat     = 0.08
	confidenceFailSure = -0.10
)

// ExpectedScore is the ELO-style logistic probability of a correct answer
// given current mastery and the question's normalized difficulty (0-1).
func ExpectedScore(masteryLevel, normalizedDifficulty float64) float64 {
	return 1.0 / (1.0 + math.Exp(-LogisticSteepness*(masteryLevel-normalizedDifficulty)))
}

// MasteryDelta computes the signed mastery change for one answer event.
// actual is the fluency value when correct and 0 when incorrect. The upset
// term adds credit for beating a question above current mastery and debits
// for failing one below it.
func MasteryDelta(masteryLevel, normalizedDifficulty float64, correct bool, fluency float64) float64 {
	actual := 0.0
	if correct {
		actual = fluency
	}
	expected := ExpectedScore(masteryLevel, normalizedDifficulty)
	delta := KFactor * (actual - expected) / 100.0

	if correct && normalizedDifficulty > masteryLevel {
		delta += UpsetWeight * (normalizedDifficulty - masteryLevel)
	}
	if !correct && normalizedDifficulty < masteryLevel {
		delta += UpsetWeight * (normalizedDifficulty - masteryLevel)
	}
	return delta
}

// ConfidenceDelta moves confidence toward consistency: small gain when the
// outcome matched expectation, a larger gain for beating it, and a drop
// for failing a question the learner was expected to pass.
func ConfidenceDelta(masteryLevel, normalizedDifficulty float64, correct bool) float64 {
	expectPass := masteryLevel >= normalizedDifficulty
	switch {
	case correct && !expectPass:
		return confidenceBeat
	case !correct && expectPass:
		return confidenceFailSure
	default:
		return confidenceMatched
	}
}

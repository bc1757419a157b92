package mastery

const (
	// CorrectnessWeight and SpeedWeight blend accuracy and pace into the
	// fluency score for one answer event.
	CorrectnessWeight = 0.7
	SpeedWeight       = 0.3

	// TooFastRatio marks the guess floor: answers faster than this
	// fraction of the expected time score a flat guess penalty.
	TooFastRatio = 0.2
	// TooSlowRatio marks the struggle ceiling as a multiple of the
	// expected time.
	TooSlowRatio = 2.0

	guessSpeedFactor  = 0.6
	rampFloorFactor   = 0.8
	overCeilingFactor = 0.4
	slowDecayFloor    = 0.5
)

// SpeedFactor scores response pace against the item's expected time.
// Piecewise: flat guess penalty below the too-fast floor, a ramp from 0.8
// to 1.0 up to the expected time, a decay from 1.0 to 0.5 up to the
// too-slow ceiling, and a flat 0.4 beyond it.
func SpeedFactor(timeToAnswerSecs, expectedSecs float64) float64 {
	if expectedSecs <= 0 {
		return rampFloorFactor // no timing data, neutral-low
	}

	tooFast := TooFastRatio * expectedSecs
	tooSlow := TooSlowRatio * expectedSecs

	switch {
	case timeToAnswerSecs < tooFast:
		return guessSpeedFactor
	case timeToAnswerSecs <= expectedSecs:
		frac := (timeToAnswerSecs - tooFast) / (expectedSecs - tooFast)
		return rampFloorFactor + frac*(1.0-rampFloorFactor)
	case timeToAnswerSecs <= tooSlow:
		frac := (timeToAnswerSecs - expectedSecs) / (tooSlow - expectedSecs)
		return 1.0 - frac*(1.0-slowDecayFloor)
	default:
		return overCeilingFactor
	}
}

// Fluency blends correctness and speed for a single answer event.
func Fluency(correct bool, timeToAnswerSecs, expectedSecs float64) float64 {
	correctness := 0.0
	if correct {
		correctness = 1.0
	}
	speed := SpeedFactor(timeToAnswerSecs, expectedSecs)
	return clamp(CorrectnessWeight*correctness+SpeedWeight*speed, 0, 1)
}

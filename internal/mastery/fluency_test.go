package mastery

import "testing"

func TestSpeedFactor_GuessFloor(t *testing.T) {
	// Expected 20s, answered in 2s -> below the 4s too-fast floor.
	got := SpeedFactor(2, 20)
	if got != 0.6 {
		t.Errorf("SpeedFactor() = %f, want 0.6", got)
	}
}

func TestSpeedFactor_AtExpectedTime(t *testing.T) {
	got := SpeedFactor(20, 20)
	if got < 0.999 || got > 1.001 {
		t.Errorf("SpeedFactor() = %f, want 1.0", got)
	}
}

func TestSpeedFactor_RampStart(t *testing.T) {
	// Just past the too-fast floor the ramp starts at 0.8.
	got := SpeedFactor(4, 20)
	if got < 0.799 || got > 0.801 {
		t.Errorf("SpeedFactor() = %f, want 0.8", got)
	}
}

func TestSpeedFactor_SlowDecay(t *testing.T) {
	// At the too-slow ceiling (2x expected) the decay bottoms at 0.5.
	got := SpeedFactor(40, 20)
	if got < 0.499 || got > 0.501 {
		t.Errorf("SpeedFactor() = %f, want 0.5", got)
	}
}

func TestSpeedFactor_BeyondCeiling(t *testing.T) {
	got := SpeedFactor(90, 20)
	if got != 0.4 {
		t.Errorf("SpeedFactor() = %f, want 0.4", got)
	}
}

func TestFluency_CorrectAtExpectedTime(t *testing.T) {
	got := Fluency(true, 20, 20)
	if got < 0.999 || got > 1.001 {
		t.Errorf("Fluency() = %f, want 1.0", got)
	}
}

func TestFluency_IncorrectCapped(t *testing.T) {
	// 0.7*0 + 0.3*speed: an incorrect answer never exceeds 0.3.
	got := Fluency(false, 20, 20)
	if got < 0.299 || got > 0.301 {
		t.Errorf("Fluency() = %f, want 0.3", got)
	}
}

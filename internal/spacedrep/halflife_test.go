package spacedrep

import (
	"testing"

	"github.com/brighted/nable/internal/mastery"
)

func TestRecall_OneHalfLifeElapsed(t *testing.T) {
	// h=1 day, Δt=1 day: p = 2^(-1) = 0.5 exactly.
	got := Recall(1, 1)
	if got != 0.5 {
		t.Errorf("Recall(1, 1) = %f, want 0.5", got)
	}
}

func TestRecall_NoTimeElapsed(t *testing.T) {
	if got := Recall(0, 7); got != 1.0 {
		t.Errorf("Recall(0, 7) = %f, want 1.0", got)
	}
	if got := DecayLevel(0, 7); got != 0.0 {
		t.Errorf("DecayLevel(0, 7) = %f, want 0.0", got)
	}
}

func TestNeedsRefresh_RecallBelowThreshold(t *testing.T) {
	// h=7, Δt=3: p = 2^(-3/7) ≈ 0.743 < 0.8.
	if !NeedsRefresh(3, 7) {
		t.Error("expected refresh needed below recall threshold")
	}
}

func TestNeedsRefresh_DayThresholdAlone(t *testing.T) {
	// Long half-life keeps recall high, but the day threshold still trips.
	if !NeedsRefresh(15, 365) {
		t.Error("expected refresh needed past the day threshold")
	}
}

func TestNeedsRefresh_FreshSkill(t *testing.T) {
	if NeedsRefresh(1, 30) {
		t.Error("fresh skill should not need refresh")
	}
}

func TestUpdateHalfLife_GrowthShrinksWithDifficulty(t *testing.T) {
	easy := UpdateHalfLife(10, true, 2, 1.0)
	hard := UpdateHalfLife(10, true, 9, 1.0)
	if easy <= hard {
		t.Errorf("easy growth %f should exceed hard growth %f", easy, hard)
	}
	if easy/10 < MinGrowthFactor || easy/10 > MaxGrowthFactor {
		t.Errorf("growth factor %f outside (%.1f, %.1f)", easy/10, MinGrowthFactor, MaxGrowthFactor)
	}
}

func TestUpdateHalfLife_StabilityGrowsGrowth(t *testing.T) {
	stable := UpdateHalfLife(10, true, 5, 1.4)
	shaky := UpdateHalfLife(10, true, 5, 0.6)
	if stable <= shaky {
		t.Errorf("stable growth %f should exceed shaky growth %f", stable, shaky)
	}
}

func TestUpdateHalfLife_IncorrectCapped(t *testing.T) {
	got := UpdateHalfLife(10, false, 5, 1.5)
	if got > 10*MaxDecayFactor+1e-9 {
		t.Errorf("decay factor exceeded cap: %f", got/10)
	}
	low := UpdateHalfLife(10, false, 5, 0.5)
	if low >= got {
		t.Errorf("low stability should shrink harder: %f >= %f", low, got)
	}
}

func TestUpdateHalfLife_ClampedToBounds(t *testing.T) {
	h := 1.0
	for i := 0; i < 50; i++ {
		h = UpdateHalfLife(h, true, 1, 1.5)
	}
	if h != mastery.MaxHalfLifeDays {
		t.Errorf("half-life = %f, want ceiling %f", h, mastery.MaxHalfLifeDays)
	}

	h = 365.0
	for i := 0; i < 100; i++ {
		h = UpdateHalfLife(h, false, 9, 0.5)
	}
	if h != mastery.MinHalfLifeDays {
		t.Errorf("half-life = %f, want floor %f", h, mastery.MinHalfLifeDays)
	}
}

package engine

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestPriorsCache_FetchesOnceWithinTTL(t *testing.T) {
	now := evalNow
	fetches := 0
	cache := NewPriorsCache(func() (map[string]float64, error) {
		fetches++
		return map[string]float64{"pob.markets": 0.55}, nil
	}, 10*time.Minute, func() time.Time { return now })

	for i := 0; i < 5; i++ {
		p, ok := cache.Prior("pob.markets")
		if !ok || p != 0.55 {
			t.Fatalf("prior = %f, %v; want 0.55, true", p, ok)
		}
	}
	if fetches != 1 {
		t.Errorf("fetches = %d, want 1 within the TTL", fetches)
	}
}

func TestPriorsCache_RefreshesAfterTTL(t *testing.T) {
	now := evalNow
	fetches := 0
	cache := NewPriorsCache(func() (map[string]float64, error) {
		fetches++
		return map[string]float64{"pob.markets": float64(fetches)}, nil
	}, 10*time.Minute, func() time.Time { return now })

	cache.Prior("pob.markets")
	now = now.Add(11 * time.Minute)
	p, _ := cache.Prior("pob.markets")
	if fetches != 2 || p != 2 {
		t.Errorf("after TTL: fetches=%d prior=%f, want a second fetch", fetches, p)
	}
}

func TestPriorsCache_KeepsStaleSnapshotOnFetchError(t *testing.T) {
	now := evalNow
	healthy := true
	cache := NewPriorsCache(func() (map[string]float64, error) {
		if !healthy {
			return nil, errors.New("store unavailable")
		}
		return map[string]float64{"pob.markets": 0.55}, nil
	}, 10*time.Minute, func() time.Time { return now })

	cache.Prior("pob.markets")
	healthy = false
	now = now.Add(11 * time.Minute)

	p, ok := cache.Prior("pob.markets")
	if !ok || p != 0.55 {
		t.Errorf("stale prior = %f, %v; want the previous snapshot", p, ok)
	}
}

func TestPriorsCache_AbsentCacheReportsNoPrior(t *testing.T) {
	var cache *PriorsCache
	if _, ok := cache.Prior("pob.markets"); ok {
		t.Error("nil cache reported a prior")
	}
}

func TestPriorsCache_MeanSeedsDiagnostic(t *testing.T) {
	cache := NewPriorsCache(func() (map[string]float64, error) {
		return map[string]float64{"pob.markets": 0.6, "pob.cash-flow": 0.8}, nil
	}, 0, func() time.Time { return evalNow })

	mean, ok := cache.Mean()
	if !ok || math.Abs(mean-0.7) > 1e-9 {
		t.Fatalf("mean prior = %f, %v; want 0.7, true", mean, ok)
	}

	eng := New(Config{Priors: cache})
	s := eng.NewSession("newcomer", nil, evalNow)
	if s.Diagnostic == nil || s.Diagnostic.CurrentLevel() != 7 {
		t.Errorf("diagnostic start level = %v, want 7 from the platform prior", s.Diagnostic.CurrentLevel())
	}
}

func TestPriorsCache_UnknownSkillFallsThrough(t *testing.T) {
	cache := NewPriorsCache(func() (map[string]float64, error) {
		return map[string]float64{}, nil
	}, 0, func() time.Time { return evalNow })
	if _, ok := cache.Prior("pob.unknown"); ok {
		t.Error("unknown skill reported a prior")
	}
}

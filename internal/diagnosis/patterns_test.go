package diagnosis

import "testing"

func TestAnalyzeErrorPatterns_Empty(t *testing.T) {
	a := AnalyzeErrorPatterns(nil)
	if a.Trend != TrendStable || a.RecommendRemediation {
		t.Errorf("got %+v, want stable with no remediation", a)
	}
}

func TestAnalyzeErrorPatterns_RemediationGate(t *testing.T) {
	// 3 of 5 conceptual: rate 0.6 >= 0.5 and count >= 2.
	a := AnalyzeErrorPatterns([]string{"conceptual", "careless", "conceptual", "conceptual", "careless"})
	if !a.RecommendRemediation {
		t.Error("expected remediation recommendation")
	}
	if a.ConceptualCount != 3 || a.CarelessCount != 2 {
		t.Errorf("counts = (%d, %d), want (3, 2)", a.ConceptualCount, a.CarelessCount)
	}
}

func TestAnalyzeErrorPatterns_SingleConceptualNotEnough(t *testing.T) {
	// Rate 0.5 but only one conceptual error: below the count gate.
	a := AnalyzeErrorPatterns([]string{"conceptual", "careless"})
	if a.RecommendRemediation {
		t.Error("one conceptual error should not trigger remediation")
	}
}

func TestAnalyzeErrorPatterns_ImprovingTrend(t *testing.T) {
	// Older errors all conceptual, recent five all careless.
	history := []string{
		"conceptual", "conceptual", "conceptual", "conceptual",
		"careless", "careless", "careless", "careless", "careless",
	}
	a := AnalyzeErrorPatterns(history)
	if a.Trend != TrendImproving {
		t.Errorf("Trend = %q, want improving", a.Trend)
	}
}

func TestAnalyzeErrorPatterns_DecliningTrend(t *testing.T) {
	history := []string{
		"careless", "careless", "careless", "careless",
		"conceptual", "conceptual", "conceptual", "conceptual", "conceptual",
	}
	a := AnalyzeErrorPatterns(history)
	if a.Trend != TrendDeclining {
		t.Errorf("Trend = %q, want declining", a.Trend)
	}
}

func TestAnalyzeErrorPatterns_ShortHistoryIsStable(t *testing.T) {
	a := AnalyzeErrorPatterns([]string{"conceptual", "careless", "conceptual"})
	if a.Trend != TrendStable {
		t.Errorf("Trend = %q, want stable for short history", a.Trend)
	}
}

package diagnosis

// Trend describes the direction of recent error quality.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

const (
	// remediationConceptualRate gates the remediation recommendation.
	remediationConceptualRate = 0.5
	// remediationMinConceptual is the minimum conceptual error count.
	remediationMinConceptual = 2

	trendWindow = 5
	trendMargin = 0.2
)

// PatternAnalysis summarizes a skill's trailing error history.
type PatternAnalysis struct {
	ConceptualCount int
	CarelessCount   int
	ConceptualRate  float64
	CarelessRate    float64
	Trend           Trend
	// RecommendRemediation is set when conceptual errors dominate the
	// window: the learner misunderstands, more drilling won't fix it.
	RecommendRemediation bool
}

// AnalyzeErrorPatterns computes rates, trend and the remediation flag over
// a trailing error-label window (oldest first, as stored on SubSkillScore).
func AnalyzeErrorPatterns(history []string) PatternAnalysis {
	var a PatternAnalysis
	if len(history) == 0 {
		a.Trend = TrendStable
		return a
	}

	for _, label := range history {
		switch ErrorType(label) {
		case ErrorConceptual:
			a.ConceptualCount++
		case ErrorCareless:
			a.CarelessCount++
		}
	}

	total := float64(len(history))
	a.ConceptualRate = float64(a.ConceptualCount) / total
	a.CarelessRate = float64(a.CarelessCount) / total
	a.Trend = errorTrend(history)
	a.RecommendRemediation = a.ConceptualRate >= remediationConceptualRate &&
		a.ConceptualCount >= remediationMinConceptual

	return a
}

// errorTrend compares the conceptual rate of the last trendWindow errors
// against the rest of the history. Fewer recent conceptual errors means
// the learner is improving.
func errorTrend(history []string) Trend {
	if len(history) <= trendWindow {
		return TrendStable
	}

	split := len(history) - trendWindow
	older, recent := history[:split], history[split:]

	recentRate := conceptualRate(recent)
	olderRate := conceptualRate(older)

	switch {
	case recentRate < olderRate-trendMargin:
		return TrendImproving
	case recentRate > olderRate+trendMargin:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func conceptualRate(labels []string) float64 {
	if len(labels) == 0 {
		return 0
	}
	count := 0
	for _, l := range labels {
		if ErrorType(l) == ErrorConceptual {
			count++
		}
	}
	return float64(count) / float64(len(labels))
}

// Package quality watches population-level item behavior and pulls
// broken catalogue items out of circulation before they poison mastery
// estimates.
package quality

import (
	"strings"

	"github.com/brighted/nable/internal/content"
)

// FlagReason labels why an item attracted a quality flag.
type FlagReason string

const (
	ReasonSlowAnswer FlagReason = "slow-answer"
	ReasonLowSuccess FlagReason = "low-success-rate"
)

const (
	// An answer taking longer than this multiple of the item's expected
	// time flags the item, not the learner.
	SlowMultiple = 3.0

	// SuccessFloor is the population success rate below which an
	// already-flagged item is flagged again.
	SuccessFloor = 0.3

	// ArchiveFlagThreshold retires an item outright; SoftExcludeFlags
	// sidelines it while better alternatives exist.
	ArchiveFlagThreshold = 5
	SoftExcludeFlags     = 3

	// minAttemptsForRate keeps a handful of unlucky first answers from
	// condemning a new item.
	minAttemptsForRate = 10
)

// Reading-time model for items without an authored expected time.
const (
	baseThinkSecs   = 5.0
	wordsPerSec     = 3.0
	minExpectedSecs = 10.0
)

// ExpectedTime returns the item's authored expected answer time, or a
// dynamic estimate from its text length when none was authored.
func ExpectedTime(it content.Item) float64 {
	if it.ExpectedTimeSecs > 0 {
		return it.ExpectedTimeSecs
	}
	return DynamicExpectedTime(it.Text, it.Options)
}

// DynamicExpectedTime estimates answer time from how much the learner
// has to read.
func DynamicExpectedTime(text string, options []string) float64 {
	words := len(strings.Fields(text))
	for _, opt := range options {
		words += len(strings.Fields(opt))
	}
	secs := baseThinkSecs + float64(words)/wordsPerSec
	if secs < minExpectedSecs {
		secs = minExpectedSecs
	}
	return secs
}

// CheckAnswer inspects one answer event for an item-quality signal.
func CheckAnswer(it content.Item, timeToAnswerSecs float64) (FlagReason, bool) {
	if timeToAnswerSecs > SlowMultiple*ExpectedTime(it) {
		return ReasonSlowAnswer, true
	}
	return "", false
}

// CheckPopulation inspects an item's aggregate counters. A low success
// rate alone can mean a hard question; combined with existing flags it
// means a broken one.
func CheckPopulation(it content.Item) (FlagReason, bool) {
	if it.Attempts < minAttemptsForRate || it.FlagCount == 0 {
		return "", false
	}
	if rate, ok := it.SuccessRate(); ok && rate < SuccessFloor {
		return ReasonLowSuccess, true
	}
	return "", false
}

// ShouldArchive reports whether an item's flag count has reached the
// retirement threshold.
func ShouldArchive(flagCount int) bool {
	return flagCount >= ArchiveFlagThreshold
}

// Pool filters the catalogue for selection. Archived items never appear;
// heavily flagged items are sidelined unless nothing else remains.
func Pool(items []content.Item) []content.Item {
	var clean, flagged []content.Item
	for _, it := range items {
		switch {
		case it.Archived:
		case it.FlagCount >= SoftExcludeFlags:
			flagged = append(flagged, it)
		default:
			clean = append(clean, it)
		}
	}
	if len(clean) == 0 {
		return flagged
	}
	return clean
}

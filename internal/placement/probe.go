package placement

import (
	"math"

	"github.com/brighted/nable/internal/content"
)

// PickProbe selects the unseen catalogue item whose difficulty is
// closest to the requested probe level. Archived items and micro-lessons
// are never probes; ties prefer verified items, then catalogue order.
func PickProbe(items []content.Item, level int, seen map[string]bool) (content.Item, bool) {
	var best content.Item
	bestGap := math.Inf(1)
	found := false

	for _, it := range items {
		if it.Archived || it.Type == content.TypeMicroLesson || seen[it.ID] {
			continue
		}
		gap := math.Abs(it.Difficulty - float64(level))
		if gap < bestGap || (gap == bestGap && it.Verified && !best.Verified) {
			best = it
			bestGap = gap
			found = true
		}
	}
	return best, found
}

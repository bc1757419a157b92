package diagnosis

import "strings"

const (
	// SimilarityThreshold is the minimum text similarity for a wrong
	// choice to count as conceptually related to the correct one.
	SimilarityThreshold = 0.35

	// SimilarityGapThreshold: a selected option this much closer to the
	// correct answer than the average distractor signals targeted (not
	// random) confusion.
	SimilarityGapThreshold = 0.15

	substringScore = 0.5
	jaccardWeight  = 0.4
	prefixBonusMax = 0.2
	prefixMinRunes = 4
)

// Similarity scores how close two option texts are, in [0,1]. Exact match
// scores 1; otherwise substring containment, word-level Jaccard overlap
// and a common-prefix bonus combine additively.
func Similarity(a, b string) float64 {
	a = strings.Join(strings.Fields(strings.ToLower(a)), " ")
	b = strings.Join(strings.Fields(strings.ToLower(b)), " ")
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	score := 0.0
	if strings.Contains(a, b) || strings.Contains(b, a) {
		score += substringScore
	}
	score += jaccardWeight * jaccard(a, b)
	score += prefixBonus(a, b)

	if score > 1 {
		return 1
	}
	return score
}

// jaccard computes word-level set overlap: |A∩B| / |A∪B|.
func jaccard(a, b string) float64 {
	wa := wordSet(a)
	wb := wordSet(b)
	if len(wa) == 0 || len(wb) == 0 {
		return 0
	}

	inter := 0
	for w := range wa {
		if wb[w] {
			inter++
		}
	}
	union := len(wa) + len(wb) - inter
	return float64(inter) / float64(union)
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		w = strings.Trim(w, ".,;:!?()[]\"'")
		if w != "" {
			set[w] = true
		}
	}
	return set
}

// prefixBonus rewards a shared leading run of at least prefixMinRunes
// characters, scaled by how much of the shorter string it covers.
func prefixBonus(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	n := len(ra)
	if len(rb) < n {
		n = len(rb)
	}
	if n == 0 {
		return 0
	}

	common := 0
	for i := 0; i < n; i++ {
		if ra[i] != rb[i] {
			break
		}
		common++
	}
	if common < prefixMinRunes {
		return 0
	}
	return prefixBonusMax * float64(common) / float64(n)
}

// gapToDistractors returns selected-vs-correct similarity minus the mean
// similarity of the remaining distractors to the correct option. Degenerate
// (empty) options are skipped.
func gapToDistractors(in *ClassifyInput) (selectedSim, gap float64, ok bool) {
	correct := in.correctText()
	selectedSim = Similarity(in.selectedText(), correct)

	sum := 0.0
	count := 0
	for i, opt := range in.Options {
		if i == in.SelectedIndex || i == in.CorrectIndex || strings.TrimSpace(opt) == "" {
			continue
		}
		sum += Similarity(opt, correct)
		count++
	}
	if count == 0 {
		return selectedSim, 0, false
	}
	return selectedSim, selectedSim - sum/float64(count), true
}

package match

// DefaultMinSimilarity is the similarity a candidate needs before Closest
// offers it as a suggestion.
const DefaultMinSimilarity = 0.6

// Closest returns the candidate most similar to name after normalization.
// Ties keep the earlier candidate. ok is false when no candidate reaches
// minSimilarity.
func Closest(name string, candidates []string, minSimilarity float64) (best string, ok bool) {
	norm := NormalizeIdent(name)
	bestScore := minSimilarity

	for _, c := range candidates {
		score := Similarity(norm, NormalizeIdent(c))
		if score > bestScore || (score == bestScore && !ok) {
			best, bestScore, ok = c, score, true
		}
	}

	return best, ok
}

package match

// MinSuggestScore is the similarity a candidate needs to be suggested.
const MinSuggestScore = 0.6

// Suggest returns the candidate most similar to name, if any scores at least
// MinSuggestScore. Ties go to the earlier candidate. An exact match is never
// suggested since it is not a correction.
func Suggest(name string, candidates []string) (string, bool) {
	best, bestScore := "", 0.0

	for _, c := range candidates {
		if c == name {
			continue
		}

		if score := Similarity(name, c); score >= MinSuggestScore && score > bestScore {
			best, bestScore = c, score
		}
	}

	return best, best != ""
}

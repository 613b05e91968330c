package utils

// ArgMax returns the index of the largest score, preferring the later index
// on ties. It returns -1 for an empty slice.
func ArgMax[T any](items []T, score func(T) float64) int {
	best := -1
	var bestScore float64
	for i, item := range items {
		s := score(item)
		if best == -1 || s >= bestScore {
			best = i
			bestScore = s
		}
	}
	return best
}

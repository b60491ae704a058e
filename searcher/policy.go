package searcher

import "math"

// selectBest returns the index of the first strictly maximal value. If every
// value is -Inf (every action loses) the first action is kept.
func selectBest(values []float64) int {
	bestIndex := 0
	bestValue := math.Inf(-1)
	for i, v := range values {
		if v > bestValue {
			bestValue = v
			bestIndex = i
		}
	}
	return bestIndex
}

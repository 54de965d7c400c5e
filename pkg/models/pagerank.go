package models

import "math"

// RankMap associates each page with its estimated pagerank value.
// The values of a valid RankMap sum to 1.0 within floating-point tolerance.
type RankMap map[string]float64

// Distribution associates each page with the weight with which the random
// surfer visits it next, starting from a fixed page. The weights are
// relative: consumers divide by their total when drawing from them.
type Distribution map[string]float64

// Distance() computes the L1 distance between two maps who are supposed to
// have the same keys. If map1 is nil or empty, it returns 0.0
func Distance(map1, map2 RankMap) float64 {
	distance := 0.0
	for key := range map1 {
		distance += math.Abs(map1[key] - map2[key])
	}
	return distance
}

package store

import "math"

// round normalizes a monetary amount to cents. Every arithmetic step that
// produces money goes through this so repeated recomputation cannot
// accumulate float drift.
func round(v float64) float64 {
	return math.Round(v*100) / 100
}

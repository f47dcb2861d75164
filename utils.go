package gauss

import (
	"math/rand"
)

// uniform returns a value in [0, max) from src, or from the global
// source when src is nil.
func uniform(src *rand.Rand, max float64) float64 {
	if src == nil {
		return rand.Float64() * max
	}
	return src.Float64() * max
}

/*
Clamp constrains n to the closed interval [lower, upper]. Degenerate
bounds with upper <= lower always yield upper; the bounds are never
swapped.
*/
func Clamp(n, lower, upper float64) float64 {
	if upper <= lower {
		return upper
	}
	if n < lower {
		return lower
	}
	if n > upper {
		return upper
	}
	return n
}

/*
Mean returns the arithmetic mean of values, accumulated in order.
An empty slice yields 0.
*/
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Package utils contains small shared helpers for the rest of the module.
package utils

import (
	"math"
)

// Square is faster than math.Pow(x, 2).
func Square(n float64) float64 {
	return n * n
}

// Float64AlmostEqual compares two float64s within the given epsilon.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

// Float64sAlmostEqual compares two float64 slices elementwise within the given
// epsilon. Slices of different lengths are never equal.
func Float64sAlmostEqual(a, b []float64, epsilon float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Float64AlmostEqual(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}

// Softplus computes ln(1+e^x) in a numerically stable way. The naive form
// overflows for large positive x and loses precision for large negative x;
// this formulation is exact in both tails and always strictly positive.
func Softplus(x float64) float64 {
	return math.Max(x, 0) + math.Log1p(math.Exp(-math.Abs(x)))
}

// Clamp returns x bounded to [min, max].
func Clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

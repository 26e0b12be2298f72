package dirichlet

import "math"

// ShannonEntropy returns the base-2 entropy of p in bits, treating
// 0*log2(0) as 0. Entries are used as given; p is not renormalized.
func ShannonEntropy(p []float64) float64 {
	h := 0.0
	for _, v := range p {
		if v > 0 {
			h -= v * math.Log2(v)
		}
	}
	return h
}

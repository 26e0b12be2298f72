package dirichlet

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// FuseEvidence sums the per-view evidence rows of one sample into the
// parameters of the fused Dirichlet, adding one prior count per class:
// alpha = sum over views of evidence + 1.
func FuseEvidence(evidence *mat.Dense) ([]float64, error) {
	if evidence == nil {
		return nil, errors.New("evidence matrix is nil")
	}
	rows, cols := evidence.Dims()
	if rows == 0 || cols == 0 {
		return nil, errors.New("evidence matrix is empty")
	}
	alpha := make([]float64, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := evidence.At(i, j)
			if v < 0 || math.IsNaN(v) {
				return nil, errors.Errorf("evidence for view %d class %d must be nonnegative, got %v", i, j, v)
			}
			alpha[j] += v
		}
	}
	for j := range alpha {
		alpha[j]++
	}
	return alpha, nil
}

// Strength returns the total Dirichlet strength, the sum of the parameters.
func Strength(alpha []float64) float64 {
	return floats.Sum(alpha)
}

// Mean returns the expected class probabilities alpha/S of the Dirichlet
// with the given parameters.
func Mean(alpha []float64) ([]float64, error) {
	if len(alpha) == 0 {
		return nil, errors.New("no Dirichlet parameters")
	}
	for j, a := range alpha {
		if a <= 0 || math.IsNaN(a) {
			return nil, errors.Errorf("parameter %d must be positive, got %v", j, a)
		}
	}
	s := Strength(alpha)
	mean := make([]float64, len(alpha))
	for j, a := range alpha {
		mean[j] = a / s
	}
	return mean, nil
}

// FusedOpinion forms the opinion of the fused Dirichlet from its parameters:
// each belief is (alpha-1)/S and the uncertainty is K/S. Every parameter
// must be at least 1, as produced by FuseEvidence.
func FusedOpinion(alpha []float64) (Opinion, error) {
	if len(alpha) == 0 {
		return Opinion{}, errors.New("no Dirichlet parameters")
	}
	for j, a := range alpha {
		if a < 1 || math.IsNaN(a) {
			return Opinion{}, errors.Errorf("parameter %d must be at least 1, got %v", j, a)
		}
	}
	s := Strength(alpha)
	belief := make([]float64, len(alpha))
	for j, a := range alpha {
		belief[j] = (a - 1) / s
	}
	return Opinion{Belief: belief, Uncertainty: float64(len(alpha)) / s}, nil
}

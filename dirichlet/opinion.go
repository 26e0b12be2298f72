package dirichlet

import (
	"math"

	"github.com/pkg/errors"
)

// Opinion is the subjective-logic reading of an evidence vector: per-class
// belief masses plus the leftover uncertainty mass. Belief and Uncertainty
// always sum to 1.
type Opinion struct {
	Belief      []float64
	Uncertainty float64
}

// OpinionFromEvidence forms the opinion for a single view's evidence vector.
// With K classes and strength S = sum(evidence) + K, each belief is
// evidence/S and the uncertainty is K/S.
func OpinionFromEvidence(ev []float64) (Opinion, error) {
	if len(ev) == 0 {
		return Opinion{}, errors.New("evidence vector is empty")
	}
	s := float64(len(ev))
	for j, e := range ev {
		if e < 0 || math.IsNaN(e) {
			return Opinion{}, errors.Errorf("evidence for class %d must be nonnegative, got %v", j, e)
		}
		s += e
	}
	belief := make([]float64, len(ev))
	for j, e := range ev {
		belief[j] = e / s
	}
	return Opinion{Belief: belief, Uncertainty: float64(len(ev)) / s}, nil
}

// ProjectedProbability folds the opinion's uncertainty mass back into its
// beliefs, granting each class the share named by the prior:
// p = belief + prior*uncertainty. A prior summing to 1 yields a probability
// vector.
func (o Opinion) ProjectedProbability(prior []float64) ([]float64, error) {
	if len(prior) != len(o.Belief) {
		return nil, errors.Errorf("prior has length %d, expected %d", len(prior), len(o.Belief))
	}
	p := make([]float64, len(o.Belief))
	for j, b := range o.Belief {
		p[j] = b + prior[j]*o.Uncertainty
	}
	return p, nil
}

// UniformPrior returns the prior that spreads uncertainty mass evenly over
// classes, or nil if classes is less than 1.
func UniformPrior(classes int) []float64 {
	if classes < 1 {
		return nil
	}
	prior := make([]float64, classes)
	for j := range prior {
		prior[j] = 1 / float64(classes)
	}
	return prior
}

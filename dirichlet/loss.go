// Package dirichlet turns stacked per-view evidence into Dirichlet opinions
// and scores it with accuracy and cross-view consistency losses.
package dirichlet

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/viam-labs/tmdlo/utils"
)

// Loss scores the stacked per-view evidence of a single sample, one view per
// row, against its label. Lower is better. Losses are safe for concurrent
// use.
type Loss func(evidence *mat.Dense, label int) (float64, error)

// NewAccuracyLoss returns the loss that scores the fused Dirichlet against
// the ground truth: the squared error between the one-hot label and the
// fused class probabilities, plus the variance of those probabilities. It
// accepts evidence from any number of views.
func NewAccuracyLoss(classes int) (Loss, error) {
	if classes < 1 {
		return nil, errors.Errorf("expected at least 1 class, got %d", classes)
	}
	return func(evidence *mat.Dense, label int) (float64, error) {
		if label < 0 || label >= classes {
			return 0, errors.Errorf("label %d out of range for %d classes", label, classes)
		}
		alpha, err := FuseEvidence(evidence)
		if err != nil {
			return 0, err
		}
		if len(alpha) != classes {
			return 0, errors.Errorf("expected evidence for %d classes, got %d", classes, len(alpha))
		}
		s := Strength(alpha)
		loss := 0.0
		for j, a := range alpha {
			p := a / s
			y := 0.0
			if j == label {
				y = 1
			}
			loss += utils.Square(y-p) + p*(1-p)/(s+1)
		}
		return loss, nil
	}, nil
}

// NewConsistencyLoss returns the loss that penalizes disagreement between
// views. Every ordered pair of distinct views contributes the entropy of
// their averaged projected probabilities minus the average of their
// individual entropies, and each view's pair total is divided by views-1.
// The prior sets the share of uncertainty mass granted to each class when
// projecting, and the label argument is ignored.
func NewConsistencyLoss(prior []float64, views int) (Loss, error) {
	if views < 2 {
		return nil, errors.Errorf("consistency needs at least 2 views, got %d", views)
	}
	if len(prior) == 0 {
		return nil, errors.New("prior must not be empty")
	}
	mass := 0.0
	for j, a := range prior {
		if a < 0 || math.IsNaN(a) {
			return nil, errors.Errorf("prior[%d] must be nonnegative, got %v", j, a)
		}
		mass += a
	}
	if mass <= 0 {
		return nil, errors.New("prior must have positive mass")
	}
	a := append([]float64{}, prior...)
	classes := len(a)
	return func(evidence *mat.Dense, _ int) (float64, error) {
		if evidence == nil {
			return 0, errors.New("evidence matrix is nil")
		}
		rows, cols := evidence.Dims()
		if rows != views {
			return 0, errors.Errorf("expected evidence from %d views, got %d", views, rows)
		}
		if cols != classes {
			return 0, errors.Errorf("expected evidence for %d classes, got %d", classes, cols)
		}
		probs := make([][]float64, views)
		entropies := make([]float64, views)
		for v := 0; v < views; v++ {
			op, err := OpinionFromEvidence(evidence.RawRowView(v))
			if err != nil {
				return 0, errors.Wrapf(err, "view %d", v)
			}
			p, err := op.ProjectedProbability(a)
			if err != nil {
				return 0, errors.Wrapf(err, "view %d", v)
			}
			probs[v] = p
			entropies[v] = ShannonEntropy(p)
		}
		loss := 0.0
		avg := make([]float64, classes)
		for m := 0; m < views; m++ {
			pairSum := 0.0
			for v := 0; v < views; v++ {
				if m == v {
					continue
				}
				for j := range avg {
					avg[j] = (probs[m][j] + probs[v][j]) / 2
				}
				pairSum += ShannonEntropy(avg) - entropies[m]/2 - entropies[v]/2
			}
			loss += pairSum / float64(views-1)
		}
		return loss, nil
	}, nil
}

// Combine returns the loss acc + lambdaCon*con. Both losses see the same
// evidence and label.
func Combine(acc, con Loss, lambdaCon float64) (Loss, error) {
	if acc == nil || con == nil {
		return nil, errors.New("both losses are required")
	}
	if lambdaCon < 0 || math.IsNaN(lambdaCon) {
		return nil, errors.Errorf("lambdaCon must be nonnegative, got %v", lambdaCon)
	}
	return func(evidence *mat.Dense, label int) (float64, error) {
		accVal, err := acc(evidence, label)
		if err != nil {
			return 0, err
		}
		conVal, err := con(evidence, label)
		if err != nil {
			return 0, err
		}
		return accVal + lambdaCon*conVal, nil
	}, nil
}

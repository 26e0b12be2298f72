package multiview

import (
	"gonum.org/v1/gonum/floats"

	"github.com/viam-labs/tmdlo/dirichlet"
)

// Prediction is the fused read of a single sample: aggregate class
// probabilities, the winning class, the fused opinion's uncertainty mass,
// and the total Dirichlet strength behind the call.
type Prediction struct {
	Probabilities []float64
	Class         int
	Uncertainty   float64
	Strength      float64
}

// Predict fuses the views' evidence for one sample into a prediction. Ties
// between classes resolve to the lowest class index.
func (m *Model) Predict(x [][]float64) (*Prediction, error) {
	ev, err := m.Infer(x)
	if err != nil {
		return nil, err
	}
	alpha, err := dirichlet.FuseEvidence(ev)
	if err != nil {
		return nil, err
	}
	probs, err := dirichlet.Mean(alpha)
	if err != nil {
		return nil, err
	}
	op, err := dirichlet.FusedOpinion(alpha)
	if err != nil {
		return nil, err
	}
	return &Prediction{
		Probabilities: probs,
		Class:         floats.MaxIdx(probs),
		Uncertainty:   op.Uncertainty,
		Strength:      dirichlet.Strength(alpha),
	}, nil
}

package multiview

import (
	"context"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// Evaluation summarizes model behavior over a labeled sample set.
type Evaluation struct {
	Samples         int
	Correct         int
	Accuracy        float64
	MeanLoss        float64
	MedianLoss      float64
	StdDevLoss      float64
	MinLoss         float64
	MaxLoss         float64
	MeanUncertainty float64
	Losses          []float64
}

// Evaluate predicts and scores every sample, aggregating accuracy, loss
// statistics, and the average fused uncertainty. Losses are computed in
// parallel the way ForwardBatch does.
func (m *Model) Evaluate(ctx context.Context, xs [][][]float64, labels []int) (*Evaluation, error) {
	if len(xs) != len(labels) {
		return nil, errors.Errorf("got %d samples but %d labels", len(xs), len(labels))
	}
	if len(xs) == 0 {
		return nil, errors.New("no samples to evaluate")
	}
	losses, err := m.ForwardBatch(ctx, xs, labels)
	if err != nil {
		return nil, err
	}

	correct := 0
	uncertaintySum := 0.0
	for i, x := range xs {
		pred, err := m.Predict(x)
		if err != nil {
			return nil, errors.Wrapf(err, "predicting sample %d", i)
		}
		if pred.Class == labels[i] {
			correct++
		}
		uncertaintySum += pred.Uncertainty
	}

	meanLoss, err := stats.Mean(losses)
	if err != nil {
		return nil, err
	}
	medianLoss, err := stats.Median(losses)
	if err != nil {
		return nil, err
	}
	stdDevLoss, err := stats.StandardDeviation(losses)
	if err != nil {
		return nil, err
	}
	minLoss, err := stats.Min(losses)
	if err != nil {
		return nil, err
	}
	maxLoss, err := stats.Max(losses)
	if err != nil {
		return nil, err
	}

	n := len(xs)
	return &Evaluation{
		Samples:         n,
		Correct:         correct,
		Accuracy:        float64(correct) / float64(n),
		MeanLoss:        meanLoss,
		MedianLoss:      medianLoss,
		StdDevLoss:      stdDevLoss,
		MinLoss:         minLoss,
		MaxLoss:         maxLoss,
		MeanUncertainty: uncertaintySum / float64(n),
		Losses:          losses,
	}, nil
}

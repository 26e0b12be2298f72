package evidence

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Stack packs per-view evidence vectors as the rows of a dense matrix. Every
// vector must have the same length.
func Stack(vectors [][]float64) (*mat.Dense, error) {
	if len(vectors) == 0 {
		return nil, errors.New("no evidence vectors to stack")
	}
	cols := len(vectors[0])
	if cols == 0 {
		return nil, errors.New("evidence vectors must not be empty")
	}
	out := mat.NewDense(len(vectors), cols, nil)
	for i, v := range vectors {
		if len(v) != cols {
			return nil, errors.Errorf("evidence vector %d has length %d, expected %d", i, len(v), cols)
		}
		out.SetRow(i, v)
	}
	return out, nil
}

// StackEncoded runs each encoder on its view's features and stacks the
// resulting evidence, one row per view. x must supply one feature vector per
// encoder, in the same order.
func StackEncoded(encoders []Encoder, x [][]float64) (*mat.Dense, error) {
	if len(encoders) == 0 {
		return nil, errors.New("no encoders to run")
	}
	if len(x) != len(encoders) {
		return nil, errors.Errorf("expected %d feature vectors, got %d", len(encoders), len(x))
	}
	vectors := make([][]float64, 0, len(encoders))
	for i, enc := range encoders {
		ev, err := enc.Evidence(x[i])
		if err != nil {
			return nil, errors.Wrapf(err, "encoding view %q", enc.Name())
		}
		vectors = append(vectors, ev)
	}
	return Stack(vectors)
}

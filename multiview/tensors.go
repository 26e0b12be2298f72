package multiview

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/viam-labs/tmdlo/dirichlet"
	"github.com/viam-labs/tmdlo/ml"
)

const (
	evidenceTensorName      = "evidence"
	probabilitiesTensorName = "probabilities"
	uncertaintyTensorName   = "uncertainty"
)

// InferTensors runs one sample through the model at the tensor boundary.
// The input map must hold one numeric tensor per view, keyed by encoder
// name, each flattening to that view's feature vector. The output map holds
// "evidence" (views x classes), "probabilities" (classes), and
// "uncertainty" (1).
func (m *Model) InferTensors(ctx context.Context, tensors ml.Tensors) (ml.Tensors, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	x := make([][]float64, len(m.encoders))
	for v, enc := range m.encoders {
		in, ok := tensors[enc.Name()]
		if !ok {
			return nil, errors.Errorf("no tensor named %q among input tensors [%s]",
				enc.Name(), strings.Join(ml.TensorNames(tensors), ", "))
		}
		data, err := ml.ToFloat64Slice(in.Data())
		if err != nil {
			return nil, errors.Wrapf(err, "reading tensor %q", enc.Name())
		}
		x[v] = data
	}

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

	rows, cols := ev.Dims()
	flat := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		flat = append(flat, ev.RawRowView(i)...)
	}
	return ml.Tensors{
		evidenceTensorName:      tensor.New(tensor.WithShape(rows, cols), tensor.WithBacking(flat)),
		probabilitiesTensorName: tensor.New(tensor.WithShape(len(probs)), tensor.WithBacking(probs)),
		uncertaintyTensorName:   tensor.New(tensor.WithShape(1), tensor.WithBacking([]float64{op.Uncertainty})),
	}, nil
}

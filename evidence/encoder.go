// Package evidence maps raw per-view features to nonnegative class evidence.
//
// An encoder is a chain of affine layers ending in a softplus, so its outputs
// can be read as evidence counts for a Dirichlet distribution over classes.
package evidence

import (
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/viam-labs/tmdlo/utils"
)

// Encoder maps a feature vector for one view into a nonnegative evidence
// vector with one entry per class.
type Encoder interface {
	// Name returns the name of the view this encoder serves.
	Name() string

	// InputDim returns the feature dimension the encoder accepts.
	InputDim() int

	// Classes returns the number of classes the encoder produces evidence for.
	Classes() int

	// Evidence computes the nonnegative evidence vector for x.
	Evidence(x []float64) ([]float64, error)
}

// LinearEncoder is a chain of affine layers with a terminal softplus. There
// are no nonlinearities between the affine layers.
type LinearEncoder struct {
	name    string
	weights []*mat.Dense
	biases  []*mat.VecDense
	classes int
}

// NewLinearEncoder creates an encoder whose affine layers step through dims,
// with a final layer from the last of dims to classes. Weights are drawn from
// the Glorot uniform distribution and biases start at zero. A nil src falls
// back to a fixed seed so the default initialization is reproducible.
func NewLinearEncoder(name string, dims []int, classes int, src rand.Source) (*LinearEncoder, error) {
	if len(dims) == 0 {
		return nil, errors.New("dims must name at least the input dimension")
	}
	for i, d := range dims {
		if d <= 0 {
			return nil, errors.Errorf("dims[%d] must be positive, got %d", i, d)
		}
	}
	if classes < 1 {
		return nil, errors.Errorf("expected at least 1 class, got %d", classes)
	}
	if src == nil {
		src = rand.NewPCG(defaultSeed, defaultSeed)
	}
	widths := make([]int, 0, len(dims)+1)
	widths = append(widths, dims...)
	widths = append(widths, classes)
	weights := make([]*mat.Dense, 0, len(widths)-1)
	biases := make([]*mat.VecDense, 0, len(widths)-1)
	for i := 0; i+1 < len(widths); i++ {
		w, b := newGlorotLayer(widths[i], widths[i+1], src)
		weights = append(weights, w)
		biases = append(biases, b)
	}
	return &LinearEncoder{name, weights, biases, classes}, nil
}

// NewLinearEncoderFromParameters creates an encoder from explicit layer
// parameters, e.g. weights trained elsewhere. weights[i] must be shaped
// outputs x inputs with biases[i] of length outputs, each layer's inputs
// matching the previous layer's outputs, and the final layer's outputs equal
// to classes. The parameters are copied.
func NewLinearEncoderFromParameters(name string, weights []*mat.Dense, biases []*mat.VecDense, classes int) (*LinearEncoder, error) {
	if classes < 1 {
		return nil, errors.Errorf("expected at least 1 class, got %d", classes)
	}
	if err := validateLayers(weights, biases); err != nil {
		return nil, err
	}
	lastRows, _ := weights[len(weights)-1].Dims()
	if lastRows != classes {
		return nil, errors.Errorf("final layer produces %d outputs, expected %d classes", lastRows, classes)
	}
	return &LinearEncoder{name, copyWeights(weights), copyBiases(biases), classes}, nil
}

func validateLayers(weights []*mat.Dense, biases []*mat.VecDense) error {
	if len(weights) == 0 {
		return errors.New("at least one affine layer is required")
	}
	if len(weights) != len(biases) {
		return errors.Errorf("got %d weight matrices but %d bias vectors", len(weights), len(biases))
	}
	for i, w := range weights {
		if w == nil || biases[i] == nil {
			return errors.Errorf("layer %d has nil parameters", i)
		}
		rows, cols := w.Dims()
		if biases[i].Len() != rows {
			return errors.Errorf("layer %d bias length %d does not match its %d outputs", i, biases[i].Len(), rows)
		}
		if i > 0 {
			prevRows, _ := weights[i-1].Dims()
			if cols != prevRows {
				return errors.Errorf("layer %d expects %d inputs but layer %d produces %d outputs", i, cols, i-1, prevRows)
			}
		}
	}
	return nil
}

func copyWeights(weights []*mat.Dense) []*mat.Dense {
	out := make([]*mat.Dense, 0, len(weights))
	for _, w := range weights {
		out = append(out, mat.DenseCopyOf(w))
	}
	return out
}

func copyBiases(biases []*mat.VecDense) []*mat.VecDense {
	out := make([]*mat.VecDense, 0, len(biases))
	for _, b := range biases {
		out = append(out, mat.VecDenseCopyOf(b))
	}
	return out
}

// Name returns the name of the view this encoder serves.
func (le *LinearEncoder) Name() string {
	return le.name
}

// InputDim returns the feature dimension the encoder accepts.
func (le *LinearEncoder) InputDim() int {
	_, cols := le.weights[0].Dims()
	return cols
}

// Classes returns the number of classes the encoder produces evidence for.
func (le *LinearEncoder) Classes() int {
	return le.classes
}

// Evidence runs x through the affine chain and applies softplus to the final
// activations, so every returned entry is positive.
func (le *LinearEncoder) Evidence(x []float64) ([]float64, error) {
	if len(x) != le.InputDim() {
		return nil, errors.Errorf("expected input of length %d, got %d", le.InputDim(), len(x))
	}
	h := mat.NewVecDense(len(x), append([]float64{}, x...))
	for i, w := range le.weights {
		rows, _ := w.Dims()
		next := mat.NewVecDense(rows, nil)
		next.MulVec(w, h)
		next.AddVec(next, le.biases[i])
		h = next
	}
	out := make([]float64, h.Len())
	for i := range out {
		out[i] = utils.Softplus(h.AtVec(i))
	}
	return out, nil
}

// Parameters returns copies of the encoder's weight matrices and bias vectors.
func (le *LinearEncoder) Parameters() ([]*mat.Dense, []*mat.VecDense) {
	return copyWeights(le.weights), copyBiases(le.biases)
}

// SetParameters replaces the encoder's parameters. The new layers must have
// exactly the shapes of the existing ones. The parameters are copied.
func (le *LinearEncoder) SetParameters(weights []*mat.Dense, biases []*mat.VecDense) error {
	if len(weights) != len(le.weights) || len(biases) != len(le.biases) {
		return errors.Errorf("expected %d layers, got %d weight matrices and %d bias vectors",
			len(le.weights), len(weights), len(biases))
	}
	for i, w := range weights {
		if w == nil || biases[i] == nil {
			return errors.Errorf("layer %d has nil parameters", i)
		}
		rows, cols := w.Dims()
		wantRows, wantCols := le.weights[i].Dims()
		if rows != wantRows || cols != wantCols {
			return errors.Errorf("layer %d is %dx%d, expected %dx%d", i, rows, cols, wantRows, wantCols)
		}
		if biases[i].Len() != rows {
			return errors.Errorf("layer %d bias length %d does not match its %d outputs", i, biases[i].Len(), rows)
		}
	}
	le.weights = copyWeights(weights)
	le.biases = copyBiases(biases)
	return nil
}

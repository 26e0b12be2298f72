// Package multiview fuses per-view Dirichlet evidence into trusted
// predictions and scores it with accuracy and cross-view consistency losses.
package multiview

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/viam-labs/tmdlo/dirichlet"
	"github.com/viam-labs/tmdlo/evidence"
	"github.com/viam-labs/tmdlo/logging"
	"github.com/viam-labs/tmdlo/utils"
)

// initSeed seeds the per-view encoder initialization in New. Each view mixes
// its index into the stream so views start distinct but reproducible.
const initSeed uint64 = 1

// Model owns one evidence encoder per view and scores their stacked
// evidence with the combined accuracy and consistency loss. Forward passes
// only read encoder parameters, so a built Model is safe for concurrent use;
// callers swapping parameters mid-flight must serialize that themselves.
type Model struct {
	conf     Config
	encoders []evidence.Encoder
	loss     dirichlet.Loss
	prior    []float64
	logger   logging.Logger
}

// New builds a model from the config: one linear encoder per view sized by
// classifier_dims, a uniform prior over classes, and the combined loss
// weighted by lambda_con. Encoder initialization is deterministic; load
// trained weights through the encoders' SetParameters. A nil logger is
// replaced with a blank one.
func New(conf *Config, logger logging.Logger) (*Model, error) {
	if conf == nil {
		return nil, errors.New("could not find config")
	}
	if err := conf.Validate(""); err != nil {
		return nil, err
	}
	encoders := make([]evidence.Encoder, 0, conf.Views)
	for v, dims := range conf.ClassifierDims {
		enc, err := evidence.NewLinearEncoder(
			fmt.Sprintf("view%d", v), dims, conf.Classes, rand.NewPCG(initSeed, uint64(v)))
		if err != nil {
			return nil, errors.Wrapf(err, "building encoder for view %d", v)
		}
		encoders = append(encoders, enc)
	}
	return newModel(conf, encoders, logger)
}

// NewFromEncoders builds a model around existing encoders, one per view in
// order. Every encoder must produce evidence for the config's classes,
// accept the feature dimension its classifier_dims entry starts with, and
// carry a unique name.
func NewFromEncoders(conf *Config, encoders []evidence.Encoder, logger logging.Logger) (*Model, error) {
	if conf == nil {
		return nil, errors.New("could not find config")
	}
	if err := conf.Validate(""); err != nil {
		return nil, err
	}
	if len(encoders) != conf.Views {
		return nil, errors.Errorf("expected %d encoders, got %d", conf.Views, len(encoders))
	}
	seen := make(map[string]struct{}, len(encoders))
	for v, enc := range encoders {
		if enc == nil {
			return nil, errors.Errorf("encoder for view %d is nil", v)
		}
		if enc.Classes() != conf.Classes {
			return nil, errors.Errorf("encoder %q produces evidence for %d classes, expected %d",
				enc.Name(), enc.Classes(), conf.Classes)
		}
		if enc.InputDim() != conf.ClassifierDims[v][0] {
			return nil, errors.Errorf("encoder %q accepts %d features, classifier_dims[%d] starts with %d",
				enc.Name(), enc.InputDim(), v, conf.ClassifierDims[v][0])
		}
		if _, ok := seen[enc.Name()]; ok {
			return nil, errors.Errorf("duplicate encoder name %q", enc.Name())
		}
		seen[enc.Name()] = struct{}{}
	}
	return newModel(conf, encoders, logger)
}

func newModel(conf *Config, encoders []evidence.Encoder, logger logging.Logger) (*Model, error) {
	if logger == nil {
		logger = logging.NewBlankLogger("multiview")
	}
	prior := dirichlet.UniformPrior(conf.Classes)
	acc, err := dirichlet.NewAccuracyLoss(conf.Classes)
	if err != nil {
		return nil, err
	}
	con, err := dirichlet.NewConsistencyLoss(prior, conf.Views)
	if err != nil {
		return nil, err
	}
	loss, err := dirichlet.Combine(acc, con, conf.LambdaCon)
	if err != nil {
		return nil, err
	}
	logger.Debugw("built multiview model",
		"views", conf.Views, "classes", conf.Classes, "lambda_con", conf.LambdaCon)
	return &Model{
		conf:     *conf,
		encoders: encoders,
		loss:     loss,
		prior:    prior,
		logger:   logger,
	}, nil
}

// Config returns a copy of the model's config.
func (m *Model) Config() Config {
	return m.conf
}

// Encoders returns the model's per-view encoders in view order.
func (m *Model) Encoders() []evidence.Encoder {
	out := make([]evidence.Encoder, len(m.encoders))
	copy(out, m.encoders)
	return out
}

// Infer runs every view's encoder on its feature vector and stacks the
// evidence, one row per view.
func (m *Model) Infer(x [][]float64) (*mat.Dense, error) {
	if len(x) != m.conf.Views {
		return nil, errors.Errorf("expected features for %d views, got %d", m.conf.Views, len(x))
	}
	return evidence.StackEncoded(m.encoders, x)
}

// Forward computes the combined loss of a single sample against its label.
func (m *Model) Forward(x [][]float64, label int) (float64, error) {
	ev, err := m.Infer(x)
	if err != nil {
		return 0, err
	}
	return m.loss(ev, label)
}

// Loss scores an already-inferred evidence matrix against a label with the
// model's combined loss.
func (m *Model) Loss(ev *mat.Dense, label int) (float64, error) {
	return m.loss(ev, label)
}

// ForwardBatch computes the combined loss of every sample in parallel,
// returning losses in sample order. It stops early if ctx is cancelled.
func (m *Model) ForwardBatch(ctx context.Context, xs [][][]float64, labels []int) ([]float64, error) {
	if len(xs) != len(labels) {
		return nil, errors.Errorf("got %d samples but %d labels", len(xs), len(labels))
	}
	if len(xs) == 0 {
		return []float64{}, nil
	}
	fs := make([]utils.FloatFunc, 0, len(xs))
	for i := range xs {
		fs = append(fs, func(ctx context.Context) (float64, error) {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			return m.Forward(xs[i], labels[i])
		})
	}
	took, losses, err := utils.GetInParallel(ctx, fs)
	if err != nil {
		return nil, err
	}
	m.logger.Debugw("scored batch", "samples", len(xs), "took", took)
	return losses, nil
}

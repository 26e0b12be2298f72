package evidence

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// defaultSeed seeds encoder initialization when no source is supplied.
const defaultSeed = 1

// newGlorotLayer returns an out x in weight matrix drawn from the Glorot
// uniform distribution on [-sqrt(6/(in+out)), sqrt(6/(in+out))], with a zero
// bias vector of length out.
func newGlorotLayer(in, out int, src rand.Source) (*mat.Dense, *mat.VecDense) {
	limit := math.Sqrt(6.0 / float64(in+out))
	dist := distuv.Uniform{
		Min: -limit,
		Max: limit,
		Src: src,
	}
	data := make([]float64, out*in)
	for i := range data {
		data[i] = dist.Rand()
	}
	return mat.NewDense(out, in, data), mat.NewVecDense(out, nil)
}

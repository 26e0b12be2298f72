package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestSquare(t *testing.T) {
	test.That(t, Square(3), test.ShouldEqual, 9)
	test.That(t, Square(-2.5), test.ShouldEqual, 6.25)
	test.That(t, Square(0), test.ShouldEqual, 0)
}

func TestFloat64AlmostEqual(t *testing.T) {
	test.That(t, Float64AlmostEqual(1.0, 1.0+1e-9, 1e-8), test.ShouldBeTrue)
	test.That(t, Float64AlmostEqual(1.0, 1.1, 1e-8), test.ShouldBeFalse)
	test.That(t, Float64sAlmostEqual([]float64{1, 2}, []float64{1, 2}, 1e-12), test.ShouldBeTrue)
	test.That(t, Float64sAlmostEqual([]float64{1, 2}, []float64{1}, 1e-12), test.ShouldBeFalse)
	test.That(t, Float64sAlmostEqual([]float64{1, 2}, []float64{1, 2.5}, 1e-12), test.ShouldBeFalse)
}

func TestSoftplus(t *testing.T) {
	// softplus(0) = ln(2)
	test.That(t, Softplus(0), test.ShouldAlmostEqual, math.Log(2))
	// matches the naive form where the naive form is stable
	for _, x := range []float64{-5, -1, -0.1, 0.1, 1, 5} {
		test.That(t, Softplus(x), test.ShouldAlmostEqual, math.Log(1+math.Exp(x)), 1e-12)
	}
	// stable and finite in both tails
	test.That(t, math.IsInf(Softplus(1000), 1), test.ShouldBeFalse)
	test.That(t, Softplus(1000), test.ShouldAlmostEqual, 1000)
	test.That(t, Softplus(-1000) > 0, test.ShouldBeTrue)
	test.That(t, math.IsNaN(Softplus(-1000)), test.ShouldBeFalse)
	// strictly positive everywhere
	test.That(t, Softplus(-40) > 0, test.ShouldBeTrue)
	// monotone
	test.That(t, Softplus(2) > Softplus(1), test.ShouldBeTrue)
}

func TestClamp(t *testing.T) {
	test.That(t, Clamp(0.5, 0, 1), test.ShouldEqual, 0.5)
	test.That(t, Clamp(-2, 0, 1), test.ShouldEqual, 0)
	test.That(t, Clamp(7, 0, 1), test.ShouldEqual, 1)
}

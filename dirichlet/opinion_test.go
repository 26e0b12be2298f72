package dirichlet

import (
	"testing"

	"go.viam.com/test"
)

func TestOpinionFromEvidence(t *testing.T) {
	_, err := OpinionFromEvidence(nil)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = OpinionFromEvidence([]float64{1, -2})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "class 1")

	op, err := OpinionFromEvidence([]float64{2, 2})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, op.Belief[0], test.ShouldAlmostEqual, 1.0/3)
	test.That(t, op.Belief[1], test.ShouldAlmostEqual, 1.0/3)
	test.That(t, op.Uncertainty, test.ShouldAlmostEqual, 1.0/3)

	// belief mass and uncertainty always total 1
	op, err = OpinionFromEvidence([]float64{0.5, 3, 0})
	test.That(t, err, test.ShouldBeNil)
	total := op.Uncertainty
	for _, b := range op.Belief {
		total += b
	}
	test.That(t, total, test.ShouldAlmostEqual, 1)

	// zero evidence is pure uncertainty
	op, err = OpinionFromEvidence([]float64{0, 0})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, op.Belief[0], test.ShouldEqual, 0)
	test.That(t, op.Belief[1], test.ShouldEqual, 0)
	test.That(t, op.Uncertainty, test.ShouldAlmostEqual, 1)
}

func TestProjectedProbability(t *testing.T) {
	op, err := OpinionFromEvidence([]float64{0, 0})
	test.That(t, err, test.ShouldBeNil)

	_, err = op.ProjectedProbability([]float64{1})
	test.That(t, err, test.ShouldNotBeNil)

	p, err := op.ProjectedProbability(UniformPrior(2))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p[0], test.ShouldAlmostEqual, 0.5)
	test.That(t, p[1], test.ShouldAlmostEqual, 0.5)

	op, err = OpinionFromEvidence([]float64{4, 0})
	test.That(t, err, test.ShouldBeNil)
	p, err = op.ProjectedProbability(UniformPrior(2))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p[0], test.ShouldAlmostEqual, 5.0/6)
	test.That(t, p[1], test.ShouldAlmostEqual, 1.0/6)
	test.That(t, p[0]+p[1], test.ShouldAlmostEqual, 1)
}

func TestUniformPrior(t *testing.T) {
	test.That(t, UniformPrior(0), test.ShouldBeNil)
	test.That(t, UniformPrior(4), test.ShouldResemble, []float64{0.25, 0.25, 0.25, 0.25})
}

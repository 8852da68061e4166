package space

import (
	"math/rand"
	"testing"

	"go.viam.com/test"
)

func TestNewRealVectorStateSpaceInvalidBounds(t *testing.T) {
	_, err := NewRealVectorStateSpace(2, []Bound{{0, 10}})
	test.That(t, err, test.ShouldEqual, ErrInvalidBounds)

	_, err = NewRealVectorStateSpace(2, []Bound{{0, 10}, {5, 5}})
	test.That(t, err, test.ShouldEqual, ErrInvalidBounds)

	_, err = NewRealVectorStateSpace(2, nil)
	test.That(t, err, test.ShouldEqual, ErrInvalidBounds)

	_, err = NewRealVectorStateSpace(0, nil)
	test.That(t, err, test.ShouldEqual, ErrInvalidBounds)
}

func TestRealVectorDistanceSymmetricAndIdentity(t *testing.T) {
	s, err := NewRealVectorStateSpace(2, []Bound{{0, 10}, {0, 10}})
	test.That(t, err, test.ShouldBeNil)

	a := NewRealVectorState(1, 1)
	b := NewRealVectorState(4, 5)

	test.That(t, s.Distance(a, b), test.ShouldAlmostEqual, s.Distance(b, a))
	test.That(t, s.Distance(a, a), test.ShouldAlmostEqual, 0)
	test.That(t, s.Distance(a, b), test.ShouldAlmostEqual, 5.0)
}

func TestRealVectorInterpolateEndpoints(t *testing.T) {
	s, err := NewRealVectorStateSpace(2, []Bound{{0, 10}, {0, 10}})
	test.That(t, err, test.ShouldBeNil)

	a := NewRealVectorState(1, 1)
	b := NewRealVectorState(9, 9)

	start, err := s.Interpolate(a, b, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, s.EqualStates(start, a), test.ShouldBeTrue)

	end, err := s.Interpolate(a, b, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, s.EqualStates(end, b), test.ShouldBeTrue)

	mid, err := s.Interpolate(a, b, 0.5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, mid.(*RealVectorState).Values[0], test.ShouldAlmostEqual, 5.0)
}

func TestRealVectorInterpolateClampsT(t *testing.T) {
	s, err := NewRealVectorStateSpace(1, []Bound{{0, 10}})
	test.That(t, err, test.ShouldBeNil)

	a := NewRealVectorState(0)
	b := NewRealVectorState(10)

	over, err := s.Interpolate(a, b, 1.5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, over.(*RealVectorState).Values[0], test.ShouldAlmostEqual, 10.0)

	under, err := s.Interpolate(a, b, -1.5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, under.(*RealVectorState).Values[0], test.ShouldAlmostEqual, 0.0)
}

func TestRealVectorEnforceBoundsIdempotentAndClamps(t *testing.T) {
	s, err := NewRealVectorStateSpace(2, []Bound{{0, 10}, {0, 10}})
	test.That(t, err, test.ShouldBeNil)

	out := NewRealVectorState(-5, 15)
	clamped := s.EnforceBounds(out)
	test.That(t, clamped.(*RealVectorState).Values, test.ShouldResemble, []float64{0, 10})

	twice := s.EnforceBounds(clamped)
	test.That(t, twice.(*RealVectorState).Values, test.ShouldResemble, clamped.(*RealVectorState).Values)
}

func TestRealVectorSampleUniformSatisfiesBounds(t *testing.T) {
	s, err := NewRealVectorStateSpace(3, []Bound{{-1, 1}, {0, 10}, {5, 6}})
	test.That(t, err, test.ShouldBeNil)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		sample := s.SampleUniform(rng)
		test.That(t, s.SatisfiesBounds(sample), test.ShouldBeTrue)
		enforced := s.EnforceBounds(sample)
		test.That(t, s.EqualStates(enforced, sample), test.ShouldBeTrue)
	}
}

func TestRealVectorDimensionMismatch(t *testing.T) {
	s, err := NewRealVectorStateSpace(2, []Bound{{0, 1}, {0, 1}})
	test.That(t, err, test.ShouldBeNil)
	bad := NewRealVectorState(1, 2, 3)
	test.That(t, s.SatisfiesBounds(bad), test.ShouldBeFalse)
}

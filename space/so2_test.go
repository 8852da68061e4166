package space

import (
	"math"
	"math/rand"
	"testing"

	"go.viam.com/test"
)

func TestSO2DistanceBoundedByPi(t *testing.T) {
	s := NewSO2StateSpace()
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		a := s.SampleUniform(rng)
		b := s.SampleUniform(rng)
		d := s.Distance(a, b)
		test.That(t, d, test.ShouldBeLessThanOrEqualTo, math.Pi+1e-9)
		test.That(t, d, test.ShouldBeGreaterThanOrEqualTo, 0)
		test.That(t, s.Distance(a, b), test.ShouldAlmostEqual, s.Distance(b, a))
	}
}

func TestSO2WrapAcrossPi(t *testing.T) {
	s := NewSO2StateSpace()
	a := NewSO2State(3.0)
	b := NewSO2State(-3.0)
	// The short way around from 3.0 to -3.0 goes through +-pi, not through 0.
	d := s.Distance(a, b)
	test.That(t, d, test.ShouldBeLessThan, 0.3)

	mid, err := s.Interpolate(a, b, 0.5)
	test.That(t, err, test.ShouldBeNil)
	midAngle := mid.(*SO2State).Angle
	// The midpoint of the short arc through +-pi has |angle| close to pi,
	// not close to 0 (which would be the long way through the origin).
	test.That(t, math.Abs(midAngle), test.ShouldBeGreaterThan, math.Pi-0.3)
}

func TestSO2InterpolateEndpoints(t *testing.T) {
	s := NewSO2StateSpace()
	a := NewSO2State(0.2)
	b := NewSO2State(1.5)

	start, err := s.Interpolate(a, b, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, s.EqualStates(start, a), test.ShouldBeTrue)

	end, err := s.Interpolate(a, b, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, s.EqualStates(end, b), test.ShouldBeTrue)
}

func TestSO2TieBreakAtExactlyPi(t *testing.T) {
	s := NewSO2StateSpace()
	a := NewSO2State(0)
	b := NewSO2State(math.Pi)

	mid, err := s.Interpolate(a, b, 0.5)
	test.That(t, err, test.ShouldBeNil)
	// Counter-clockwise tie-break: halfway from 0 to pi going CCW is +pi/2.
	test.That(t, mid.(*SO2State).Angle, test.ShouldAlmostEqual, math.Pi/2)
}

func TestSO2EnforceBoundsIdempotentAndNormalizes(t *testing.T) {
	s := NewSO2StateSpace()
	raw := &SO2State{Angle: 4 * math.Pi}
	once := s.EnforceBounds(raw)
	test.That(t, once.(*SO2State).Angle, test.ShouldAlmostEqual, 0)

	twice := s.EnforceBounds(once)
	test.That(t, twice.(*SO2State).Angle, test.ShouldAlmostEqual, once.(*SO2State).Angle)
}

func TestSO2SampleUniformInRange(t *testing.T) {
	s := NewSO2StateSpace()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		sample := s.SampleUniform(rng).(*SO2State)
		test.That(t, sample.Angle, test.ShouldBeGreaterThanOrEqualTo, -math.Pi)
		test.That(t, sample.Angle, test.ShouldBeLessThan, math.Pi)
	}
}

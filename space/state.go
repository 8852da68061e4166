// Package space defines the state-space abstraction motion planners search
// over: a State value type and a StateSpace capability set operating on it.
// Planners depend only on these interfaces and must not type-switch on a
// concrete state kind in their hot loops; new state variants (compound
// states, SE2, etc.) can be added without touching the planner package.
package space

import "math/rand"

// State is an element of a configuration space. The interface is
// intentionally narrow: all geometry (distance, interpolation, sampling,
// bounds) lives on the owning StateSpace, not on the state itself, so that
// states remain plain data and spaces remain the single source of truth for
// the space's metric.
type State interface {
	isState()
}

// StateSpace is the capability set a planner operates over: distance,
// interpolation, sampling and bounds enforcement. Implementations must
// satisfy the usual metric axioms (non-negativity, identity, symmetry
// for Distance; continuity and endpoint agreement for Interpolate); the
// triangle inequality is expected of real implementations but is not
// itself enforced by this interface.
type StateSpace interface {
	// Dimension is the number of free parameters of the space.
	Dimension() int

	// Distance is a metric: Distance(a, b) == Distance(b, a) >= 0, and
	// Distance(a, a) == 0.
	Distance(a, b State) float64

	// Interpolate returns the state at parameter t along the geodesic from
	// a (t=0) to b (t=1). t outside [0,1] is a programming error;
	// implementations clamp t into range rather than returning an error.
	Interpolate(a, b State, t float64) (State, error)

	// SampleUniform returns a state drawn uniformly from the space's valid
	// region, using rng as the sole source of randomness.
	SampleUniform(rng *rand.Rand) State

	// EnforceBounds idempotently projects s into the space's valid region
	// (clamping for RealVector, angle-wrapping for SO2).
	EnforceBounds(s State) State

	// SatisfiesBounds reports whether s already lies in the space's valid
	// region.
	SatisfiesBounds(s State) bool

	// EqualStates is an approximate equality test (uses a small internal
	// epsilon), used by planners and tests to compare states without
	// requiring exact floating-point equality.
	EqualStates(a, b State) bool
}

// equalEpsilon is the default tolerance used by EqualStates implementations
// in this package.
const equalEpsilon = 1e-9

package goal

import (
	"math/rand"
	"sync/atomic"

	"github.com/arborplan/planner/space"
)

// FlakySampler wraps a GoalSampleableRegion and fails every Nth call to
// SampleGoal with SamplingError. It exists to exercise the planner's
// transient-vs-persistent sampling failure escalation policy without
// needing a genuinely degenerate region: transient failures are logged
// as iteration skips, while N consecutive failures escalate.
type FlakySampler struct {
	GoalSampleableRegion
	every   int64
	counter int64
}

// NewFlakySampler returns a sampler that fails on every `every`th call
// (every <= 0 disables flaking entirely).
func NewFlakySampler(inner GoalSampleableRegion, every int) *FlakySampler {
	return &FlakySampler{GoalSampleableRegion: inner, every: int64(every)}
}

func (f *FlakySampler) SampleGoal(rng *rand.Rand) (space.State, error) {
	if f.every > 0 {
		n := atomic.AddInt64(&f.counter, 1)
		if n%f.every == 0 {
			return nil, SamplingError
		}
	}
	return f.GoalSampleableRegion.SampleGoal(rng)
}

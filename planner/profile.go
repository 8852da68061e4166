package planner

import "github.com/arborplan/planner/config"

// NewRRTFromProfile builds an RRT tuned from a config.PlannerProfile
// instead of hand-picked parameters.
func NewRRTFromProfile(p *config.PlannerProfile) *RRT {
	r := NewRRT(p.MaxDistance, p.GoalBias)
	r.SetValidityResolution(p.MaxDistance * p.ValidityResolutionFraction)
	return r
}

// NewRRTConnectFromProfile builds an RRTConnect tuned from a
// config.PlannerProfile.
func NewRRTConnectFromProfile(p *config.PlannerProfile) *RRTConnect {
	r := NewRRTConnect(p.MaxDistance, p.GoalBias)
	r.SetValidityResolution(p.MaxDistance * p.ValidityResolutionFraction)
	return r
}

// NewRRTStarFromProfile builds an RRTStar tuned from a
// config.PlannerProfile, using the profile's RRTStarGamma for the
// shrinking-radius near-neighbor search.
func NewRRTStarFromProfile(p *config.PlannerProfile) *RRTStar {
	r := NewRRTStar(p.MaxDistance, p.GoalBias, p.RRTStarGamma)
	r.SetValidityResolution(p.MaxDistance * p.ValidityResolutionFraction)
	return r
}

// NewPRMFromProfile builds a PRM tuned from a config.PlannerProfile, using
// the profile's PRMSamples and PRMConnectionRadius for the roadmap
// build phase.
func NewPRMFromProfile(p *config.PlannerProfile) *PRM {
	r := NewPRM(p.PRMSamples, p.PRMConnectionRadius)
	r.SetValidityResolution(p.PRMConnectionRadius * p.ValidityResolutionFraction)
	return r
}

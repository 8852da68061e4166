// Package config holds tuned planner parameter profiles, embedded as YAML
// and parsed at init time, for callers that want sensible defaults rather
// than hand-picking every algorithm parameter.
package config

import (
	_ "embed"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed profiles.yaml
var profilesYAML []byte

// ErrUnknownProfile is returned by LoadProfile for a name not present in
// profiles.yaml.
var ErrUnknownProfile = errors.New("unknown planner profile")

// PlannerProfile is a named bundle of tuned defaults for the planner
// constructors: steering distance, goal bias, RRT*'s gamma constant, PRM's
// sample count and connection radius, and the fraction of max_distance used
// to derive the validity-check resolution.
type PlannerProfile struct {
	MaxDistance                float64 `yaml:"max_distance"`
	GoalBias                   float64 `yaml:"goal_bias"`
	RRTStarGamma               float64 `yaml:"rrt_star_gamma"`
	PRMSamples                 int     `yaml:"prm_samples"`
	PRMConnectionRadius        float64 `yaml:"prm_connection_radius"`
	ValidityResolutionFraction float64 `yaml:"validity_resolution_fraction"`
}

var profiles map[string]PlannerProfile

func init() {
	if err := yaml.Unmarshal(profilesYAML, &profiles); err != nil {
		panic(errors.Wrap(err, "parsing embedded planner profiles"))
	}
}

// LoadProfile returns the named profile ("fast", "default", "thorough"), or
// ErrUnknownProfile if name isn't defined.
func LoadProfile(name string) (*PlannerProfile, error) {
	p, ok := profiles[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownProfile, "%q", name)
	}
	return &p, nil
}

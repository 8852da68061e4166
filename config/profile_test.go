package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.viam.com/test"
)

func TestLoadProfileDefault(t *testing.T) {
	p, err := LoadProfile("default")
	test.That(t, err, test.ShouldBeNil)

	want := &PlannerProfile{
		MaxDistance:                0.5,
		GoalBias:                   0.05,
		RRTStarGamma:               2.0,
		PRMSamples:                 500,
		PRMConnectionRadius:        1.0,
		ValidityResolutionFraction: 0.1,
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Fatalf("default profile mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadProfileUnknownName(t *testing.T) {
	_, err := LoadProfile("nonexistent")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestLoadProfileFastAndThoroughDiffer(t *testing.T) {
	fast, err := LoadProfile("fast")
	test.That(t, err, test.ShouldBeNil)
	thorough, err := LoadProfile("thorough")
	test.That(t, err, test.ShouldBeNil)

	test.That(t, fast.MaxDistance, test.ShouldBeGreaterThan, thorough.MaxDistance)
	test.That(t, fast.PRMSamples, test.ShouldBeLessThan, thorough.PRMSamples)
}

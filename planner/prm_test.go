package planner

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"go.viam.com/test"

	"github.com/arborplan/planner/goal"
	"github.com/arborplan/planner/space"
)

func TestPRMMultiQueryReusesRoadmap(t *testing.T) {
	ss, err := space.NewRealVectorStateSpace(2, []space.Bound{{Low: 0, High: 10}, {Low: 0, High: 10}})
	test.That(t, err, test.ShouldBeNil)

	vc := wallValidity(5, 2, 8, 0.5)

	queries := []struct {
		start space.State
		goal  *goal.RealVectorBallRegion
	}{
		{space.NewRealVectorState(1, 5), goal.NewRealVectorBallRegion(ss, space.NewRealVectorState(9, 5), 0.5)},
		{space.NewRealVectorState(1, 1), goal.NewRealVectorBallRegion(ss, space.NewRealVectorState(9, 9), 0.5)},
		{space.NewRealVectorState(1, 9), goal.NewRealVectorBallRegion(ss, space.NewRealVectorState(9, 1), 0.5)},
	}

	prm := NewPRM(500, 1.0)
	prm.SetRand(rand.New(rand.NewSource(99)))

	firstProblem, err := NewProblemDefinition(ss, []space.State{queries[0].start}, queries[0].goal)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, prm.Setup(firstProblem, vc), test.ShouldBeNil)

	var roadmapSize int
	for i, q := range queries {
		if i > 0 {
			problem, err := NewProblemDefinition(ss, []space.State{q.start}, q.goal)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, prm.Query(problem, vc), test.ShouldBeNil)
		}

		path, err := prm.Solve(context.Background(), 5*time.Second)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, q.goal.IsSatisfied(path.State(path.Len()-1)), test.ShouldBeTrue)

		for j := 0; j+1 < path.Len(); j++ {
			_, valid := CheckSegment(ss, vc, path.State(j), path.State(j+1), 0.05)
			test.That(t, valid, test.ShouldBeTrue)
		}

		test.That(t, len(prm.states), test.ShouldBeGreaterThan, 0)
		if i == 0 {
			roadmapSize = len(prm.states)
		} else {
			test.That(t, len(prm.states), test.ShouldEqual, roadmapSize)
		}
	}
}

func TestPRMStartAlreadyAtGoal(t *testing.T) {
	ss, err := space.NewRealVectorStateSpace(2, []space.Bound{{Low: 0, High: 10}, {Low: 0, High: 10}})
	test.That(t, err, test.ShouldBeNil)

	start := space.NewRealVectorState(5, 5)
	g := goal.NewRealVectorBallRegion(ss, start, 1.0)
	problem, err := NewProblemDefinition(ss, []space.State{start}, g)
	test.That(t, err, test.ShouldBeNil)

	prm := NewPRM(100, 1.0)
	test.That(t, prm.Setup(problem, alwaysValid), test.ShouldBeNil)

	path, err := prm.Solve(context.Background(), time.Second)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, path.Len(), test.ShouldEqual, 1)
}

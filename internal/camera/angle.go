package camera

import (
	"math"

	"github.com/san-kum/scenecore/internal/dynamo"
)

// AngleTracker eases an angle toward a target along the shortest arc.
// Current and target are left unwrapped so the angle stays continuous
// across many turns.
type AngleTracker struct {
	current float64
	target  float64
}

func NewAngleTracker(theta float64) *AngleTracker {
	return &AngleTracker{current: theta, target: theta}
}

// Request retargets the tracker to theta (any multiple of 2π away counts as
// the same heading) and returns the unwrapped target it will ease toward.
func (a *AngleTracker) Request(theta float64) float64 {
	if math.IsNaN(theta) || math.IsInf(theta, 0) {
		return a.target
	}
	a.target = a.current + dynamo.ShortestAngle(theta-a.current)
	return a.target
}

func (a *AngleTracker) Tick(delta float64) float64 {
	a.current = dynamo.Lerp(a.current, a.target, dynamo.DampFactor(delta))
	return a.current
}

func (a *AngleTracker) Current() float64 { return a.current }
func (a *AngleTracker) Target() float64  { return a.target }

// Residual is |target - current|.
func (a *AngleTracker) Residual() float64 {
	return math.Abs(a.target - a.current)
}

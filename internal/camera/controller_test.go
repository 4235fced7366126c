package camera

import (
	"math"
	"testing"

	"github.com/san-kum/scenecore/internal/dynamo"
)

func TestControllerConverges(t *testing.T) {
	c := NewController(dynamo.Vec3{})
	target := dynamo.V(10, -4, 2)
	c.SetTarget(target)

	prev := c.Residual()
	for i := 0; i < 120; i++ {
		c.Tick(1.0 / 60)
		r := c.Residual()
		if r > prev {
			t.Fatalf("frame %d: residual grew from %v to %v", i, prev, r)
		}
		prev = r
	}
	// Two seconds of damping leaves 0.001^2 of the initial distance.
	want := target.Length() * 1e-6
	if math.Abs(prev-want) > 1e-9 {
		t.Errorf("expected residual %v, got %v", want, prev)
	}
}

func TestControllerFrameRateIndependent(t *testing.T) {
	target := dynamo.V(3, 1, -7)

	fast := NewController(dynamo.Vec3{})
	fast.SetTarget(target)
	for i := 0; i < 120; i++ {
		fast.Tick(1.0 / 120)
	}

	slow := NewController(dynamo.Vec3{})
	slow.SetTarget(target)
	for i := 0; i < 30; i++ {
		slow.Tick(1.0 / 30)
	}

	if d := fast.State().Current.Distance(slow.State().Current); d > 1e-9 {
		t.Errorf("120 fps and 30 fps disagree by %v after one second", d)
	}
}

func TestControllerIgnoresBadInput(t *testing.T) {
	c := NewController(dynamo.V(1, 1, 1))
	c.SetTarget(dynamo.V(5, 5, 5))

	for _, dt := range []float64{0, -1, math.NaN()} {
		if got := c.Tick(dt); got != dynamo.V(1, 1, 1) {
			t.Errorf("delta %v moved the controller to %v", dt, got)
		}
	}

	c.SetTarget(dynamo.V(math.NaN(), 0, 0))
	if c.State().Target != dynamo.V(5, 5, 5) {
		t.Errorf("invalid target accepted: %v", c.State().Target)
	}
}

func TestControllerLargeDeltaSnaps(t *testing.T) {
	c := NewController(dynamo.Vec3{})
	c.SetTarget(dynamo.V(2, 0, 0))
	if got := c.Tick(math.Inf(1)); got != dynamo.V(2, 0, 0) {
		t.Errorf("expected snap to target, got %v", got)
	}
}

package camera

import (
	"math"
	"testing"
)

func TestAngleTrackerShortestArc(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		request  float64
		expected float64
	}{
		{"small forward", 0, 0.5, 0.5},
		{"small backward", 0, -0.5, -0.5},
		{"across seam", 0.1, 2*math.Pi - 0.1, -0.1},
		{"across seam backward", 2*math.Pi - 0.1, 0.1, 2*math.Pi + 0.1},
		{"many turns away", 0, 10*math.Pi + 0.2, 0.2},
		{"unwrapped current", 4 * math.Pi, 0.3, 4*math.Pi + 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAngleTracker(tt.start)
			got := a.Request(tt.request)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("expected target %v, got %v", tt.expected, got)
			}
			if math.Abs(got-tt.start) > math.Pi+1e-12 {
				t.Errorf("target %v is more than π from %v", got, tt.start)
			}
		})
	}
}

func TestAngleTrackerMonotonic(t *testing.T) {
	a := NewAngleTracker(0.2)
	a.Request(2*math.Pi - 0.2)

	prev := a.Current()
	for i := 0; i < 90; i++ {
		cur := a.Tick(1.0 / 60)
		if cur > prev {
			t.Fatalf("frame %d: angle moved the long way (%v -> %v)", i, prev, cur)
		}
		prev = cur
	}
	if math.Abs(prev-(-0.2)) > 0.01 {
		t.Errorf("expected to settle near -0.2, got %v", prev)
	}
}

func TestAngleTrackerIgnoresNaN(t *testing.T) {
	a := NewAngleTracker(1)
	a.Request(2)
	if got := a.Request(math.NaN()); got != 2 {
		t.Errorf("expected target to stay at 2, got %v", got)
	}
	if a.Residual() != 1 {
		t.Errorf("expected residual 1, got %v", a.Residual())
	}
}

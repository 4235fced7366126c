package dynamo

import (
	"math"
	"testing"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b float64
	}{
		{0, 1},
		{-3.5, 7.25},
		{1e6, -1e6},
		{2, 2},
	}

	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, 0); got != tt.a {
			t.Errorf("lerp(%v,%v,0): expected %v, got %v", tt.a, tt.b, tt.a, got)
		}
		if got := Lerp(tt.a, tt.b, 1); math.Abs(got-tt.b) > 1e-9 {
			t.Errorf("lerp(%v,%v,1): expected %v, got %v", tt.a, tt.b, tt.b, got)
		}
		mid := (tt.a + tt.b) / 2
		if got := Lerp(tt.a, tt.b, 0.5); math.Abs(got-mid) > 1e-9 {
			t.Errorf("lerp(%v,%v,0.5): expected %v, got %v", tt.a, tt.b, mid, got)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		expected  float64
	}{
		{"inside", 0.5, 0, 1, 0.5},
		{"below", -2, 0, 1, 0},
		{"above", 9, 0, 1, 1},
		{"degenerate range", 5, 3, 3, 3},
		{"degenerate range below", -5, 3, 3, 3},
		{"swapped bounds", 5, 10, 0, 5},
		{"nan", math.NaN(), -1, 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.v, tt.lo, tt.hi)
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
			lo, hi := math.Min(tt.lo, tt.hi), math.Max(tt.lo, tt.hi)
			if got < lo || got > hi {
				t.Errorf("result %v outside [%v, %v]", got, lo, hi)
			}
		})
	}
}

func TestDampFactor(t *testing.T) {
	if f := DampFactor(0); f != 0 {
		t.Errorf("expected 0 for zero delta, got %v", f)
	}
	if f := DampFactor(-1); f != 0 {
		t.Errorf("expected 0 for negative delta, got %v", f)
	}
	if f := DampFactor(math.NaN()); f != 0 {
		t.Errorf("expected 0 for NaN delta, got %v", f)
	}
	if f := DampFactor(1); math.Abs(f-0.999) > 1e-12 {
		t.Errorf("expected 0.999 after one second, got %v", f)
	}

	// Two half-second frames must leave the same residual as one full second.
	half := 1 - DampFactor(0.5)
	full := 1 - DampFactor(1)
	if math.Abs(half*half-full) > 1e-12 {
		t.Errorf("damping not frame-rate independent: %v vs %v", half*half, full)
	}
}

func TestShortestAngle(t *testing.T) {
	current := []float64{0, 0.1, math.Pi - 0.05, 2*math.Pi - 0.1, -3 * math.Pi, 40}
	requested := []float64{0, 0.2, 2*math.Pi - 0.1, 0.1, math.Pi, -math.Pi, 6.2, 100}

	for _, c := range current {
		for _, r := range requested {
			d := ShortestAngle(r - c)
			if d < -math.Pi || d > math.Pi {
				t.Errorf("delta for %v -> %v out of range: %v", c, r, d)
			}
			// Same direction on the circle.
			if math.Abs(math.Sin(c+d)-math.Sin(r)) > 1e-9 || math.Abs(math.Cos(c+d)-math.Cos(r)) > 1e-9 {
				t.Errorf("delta for %v -> %v does not land on target: %v", c, r, d)
			}
		}
	}

	if d := ShortestAngle(2*math.Pi - 0.1); math.Abs(d+0.1) > 1e-9 {
		t.Errorf("expected -0.1 across the boundary, got %v", d)
	}
	if d := ShortestAngle(math.Inf(1)); d != 0 {
		t.Errorf("expected 0 for Inf, got %v", d)
	}
}

func TestTrigTable(t *testing.T) {
	for x := -10.0; x < 10; x += 0.37 {
		if d := math.Abs(DefaultTrigTable.Sin(x) - math.Sin(x)); d > 1e-5 {
			t.Errorf("sin(%v) error %v", x, d)
		}
		if d := math.Abs(DefaultTrigTable.Cos(x) - math.Cos(x)); d > 1e-5 {
			t.Errorf("cos(%v) error %v", x, d)
		}
	}
}

func TestVec3(t *testing.T) {
	a := V(1, 2, 3)
	b := V(-1, 0, 5)

	if got := a.Add(b); got != V(0, 2, 8) {
		t.Errorf("add: got %v", got)
	}
	if got := a.Sub(b); got != V(2, 2, -2) {
		t.Errorf("sub: got %v", got)
	}
	if got := V(3, 4, 0).Length(); got != 5 {
		t.Errorf("length: expected 5, got %v", got)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("normalize zero: got %v", got)
	}
	if got := a.Lerp(b, 0.5); got != V(0, 1, 4) {
		t.Errorf("lerp: got %v", got)
	}
	r := V(1, 0, 0).RotateY(math.Pi / 2)
	if math.Abs(r.X) > 1e-12 || math.Abs(r.Z+1) > 1e-12 {
		t.Errorf("rotateY: got %v", r)
	}
	if got := V(1, 0, 0).Cross(V(0, 1, 0)); got != V(0, 0, 1) {
		t.Errorf("cross: got %v", got)
	}
	if V(math.NaN(), 0, 0).IsValid() {
		t.Error("NaN vector reported valid")
	}
}

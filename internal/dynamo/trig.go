package dynamo

import "math"

// TrigTable holds precomputed sin/cos samples over one period and
// interpolates linearly between them.
type TrigTable struct {
	sin []float64
	cos []float64
	n   int
}

// DefaultTrigTable has 4096 entries (~0.0015 rad resolution).
var DefaultTrigTable = NewTrigTable(4096)

func NewTrigTable(n int) *TrigTable {
	if n < 2 {
		n = 2
	}
	t := &TrigTable{
		sin: make([]float64, n),
		cos: make([]float64, n),
		n:   n,
	}
	for i := 0; i < n; i++ {
		t.sin[i], t.cos[i] = math.Sincos(float64(i) * 2 * math.Pi / float64(n))
	}
	return t
}

// index maps x onto the table and returns the two neighbouring entries and
// the interpolation fraction between them.
func (t *TrigTable) index(x float64) (i0, i1 int, frac float64) {
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	pos := x * float64(t.n) / (2 * math.Pi)
	i := int(pos)
	frac = pos - float64(i)
	return i % t.n, (i + 1) % t.n, frac
}

func (t *TrigTable) Sin(x float64) float64 {
	i0, i1, f := t.index(x)
	return t.sin[i0]*(1-f) + t.sin[i1]*f
}

func (t *TrigTable) Cos(x float64) float64 {
	i0, i1, f := t.index(x)
	return t.cos[i0]*(1-f) + t.cos[i1]*f
}

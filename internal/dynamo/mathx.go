package dynamo

import "math"

// Damping is the fraction of the remaining distance left after one second of
// exponential smoothing.
const Damping = 0.001

func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi]. Bounds given in the wrong order are swapped.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo || math.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DampFactor returns 1 - Damping^delta, the interpolation fraction for a
// frame of delta seconds. Non-positive or NaN deltas yield 0.
func DampFactor(delta float64) float64 {
	if !(delta > 0) {
		return 0
	}
	if math.IsInf(delta, 1) {
		return 1
	}
	return 1 - math.Pow(Damping, delta)
}

// ShortestAngle wraps an angular difference into [-π, π].
func ShortestAngle(delta float64) float64 {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return 0
	}
	d := math.Mod(delta, 2*math.Pi)
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

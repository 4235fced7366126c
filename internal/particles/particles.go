// Package particles drifts a fixed set of points inside a bounded sphere.
package particles

import (
	"math"
	"math/rand"

	"github.com/san-kum/scenecore/internal/dynamo"
)

const (
	// MaxSpeed bounds each velocity component, per tick.
	MaxSpeed = 0.01
	// Bounce scales an axis that left the bounds.
	Bounce = -0.9

	wobbleRate      = 0.5
	wobblePhaseStep = 0.1
	wobbleAmplitude = 0.002

	// DefaultSeed is used when no random source is supplied.
	DefaultSeed = 42
)

// Set holds particle state as flat xyz triples. Both buffers are sized once
// by New and never reallocated.
type Set struct {
	Positions  []float64
	Velocities []float64

	spread  float64
	elapsed float64
	trig    *dynamo.TrigTable
}

// New scatters count particles uniformly inside a sphere of radius spread
// and gives each a small random velocity. A nil rng uses DefaultSeed.
func New(count int, spread float64, rng *rand.Rand) *Set {
	if count < 0 {
		count = 0
	}
	if !(spread > 0) {
		spread = 0
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(DefaultSeed))
	}

	s := &Set{
		Positions:  make([]float64, 3*count),
		Velocities: make([]float64, 3*count),
		spread:     spread,
		trig:       dynamo.DefaultTrigTable,
	}

	for i := 0; i < count; i++ {
		r := spread * math.Cbrt(rng.Float64())
		theta := math.Acos(2*rng.Float64() - 1)
		phi := 2 * math.Pi * rng.Float64()

		sinT, cosT := math.Sincos(theta)
		sinP, cosP := math.Sincos(phi)
		p := s.Positions[3*i : 3*i+3]
		p[0] = r * sinT * cosP
		p[1] = r * sinT * sinP
		p[2] = r * cosT

		v := s.Velocities[3*i : 3*i+3]
		for k := range v {
			v[k] = (rng.Float64()*2 - 1) * MaxSpeed
		}
	}
	return s
}

func (s *Set) Len() int { return len(s.Positions) / 3 }

func (s *Set) Spread() float64  { return s.spread }
func (s *Set) Elapsed() float64 { return s.elapsed }

func (s *Set) Position(i int) dynamo.Vec3 {
	return dynamo.V(s.Positions[3*i], s.Positions[3*i+1], s.Positions[3*i+2])
}

func (s *Set) Velocity(i int) dynamo.Vec3 {
	return dynamo.V(s.Velocities[3*i], s.Velocities[3*i+1], s.Velocities[3*i+2])
}

// Tick moves every particle by its velocity plus a small vertical wobble
// and bounces axes that left the bounds. Velocities are per tick, so delta
// only advances the wobble clock. Invalid deltas are treated as 0.
func (s *Set) Tick(delta float64) {
	if delta > 0 && !math.IsInf(delta, 1) {
		s.elapsed += delta
	}
	base := s.elapsed * wobbleRate
	for i := 0; i < s.Len(); i++ {
		p := s.Positions[3*i : 3*i+3]
		v := s.Velocities[3*i : 3*i+3]

		p[0] += v[0]
		p[1] += v[1] + s.trig.Sin(base+float64(i)*wobblePhaseStep)*wobbleAmplitude
		p[2] += v[2]

		for k := range p {
			if math.Abs(p[k]) > s.spread {
				p[k] *= Bounce
			}
		}
	}
}

// RMSRadius is the root mean square distance of the particles from the
// origin.
func (s *Set) RMSRadius() float64 {
	n := s.Len()
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range s.Positions {
		sum += x * x
	}
	return math.Sqrt(sum / float64(n))
}

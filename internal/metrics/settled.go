package metrics

import (
	"math"

	"github.com/san-kum/scenecore/internal/sim"
)

// Settled is the fraction of frames on which both the camera and the group
// rotation were within threshold of their targets.
type Settled struct {
	name      string
	threshold float64
	settled   int
	samples   int
}

func NewSettled(threshold float64) *Settled {
	return &Settled{
		name:      "settled",
		threshold: threshold,
	}
}

func (s *Settled) Name() string {
	return s.name
}

func (s *Settled) Observe(f sim.Frame) {
	s.samples++
	if f.Pose.Position.Distance(f.Pose.Target) <= s.threshold &&
		math.Abs(f.Pose.GroupTarget-f.Pose.GroupRotation) <= s.threshold {
		s.settled++
	}
}

func (s *Settled) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return float64(s.settled) / float64(s.samples)
}

func (s *Settled) Reset() {
	s.settled = 0
	s.samples = 0
}

package metrics

import "github.com/san-kum/scenecore/internal/sim"

// ParticleSpread reports the RMS distance of the particles from the origin
// on the latest frame.
type ParticleSpread struct {
	name string
	last float64
}

func NewParticleSpread() *ParticleSpread {
	return &ParticleSpread{name: "particle_spread"}
}

func (p *ParticleSpread) Name() string { return p.name }

func (p *ParticleSpread) Observe(f sim.Frame) {
	if f.Particles == nil {
		p.last = 0
		return
	}
	p.last = f.Particles.RMSRadius()
}

func (p *ParticleSpread) Value() float64 { return p.last }
func (p *ParticleSpread) Reset()         { p.last = 0 }

// Standard returns the metrics the CLI reports for every run.
func Standard() []sim.Metric {
	return []sim.Metric{
		NewCameraResidual(),
		NewRotationResidual(),
		NewParticleSpread(),
		NewSettled(0.01),
	}
}

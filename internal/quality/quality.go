// Package quality maps a performance tier to rendering trade-offs.
package quality

import (
	"math"

	"github.com/san-kum/scenecore/internal/capability"
)

// MaxPixelRatio caps the device pixel ratio on the high tier.
const MaxPixelRatio = 2.0

// Settings is advisory configuration for the rendering backend.
type Settings struct {
	Antialias     bool    `json:"antialias" yaml:"antialias"`
	Shadows       bool    `json:"shadows" yaml:"shadows"`
	ParticleCount int     `json:"particle_count" yaml:"particle_count"`
	MaxFPS        int     `json:"max_fps" yaml:"max_fps"`
	PixelRatio    float64 `json:"pixel_ratio" yaml:"pixel_ratio"`
}

var table = map[capability.Tier]Settings{
	capability.TierHigh:   {Antialias: true, Shadows: true, ParticleCount: 1000, MaxFPS: 60},
	capability.TierMedium: {Antialias: true, Shadows: false, ParticleCount: 500, MaxFPS: 45, PixelRatio: 1},
	capability.TierLow:    {Antialias: false, Shadows: false, ParticleCount: 200, MaxFPS: 30, PixelRatio: 1},
	capability.TierNone:   {Antialias: false, Shadows: false, ParticleCount: 0, MaxFPS: 30, PixelRatio: 1},
}

// Resolve returns the settings row for tier. Values outside the enum use the
// none row. devicePixelRatio only matters on the high tier.
func Resolve(tier capability.Tier, devicePixelRatio float64) Settings {
	s, ok := table[tier]
	if !ok {
		s = table[capability.TierNone]
	}
	if tier == capability.TierHigh {
		s.PixelRatio = highPixelRatio(devicePixelRatio)
	}
	return s
}

// ForReport resolves the settings for a capability report. Unsupported
// devices get the none row regardless of their tier.
func ForReport(r capability.Report, devicePixelRatio float64) Settings {
	if !r.Supported {
		return Resolve(capability.TierNone, devicePixelRatio)
	}
	return Resolve(r.Tier, devicePixelRatio)
}

func highPixelRatio(ratio float64) float64 {
	if !(ratio > 0) || math.IsInf(ratio, 0) {
		return 1
	}
	return math.Min(ratio, MaxPixelRatio)
}

// Package sim wires the scene components into a session and drives it one
// frame at a time.
package sim

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/san-kum/scenecore/internal/camera"
	"github.com/san-kum/scenecore/internal/capability"
	"github.com/san-kum/scenecore/internal/config"
	"github.com/san-kum/scenecore/internal/dynamo"
	"github.com/san-kum/scenecore/internal/layout"
	"github.com/san-kum/scenecore/internal/logging"
	"github.com/san-kum/scenecore/internal/particles"
	"github.com/san-kum/scenecore/internal/quality"
)

// Session owns every per-mount component. Capability and quality are
// resolved once in NewSession and never change afterwards.
type Session struct {
	cfg      *config.Config
	host     capability.Host
	report   capability.Report
	settings quality.Settings

	graph     layout.Graph
	cards     []layout.CardPlacement
	particles *particles.Set
	rig       *camera.Rig

	frame   int
	elapsed float64
}

// NewSession detects, resolves and lays out the scene in that order. A nil
// cfg uses the defaults and a nil host answers from the configured device
// profile.
func NewSession(cfg *config.Config, host capability.Host) *Session {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if host == nil {
		host = capability.NewStaticHost(cfg.GetDevice())
	}
	log := logging.Logger()

	s := &Session{cfg: cfg, host: host}
	s.report = capability.NewDetector(host).Detect()
	s.settings = quality.ForReport(s.report, host.DevicePixelRatio())
	log.Info("capability resolved",
		"tier", s.report.Tier,
		"supported", s.report.Supported,
		"particles", s.settings.ParticleCount,
	)

	s.graph = layout.BuildGraph(Items(cfg.Skills), cfg.Scene.GraphRadius)
	s.cards = layout.Carousel(len(cfg.Projects), cfg.Scene.CarouselRadius)
	s.particles = particles.New(s.settings.ParticleCount, cfg.Scene.ParticleSpread, rand.New(rand.NewSource(cfg.Seed)))
	s.rig = camera.NewRig(camera.DefaultRigConfig())
	s.rig.Arrange(s.cards)
	return s
}

// Items converts configured skills to layout input.
func Items(skills []config.SkillConfig) []layout.Item {
	items := make([]layout.Item, len(skills))
	for i, sk := range skills {
		items[i] = layout.Item{Name: sk.Name, Level: sk.Level, Category: sk.Category}
	}
	return items
}

func (s *Session) Config() *config.Config        { return s.cfg }
func (s *Session) Report() capability.Report     { return s.report }
func (s *Session) Settings() quality.Settings    { return s.settings }
func (s *Session) Graph() layout.Graph           { return s.graph }
func (s *Session) Cards() []layout.CardPlacement { return s.cards }
func (s *Session) Particles() *particles.Set     { return s.particles }
func (s *Session) Rig() *camera.Rig              { return s.rig }
func (s *Session) FrameIndex() int               { return s.frame }
func (s *Session) Elapsed() float64              { return s.elapsed }
func (s *Session) Selected() int                 { return s.rig.Focused() }
func (s *Session) PixelRatio() float64           { return s.host.DevicePixelRatio() }

// Tick advances the camera rig and the particles by delta seconds. The two
// are independent, so their order does not matter. Negative, NaN and
// infinite deltas advance the frame counter but not time.
func (s *Session) Tick(delta float64) Frame {
	if !(delta > 0) || math.IsInf(delta, 1) {
		delta = 0
	}
	s.frame++
	s.elapsed += delta

	pose := s.rig.Tick(delta)
	s.particles.Tick(delta)

	return Frame{
		Index:     s.frame,
		Time:      s.elapsed,
		Pose:      pose,
		Particles: s.particles,
	}
}

// Select focuses card k; k < 0 returns to the overview.
func (s *Session) Select(k int) error {
	if k < 0 {
		s.rig.ClearFocus()
		return nil
	}
	return s.rig.Focus(k)
}

// SetProjects regenerates the carousel for n projects and returns the
// camera to the overview.
func (s *Session) SetProjects(n int) error {
	if n < 0 {
		return fmt.Errorf("sim: project count %d: %w", n, dynamo.ErrParameterBounds)
	}
	s.cards = layout.Carousel(n, s.cfg.Scene.CarouselRadius)
	s.rig.Arrange(s.cards)
	logging.Logger().Debug("carousel regenerated", "cards", n, "spiral", layout.IsSpiral(n))
	return nil
}

// SetSkills regenerates the graph layout.
func (s *Session) SetSkills(skills []config.SkillConfig) {
	s.graph = layout.BuildGraph(Items(skills), s.cfg.Scene.GraphRadius)
}

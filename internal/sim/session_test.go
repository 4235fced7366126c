package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/scenecore/internal/capability"
	"github.com/san-kum/scenecore/internal/config"
	"github.com/san-kum/scenecore/internal/dynamo"
)

func profileConfig(t *testing.T, name string) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Profile = name
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid config for %s: %v", name, err)
	}
	return cfg
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession(nil, nil)

	r := s.Report()
	if !r.Supported || r.Tier != capability.TierHigh {
		t.Fatalf("expected supported high tier, got %+v", r)
	}
	if s.Settings().PixelRatio != 1.25 {
		t.Errorf("expected pixel ratio 1.25, got %v", s.Settings().PixelRatio)
	}
	if s.Particles().Len() != 1000 {
		t.Errorf("expected 1000 particles, got %d", s.Particles().Len())
	}
	if len(s.Graph().Nodes) != 8 {
		t.Errorf("expected 8 nodes, got %d", len(s.Graph().Nodes))
	}
	if len(s.Cards()) != 6 {
		t.Errorf("expected 6 cards, got %d", len(s.Cards()))
	}
	if s.Selected() != -1 {
		t.Errorf("expected overview at start, got selection %d", s.Selected())
	}
}

func TestNewSessionProfiles(t *testing.T) {
	tests := []struct {
		profile   string
		tier      capability.Tier
		particles int
	}{
		{"desktop-rtx", capability.TierHigh, 1000},
		{"office-laptop", capability.TierMedium, 500},
		{"low-memory", capability.TierLow, 200},
		{"budget-android", capability.TierLow, 0},
		{"no-webgl", capability.TierNone, 0},
		{"broken-driver", capability.TierNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			s := NewSession(profileConfig(t, tt.profile), nil)
			if s.Report().Tier != tt.tier {
				t.Errorf("expected tier %v, got %v", tt.tier, s.Report().Tier)
			}
			if s.Particles().Len() != tt.particles {
				t.Errorf("expected %d particles, got %d", tt.particles, s.Particles().Len())
			}
			// Layout does not depend on capability.
			if len(s.Cards()) != 6 || len(s.Graph().Nodes) != 8 {
				t.Error("layout should be generated for every tier")
			}
			f := s.Tick(1.0 / 60)
			if !f.Pose.Position.IsValid() {
				t.Errorf("invalid pose %v", f.Pose.Position)
			}
		})
	}
}

func TestSessionTick(t *testing.T) {
	s := NewSession(nil, nil)

	f := s.Tick(0.5)
	if f.Index != 1 || f.Time != 0.5 {
		t.Errorf("expected frame 1 at 0.5s, got %d at %v", f.Index, f.Time)
	}
	if f.Particles.Len() != 1000 {
		t.Errorf("frame carries %d particles", f.Particles.Len())
	}

	for _, dt := range []float64{-1, math.NaN(), math.Inf(1)} {
		f = s.Tick(dt)
		if f.Time != 0.5 {
			t.Errorf("delta %v advanced time to %v", dt, f.Time)
		}
	}
	if s.FrameIndex() != 4 {
		t.Errorf("expected 4 frames, got %d", s.FrameIndex())
	}
}

func TestSessionSelect(t *testing.T) {
	s := NewSession(nil, nil)

	if err := s.Select(3); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if s.Selected() != 3 {
		t.Errorf("expected selection 3, got %d", s.Selected())
	}
	// Card 3 of 6 is half a turn away.
	if got := s.Rig().Pose().GroupTarget; math.Abs(math.Abs(got)-math.Pi) > 1e-9 {
		t.Errorf("expected group target ±π, got %v", got)
	}

	if err := s.Select(-1); err != nil || s.Selected() != -1 {
		t.Errorf("expected overview, got %d (%v)", s.Selected(), err)
	}

	err := s.Select(6)
	if !errors.Is(err, dynamo.ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds, got %v", err)
	}
}

func TestSessionSetProjects(t *testing.T) {
	s := NewSession(nil, nil)
	s.Select(1)

	if err := s.SetProjects(20); err != nil {
		t.Fatalf("set projects failed: %v", err)
	}
	if len(s.Cards()) != 20 || !s.Rig().Spiral() {
		t.Errorf("expected 20 spiral cards, got %d", len(s.Cards()))
	}
	if s.Selected() != -1 {
		t.Error("regenerating the carousel should clear the selection")
	}

	if err := s.SetProjects(-1); err == nil {
		t.Error("expected error for negative project count")
	}
	if err := s.SetProjects(0); err != nil || len(s.Cards()) != 0 {
		t.Errorf("expected empty carousel, got %d cards (%v)", len(s.Cards()), err)
	}
}

func TestSessionSetSkills(t *testing.T) {
	s := NewSession(nil, nil)
	s.SetSkills([]config.SkillConfig{{Name: "Go", Level: 90, Category: "backend"}})
	if len(s.Graph().Nodes) != 1 || len(s.Graph().Edges) != 0 {
		t.Errorf("unexpected graph %+v", s.Graph())
	}
}

func TestItems(t *testing.T) {
	items := Items([]config.SkillConfig{{Name: "Redis", Level: 55, Category: "database"}})
	if len(items) != 1 || items[0].Name != "Redis" || items[0].Level != 55 || items[0].Category != "database" {
		t.Errorf("unexpected items %+v", items)
	}
}

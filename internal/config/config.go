package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultProfile        = "desktop-rtx"
	DefaultGraphRadius    = 3.0
	DefaultCarouselRadius = 6.0
	DefaultParticleSpread = 15.0
	DefaultFrames         = 240
	DefaultDt             = 1.0 / 60.0
	DefaultSeed           = 42
)

type Config struct {
	Profile  string        `yaml:"profile"`
	Device   DeviceProfile `yaml:"device"`
	Scene    SceneConfig   `yaml:"scene"`
	Skills   []SkillConfig `yaml:"skills"`
	Projects []string      `yaml:"projects"`
	Run      RunConfig     `yaml:"run"`
	Script   []ScriptEvent `yaml:"script"`
	Seed     int64         `yaml:"seed"`
}

// DeviceProfile describes the host primitives the capability detector
// probes. A non-empty ContextError makes context creation raise.
type DeviceProfile struct {
	UserAgent        string  `yaml:"user_agent"`
	PixelRatio       float64 `yaml:"pixel_ratio"`
	MemoryGB         float64 `yaml:"memory_gb"`
	WebGL2           bool    `yaml:"webgl2"`
	WebGL1           bool    `yaml:"webgl1"`
	ContextError     string  `yaml:"context_error,omitempty"`
	Renderer         string  `yaml:"renderer"`
	UnmaskedRenderer string  `yaml:"unmasked_renderer,omitempty"`
	AdapterType      string  `yaml:"adapter_type,omitempty"`
}

type SceneConfig struct {
	GraphRadius    float64 `yaml:"graph_radius"`
	CarouselRadius float64 `yaml:"carousel_radius"`
	ParticleSpread float64 `yaml:"particle_spread"`
}

type SkillConfig struct {
	Name     string  `yaml:"name"`
	Level    float64 `yaml:"level"`
	Category string  `yaml:"category"`
}

type RunConfig struct {
	Frames int     `yaml:"frames"`
	Dt     float64 `yaml:"dt"`
}

// ScriptEvent selects a card at a given frame. Select < 0 clears the focus.
type ScriptEvent struct {
	Frame  int `yaml:"frame"`
	Select int `yaml:"select"`
}

func DefaultConfig() *Config {
	return &Config{
		Device: Profiles[DefaultProfile],
		Scene: SceneConfig{
			GraphRadius:    DefaultGraphRadius,
			CarouselRadius: DefaultCarouselRadius,
			ParticleSpread: DefaultParticleSpread,
		},
		Skills: []SkillConfig{
			{Name: "React", Level: 90, Category: "frontend"},
			{Name: "TypeScript", Level: 85, Category: "frontend"},
			{Name: "Three.js", Level: 70, Category: "frontend"},
			{Name: "Go", Level: 80, Category: "backend"},
			{Name: "Node.js", Level: 75, Category: "backend"},
			{Name: "GraphQL", Level: 60, Category: "backend"},
			{Name: "PostgreSQL", Level: 70, Category: "database"},
			{Name: "Redis", Level: 55, Category: "database"},
		},
		Projects: []string{"portfolio", "dashboard", "cli-toolkit", "game-engine", "chat-app", "cv-builder"},
		Run: RunConfig{
			Frames: DefaultFrames,
			Dt:     DefaultDt,
		},
		Script: []ScriptEvent{
			{Frame: 30, Select: 2},
			{Frame: 150, Select: -1},
		},
		Seed: DefaultSeed,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Profile != "" {
		if _, ok := Profiles[c.Profile]; !ok {
			return fmt.Errorf("unknown profile: %s (available: %v)", c.Profile, ListProfiles())
		}
	}
	if c.Scene.GraphRadius <= 0 || c.Scene.CarouselRadius <= 0 || c.Scene.ParticleSpread <= 0 {
		return errors.New("scene radii must be positive")
	}
	if c.Run.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", c.Run.Frames)
	}
	if !(c.Run.Dt > 0) || math.IsInf(c.Run.Dt, 1) {
		return fmt.Errorf("dt must be positive and finite, got %f", c.Run.Dt)
	}
	return nil
}

// GetDevice returns the named profile when one is set, otherwise the inline
// device block (which defaults to the desktop-rtx profile).
func (c *Config) GetDevice() DeviceProfile {
	if c.Profile != "" {
		if p, ok := GetProfile(c.Profile); ok {
			return p
		}
	}
	return c.Device
}

// ScriptAt returns the selection scheduled for frame, if any. When several
// events share a frame the last one wins.
func (c *Config) ScriptAt(frame int) (int, bool) {
	sel, found := 0, false
	for _, ev := range c.Script {
		if ev.Frame == frame {
			sel, found = ev.Select, true
		}
	}
	return sel, found
}

package capability

import (
	"errors"

	"github.com/gogpu/gputypes"
	"github.com/san-kum/scenecore/internal/config"
)

// Context is a transient rendering context acquired only for introspection.
type Context interface {
	Version() int
	// UnmaskedRenderer returns the renderer string exposed by the debug
	// extension, when the host provides one.
	UnmaskedRenderer() (string, bool)
	Renderer() string
	Release()
}

// Host exposes the runtime primitives the detector probes.
//
// CreateContext returns (nil, nil) when the context version is simply not
// available and a non-nil error when creation itself failed.
type Host interface {
	UserAgent() string
	DevicePixelRatio() float64
	DeviceMemoryGB() (float64, bool)
	CreateContext(version int) (Context, error)
	AdapterType() (gputypes.DeviceType, bool)
}

// StaticHost answers probes from a fixed device profile.
type StaticHost struct {
	profile  config.DeviceProfile
	acquired int
	released int
}

func NewStaticHost(p config.DeviceProfile) *StaticHost {
	return &StaticHost{profile: p}
}

func (h *StaticHost) UserAgent() string { return h.profile.UserAgent }

func (h *StaticHost) DevicePixelRatio() float64 {
	if h.profile.PixelRatio <= 0 {
		return 1
	}
	return h.profile.PixelRatio
}

func (h *StaticHost) DeviceMemoryGB() (float64, bool) {
	if h.profile.MemoryGB <= 0 {
		return 0, false
	}
	return h.profile.MemoryGB, true
}

func (h *StaticHost) CreateContext(version int) (Context, error) {
	if h.profile.ContextError != "" {
		return nil, errors.New(h.profile.ContextError)
	}
	switch {
	case version == 2 && h.profile.WebGL2, version == 1 && h.profile.WebGL1:
		h.acquired++
		return &staticContext{host: h, version: version}, nil
	}
	return nil, nil
}

func (h *StaticHost) AdapterType() (gputypes.DeviceType, bool) {
	switch h.profile.AdapterType {
	case "discrete":
		return gputypes.DeviceTypeDiscreteGPU, true
	case "integrated":
		return gputypes.DeviceTypeIntegratedGPU, true
	}
	var unknown gputypes.DeviceType
	return unknown, false
}

// Leaked reports how many acquired probe contexts were never released.
func (h *StaticHost) Leaked() int { return h.acquired - h.released }

type staticContext struct {
	host     *StaticHost
	version  int
	released bool
}

func (c *staticContext) Version() int { return c.version }

func (c *staticContext) UnmaskedRenderer() (string, bool) {
	r := c.host.profile.UnmaskedRenderer
	return r, r != ""
}

func (c *staticContext) Renderer() string { return c.host.profile.Renderer }

func (c *staticContext) Release() {
	if c.released {
		return
	}
	c.released = true
	c.host.released++
}

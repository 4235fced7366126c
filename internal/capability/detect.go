package capability

import (
	"fmt"
	"sync"

	"github.com/san-kum/scenecore/internal/logging"
)

// Detector probes a host once and caches the report for the session.
type Detector struct {
	host   Host
	once   sync.Once
	report Report
}

func NewDetector(h Host) *Detector {
	return &Detector{host: h}
}

// Detect returns the cached report, probing the host on first use.
func (d *Detector) Detect() Report {
	d.once.Do(func() {
		d.report = Detect(d.host)
	})
	return d.report
}

// Detect probes h without caching.
func Detect(h Host) Report {
	log := logging.Logger()
	report := Report{IsMobile: IsMobile(h.UserAgent())}

	ctx, err := acquire(h)
	if err != nil {
		log.Warn("capability probe failed", "error", err)
		report.Reason = ReasonNotAvailable
		return report
	}
	if ctx == nil {
		log.Warn("no rendering context available")
		report.Reason = ReasonContextCreationFailed
		return report
	}
	defer ctx.Release()

	report.RenderVersion = ctx.Version()
	report.Renderer = hardwareString(ctx)

	class := ClassifyRenderer(report.Renderer)
	if class == GPUUnknown {
		if t, ok := h.AdapterType(); ok {
			class = ClassifyAdapter(t)
		}
	}
	report.Tier = TierFor(class, report.IsMobile)

	if mem, ok := h.DeviceMemoryGB(); ok && mem < LowMemoryGB {
		log.Debug("low device memory, forcing low tier", "memory_gb", mem)
		report.Tier = TierLow
	}

	report.Supported = !(report.IsMobile && report.Tier == TierLow)
	if !report.Supported {
		report.Reason = ReasonLowEndMobile
	}

	log.Info("capability detected",
		"tier", report.Tier,
		"version", report.RenderVersion,
		"mobile", report.IsMobile,
		"gpu", class,
		"supported", report.Supported)
	return report
}

// acquire tries a version 2 context and falls back to version 1. A panic in
// the host is treated like a returned error.
func acquire(h Host) (ctx Context, err error) {
	defer func() {
		if r := recover(); r != nil {
			ctx, err = nil, fmt.Errorf("%w: %v", ErrProbeFailed, r)
		}
	}()

	for _, version := range []int{2, 1} {
		c, cerr := h.CreateContext(version)
		if cerr != nil {
			return nil, fmt.Errorf("%w: version %d: %v", ErrProbeFailed, version, cerr)
		}
		if c != nil {
			return c, nil
		}
	}
	return nil, nil
}

func hardwareString(ctx Context) string {
	if r, ok := ctx.UnmaskedRenderer(); ok {
		return r
	}
	return ctx.Renderer()
}

package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/scenecore/internal/dynamo"
	"github.com/san-kum/scenecore/internal/logging"
)

// Runner drives a session headlessly, applying the scripted selections
// from the session's config.
type Runner struct {
	session   *Session
	metrics   []Metric
	observers []Observer
}

func NewRunner(s *Session) *Runner {
	return &Runner{
		session:   s,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run ticks the session frames times with a fixed dt. Cancellation is
// checked between frames; the partial result is returned with ctx.Err().
// Failed selections are recorded in Result.Errors and the run continues.
func (r *Runner) Run(ctx context.Context, frames int, dt float64) (*Result, error) {
	if err := validate(frames, dt); err != nil {
		return nil, err
	}
	log := logging.Logger()

	result := &Result{
		Times:          make([]float64, 0, frames),
		CameraPath:     make([]dynamo.Vec3, 0, frames),
		GroupRotations: make([]float64, 0, frames),
		Selections:     make([]int, 0, frames),
		Series:         make(map[string][]float64),
		Metrics:        make(map[string]float64),
		Errors:         make([]error, 0),
	}
	for _, m := range r.metrics {
		m.Reset()
		result.Series[m.Name()] = make([]float64, 0, frames)
	}

	cfg := r.session.Config()
	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			r.collect(result)
			return result, ctx.Err()
		default:
		}

		if sel, ok := cfg.ScriptAt(i); ok {
			if err := r.session.Select(sel); err != nil {
				log.Warn("scripted selection failed", "frame", i, "select", sel, "error", err)
				result.Errors = append(result.Errors, &dynamo.FrameError{
					Frame: i, Time: r.session.Elapsed(), Wrapped: err,
				})
			}
		}

		f := r.session.Tick(dt)
		if !f.Pose.Position.IsValid() || !f.Pose.LookAt.IsValid() {
			result.Errors = append(result.Errors, &dynamo.FrameError{
				Frame: i, Time: f.Time, Wrapped: dynamo.ErrInvalidState,
			})
			break
		}

		for _, m := range r.metrics {
			m.Observe(f)
			result.Series[m.Name()] = append(result.Series[m.Name()], m.Value())
		}
		for _, obs := range r.observers {
			obs.OnFrame(f)
		}

		result.FramesRun++
		result.Times = append(result.Times, f.Time)
		result.CameraPath = append(result.CameraPath, f.Pose.Position)
		result.GroupRotations = append(result.GroupRotations, f.Pose.GroupRotation)
		result.Selections = append(result.Selections, r.session.Selected())
	}

	r.collect(result)
	log.Debug("run finished", "frames", result.FramesRun, "errors", len(result.Errors))
	return result, nil
}

func (r *Runner) collect(result *Result) {
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func validate(frames int, dt float64) error {
	if frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", frames)
	}
	if !(dt > 0) || math.IsInf(dt, 1) {
		return fmt.Errorf("dt must be positive and finite, got %f: %w", dt, dynamo.ErrInvalidDelta)
	}
	return nil
}

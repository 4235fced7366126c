package sim

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/scenecore/internal/config"
	"github.com/san-kum/scenecore/internal/dynamo"
)

type countMetric struct {
	count int
}

func (c *countMetric) Name() string    { return "count" }
func (c *countMetric) Observe(f Frame) { c.count++ }
func (c *countMetric) Value() float64  { return float64(c.count) }
func (c *countMetric) Reset()          { c.count = 0 }

func TestRunnerRun(t *testing.T) {
	runner := NewRunner(NewSession(nil, nil))
	metric := &countMetric{}
	runner.AddMetric(metric)

	result, err := runner.Run(context.Background(), 240, 1.0/60)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.FramesRun != 240 || len(result.Times) != 240 || len(result.CameraPath) != 240 {
		t.Errorf("expected 240 frames, got %d (%d times, %d poses)", result.FramesRun, len(result.Times), len(result.CameraPath))
	}
	if metric.count != 240 || result.Metrics["count"] != 240 {
		t.Errorf("expected 240 observations, got %d / %v", metric.count, result.Metrics["count"])
	}
	if len(result.Series["count"]) != 240 {
		t.Errorf("expected 240 series samples, got %d", len(result.Series["count"]))
	}
	if len(result.Errors) != 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}

	// Default script selects card 2 at frame 30 and clears at frame 150.
	if result.Selections[29] != -1 || result.Selections[30] != 2 || result.Selections[150] != -1 {
		t.Errorf("unexpected selections around script events: %d %d %d",
			result.Selections[29], result.Selections[30], result.Selections[150])
	}
	if result.GroupRotations[140] == 0 {
		t.Error("expected the group to rotate while card 2 is focused")
	}
}

func TestRunnerInvalidArgs(t *testing.T) {
	runner := NewRunner(NewSession(nil, nil))

	tests := []struct {
		name   string
		frames int
		dt     float64
	}{
		{"zero frames", 0, 0.1},
		{"negative frames", -5, 0.1},
		{"zero dt", 10, 0},
		{"negative dt", 10, -0.1},
		{"infinite dt", 10, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runner.Run(context.Background(), tt.frames, tt.dt)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.frames > 0 && !errors.Is(err, dynamo.ErrInvalidDelta) {
				t.Errorf("expected ErrInvalidDelta, got %v", err)
			}
		})
	}
}

func TestRunnerCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner := NewRunner(NewSession(nil, nil))
	runner.AddObserver(ObserverFunc(func(f Frame) {
		if f.Index == 10 {
			cancel()
		}
	}))

	result, err := runner.Run(ctx, 100, 1.0/60)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if result == nil || result.FramesRun != 10 {
		t.Errorf("expected 10 frames before cancel, got %+v", result)
	}
}

func TestRunnerScriptError(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Script = []config.ScriptEvent{{Frame: 5, Select: 40}}

	result, err := NewRunner(NewSession(cfg, nil)).Run(context.Background(), 20, 1.0/60)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.FramesRun != 20 {
		t.Errorf("a failed selection should not stop the run, got %d frames", result.FramesRun)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", result.Errors)
	}

	var fe *dynamo.FrameError
	if !errors.As(result.Errors[0], &fe) || fe.Frame != 5 {
		t.Errorf("expected frame error at frame 5, got %v", result.Errors[0])
	}
	if !errors.Is(result.Errors[0], dynamo.ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds, got %v", result.Errors[0])
	}
}

func TestRunnerDeterministic(t *testing.T) {
	run := func() *Result {
		r, err := NewRunner(NewSession(nil, nil)).Run(context.Background(), 60, 1.0/60)
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}
		return r
	}
	a, b := run(), run()
	for i := range a.CameraPath {
		if a.CameraPath[i] != b.CameraPath[i] {
			t.Fatalf("frame %d differs: %v vs %v", i, a.CameraPath[i], b.CameraPath[i])
		}
	}
}

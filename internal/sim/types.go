package sim

import (
	"github.com/san-kum/scenecore/internal/camera"
	"github.com/san-kum/scenecore/internal/dynamo"
	"github.com/san-kum/scenecore/internal/particles"
)

// Frame is the output of one Session tick. Particles is the live buffer
// and is only valid until the next tick.
type Frame struct {
	Index     int
	Time      float64
	Pose      camera.Pose
	Particles *particles.Set
}

type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(f Frame)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(f Frame)

func (fn ObserverFunc) OnFrame(f Frame) { fn(f) }

type Result struct {
	FramesRun      int
	Times          []float64
	CameraPath     []dynamo.Vec3
	GroupRotations []float64
	Selections     []int
	Series         map[string][]float64
	Metrics        map[string]float64
	Errors         []error
}

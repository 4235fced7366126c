package metrics

import (
	"math"

	"github.com/san-kum/scenecore/internal/sim"
)

// CameraResidual reports the distance between the camera and its target
// on the latest frame.
type CameraResidual struct {
	name string
	last float64
}

func NewCameraResidual() *CameraResidual {
	return &CameraResidual{name: "camera_residual"}
}

func (c *CameraResidual) Name() string { return c.name }

func (c *CameraResidual) Observe(f sim.Frame) {
	c.last = f.Pose.Position.Distance(f.Pose.Target)
}

func (c *CameraResidual) Value() float64 { return c.last }
func (c *CameraResidual) Reset()         { c.last = 0 }

// RotationResidual reports |target - current| of the group angle.
type RotationResidual struct {
	name string
	last float64
}

func NewRotationResidual() *RotationResidual {
	return &RotationResidual{name: "rotation_residual"}
}

func (r *RotationResidual) Name() string { return r.name }

func (r *RotationResidual) Observe(f sim.Frame) {
	r.last = math.Abs(f.Pose.GroupTarget - f.Pose.GroupRotation)
}

func (r *RotationResidual) Value() float64 { return r.last }
func (r *RotationResidual) Reset()         { r.last = 0 }

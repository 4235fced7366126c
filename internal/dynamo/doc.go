// Package dynamo provides the shared math primitives used by every scene
// component.
//
// The package is deliberately small:
//
//   - [Vec3]: value-type 3D vector
//   - [Euler]: rotation expressed as XYZ Euler angles in radians
//   - [Lerp], [Clamp]: scalar interpolation helpers
//   - [DampFactor]: frame-rate independent exponential smoothing factor
//   - [ShortestAngle]: wraps an angular difference into [-π, π]
//   - [TrigTable]: precomputed sin/cos lookup for per-particle perturbation
//
// # Example
//
//	f := dynamo.DampFactor(delta)
//	current = current.Lerp(target, f)
//
// # Thread Safety
//
// All functions are pure. [DefaultTrigTable] is read-only after package
// initialisation and may be shared between goroutines.
package dynamo

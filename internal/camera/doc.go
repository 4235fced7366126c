// Package camera smooths camera and group motion toward externally chosen
// targets.
//
// Every smoother uses the same frame-rate independent exponential step,
// current += (target - current) * (1 - 0.001^delta), so convergence depends
// on elapsed seconds rather than on the number of frames. Angles are
// retargeted along the shortest arc, so a rotation never takes the long way
// around the 0/2π seam.
//
// Rig combines a position smoother, a look-at smoother and a group angle
// tracker over a carousel arrangement. A single ring is focused by rotating
// the group; a spiral keeps the group still and moves the camera instead.
package camera

package viz

import (
	"math"
	"sort"

	"github.com/san-kum/scenecore/internal/camera"
	"github.com/san-kum/scenecore/internal/dynamo"
)

var worldUp = dynamo.V(0, 1, 0)

// Camera is a pinhole look-at camera.
type Camera struct {
	Position, LookAt dynamo.Vec3
	FOV, Near        float64
}

func NewCamera() *Camera {
	return &Camera{Position: dynamo.V(0, 2, 14), FOV: 50 * math.Pi / 180, Near: 0.1}
}

// Follow copies the eye and look-at point from a rig pose.
func (c *Camera) Follow(p camera.Pose) {
	c.Position, c.LookAt = p.Position, p.LookAt
}

// basis returns the right, up and forward axes of the view.
func (c *Camera) basis() (right, up, fwd dynamo.Vec3) {
	fwd = c.LookAt.Sub(c.Position).Normalize()
	if fwd == (dynamo.Vec3{}) {
		fwd = dynamo.V(0, 0, -1)
	}
	right = fwd.Cross(worldUp).Normalize()
	if right == (dynamo.Vec3{}) {
		right = dynamo.V(1, 0, 0)
	}
	up = right.Cross(fwd)
	return right, up, fwd
}

// Project maps p onto a sw x sh dot grid. It returns the screen position,
// the view depth and whether the point lands on screen in front of the
// camera.
func (c *Camera) Project(p dynamo.Vec3, sw, sh int) (int, int, float64, bool) {
	right, up, fwd := c.basis()
	rel := p.Sub(c.Position)
	depth := rel.Dot(fwd)
	if depth < c.Near {
		return 0, 0, depth, false
	}
	focal := float64(min(sw, sh)) / 2 / math.Tan(c.FOV/2)
	sx := int(math.Round(rel.Dot(right)/depth*focal)) + sw/2
	sy := int(math.Round(-rel.Dot(up)/depth*focal)) + sh/2
	return sx, sy, depth, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

type Edge struct {
	Start, End dynamo.Vec3
}

// Wireframe is a list of segments; a point is a zero-length segment.
type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe                { return &Wireframe{Edges: make([]Edge, 0)} }
func (w *Wireframe) AddEdge(s, e dynamo.Vec3) { w.Edges = append(w.Edges, Edge{s, e}) }
func (w *Wireframe) AddPoint(p dynamo.Vec3)   { w.Edges = append(w.Edges, Edge{p, p}) }
func (w *Wireframe) Clear()                   { w.Edges = w.Edges[:0] }

type projectedEdge struct {
	x1, y1, x2, y2 int
	depth          float64
}

// Render3D draws the wireframe far-to-near. Segments with one endpoint
// behind the camera are dropped.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	pw, ph := c.Pixels()
	proj := make([]projectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, pw, ph)
		x2, y2, d2, v2 := cam.Project(e.End, pw, ph)
		if d1 < cam.Near || d2 < cam.Near || !(v1 || v2) {
			continue
		}
		proj = append(proj, projectedEdge{x1, y1, x2, y2, (d1 + d2) / 2})
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].depth > proj[j].depth })
	for _, e := range proj {
		if e.x1 == e.x2 && e.y1 == e.y2 {
			c.Set(e.x1, e.y1)
		} else {
			c.DrawLine(e.x1, e.y1, e.x2, e.y2)
		}
	}
}

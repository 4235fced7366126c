package export

import (
	"fmt"
	"math"

	"github.com/san-kum/scenecore/internal/dynamo"
	"github.com/san-kum/scenecore/internal/layout"
)

// View selects which layout a picture shows.
type View string

const (
	ViewCarousel View = "carousel"
	ViewGraph    View = "graph"
)

func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewCarousel, ViewGraph:
		return View(s), nil
	case "":
		return ViewCarousel, nil
	}
	return "", fmt.Errorf("unknown view: %q (want carousel or graph)", s)
}

const (
	background    = "#0f172a"
	guideColor    = "#334155"
	cardColor     = "#e2e8f0"
	focusColor    = "#f29111"
	particleColor = "#94a3b8"
	cameraColor   = "#61dafb"
)

type shapeKind int

const (
	shapeLine shapeKind = iota
	shapeDisc
	shapeRing
)

// shape is a resolution-independent primitive in picture units, where the
// picture spans [0, size] on both axes.
type shape struct {
	kind           shapeKind
	x1, y1, x2, y2 float64
	r, width       float64
	color          string
	alpha          float64
	label          string
}

// mapper projects two world axes onto a square picture centred on the
// origin.
type mapper struct {
	size, scale float64
}

func newMapper(size, extent float64) mapper {
	if !(extent > 0) {
		extent = 1
	}
	return mapper{size: size, scale: size / 2 / (extent * 1.1)}
}

func (m mapper) at(a, b float64) (float64, float64) {
	return m.size/2 + a*m.scale, m.size/2 + b*m.scale
}

// carouselPlan is a top-down (x/z) view of the cards, particles and camera.
func carouselPlan(s Snapshot, size float64) []shape {
	extent := 0.0
	for _, c := range s.Cards {
		extent = math.Max(extent, math.Hypot(c.Position.X, c.Position.Z)+layout.CardHalfWidth)
	}
	for _, p := range []dynamo.Vec3{s.Pose.Position, s.Pose.LookAt} {
		extent = math.Max(extent, math.Max(math.Abs(p.X), math.Abs(p.Z)))
	}
	m := newMapper(size, extent)

	shapes := make([]shape, 0, len(s.Particles)+2*len(s.Cards)+4)
	for _, p := range s.Particles {
		x, y := m.at(p.X, p.Z)
		shapes = append(shapes, shape{kind: shapeDisc, x1: x, y1: y, r: 0.6, color: particleColor, alpha: 0.35})
	}

	rings := map[int]float64{}
	for _, c := range s.Cards {
		rings[c.Ring] = math.Hypot(c.Position.X, c.Position.Z)
	}
	cx, cy := m.at(0, 0)
	for _, r := range rings {
		shapes = append(shapes, shape{kind: shapeRing, x1: cx, y1: cy, r: r * m.scale, width: 1, color: guideColor, alpha: 1})
	}

	for i, c := range s.Cards {
		centre := c.Position.RotateY(s.Pose.GroupRotation)
		across := dynamo.V(1, 0, 0).RotateY(c.Rotation.Y + s.Pose.GroupRotation).Scale(layout.CardHalfWidth * c.Scale)
		x1, y1 := m.at(centre.X-across.X, centre.Z-across.Z)
		x2, y2 := m.at(centre.X+across.X, centre.Z+across.Z)
		col, w := cardColor, 3.0
		if i == s.Selected {
			col, w = focusColor, 5
		}
		shapes = append(shapes, shape{kind: shapeLine, x1: x1, y1: y1, x2: x2, y2: y2, width: w * c.Scale, color: col, alpha: 1, label: fmt.Sprint(i)})
	}

	ex, ey := m.at(s.Pose.Position.X, s.Pose.Position.Z)
	lx, ly := m.at(s.Pose.LookAt.X, s.Pose.LookAt.Z)
	shapes = append(shapes,
		shape{kind: shapeLine, x1: ex, y1: ey, x2: lx, y2: ly, width: 1, color: cameraColor, alpha: 0.6},
		shape{kind: shapeDisc, x1: ex, y1: ey, r: 4, color: cameraColor, alpha: 1, label: "camera"},
	)
	return shapes
}

// graphPlan is a front (x/-y) view of the graph layout.
func graphPlan(s Snapshot, size float64) []shape {
	extent := 0.0
	for _, n := range s.Graph.Nodes {
		extent = math.Max(extent, math.Max(math.Abs(n.Position.X), math.Abs(n.Position.Y))+n.Radius)
	}
	m := newMapper(size, extent)

	pos := make(map[string][2]float64, len(s.Graph.Nodes))
	for _, n := range s.Graph.Nodes {
		x, y := m.at(n.Position.X, -n.Position.Y)
		pos[n.ID] = [2]float64{x, y}
	}

	shapes := make([]shape, 0, len(s.Graph.Edges)+len(s.Graph.Nodes))
	for _, e := range s.Graph.Edges {
		a, b := pos[e.SourceID], pos[e.TargetID]
		shapes = append(shapes, shape{kind: shapeLine, x1: a[0], y1: a[1], x2: b[0], y2: b[1], width: 1, color: guideColor, alpha: 0.3 + 0.7*e.Strength})
	}
	for _, n := range s.Graph.Nodes {
		p := pos[n.ID]
		shapes = append(shapes, shape{kind: shapeDisc, x1: p[0], y1: p[1], r: n.Radius * m.scale, color: n.Color, alpha: 1, label: n.Label})
	}
	return shapes
}

func plan(s Snapshot, view View, size float64) []shape {
	if view == ViewGraph {
		return graphPlan(s, size)
	}
	return carouselPlan(s, size)
}

package viz

import (
	"math"

	"github.com/san-kum/scenecore/internal/dynamo"
	"github.com/san-kum/scenecore/internal/layout"
	"github.com/san-kum/scenecore/internal/particles"
)

// CarouselWireframe outlines every card in the plane it faces, with the
// whole group turned by groupRotation. The focused card gets diagonals.
func CarouselWireframe(w *Wireframe, cards []layout.CardPlacement, groupRotation float64, focus int) {
	for i, c := range cards {
		centre := c.Position.RotateY(groupRotation)
		across := dynamo.V(1, 0, 0).RotateY(c.Rotation.Y + groupRotation).Scale(layout.CardHalfWidth * c.Scale)
		up := worldUp.Scale(layout.CardHalfHeight * c.Scale)

		tl := centre.Sub(across).Add(up)
		tr := centre.Add(across).Add(up)
		br := centre.Add(across).Sub(up)
		bl := centre.Sub(across).Sub(up)
		w.AddEdge(tl, tr)
		w.AddEdge(tr, br)
		w.AddEdge(br, bl)
		w.AddEdge(bl, tl)
		if i == focus {
			w.AddEdge(tl, br)
			w.AddEdge(tr, bl)
		}
	}
}

// GraphWireframe draws each node as a three-axis star sized by its radius
// and each edge as a segment between node centres.
func GraphWireframe(w *Wireframe, g layout.Graph) {
	pos := make(map[string]dynamo.Vec3, len(g.Nodes))
	for _, n := range g.Nodes {
		pos[n.ID] = n.Position
		for _, axis := range [3]dynamo.Vec3{{X: n.Radius}, {Y: n.Radius}, {Z: n.Radius}} {
			w.AddEdge(n.Position.Sub(axis), n.Position.Add(axis))
		}
	}
	for _, e := range g.Edges {
		w.AddEdge(pos[e.SourceID], pos[e.TargetID])
	}
}

// ParticleWireframe adds up to limit particles as points, striding evenly
// through larger sets.
func ParticleWireframe(w *Wireframe, set *particles.Set, limit int) {
	if set == nil || limit <= 0 || set.Len() == 0 {
		return
	}
	stride := (set.Len() + limit - 1) / limit
	for i := 0; i < set.Len(); i += stride {
		w.AddPoint(set.Position(i))
	}
}

// OrbitCamera circles the origin at distance, one turn every period
// seconds.
func OrbitCamera(elapsed, distance, period float64) *Camera {
	c := NewCamera()
	a := 2 * math.Pi * elapsed / period
	c.Position = dynamo.V(math.Sin(a)*distance, distance*0.4, math.Cos(a)*distance)
	c.LookAt = dynamo.Vec3{}
	return c
}

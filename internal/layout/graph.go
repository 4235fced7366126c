package layout

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/san-kum/scenecore/internal/dynamo"
	"github.com/san-kum/scenecore/internal/logging"
)

const (
	MinNodeRadius  = 0.2
	NodeRadiusSpan = 0.3
	MaxLevel       = 100.0
)

// GoldenAngle is π(3-√5).
var GoldenAngle = math.Pi * (3 - math.Sqrt(5))

// Item is one input entry for the graph layout. Level is on a 0-100 scale.
type Item struct {
	Name     string  `json:"name" yaml:"name"`
	Level    float64 `json:"level" yaml:"level"`
	Category string  `json:"category" yaml:"category"`
}

type Node struct {
	ID       string      `json:"id"`
	Label    string      `json:"label"`
	Weight   float64     `json:"weight"`
	Category string      `json:"category"`
	Color    string      `json:"color"`
	Position dynamo.Vec3 `json:"position"`
	Radius   float64     `json:"radius"`
}

type Edge struct {
	SourceID string  `json:"source"`
	TargetID string  `json:"target"`
	Strength float64 `json:"strength"`
}

type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// FibonacciSphere returns n near-uniformly spaced points on a sphere of the
// given radius. A single point sits at the origin.
func FibonacciSphere(n int, radius float64) []dynamo.Vec3 {
	if n <= 0 {
		return []dynamo.Vec3{}
	}
	if n == 1 {
		return []dynamo.Vec3{{}}
	}

	pts := make([]dynamo.Vec3, n)
	for i := 0; i < n; i++ {
		y := 1 - float64(i)/float64(n-1)*2
		r := math.Sqrt(math.Max(0, 1-y*y))
		theta := GoldenAngle * float64(i)
		pts[i] = dynamo.Vec3{
			X: math.Cos(theta) * r * radius,
			Y: y * radius,
			Z: math.Sin(theta) * r * radius,
		}
	}
	return pts
}

// NodeRadius maps a 0-100 level onto [MinNodeRadius, MinNodeRadius+NodeRadiusSpan].
func NodeRadius(level float64) float64 {
	return MinNodeRadius + dynamo.Clamp(level, 0, MaxLevel)/MaxLevel*NodeRadiusSpan
}

// BuildGraph lays items out on a sphere of the given radius and connects
// every pair whose categories are adjacent.
func BuildGraph(items []Item, radius float64) Graph {
	log := logging.Logger()
	positions := FibonacciSphere(len(items), radius)
	ids := newIDSet()

	g := Graph{Nodes: make([]Node, len(items)), Edges: []Edge{}}
	for i, it := range items {
		cat, known := LookupCategory(it.Category)
		if !known {
			log.Warn("unknown category, using default", "item", it.Name, "category", it.Category)
		}
		level := dynamo.Clamp(it.Level, 0, MaxLevel)
		g.Nodes[i] = Node{
			ID:       ids.claim(it.Name, i),
			Label:    it.Name,
			Weight:   level / MaxLevel,
			Category: cat.Name,
			Color:    cat.Color,
			Position: positions[i],
			Radius:   NodeRadius(level),
		}
	}

	for i := 0; i < len(g.Nodes); i++ {
		for j := i + 1; j < len(g.Nodes); j++ {
			a, b := g.Nodes[i], g.Nodes[j]
			if !Adjacent(a.Category, b.Category) {
				continue
			}
			g.Edges = append(g.Edges, Edge{
				SourceID: a.ID,
				TargetID: b.ID,
				Strength: math.Min(a.Weight, b.Weight),
			})
		}
	}

	log.Debug("graph layout", "nodes", len(g.Nodes), "edges", len(g.Edges))
	return g
}

// Node returns the node with the given id.
func (g Graph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

type idSet map[string]int

func newIDSet() idSet { return make(idSet) }

// claim returns a unique id derived from name, suffixing -2, -3, ... on
// collisions.
func (s idSet) claim(name string, index int) string {
	base := slug(name)
	if base == "" {
		base = fmt.Sprintf("node-%d", index)
	}
	id := base
	for n := 2; ; n++ {
		if _, taken := s[id]; !taken {
			break
		}
		id = fmt.Sprintf("%s-%d", base, n)
	}
	s[id] = index
	return id
}

func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case r == '+':
			b.WriteString("plus")
			dash = false
		case r == '#':
			b.WriteString("sharp")
			dash = false
		default:
			if b.Len() > 0 && !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

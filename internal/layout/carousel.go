package layout

import (
	"math"

	"github.com/san-kum/scenecore/internal/dynamo"
)

const (
	// SingleRingMax is the largest card count laid out on one ring.
	SingleRingMax = 12
	RingSize      = 8
	RingSpacing   = 2.5
	RingDrop      = 1.5
	ScaleStep     = 0.1
	MinScale      = 0.7

	// Card extent at scale 1, for renderers.
	CardHalfWidth  = 0.8
	CardHalfHeight = 0.5
)

type CardPlacement struct {
	Position dynamo.Vec3  `json:"position"`
	Rotation dynamo.Euler `json:"rotation"`
	Scale    float64      `json:"scale"`
	Ring     int          `json:"ring"`
}

// IsSpiral reports whether count cards need the multi-ring layout.
func IsSpiral(count int) bool {
	return count > SingleRingMax
}

// Carousel places count cards around the Y axis. Up to SingleRingMax cards
// share one ring of baseRadius; larger sets are split into rings of RingSize
// that move outward and downward, each rotated by π/8 relative to the one
// before it.
func Carousel(count int, baseRadius float64) []CardPlacement {
	if count <= 0 {
		return []CardPlacement{}
	}
	out := make([]CardPlacement, count)
	if !IsSpiral(count) {
		step := 2 * math.Pi / float64(count)
		for i := range out {
			out[i] = placeCard(float64(i)*step, baseRadius, 0, 1, 0)
		}
		return out
	}

	for i := range out {
		ring := i / RingSize
		inRing := ringLen(count, ring)
		angle := float64(i%RingSize)*(2*math.Pi/float64(inRing)) + float64(ring)*(math.Pi/RingSize)
		radius := RingRadius(baseRadius, ring)
		y := -float64(ring) * RingDrop
		scale := math.Max(MinScale, 1-ScaleStep*float64(ring))
		out[i] = placeCard(angle, radius, y, scale, ring)
	}
	return out
}

// RingRadius is the radius of spiral ring k.
func RingRadius(baseRadius float64, ring int) float64 {
	return baseRadius + float64(ring)*RingSpacing
}

// RingCount is the number of rings count cards occupy.
func RingCount(count int) int {
	switch {
	case count <= 0:
		return 0
	case !IsSpiral(count):
		return 1
	}
	return (count + RingSize - 1) / RingSize
}

// FocusRotation is the group rotation that brings card k of a single ring
// to the front.
func FocusRotation(k, count int) float64 {
	if count <= 0 {
		return 0
	}
	return -float64(k) * 2 * math.Pi / float64(count)
}

func ringLen(count, ring int) int {
	n := count - ring*RingSize
	if n > RingSize {
		return RingSize
	}
	return n
}

// placeCard positions a card at angle on a ring, facing the ring centre.
func placeCard(angle, radius, y, scale float64, ring int) CardPlacement {
	s, c := math.Sincos(angle)
	return CardPlacement{
		Position: dynamo.Vec3{X: s * radius, Y: y, Z: c * radius},
		Rotation: dynamo.Euler{Y: angle + math.Pi},
		Scale:    scale,
		Ring:     ring,
	}
}

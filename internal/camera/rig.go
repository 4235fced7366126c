package camera

import (
	"fmt"
	"math"

	"github.com/san-kum/scenecore/internal/dynamo"
	"github.com/san-kum/scenecore/internal/layout"
	"github.com/san-kum/scenecore/internal/logging"
)

// Overview vantage points, relative to the base ring radius.
const (
	RingOverviewHeight     = 2.0
	RingOverviewDistance   = 8.0
	SpiralOverviewHeight   = 8.0
	SpiralOverviewDistance = 16.0
)

type RigConfig struct {
	// FocusDistance is how far the camera stands off a focused spiral card.
	FocusDistance float64 `yaml:"focus_distance" json:"focus_distance"`
	// FocusLift raises the camera above a focused spiral card.
	FocusLift float64 `yaml:"focus_lift" json:"focus_lift"`
}

func DefaultRigConfig() RigConfig {
	return RigConfig{FocusDistance: 4, FocusLift: 0.5}
}

// Pose is the rig output for one frame.
type Pose struct {
	Position      dynamo.Vec3 `json:"position"`
	LookAt        dynamo.Vec3 `json:"look_at"`
	GroupRotation float64     `json:"group_rotation"`

	Target      dynamo.Vec3 `json:"target"`
	GroupTarget float64     `json:"group_target"`
}

// Rig drives the camera over a carousel.
type Rig struct {
	cfg      RigConfig
	position *Controller
	lookAt   *Controller
	group    *AngleTracker

	cards  []layout.CardPlacement
	radius float64
	rings  int
	focus  int
}

// NewRig returns a rig at rest in the single-ring overview of an empty
// carousel.
func NewRig(cfg RigConfig) *Rig {
	if cfg.FocusDistance <= 0 {
		cfg.FocusDistance = DefaultRigConfig().FocusDistance
	}
	r := &Rig{
		cfg:    cfg,
		group:  NewAngleTracker(0),
		focus:  -1,
		lookAt: NewController(dynamo.Vec3{}),
	}
	r.position = NewController(r.overviewPosition())
	return r
}

// Arrange replaces the carousel the rig works over and returns to the
// overview pose. The placements are copied.
func (r *Rig) Arrange(cards []layout.CardPlacement) {
	r.cards = append(r.cards[:0], cards...)
	r.radius, r.rings = 0, 0
	for _, c := range r.cards {
		if c.Ring >= r.rings {
			r.rings = c.Ring + 1
		}
	}
	if len(r.cards) > 0 {
		first := r.cards[0].Position
		r.radius = math.Hypot(first.X, first.Z)
	}
	r.ClearFocus()
}

// Spiral reports whether the arranged carousel uses the multi-ring layout.
func (r *Rig) Spiral() bool {
	return layout.IsSpiral(len(r.cards))
}

// Focused returns the focused card index, or -1 in overview.
func (r *Rig) Focused() int {
	return r.focus
}

// Focus retargets the rig on card k.
func (r *Rig) Focus(k int) error {
	if k < 0 || k >= len(r.cards) {
		return fmt.Errorf("camera: focus %d of %d cards: %w", k, len(r.cards), dynamo.ErrParameterBounds)
	}
	r.focus = k

	if !r.Spiral() {
		r.group.Request(layout.FocusRotation(k, len(r.cards)))
		// The camera holds its overview spot; only the group turns.
		r.position.SetTarget(r.overviewPosition())
		r.lookAt.SetTarget(dynamo.V(0, 0, r.radius))
		logging.Logger().Debug("focus ring card", "card", k, "rotation", r.group.Target())
		return nil
	}

	r.group.Request(0)
	card := r.cards[k].Position
	radial := dynamo.V(card.X, 0, card.Z).Normalize()
	r.position.SetTarget(card.Add(radial.Scale(r.cfg.FocusDistance)).Add(dynamo.V(0, r.cfg.FocusLift, 0)))
	r.lookAt.SetTarget(card)
	logging.Logger().Debug("focus spiral card", "card", k, "ring", r.cards[k].Ring)
	return nil
}

// ClearFocus returns to the overview pose.
func (r *Rig) ClearFocus() {
	r.focus = -1
	r.group.Request(0)
	r.position.SetTarget(r.overviewPosition())
	r.lookAt.SetTarget(r.overviewLookAt())
}

func (r *Rig) overviewPosition() dynamo.Vec3 {
	if r.Spiral() {
		return dynamo.V(0, SpiralOverviewHeight, r.radius+SpiralOverviewDistance)
	}
	return dynamo.V(0, RingOverviewHeight, r.radius+RingOverviewDistance)
}

// overviewLookAt aims at the middle ring of a spiral, or the origin.
func (r *Rig) overviewLookAt() dynamo.Vec3 {
	if r.Spiral() && r.rings > 1 {
		return dynamo.V(0, -float64(r.rings-1)/2*layout.RingDrop, 0)
	}
	return dynamo.Vec3{}
}

// Tick advances all three smoothers by delta seconds.
func (r *Rig) Tick(delta float64) Pose {
	return Pose{
		Position:      r.position.Tick(delta),
		LookAt:        r.lookAt.Tick(delta),
		GroupRotation: r.group.Tick(delta),
		Target:        r.position.State().Target,
		GroupTarget:   r.group.Target(),
	}
}

// Pose returns the current pose without advancing time.
func (r *Rig) Pose() Pose {
	return Pose{
		Position:      r.position.State().Current,
		LookAt:        r.lookAt.State().Current,
		GroupRotation: r.group.Current(),
		Target:        r.position.State().Target,
		GroupTarget:   r.group.Target(),
	}
}

package camera

import "github.com/san-kum/scenecore/internal/dynamo"

// State is the smoothed position held by a Controller.
type State struct {
	Current dynamo.Vec3 `json:"current"`
	Target  dynamo.Vec3 `json:"target"`
}

// Controller eases a position toward its target. Only Tick writes Current.
type Controller struct {
	state State
}

// NewController starts at rest at p.
func NewController(p dynamo.Vec3) *Controller {
	return &Controller{state: State{Current: p, Target: p}}
}

// SetTarget changes where the controller is heading. Targets holding NaN
// or Inf are ignored.
func (c *Controller) SetTarget(p dynamo.Vec3) {
	if !p.IsValid() {
		return
	}
	c.state.Target = p
}

// Tick advances Current by delta seconds and returns it. Negative and NaN
// deltas leave the state unchanged.
func (c *Controller) Tick(delta float64) dynamo.Vec3 {
	c.state.Current = c.state.Current.Lerp(c.state.Target, dynamo.DampFactor(delta))
	return c.state.Current
}

func (c *Controller) State() State {
	return c.state
}

// Residual is the remaining distance to the target.
func (c *Controller) Residual() float64 {
	return c.state.Current.Distance(c.state.Target)
}

// Package overlay holds the overlay image transform and the swipe-reveal
// gesture. The overlay shares the container coordinate conventions of the
// camera but is otherwise independent of the viewport.
package overlay

import (
	"github.com/ODBDEVOPS/azeroth-map-app/internal/input"
	"github.com/ODBDEVOPS/azeroth-map-app/pkg/geometry"
)

// State is the slider-driven overlay transform plus the swipe split point.
// Opacity is [0,1]; offsets are percent of the container; SwipePercent is the
// horizontal split in [0,100] with the base map revealed to its left.
type State struct {
	Opacity        float64
	Scale          float64
	OffsetXPercent float64
	OffsetYPercent float64
	SwipePercent   float64
}

// SwipeState is the swipe state machine state.
type SwipeState int

const (
	Idle SwipeState = iota
	Swiping
)

// DefaultState returns the overlay settings used before any slider moves:
// half-transparent, unscaled, centered split.
func DefaultState() State {
	return State{Opacity: 0.5, Scale: 1.0, SwipePercent: 50}
}

// Controller mutates overlay state from slider and pointer input. Slider
// values are applied as-is; each slider declares its own range and no further
// clamping happens here.
type Controller struct {
	state State
	swipe SwipeState

	onChanged func(State)
}

// New creates a controller with default overlay settings.
func New() *Controller {
	return &Controller{state: DefaultState()}
}

// OnChanged sets the callback invoked after every state change.
func (c *Controller) OnChanged(fn func(State)) { c.onChanged = fn }

// State returns the current overlay state.
func (c *Controller) State() State {
	return c.state
}

// Swipe returns the current swipe state machine state.
func (c *Controller) Swipe() SwipeState {
	return c.swipe
}

// SetOpacity applies the opacity slider value.
func (c *Controller) SetOpacity(v float64) {
	c.state.Opacity = v
	c.changed()
}

// SetScale applies the scale slider value.
func (c *Controller) SetScale(v float64) {
	c.state.Scale = v
	c.changed()
}

// SetOffsetX applies the X offset slider value (percent).
func (c *Controller) SetOffsetX(v float64) {
	c.state.OffsetXPercent = v
	c.changed()
}

// SetOffsetY applies the Y offset slider value (percent).
func (c *Controller) SetOffsetY(v float64) {
	c.state.OffsetYPercent = v
	c.changed()
}

// Handle feeds a pointer event through the swipe state machine. Only a down
// on the separator enters Swiping; while swiping, the pointer's horizontal
// position relative to the container's left edge is clamped to the container
// and converted to the split percent. An up anywhere ends the swipe.
func (c *Controller) Handle(ev input.Event, containerWidth float64) {
	switch ev.Kind {
	case input.PointerDown:
		if c.swipe == Idle && ev.Target == input.TargetSeparator {
			c.swipe = Swiping
		}
	case input.PointerMove:
		if c.swipe != Swiping || containerWidth <= 0 {
			return
		}
		x := geometry.Clamp(ev.Pos.X, 0, containerWidth)
		c.state.SwipePercent = x / containerWidth * 100
		c.changed()
	case input.PointerUp:
		c.swipe = Idle
	}
}

func (c *Controller) changed() {
	if c.onChanged != nil {
		c.onChanged(c.state)
	}
}

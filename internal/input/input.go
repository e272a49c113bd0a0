// Package input defines the pointer event union consumed by the gesture
// state machines. The rendering surface translates its native events into
// these, which keeps the pan and swipe transitions testable without a UI.
package input

import (
	"github.com/ODBDEVOPS/azeroth-map-app/pkg/geometry"
)

// Kind identifies the pointer event type.
type Kind int

const (
	PointerDown Kind = iota
	PointerMove
	PointerUp
)

// Target identifies what the pointer went down on. Pan and swipe are
// mutually exclusive gestures: a down on the separator never starts a pan,
// and a down on the map never starts a swipe.
type Target int

const (
	TargetMap Target = iota
	TargetSeparator
)

// Event is a single pointer event in container-local pixels. Move and up
// events are delivered regardless of where the pointer is, so a gesture that
// leaves the container still completes cleanly.
type Event struct {
	Kind   Kind
	Target Target
	Pos    geometry.Point2D
}

// Package viewport holds the pan/zoom transform state for the map container.
//
// Coordinates come in two flavors. Content coordinates are unscaled container
// pixels: the base map always fills the container exactly at scale 1, so a
// marker at (50%, 50%) sits at content (width/2, height/2) regardless of zoom.
// Screen coordinates are container-local pixels after the transform is
// applied. A content point c appears on screen at c*Scale + Translate.
package viewport

import (
	"github.com/ODBDEVOPS/azeroth-map-app/pkg/geometry"
)

const (
	// MinScale is the minimum zoom: the map exactly fills its container.
	MinScale = 1.0
	// MaxScale is the maximum zoom.
	MaxScale = 4.0
)

// State is the viewport transform. Mutate it only through its methods and
// call Clamp after every pan or zoom.
type State struct {
	Scale     float64
	Translate geometry.Point2D
}

// New returns a viewport at scale 1 with no translation.
func New() *State {
	return &State{Scale: MinScale}
}

// SetScale clamps newScale to [MinScale, MaxScale] and recomputes the
// translation so that the content under pivot (in container-local pixels)
// stays visually stationary. When the clamped scale equals the current scale
// the state is untouched and false is returned; callers treat that as "limit
// reached", which is success, not an error.
func (s *State) SetScale(newScale float64, pivot geometry.Point2D) bool {
	newScale = geometry.Clamp(newScale, MinScale, MaxScale)
	if newScale == s.Scale {
		return false
	}

	// The content point under the pivot is (pivot - translate) / scale.
	// Solving pivot = c*newScale + translate' keeps it under the pivot.
	factor := newScale / s.Scale
	s.Translate.X = pivot.X - (pivot.X-s.Translate.X)*factor
	s.Translate.Y = pivot.Y - (pivot.Y-s.Translate.Y)*factor
	s.Scale = newScale
	return true
}

// Pan adds (dx, dy) to the translation. Bounds are enforced separately by
// Clamp so that gesture code can apply raw deltas.
func (s *State) Pan(dx, dy float64) {
	s.Translate.X += dx
	s.Translate.Y += dy
}

// Clamp bounds the translation so the scaled content fully covers the
// container. At scale 1 the translation is forced to (0,0): the map is never
// smaller than its container. Idempotent for unchanged container dimensions.
func (s *State) Clamp(containerWidth, containerHeight float64) {
	if s.Scale <= MinScale {
		s.Translate = geometry.Point2D{}
		return
	}
	s.Translate.X = geometry.Clamp(s.Translate.X, -(containerWidth*s.Scale - containerWidth), 0)
	s.Translate.Y = geometry.Clamp(s.Translate.Y, -(containerHeight*s.Scale - containerHeight), 0)
}

// Reset returns the viewport to scale 1, translation (0,0).
func (s *State) Reset() {
	s.Scale = MinScale
	s.Translate = geometry.Point2D{}
}

// Project returns the screen position of a content point.
func (s *State) Project(content geometry.Point2D) geometry.Point2D {
	return content.Scale(s.Scale).Add(s.Translate)
}

// ContentAt returns the content point currently under a screen point.
func (s *State) ContentAt(screen geometry.Point2D) geometry.Point2D {
	return screen.Sub(s.Translate).Scale(1 / s.Scale)
}

// Package camera translates raw input into viewport operations: the pan
// gesture, wheel and button zoom, jump-to-marker centering, and view reset.
// It also owns the active-marker reference and the selected category filter,
// so no rendering surface is ever the source of truth for either.
package camera

import (
	"iter"

	"github.com/rs/zerolog"

	"github.com/ODBDEVOPS/azeroth-map-app/internal/input"
	"github.com/ODBDEVOPS/azeroth-map-app/internal/marker"
	"github.com/ODBDEVOPS/azeroth-map-app/internal/viewport"
	"github.com/ODBDEVOPS/azeroth-map-app/pkg/geometry"
)

// GestureState is the pan state machine state.
type GestureState int

const (
	Idle GestureState = iota
	Dragging
)

// ZoomDirection selects the button-zoom direction.
type ZoomDirection int

const (
	ZoomIn ZoomDirection = iota
	ZoomOut
)

// Wheel and button zoom use deliberately different multiplicative factors;
// the finer wheel steps are a UX tuning choice, not an inconsistency.
const (
	wheelInFactor  = 1.1
	wheelOutFactor = 0.9

	buttonInFactor  = 1.25
	buttonOutFactor = 0.8

	// jumpScale is the fixed zoom applied when centering on a marker.
	jumpScale = 2.0
)

// Controller drives the viewport from input events. All methods run on the
// UI thread.
type Controller struct {
	view  *viewport.State
	index *marker.Index
	log   zerolog.Logger

	size geometry.Size

	gesture GestureState
	lastPos geometry.Point2D

	active        *marker.Record
	filter        string
	detailVisible bool

	onViewChanged   func()
	onActiveChanged func(*marker.Record)
	onFilterChanged func(string)
	onDetailShow    func(marker.Record)
	onDetailHide    func()
	onSearchClear   func()
}

// New creates a controller over the given viewport and marker index.
func New(view *viewport.State, index *marker.Index, log zerolog.Logger) *Controller {
	return &Controller{
		view:   view,
		index:  index,
		log:    log,
		filter: marker.CategoryAll,
	}
}

// SetContainerSize records the container dimensions in pixels. The size is
// used for clamping, button-zoom pivots, and marker projection.
func (c *Controller) SetContainerSize(width, height float64) {
	c.size = geometry.NewSize(width, height)
}

// OnViewChanged sets the callback invoked after any viewport change.
func (c *Controller) OnViewChanged(fn func()) { c.onViewChanged = fn }

// OnActiveChanged sets the callback invoked when the active marker changes.
// The argument is nil when the active marker is cleared.
func (c *Controller) OnActiveChanged(fn func(*marker.Record)) { c.onActiveChanged = fn }

// OnFilterChanged sets the callback invoked when the category filter changes.
func (c *Controller) OnFilterChanged(fn func(string)) { c.onFilterChanged = fn }

// OnDetailShow sets the callback invoked to display marker detail.
func (c *Controller) OnDetailShow(fn func(marker.Record)) { c.onDetailShow = fn }

// OnDetailHide sets the callback invoked to hide marker detail.
func (c *Controller) OnDetailHide(fn func()) { c.onDetailHide = fn }

// OnSearchClear sets the callback invoked when search state must be cleared.
func (c *Controller) OnSearchClear(fn func()) { c.onSearchClear = fn }

// Gesture returns the current pan state machine state.
func (c *Controller) Gesture() GestureState {
	return c.gesture
}

// ActiveMarker returns the active marker, or nil when none is active.
func (c *Controller) ActiveMarker() *marker.Record {
	return c.active
}

// Filter returns the selected category filter.
func (c *Controller) Filter() string {
	return c.filter
}

// VisibleMarkers yields the records under the selected category filter.
func (c *Controller) VisibleMarkers() iter.Seq[marker.Record] {
	return c.index.FilterByCategory(c.filter)
}

// Handle feeds a pointer event through the pan state machine. A down on the
// swipe separator never enters Dragging; an up anywhere always leaves it.
func (c *Controller) Handle(ev input.Event) {
	switch ev.Kind {
	case input.PointerDown:
		if c.gesture == Idle && ev.Target == input.TargetMap {
			c.gesture = Dragging
			c.lastPos = ev.Pos
		}
	case input.PointerMove:
		if c.gesture != Dragging {
			return
		}
		delta := ev.Pos.Sub(c.lastPos)
		c.lastPos = ev.Pos
		c.view.Pan(delta.X, delta.Y)
		c.view.Clamp(c.size.Width, c.size.Height)
		c.hideDetail()
		c.viewChanged()
	case input.PointerUp:
		c.gesture = Idle
	}
}

// WheelZoom zooms about the cursor position (container-local pixels).
// Scrolling up (negative delta) zooms in.
func (c *Controller) WheelZoom(deltaY float64, cursor geometry.Point2D) {
	factor := wheelOutFactor
	if deltaY < 0 {
		factor = wheelInFactor
	}
	c.zoomBy(factor, cursor)
}

// ButtonZoom zooms about the container center; there is no meaningful cursor
// position for a button click.
func (c *Controller) ButtonZoom(dir ZoomDirection) {
	factor := buttonOutFactor
	if dir == ZoomIn {
		factor = buttonInFactor
	}
	c.zoomBy(factor, c.size.Center())
}

func (c *Controller) zoomBy(factor float64, pivot geometry.Point2D) {
	// Reaching the scale limit is success: SetScale reports no change and
	// the view is left alone.
	if !c.view.SetScale(c.view.Scale*factor, pivot) {
		return
	}
	c.view.Clamp(c.size.Width, c.size.Height)
	c.viewChanged()
}

// JumpTo centers the viewport on a marker at a fixed scale, makes it the
// active marker, narrows the filter to its category so it is guaranteed
// visible, and requests its detail display. Any in-progress search state is
// cleared. The translation is computed directly rather than through the
// pivot formula: the goal is to center an arbitrary point, not to preserve a
// currently-visible one.
func (c *Controller) JumpTo(rec marker.Record) {
	c.searchCleared()

	// Switch the filter before anything looks the marker up, so the target
	// can never be filtered out of the rendered set.
	c.setFilter(rec.Category)

	markerPx := geometry.NewPoint2D(rec.Left/100*c.size.Width, rec.Top/100*c.size.Height)
	c.view.Scale = jumpScale
	c.view.Translate = c.size.Center().Sub(markerPx.Scale(jumpScale))
	c.view.Clamp(c.size.Width, c.size.Height)

	c.setActive(&rec)
	c.showDetail(rec)
	c.viewChanged()

	c.log.Debug().Str("marker", rec.Name).Str("category", rec.Category).Msg("jumped to marker")
}

// ActivateMarker marks a clicked marker active and requests its detail
// display without moving the viewport.
func (c *Controller) ActivateMarker(rec marker.Record) {
	c.setActive(&rec)
	c.showDetail(rec)
}

// ResetView returns to scale 1 at the origin and clears the active marker.
// The selected category filter persists across a reset.
func (c *Controller) ResetView() {
	c.view.Reset()
	c.setActive(nil)
	c.hideDetail()
	c.viewChanged()
}

// SelectCategory changes the category filter and clears the active marker.
func (c *Controller) SelectCategory(category string) {
	c.setFilter(category)
	c.setActive(nil)
	c.hideDetail()
}

func (c *Controller) setFilter(category string) {
	if c.filter == category {
		return
	}
	c.filter = category
	if c.onFilterChanged != nil {
		c.onFilterChanged(category)
	}
}

func (c *Controller) setActive(rec *marker.Record) {
	c.active = rec
	if c.onActiveChanged != nil {
		c.onActiveChanged(rec)
	}
}

func (c *Controller) showDetail(rec marker.Record) {
	c.detailVisible = true
	if c.onDetailShow != nil {
		c.onDetailShow(rec)
	}
}

func (c *Controller) hideDetail() {
	if !c.detailVisible {
		return
	}
	c.detailVisible = false
	if c.onDetailHide != nil {
		c.onDetailHide()
	}
}

func (c *Controller) viewChanged() {
	if c.onViewChanged != nil {
		c.onViewChanged()
	}
}

func (c *Controller) searchCleared() {
	if c.onSearchClear != nil {
		c.onSearchClear()
	}
}

// Package mapview provides the map widget: it renders the base map, the
// swipeable overlay and the marker glyphs, and translates pointer input into
// the gesture events consumed by the camera and overlay controllers.
package mapview

import (
	"math"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ODBDEVOPS/azeroth-map-app/internal/app"
	"github.com/ODBDEVOPS/azeroth-map-app/internal/input"
	"github.com/ODBDEVOPS/azeroth-map-app/pkg/geometry"
)

const (
	markerRadius     = 6
	activeRadius     = 9
	markerHitSlop    = 10
	separatorHitSlop = 8
)

// MapView is the interactive map widget.
type MapView struct {
	widget.BaseWidget

	state  *app.State
	raster *fynecanvas.Raster

	// Container size in logical units; the raster draw callback works in
	// device pixels and converts.
	size geometry.Size

	// pointerDown tracks whether a down event has been dispatched for the
	// gesture in flight; touch drags arrive without a MouseDown.
	pointerDown bool

	onMarkerTapped func()
}

// New creates the map view and refreshes it whenever the model changes.
func New(state *app.State) *MapView {
	mv := &MapView{state: state}
	mv.raster = fynecanvas.NewRaster(mv.draw)
	mv.raster.ScaleMode = fynecanvas.ImageScaleSmooth
	mv.ExtendBaseWidget(mv)

	for _, ev := range []app.EventType{
		app.EventViewChanged,
		app.EventMarkersLoaded,
		app.EventFilterChanged,
		app.EventOverlayChanged,
		app.EventActiveMarkerChanged,
	} {
		state.On(ev, func(interface{}) { mv.raster.Refresh() })
	}
	return mv
}

// CreateRenderer implements fyne.Widget.
func (mv *MapView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(mv.raster)
}

// MinSize implements fyne.Widget.
func (mv *MapView) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

// Resize keeps the camera's container dimensions current and re-clamps the
// viewport so resizing can never expose space beyond the map edge.
func (mv *MapView) Resize(size fyne.Size) {
	mv.BaseWidget.Resize(size)
	mv.size = geometry.NewSize(float64(size.Width), float64(size.Height))
	mv.state.Camera.SetContainerSize(mv.size.Width, mv.size.Height)
	mv.state.View.Clamp(mv.size.Width, mv.size.Height)
}

// MouseDown starts a pan or swipe gesture depending on what is under the
// pointer.
func (mv *MapView) MouseDown(ev *desktop.MouseEvent) {
	if mv.pointerDown {
		return
	}
	mv.pointerDown = true
	mv.dispatch(input.Event{
		Kind:   input.PointerDown,
		Target: mv.targetAt(ev.Position),
		Pos:    toPoint(ev.Position),
	})
}

// MouseUp ends any gesture in flight. Fyne delivers the release to the
// widget that saw the press even when the pointer has left it, so a drag
// ending off-widget still completes cleanly.
func (mv *MapView) MouseUp(ev *desktop.MouseEvent) {
	mv.pointerDown = false
	mv.dispatch(input.Event{Kind: input.PointerUp, Pos: toPoint(ev.Position)})
}

// Dragged feeds pointer movement into the gesture state machines. Touch
// drags begin without a MouseDown; the first drag event synthesizes the
// down at the drag origin.
func (mv *MapView) Dragged(ev *fyne.DragEvent) {
	if !mv.pointerDown {
		mv.pointerDown = true
		origin := fyne.NewPos(ev.Position.X-ev.Dragged.DX, ev.Position.Y-ev.Dragged.DY)
		mv.dispatch(input.Event{
			Kind:   input.PointerDown,
			Target: mv.targetAt(origin),
			Pos:    toPoint(origin),
		})
	}
	mv.dispatch(input.Event{Kind: input.PointerMove, Pos: toPoint(ev.Position)})
}

// DragEnd implements fyne.Draggable.
func (mv *MapView) DragEnd() {
	mv.pointerDown = false
	mv.dispatch(input.Event{Kind: input.PointerUp})
}

// Scrolled zooms about the cursor. Scrolling up zooms in, matching the
// wheel convention where a negative delta means "towards the screen".
func (mv *MapView) Scrolled(ev *fyne.ScrollEvent) {
	mv.state.Camera.WheelZoom(float64(-ev.Scrolled.DY), toPoint(ev.Position))
}

// Tapped activates the marker under the tap, if any.
func (mv *MapView) Tapped(ev *fyne.PointEvent) {
	if rec, ok := mv.hitTest(toPoint(ev.Position)); ok {
		mv.state.Camera.ActivateMarker(rec)
		if mv.onMarkerTapped != nil {
			mv.onMarkerTapped()
		}
	}
}

// OnMarkerTapped sets a callback fired after a marker click is handled.
func (mv *MapView) OnMarkerTapped(fn func()) {
	mv.onMarkerTapped = fn
}

// Refresh redraws the map.
func (mv *MapView) Refresh() {
	mv.raster.Refresh()
}

// dispatch routes an event to both gesture state machines; each one ignores
// events that are not for it, which keeps pan and swipe mutually exclusive.
func (mv *MapView) dispatch(ev input.Event) {
	mv.state.Camera.Handle(ev)
	mv.state.Overlay.Handle(ev, mv.size.Width)
}

// targetAt classifies a pointer-down position: downs near the swipe
// separator belong to the swipe gesture, everything else pans the map.
func (mv *MapView) targetAt(pos fyne.Position) input.Target {
	if mv.state.OverlayMap == nil {
		return input.TargetMap
	}
	sepX := mv.size.Width * mv.state.Overlay.State().SwipePercent / 100
	if math.Abs(float64(pos.X)-sepX) <= separatorHitSlop {
		return input.TargetSeparator
	}
	return input.TargetMap
}

func toPoint(pos fyne.Position) geometry.Point2D {
	return geometry.NewPoint2D(float64(pos.X), float64(pos.Y))
}

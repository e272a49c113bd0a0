// Package app provides application state and events.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/ODBDEVOPS/azeroth-map-app/internal/camera"
	"github.com/ODBDEVOPS/azeroth-map-app/internal/data"
	"github.com/ODBDEVOPS/azeroth-map-app/internal/maplayer"
	"github.com/ODBDEVOPS/azeroth-map-app/internal/marker"
	"github.com/ODBDEVOPS/azeroth-map-app/internal/overlay"
	"github.com/ODBDEVOPS/azeroth-map-app/internal/viewport"
)

// EventType identifies different application events.
type EventType int

const (
	EventMarkersLoaded EventType = iota
	EventViewChanged
	EventActiveMarkerChanged
	EventFilterChanged
	EventOverlayChanged
	EventDetailShown
	EventDetailHidden
	EventSearchCleared
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the application state: the marker index, the viewport and its
// camera controller, the overlay controller, and the loaded map images. The
// model itself is single-threaded; the mutex only guards listener
// registration.
type State struct {
	mu sync.RWMutex

	Log zerolog.Logger

	Index   *marker.Index
	View    *viewport.State
	Camera  *camera.Controller
	Overlay *overlay.Controller

	BaseMap    *maplayer.Layer
	OverlayMap *maplayer.Layer

	listeners map[EventType][]EventListener
}

// NewState creates the application state and bridges the controller
// callbacks into application events.
func NewState(log zerolog.Logger) *State {
	s := &State{
		Log:       log,
		Index:     marker.NewIndex(),
		View:      viewport.New(),
		Overlay:   overlay.New(),
		listeners: make(map[EventType][]EventListener),
	}
	s.Camera = camera.New(s.View, s.Index, log)

	s.Camera.OnViewChanged(func() { s.Emit(EventViewChanged, nil) })
	s.Camera.OnActiveChanged(func(r *marker.Record) { s.Emit(EventActiveMarkerChanged, r) })
	s.Camera.OnFilterChanged(func(cat string) { s.Emit(EventFilterChanged, cat) })
	s.Camera.OnDetailShow(func(r marker.Record) { s.Emit(EventDetailShown, r) })
	s.Camera.OnDetailHide(func() { s.Emit(EventDetailHidden, nil) })
	s.Camera.OnSearchClear(func() { s.Emit(EventSearchCleared, nil) })
	s.Overlay.OnChanged(func(st overlay.State) { s.Emit(EventOverlayChanged, st) })

	return s
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// LoadMarkers fetches marker records from the data source reference. A
// failure is recovered locally: it is logged, the marker set stays empty,
// and the viewer remains usable for pan/zoom/overlay.
func (s *State) LoadMarkers(ref string) {
	records, err := data.Fetch(ref)
	if err != nil {
		s.Log.Warn().Err(err).Str("source", ref).Msg("marker data unavailable; continuing with no markers")
		s.Index.Load(nil)
	} else {
		s.Index.Load(records)
		s.Log.Info().Int("markers", s.Index.Len()).Str("source", ref).Msg("marker data loaded")
	}
	s.Emit(EventMarkersLoaded, s.Index.Len())
}

// LoadMaps loads the base and overlay map images. Either may fail
// independently; the viewer runs with whatever loaded, so a missing overlay
// image only disables the overlay features.
func (s *State) LoadMaps(basePath, overlayPath string) {
	base, err := maplayer.Load(basePath)
	if err != nil {
		s.Log.Error().Err(err).Str("path", basePath).Msg("base map image unavailable")
	} else {
		s.BaseMap = base
	}

	if overlayPath == "" {
		return
	}
	ovl, err := maplayer.Load(overlayPath)
	if err != nil {
		s.Log.Warn().Err(err).Str("path", overlayPath).Msg("overlay map image unavailable")
		return
	}
	s.OverlayMap = ovl
}

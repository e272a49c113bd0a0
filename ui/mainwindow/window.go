// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ODBDEVOPS/azeroth-map-app/internal/app"
	"github.com/ODBDEVOPS/azeroth-map-app/internal/camera"
	"github.com/ODBDEVOPS/azeroth-map-app/internal/config"
	"github.com/ODBDEVOPS/azeroth-map-app/internal/marker"
	"github.com/ODBDEVOPS/azeroth-map-app/ui/mapview"
)

// maxSearchResults caps the results list; the search itself is lazy, so
// collecting stops once the list is full.
const maxSearchResults = 12

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app   fyne.App
	state *app.State

	mapView *mapview.MapView

	searchEntry   *widget.Entry
	searchResults *widget.List
	results       []marker.Record

	categorySelect *widget.Select

	detailTitle *widget.Label
	detailPos   *widget.Label
	detailDesc  *widget.Label
	detailCard  *widget.Card

	statusBar *widget.Label
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State) *MainWindow {
	win := fyneApp.NewWindow("Azeroth Map")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
	}

	mw.setupUI()
	mw.setupEventHandlers()

	win.SetCloseIntercept(func() {
		mw.savePreferences()
		win.Close()
	})

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.mapView = mapview.New(mw.state)

	mw.statusBar = widget.NewLabel("Ready")

	toolbar := mw.createToolbar()
	sidePanel := mw.createSidePanel()

	mapArea := container.NewBorder(
		toolbar, // top
		nil, nil, nil,
		mw.mapView,
	)

	split := container.NewHSplit(sidePanel, mapArea)
	split.SetOffset(0.24)

	content := container.NewBorder(
		nil,
		container.NewPadded(mw.statusBar), // bottom
		nil, nil,
		split,
	)

	mw.SetContent(content)
}

// createToolbar creates the toolbar with zoom controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	zoomOutBtn := widget.NewButton("-", func() {
		mw.state.Camera.ButtonZoom(camera.ZoomOut)
	})
	zoomInBtn := widget.NewButton("+", func() {
		mw.state.Camera.ButtonZoom(camera.ZoomIn)
	})
	resetBtn := widget.NewButton("Reset view", func() {
		mw.state.Camera.ResetView()
	})

	return container.NewHBox(
		widget.NewLabel("Zoom:"),
		zoomOutBtn,
		zoomInBtn,
		resetBtn,
	)
}

// createSidePanel builds search, category filter, overlay controls, and the
// marker detail display.
func (mw *MainWindow) createSidePanel() fyne.CanvasObject {
	mw.searchEntry = widget.NewEntry()
	mw.searchEntry.SetPlaceHolder("Search markers…")
	mw.searchEntry.OnChanged = mw.updateSearch

	mw.searchResults = widget.NewList(
		func() int { return len(mw.results) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(mw.results) {
				r := mw.results[id]
				obj.(*widget.Label).SetText(fmt.Sprintf("%s — %s", r.Name, r.PositionLabel))
			}
		},
	)
	mw.searchResults.OnSelected = func(id widget.ListItemID) {
		if id < len(mw.results) {
			rec := mw.results[id]
			mw.searchResults.UnselectAll()
			mw.state.Camera.JumpTo(rec)
		}
	}
	mw.searchResults.Hide()

	mw.categorySelect = widget.NewSelect([]string{marker.CategoryAll}, func(sel string) {
		mw.state.Camera.SelectCategory(sel)
	})
	mw.categorySelect.Selected = marker.CategoryAll

	overlayBox := mw.createOverlayControls()

	mw.detailTitle = widget.NewLabel("")
	mw.detailTitle.TextStyle = fyne.TextStyle{Bold: true}
	mw.detailPos = widget.NewLabel("")
	mw.detailDesc = widget.NewLabel("")
	mw.detailDesc.Wrapping = fyne.TextWrapWord
	mw.detailCard = widget.NewCard("Marker", "", container.NewVBox(mw.detailTitle, mw.detailPos, mw.detailDesc))
	mw.detailCard.Hide()

	return container.NewVBox(
		widget.NewLabel("Search"),
		mw.searchEntry,
		mw.searchResults,
		widget.NewSeparator(),
		widget.NewLabel("Category"),
		mw.categorySelect,
		widget.NewSeparator(),
		overlayBox,
		mw.detailCard,
	)
}

// createOverlayControls builds the overlay sliders. Each slider declares its
// own range; values are applied as-is.
func (mw *MainWindow) createOverlayControls() fyne.CanvasObject {
	ovl := mw.state.Overlay
	st := ovl.State()

	opacity := widget.NewSlider(0, 1)
	opacity.Step = 0.05
	opacity.Value = st.Opacity
	opacity.OnChanged = ovl.SetOpacity

	scale := widget.NewSlider(0.5, 2)
	scale.Step = 0.05
	scale.Value = st.Scale
	scale.OnChanged = ovl.SetScale

	offsetX := widget.NewSlider(-25, 25)
	offsetX.Step = 0.5
	offsetX.Value = st.OffsetXPercent
	offsetX.OnChanged = ovl.SetOffsetX

	offsetY := widget.NewSlider(-25, 25)
	offsetY.Step = 0.5
	offsetY.Value = st.OffsetYPercent
	offsetY.OnChanged = ovl.SetOffsetY

	box := container.NewVBox(
		widget.NewLabel("Overlay"),
		widget.NewForm(
			widget.NewFormItem("Opacity", opacity),
			widget.NewFormItem("Scale", scale),
			widget.NewFormItem("Offset X", offsetX),
			widget.NewFormItem("Offset Y", offsetY),
		),
	)
	if mw.state.OverlayMap == nil {
		box.Hide()
	}
	return box
}

// setupEventHandlers subscribes the window chrome to application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventMarkersLoaded, func(interface{}) {
		mw.refreshCategories()
		mw.updateStatus()
	})

	mw.state.On(app.EventViewChanged, func(interface{}) {
		mw.updateStatus()
	})

	mw.state.On(app.EventFilterChanged, func(data interface{}) {
		if cat, ok := data.(string); ok && mw.categorySelect.Selected != cat {
			mw.categorySelect.SetSelected(cat)
		}
	})

	mw.state.On(app.EventSearchCleared, func(interface{}) {
		if mw.searchEntry.Text != "" {
			mw.searchEntry.SetText("")
		}
	})

	mw.state.On(app.EventDetailShown, func(data interface{}) {
		rec, ok := data.(marker.Record)
		if !ok {
			return
		}
		mw.detailTitle.SetText(rec.Name)
		mw.detailPos.SetText(rec.PositionLabel)
		mw.detailDesc.SetText(rec.Description)
		mw.detailCard.Show()
	})

	mw.state.On(app.EventDetailHidden, func(interface{}) {
		mw.detailCard.Hide()
	})
}

// refreshCategories rebuilds the filter options after a data (re)load,
// preserving the selection when its category still exists.
func (mw *MainWindow) refreshCategories() {
	options := append([]string{marker.CategoryAll}, mw.state.Index.Categories()...)
	selected := mw.state.Camera.Filter()

	mw.categorySelect.Options = options
	found := false
	for _, opt := range options {
		if opt == selected {
			found = true
			break
		}
	}
	if !found {
		selected = marker.CategoryAll
		mw.state.Camera.SelectCategory(selected)
	}
	mw.categorySelect.Selected = selected
	mw.categorySelect.Refresh()
}

// RestoreLastCategory applies the persisted category filter once markers are
// available.
func (mw *MainWindow) RestoreLastCategory() {
	last := config.GetString(config.KeyLastCategory)
	if last == "" || last == marker.CategoryAll {
		return
	}
	for _, cat := range mw.state.Index.Categories() {
		if cat == last {
			mw.categorySelect.SetSelected(last)
			return
		}
	}
}

func (mw *MainWindow) updateSearch(query string) {
	mw.results = mw.results[:0]
	for rec := range mw.state.Index.Search(query) {
		mw.results = append(mw.results, rec)
		if len(mw.results) == maxSearchResults {
			break
		}
	}

	if len(mw.results) == 0 {
		mw.searchResults.Hide()
	} else {
		mw.searchResults.Show()
	}
	mw.searchResults.Refresh()
}

func (mw *MainWindow) updateStatus() {
	mw.statusBar.SetText(fmt.Sprintf("Zoom %.0f%%  ·  %d markers",
		mw.state.View.Scale*100, mw.state.Index.Len()))
}

// savePreferences persists UI choices that survive restarts.
func (mw *MainWindow) savePreferences() {
	size := mw.Canvas().Size()
	config.Set(config.KeyWindowWidth, int(size.Width))
	config.Set(config.KeyWindowHeight, int(size.Height))
	config.Set(config.KeyLastCategory, mw.state.Camera.Filter())
	if err := config.Save(""); err != nil {
		mw.state.Log.Warn().Err(err).Msg("could not save preferences")
	}
}

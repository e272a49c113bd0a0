// Package main provides the entry point for the Azeroth Map application.
package main

import (
	"os"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/ODBDEVOPS/azeroth-map-app/internal/app"
	"github.com/ODBDEVOPS/azeroth-map-app/internal/config"
	"github.com/ODBDEVOPS/azeroth-map-app/internal/data"
	"github.com/ODBDEVOPS/azeroth-map-app/internal/logging"
	"github.com/ODBDEVOPS/azeroth-map-app/internal/version"
	"github.com/ODBDEVOPS/azeroth-map-app/ui/mainwindow"
)

const appTitle = "Azeroth Map"

func main() {
	if err := config.Load(""); err != nil {
		// The app runs fine on defaults; a broken config file is worth a
		// message but not a refusal to start.
		os.Stderr.WriteString("config: " + err.Error() + "\n")
	}

	log := logging.New(config.GetString(config.KeyLogLevel))
	log.Info().Str("version", version.Version).Msg("starting " + appTitle)

	fyneApp := fyneapp.NewWithID("com.odbdevops.azerothmap")
	fyneApp.Settings().SetTheme(&app.MapTheme{})

	state := app.NewState(log)
	state.LoadMaps(config.GetString(config.KeyBaseMap), config.GetString(config.KeyOverlayMap))
	applyOverlayConfig(state)

	win := mainwindow.New(fyneApp, state)
	win.Resize(fyne.NewSize(
		float32(config.GetInt(config.KeyWindowWidth)),
		float32(config.GetInt(config.KeyWindowHeight)),
	))

	// A data reference on the command line overrides the configured one.
	markerRef := config.GetString(config.KeyMarkerData)
	if len(os.Args) > 1 {
		markerRef = os.Args[1]
	}
	state.LoadMarkers(markerRef)
	win.RestoreLastCategory()

	if watcher := setupWatcher(state, markerRef); watcher != nil {
		defer watcher.Close()
	}

	win.ShowAndRun()
}

// applyOverlayConfig seeds the overlay controls from the persisted settings.
func applyOverlayConfig(state *app.State) {
	state.Overlay.SetOpacity(config.GetFloat(config.KeyOverlayOpacity))
	state.Overlay.SetScale(config.GetFloat(config.KeyOverlayScale))
	state.Overlay.SetOffsetX(config.GetFloat(config.KeyOverlayOffsetX))
	state.Overlay.SetOffsetY(config.GetFloat(config.KeyOverlayOffsetY))
}

// setupWatcher reloads marker data when the file changes on disk. URLs are
// not watchable, and watching can be turned off in the config.
func setupWatcher(state *app.State, ref string) *data.Watcher {
	if !config.GetBool(config.KeyWatchData) || !data.IsWatchable(ref) {
		return nil
	}

	watcher, err := data.Watch(ref, state.Log, func() {
		// The reload mutates model state the renderer reads, so marshal it
		// onto the Fyne main thread.
		fyne.Do(func() {
			state.Log.Info().Str("file", ref).Msg("reloading marker data")
			state.LoadMarkers(ref)
		})
	})
	if err != nil {
		state.Log.Warn().Err(err).Str("file", ref).Msg("could not watch marker data")
		return nil
	}

	state.Log.Info().Str("file", ref).Msg("watching marker data")
	return watcher
}

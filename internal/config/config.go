// Package config reads application settings from an optional JSON config
// file and sets default values for everything else.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	appDirName = "azeroth-map-app"
	fileName   = "config.json"
)

// Keys understood by the config file.
const (
	KeyLogLevel       = "logLevel"
	KeyWindowWidth    = "window.width"
	KeyWindowHeight   = "window.height"
	KeyMarkerData     = "data.markers"
	KeyWatchData      = "data.watch"
	KeyBaseMap        = "map.base"
	KeyOverlayMap     = "map.overlay"
	KeyOverlayOpacity = "overlay.opacity"
	KeyOverlayScale   = "overlay.scale"
	KeyOverlayOffsetX = "overlay.offsetX"
	KeyOverlayOffsetY = "overlay.offsetY"
	KeyLastCategory   = "ui.lastCategory"
)

// Load reads the config file from configDir (or the user config dir when
// empty) after registering defaults. A missing file is not an error; the
// defaults carry the application.
func Load(configDir string) error {
	viper.SetDefault(KeyLogLevel, "info")

	viper.SetDefault(KeyWindowWidth, 1280)
	viper.SetDefault(KeyWindowHeight, 800)

	viper.SetDefault(KeyMarkerData, "assets/markers.json")
	viper.SetDefault(KeyWatchData, true)
	viper.SetDefault(KeyBaseMap, "assets/azeroth.jpg")
	viper.SetDefault(KeyOverlayMap, "assets/azeroth_cataclysm.jpg")

	viper.SetDefault(KeyOverlayOpacity, 0.5)
	viper.SetDefault(KeyOverlayScale, 1.0)
	viper.SetDefault(KeyOverlayOffsetX, 0.0)
	viper.SetDefault(KeyOverlayOffsetY, 0.0)

	viper.SetDefault(KeyLastCategory, "all")

	if configDir == "" {
		configDir = defaultDir()
	}
	viper.SetConfigName(strings.TrimSuffix(fileName, filepath.Ext(fileName)))
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Save writes the current settings back to the config file so preferences
// like the last selected category survive restarts.
func Save(configDir string) error {
	if configDir == "" {
		configDir = defaultDir()
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}
	return viper.WriteConfigAs(filepath.Join(configDir, fileName))
}

// Set stores a value for later Save.
func Set(key string, value any) {
	viper.Set(key, value)
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetFloat returns a float64 config value.
func GetFloat(key string) float64 {
	return viper.GetFloat64(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

func defaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, appDirName)
}

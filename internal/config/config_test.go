package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	viper.Reset()
	if err := Load(t.TempDir()); err != nil {
		t.Fatalf("Load with no config file: %v", err)
	}

	if got := GetString(KeyLogLevel); got != "info" {
		t.Errorf("logLevel = %q, want info", got)
	}
	if got := GetFloat(KeyOverlayOpacity); got != 0.5 {
		t.Errorf("overlay.opacity = %v, want 0.5", got)
	}
	if got := GetString(KeyLastCategory); got != "all" {
		t.Errorf("ui.lastCategory = %q, want all", got)
	}
	if !GetBool(KeyWatchData) {
		t.Error("data.watch default = false, want true")
	}
}

func TestLoadReadsFileOverrides(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	cfg := `{"logLevel":"debug","overlay":{"opacity":0.75},"ui":{"lastCategory":"Capitals"}}`
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Load(dir); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := GetString(KeyLogLevel); got != "debug" {
		t.Errorf("logLevel = %q, want debug", got)
	}
	if got := GetFloat(KeyOverlayOpacity); got != 0.75 {
		t.Errorf("overlay.opacity = %v, want 0.75", got)
	}
	if got := GetString(KeyLastCategory); got != "Capitals" {
		t.Errorf("ui.lastCategory = %q, want Capitals", got)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	if err := Load(dir); err != nil {
		t.Fatalf("Load: %v", err)
	}

	Set(KeyLastCategory, "Dungeons")
	if err := Save(dir); err != nil {
		t.Fatalf("Save: %v", err)
	}

	viper.Reset()
	if err := Load(dir); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := GetString(KeyLastCategory); got != "Dungeons" {
		t.Errorf("ui.lastCategory after round trip = %q, want Dungeons", got)
	}
}

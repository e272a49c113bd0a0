package maplayer

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "map.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTestPNG(t, 40, 25)

	layer, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if layer.Width() != 40 || layer.Height() != 25 {
		t.Errorf("size = %dx%d, want 40x25", layer.Width(), layer.Height())
	}
	if !layer.Visible || layer.Opacity != 1.0 {
		t.Errorf("defaults = visible %v opacity %v, want true 1.0", layer.Visible, layer.Opacity)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestIsSupportedFormat(t *testing.T) {
	for path, want := range map[string]bool{
		"azeroth.jpg":  true,
		"azeroth.PNG":  true,
		"azeroth.tiff": false,
		"azeroth":      false,
	} {
		if got := IsSupportedFormat(path); got != want {
			t.Errorf("IsSupportedFormat(%q) = %v, want %v", path, got, want)
		}
	}
}

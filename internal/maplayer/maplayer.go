// Package maplayer provides image loading for the base and overlay map
// layers.
package maplayer

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/ODBDEVOPS/azeroth-map-app/pkg/geometry"
)

// Layer is a single map image with display settings.
type Layer struct {
	Path    string      // Original file path
	Image   image.Image // Loaded image data
	Visible bool
	Opacity float64 // 0.0 - 1.0
}

// NewLayer creates a Layer with default settings.
func NewLayer() *Layer {
	return &Layer{Visible: true, Opacity: 1.0}
}

// Load loads a map image from the specified path.
func Load(path string) (*Layer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode map image: %w", err)
	}

	layer := NewLayer()
	layer.Path = path
	layer.Image = img
	return layer, nil
}

// Width returns the image width in pixels.
func (l *Layer) Width() int {
	if l.Image == nil {
		return 0
	}
	return l.Image.Bounds().Dx()
}

// Height returns the image height in pixels.
func (l *Layer) Height() int {
	if l.Image == nil {
		return 0
	}
	return l.Image.Bounds().Dy()
}

// Size returns the image dimensions.
func (l *Layer) Size() geometry.Size {
	return geometry.NewSize(float64(l.Width()), float64(l.Height()))
}

// SupportedFormats returns the list of supported image formats.
func SupportedFormats() []string {
	return []string{".png", ".jpg", ".jpeg"}
}

// IsSupportedFormat checks if the given path has a supported image format.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}

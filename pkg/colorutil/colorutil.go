// Package colorutil provides shared color utilities for the map viewer.
package colorutil

import (
	"hash/fnv"
	"image/color"
	"math"
)

// Common glyph colors used throughout the application.
var (
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gold   = color.RGBA{R: 255, G: 213, B: 0, A: 255}
	Red    = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	Green  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// HSVToRGB converts HSV (H 0-360, S 0-1, V 0-1) to an opaque RGBA color.
func HSVToRGB(h, s, v float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.RGBA{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
		A: 255,
	}
}

// CategoryColor returns a stable, saturated glyph color for a marker
// category. Categories get distinct hues by hashing their name, so colors
// survive data reloads without any stored palette.
func CategoryColor(category string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(category))
	hue := float64(h.Sum32() % 360)
	return HSVToRGB(hue, 0.75, 0.95)
}

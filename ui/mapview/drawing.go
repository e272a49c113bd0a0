package mapview

import (
	"image"
	"image/color"
)

// fillCircle draws a filled circle centered at (cx, cy).
func fillCircle(img *image.RGBA, cx, cy, r int, col color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				setPixel(img, cx+dx, cy+dy, col)
			}
		}
	}
}

// drawRing draws a one-pixel circle outline centered at (cx, cy).
func drawRing(img *image.RGBA, cx, cy, r int, col color.RGBA) {
	inner := (r - 1) * (r - 1)
	outer := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d := dx*dx + dy*dy
			if d > inner && d <= outer {
				setPixel(img, cx+dx, cy+dy, col)
			}
		}
	}
}

// drawVLine draws a vertical line of the given width spanning the image
// height.
func drawVLine(img *image.RGBA, x, width int, col color.RGBA) {
	b := img.Bounds()
	for dx := 0; dx < width; dx++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			setPixel(img, x+dx, y, col)
		}
	}
}

func setPixel(img *image.RGBA, x, y int, col color.RGBA) {
	if (image.Point{X: x, Y: y}).In(img.Bounds()) {
		img.SetRGBA(x, y, col)
	}
}

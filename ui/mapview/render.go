package mapview

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/ODBDEVOPS/azeroth-map-app/pkg/colorutil"
	"github.com/ODBDEVOPS/azeroth-map-app/pkg/geometry"
)

// backgroundColor shows through where the map does not cover the container;
// with the clamp invariants that is only before the base image loads.
var backgroundColor = color.RGBA{R: 24, G: 28, B: 34, A: 255}

var separatorColor = color.RGBA{R: 235, G: 235, B: 235, A: 255}

// draw is the raster drawing function. It works in device pixels; pointer
// events and the viewport state are in logical units, so screen coordinates
// are multiplied by the pixel density before rasterizing.
func (mv *MapView) draw(w, h int) image.Image {
	output := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(output, output.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	if w == 0 || h == 0 {
		return output
	}

	logical := mv.size
	if logical.Width <= 0 || logical.Height <= 0 {
		logical = geometry.NewSize(float64(w), float64(h))
	}
	k := float64(w) / logical.Width

	mv.drawBase(output, w, h, k)
	mv.drawOverlayLayer(output, w, h, k)
	mv.drawMarkers(output, logical, k)

	return output
}

// drawBase renders the base map under the viewport transform. At scale 1 the
// map exactly fills the container; zoomed in, the destination rectangle
// extends past the container and the scaler clips it.
func (mv *MapView) drawBase(output *image.RGBA, w, h int, k float64) {
	base := mv.state.BaseMap
	if base == nil || base.Image == nil || !base.Visible {
		return
	}

	view := mv.state.View
	dst := image.Rect(
		round(view.Translate.X*k),
		round(view.Translate.Y*k),
		round(view.Translate.X*k+float64(w)*view.Scale),
		round(view.Translate.Y*k+float64(h)*view.Scale),
	)
	xdraw.ApproxBiLinear.Scale(output, dst, base.Image, base.Image.Bounds(), xdraw.Src, nil)
}

// drawOverlayLayer renders the overlay image with its independent
// opacity/scale/offset transform, clipped to the right of the swipe
// separator, then draws the separator itself.
func (mv *MapView) drawOverlayLayer(output *image.RGBA, w, h int, k float64) {
	ovl := mv.state.OverlayMap
	if ovl == nil || ovl.Image == nil || !ovl.Visible {
		return
	}
	st := mv.state.Overlay.State()
	view := mv.state.View

	logW := float64(w) / k
	logH := float64(h) / k

	clipX := round(float64(w) * st.SwipePercent / 100)

	if st.Opacity > 0 {
		// Overlay content rectangle in logical units: scaled about the map
		// center, shifted by the percent offsets.
		cw := logW * st.Scale
		ch := logH * st.Scale
		cx := logW/2 + st.OffsetXPercent/100*logW
		cy := logH/2 + st.OffsetYPercent/100*logH

		topLeft := view.Project(geometry.NewPoint2D(cx-cw/2, cy-ch/2))
		dst := image.Rect(
			round(topLeft.X*k),
			round(topLeft.Y*k),
			round((topLeft.X+cw*view.Scale)*k),
			round((topLeft.Y+ch*view.Scale)*k),
		)

		clipped, ok := output.SubImage(image.Rect(clipX, 0, w, h)).(*image.RGBA)
		if ok {
			opacity := &xdraw.Options{
				SrcMask: image.NewUniform(color.Alpha16{A: uint16(st.Opacity * 0xffff)}),
			}
			xdraw.ApproxBiLinear.Scale(clipped, dst, ovl.Image, ovl.Image.Bounds(), xdraw.Over, opacity)
		}
	}

	drawVLine(output, clipX, max(1, round(k)), separatorColor)
}

// drawMarkers projects the filtered marker set to screen and draws a glyph
// per marker, with the active marker enlarged and ringed in gold.
func (mv *MapView) drawMarkers(output *image.RGBA, logical geometry.Size, k float64) {
	view := mv.state.View
	active := mv.state.Camera.ActiveMarker()

	for rec := range mv.state.Camera.VisibleMarkers() {
		content := geometry.NewPoint2D(rec.Left/100*logical.Width, rec.Top/100*logical.Height)
		screen := view.Project(content)

		px := round(screen.X * k)
		py := round(screen.Y * k)
		margin := round(float64(activeRadius)*k) + 3
		if px < -margin || py < -margin ||
			px > output.Rect.Dx()+margin || py > output.Rect.Dy()+margin {
			continue
		}

		col := colorutil.CategoryColor(rec.Category)
		if active != nil && active.Name == rec.Name {
			r := round(float64(activeRadius) * k)
			fillCircle(output, px, py, r, col)
			drawRing(output, px, py, r+2, colorutil.Gold)
			drawRing(output, px, py, r+3, colorutil.Gold)
		} else {
			r := round(float64(markerRadius) * k)
			fillCircle(output, px, py, r, col)
			drawRing(output, px, py, r, colorutil.Black)
		}
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

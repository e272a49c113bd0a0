package mapview

import (
	"math"

	"github.com/ODBDEVOPS/azeroth-map-app/internal/marker"
	"github.com/ODBDEVOPS/azeroth-map-app/pkg/geometry"
)

// hitTest returns the visible marker nearest to a container-local point,
// within the glyph hit slop. Only markers under the current category filter
// participate, so a filtered-out marker can never be clicked.
func (mv *MapView) hitTest(pos geometry.Point2D) (marker.Record, bool) {
	view := mv.state.View

	var best marker.Record
	bestDist := math.MaxFloat64
	found := false

	for rec := range mv.state.Camera.VisibleMarkers() {
		content := geometry.NewPoint2D(rec.Left/100*mv.size.Width, rec.Top/100*mv.size.Height)
		screen := view.Project(content)
		if d := screen.Distance(pos); d <= markerHitSlop && d < bestDist {
			best = rec
			bestDist = d
			found = true
		}
	}
	return best, found
}

package viewport

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/ODBDEVOPS/azeroth-map-app/pkg/geometry"
)

const tol = 1e-9

func TestSetScaleClampsToRange(t *testing.T) {
	for _, requested := range []float64{-3, 0, 0.5, 1, 1.1, 2.5, 4, 5, 100} {
		s := New()
		s.SetScale(requested, geometry.NewPoint2D(100, 100))
		if s.Scale < MinScale || s.Scale > MaxScale {
			t.Errorf("SetScale(%v) left scale %v outside [%v, %v]", requested, s.Scale, MinScale, MaxScale)
		}
	}
}

func TestSetScaleAtLimitIsNoOp(t *testing.T) {
	s := New()
	s.SetScale(MaxScale, geometry.NewPoint2D(300, 200))
	before := *s

	if s.SetScale(10, geometry.NewPoint2D(50, 50)) {
		t.Error("SetScale beyond the max limit reported a change")
	}
	if *s != before {
		t.Errorf("SetScale at limit mutated state: got %+v, want %+v", *s, before)
	}
}

func TestSetScaleKeepsPivotStationary(t *testing.T) {
	pivots := []geometry.Point2D{
		geometry.NewPoint2D(0, 0),
		geometry.NewPoint2D(500, 400),
		geometry.NewPoint2D(123.4, 987.6),
		geometry.NewPoint2D(1000, 800),
	}
	transitions := [][2]float64{{1, 2}, {2, 4}, {4, 1.5}, {1.5, 3.3}, {3.3, 1}}

	for _, pivot := range pivots {
		s := New()
		for _, tr := range transitions {
			s.SetScale(tr[0], pivot)
			content := s.ContentAt(pivot)

			s.SetScale(tr[1], pivot)
			after := s.Project(content)

			if !scalar.EqualWithinAbs(after.X, pivot.X, tol) || !scalar.EqualWithinAbs(after.Y, pivot.Y, tol) {
				t.Errorf("zoom %v->%v about %v moved pivot content to %v", tr[0], tr[1], pivot, after)
			}
		}
	}
}

func TestClampBoundsTranslation(t *testing.T) {
	s := New()
	s.SetScale(2, geometry.Point2D{})
	s.Pan(500, -10000)
	s.Clamp(1000, 800)

	if s.Translate.X != 0 {
		t.Errorf("TranslateX = %v, want 0 (panned right past the left edge)", s.Translate.X)
	}
	if s.Translate.Y != -800 {
		t.Errorf("TranslateY = %v, want -800 (scaled height 1600 covering 800)", s.Translate.Y)
	}
}

func TestClampIsIdempotent(t *testing.T) {
	s := New()
	s.SetScale(3, geometry.NewPoint2D(250, 330))
	s.Pan(-275.5, 41.25)

	s.Clamp(1000, 800)
	once := *s
	s.Clamp(1000, 800)

	if *s != once {
		t.Errorf("second Clamp changed state: got %+v, want %+v", *s, once)
	}
}

func TestScaleOneForcesZeroTranslation(t *testing.T) {
	s := New()
	s.SetScale(4, geometry.NewPoint2D(700, 100))
	s.Pan(-300, -250)
	s.Clamp(1000, 800)
	s.SetScale(1, geometry.NewPoint2D(12, 34))
	s.Clamp(1000, 800)

	if s.Translate != (geometry.Point2D{}) {
		t.Errorf("translation at scale 1 = %+v, want (0,0)", s.Translate)
	}

	s.Pan(55, 66)
	s.Clamp(1000, 800)
	if s.Translate != (geometry.Point2D{}) {
		t.Errorf("translation after pan at scale 1 = %+v, want (0,0)", s.Translate)
	}
}

func TestReset(t *testing.T) {
	s := New()
	s.SetScale(2.5, geometry.NewPoint2D(400, 300))
	s.Pan(-120, -45)
	s.Reset()

	if s.Scale != MinScale || s.Translate != (geometry.Point2D{}) {
		t.Errorf("after Reset: %+v", *s)
	}
}

func TestProjectContentAtRoundTrip(t *testing.T) {
	s := New()
	s.SetScale(2.2, geometry.NewPoint2D(640, 360))
	s.Clamp(1280, 720)

	content := geometry.NewPoint2D(321.5, 78.25)
	back := s.ContentAt(s.Project(content))
	if !scalar.EqualWithinAbs(back.X, content.X, tol) || !scalar.EqualWithinAbs(back.Y, content.Y, tol) {
		t.Errorf("round trip gave %v, want %v", back, content)
	}
}

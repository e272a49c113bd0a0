package overlay

import (
	"testing"

	"github.com/ODBDEVOPS/azeroth-map-app/internal/input"
	"github.com/ODBDEVOPS/azeroth-map-app/pkg/geometry"
)

func sepDown(x float64) input.Event {
	return input.Event{Kind: input.PointerDown, Target: input.TargetSeparator, Pos: geometry.NewPoint2D(x, 0)}
}

func move(x float64) input.Event {
	return input.Event{Kind: input.PointerMove, Pos: geometry.NewPoint2D(x, 0)}
}

func up() input.Event {
	return input.Event{Kind: input.PointerUp}
}

func TestSwipeStateMachine(t *testing.T) {
	c := New()

	if c.Swipe() != Idle {
		t.Fatalf("initial swipe state = %v, want Idle", c.Swipe())
	}

	c.Handle(sepDown(500), 1000)
	if c.Swipe() != Swiping {
		t.Fatalf("state after separator down = %v, want Swiping", c.Swipe())
	}

	c.Handle(move(250), 1000)
	if got := c.State().SwipePercent; got != 25 {
		t.Errorf("swipe percent = %v, want 25", got)
	}

	c.Handle(up(), 1000)
	if c.Swipe() != Idle {
		t.Errorf("state after up = %v, want Idle", c.Swipe())
	}

	c.Handle(move(990), 1000)
	if got := c.State().SwipePercent; got != 25 {
		t.Errorf("move while Idle changed swipe percent to %v", got)
	}
}

func TestSwipeClampsToContainer(t *testing.T) {
	c := New()
	c.Handle(sepDown(500), 1000)

	c.Handle(move(1500), 1000)
	if got := c.State().SwipePercent; got != 100 {
		t.Errorf("swipe percent beyond right edge = %v, want 100", got)
	}

	c.Handle(move(-300), 1000)
	if got := c.State().SwipePercent; got != 0 {
		t.Errorf("swipe percent beyond left edge = %v, want 0", got)
	}
}

func TestMapDownDoesNotStartSwipe(t *testing.T) {
	c := New()
	c.Handle(input.Event{Kind: input.PointerDown, Target: input.TargetMap, Pos: geometry.NewPoint2D(500, 0)}, 1000)
	if c.Swipe() != Idle {
		t.Errorf("state after map down = %v, want Idle", c.Swipe())
	}
}

func TestSliderSettersNotify(t *testing.T) {
	c := New()

	var last State
	calls := 0
	c.OnChanged(func(s State) {
		last = s
		calls++
	})

	c.SetOpacity(0.8)
	c.SetScale(1.5)
	c.SetOffsetX(-2)
	c.SetOffsetY(3)

	if calls != 4 {
		t.Errorf("OnChanged fired %d times, want 4", calls)
	}
	want := State{Opacity: 0.8, Scale: 1.5, OffsetXPercent: -2, OffsetYPercent: 3, SwipePercent: 50}
	if last != want {
		t.Errorf("state = %+v, want %+v", last, want)
	}
}

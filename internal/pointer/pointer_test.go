package pointer

import (
	"math/rand"
	"testing"
)

type sinkState struct {
	x, y    float64
	present bool
	sets    int
	clears  int
}

func (s *sinkState) SetPointer(x, y float64) {
	s.x, s.y, s.present = x, y, true
	s.sets++
}

func (s *sinkState) ClearPointer() {
	s.present = false
	s.clears++
}

func TestAbsentUntilCursorMoves(t *testing.T) {
	var tr Tracker
	sink := &sinkState{}
	tr.Apply(Sample{Cursor: Point{10, 10}}, sink)
	tr.Apply(Sample{Cursor: Point{10, 10}}, sink)
	if sink.present {
		t.Fatal("pointer present without any movement")
	}
	tr.Apply(Sample{Cursor: Point{12, 15}}, sink)
	if !sink.present || sink.x != 12 || sink.y != 15 {
		t.Fatalf("pointer = %+v after move", sink)
	}
}

func TestTouchLifecycle(t *testing.T) {
	var tr Tracker
	sink := &sinkState{}
	frames := []struct {
		sample  Sample
		present bool
		x, y    float64
	}{
		{Sample{Cursor: Point{0, 0}}, false, 0, 0},
		{Sample{Touches: []Point{{100, 200}}}, true, 100, 200},
		{Sample{Touches: []Point{{110, 190}, {5, 5}}}, true, 110, 190},
		{Sample{TouchEnded: true}, false, 0, 0},
		{Sample{}, false, 0, 0},
	}
	for i, f := range frames {
		tr.Apply(f.sample, sink)
		if sink.present != f.present {
			t.Fatalf("frame %d: present = %v, want %v", i, sink.present, f.present)
		}
		if f.present && (sink.x != f.x || sink.y != f.y) {
			t.Fatalf("frame %d: pointer (%f, %f), want (%f, %f)", i, sink.x, sink.y, f.x, f.y)
		}
	}
	if tr.Touching() {
		t.Fatal("still touching after release")
	}
}

func TestTouchEndDoesNotReviveFromStaleCursor(t *testing.T) {
	var tr Tracker
	sink := &sinkState{}
	tr.Apply(Sample{Cursor: Point{50, 50}}, sink)
	tr.Apply(Sample{Cursor: Point{50, 50}, Touches: []Point{{80, 80}}}, sink)
	tr.Apply(Sample{Cursor: Point{80, 80}, TouchEnded: true}, sink)
	tr.Apply(Sample{Cursor: Point{80, 80}}, sink)
	if sink.present {
		t.Fatal("pointer came back after touch end without movement")
	}
}

func TestReleaseWithoutTouchIgnored(t *testing.T) {
	var tr Tracker
	sink := &sinkState{}
	tr.Apply(Sample{Cursor: Point{1, 1}}, sink)
	tr.Apply(Sample{Cursor: Point{2, 2}}, sink)
	tr.Apply(Sample{Cursor: Point{2, 2}, TouchEnded: true}, sink)
	if !sink.present || sink.clears != 0 {
		t.Fatalf("mouse pointer cleared by stray release: %+v", sink)
	}
}

func TestWandererStaysInBounds(t *testing.T) {
	const width, height = 200, 100
	w := NewWanderer(rand.New(rand.NewSource(11)), width, height, 4)
	for i := 0; i < 10000; i++ {
		x, y := w.Next(width, height)
		if x < 0 || x > width || y < 0 || y > height {
			t.Fatalf("frame %d: (%f, %f) out of bounds", i, x, y)
		}
	}
}

func TestWandererFollowsShrink(t *testing.T) {
	w := NewWanderer(rand.New(rand.NewSource(2)), 1000, 1000, 2)
	x, y := w.Next(10, 10)
	if x < 0 || x > 10 || y < 0 || y > 10 {
		t.Fatalf("(%f, %f) outside shrunken viewport", x, y)
	}
}

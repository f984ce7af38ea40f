// Package pointer turns per-frame mouse and touch readings into the single
// pointer coordinate the particle field reacts to.
package pointer

// Point is a screen coordinate in pixels.
type Point struct {
	X, Y int
}

// Sample is one frame of raw input.
type Sample struct {
	Cursor  Point
	Touches []Point
	// TouchEnded is set when any touch was released this frame.
	TouchEnded bool
}

// Sink receives normalized pointer updates.
type Sink interface {
	SetPointer(x, y float64)
	ClearPointer()
}

// Tracker converts samples into Sink calls. The pointer stays absent until
// the cursor first moves or a touch begins, and is cleared when a touch ends.
type Tracker struct {
	cursor     Point
	cursorSeen bool
	touching   bool
}

// Apply feeds one frame of input to sink.
func (t *Tracker) Apply(s Sample, sink Sink) {
	if s.TouchEnded && t.touching {
		t.touching = false
		t.cursor = s.Cursor
		t.cursorSeen = true
		sink.ClearPointer()
		return
	}
	if len(s.Touches) > 0 {
		p := s.Touches[0]
		t.touching = true
		sink.SetPointer(float64(p.X), float64(p.Y))
		return
	}
	if !t.cursorSeen {
		t.cursor = s.Cursor
		t.cursorSeen = true
		return
	}
	if s.Cursor != t.cursor {
		t.cursor = s.Cursor
		sink.SetPointer(float64(s.Cursor.X), float64(s.Cursor.Y))
	}
}

// Touching reports whether a touch is in progress.
func (t *Tracker) Touching() bool { return t.touching }

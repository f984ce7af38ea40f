// Package typewriter simulates a terminal typing out a cyclic script. Lines
// are revealed one rune at a time into a scrollback buffer; once the buffer
// has filled the visible area it scrolls upward continuously, dropping the
// oldest line each time a full line height has scrolled past.
package typewriter

import (
	"math"
	"time"
)

// State is the reveal state of the stream.
type State int

const (
	// Idle: not typing and no line pause running. Before Start, and while a
	// full buffer holds back the next line.
	Idle State = iota
	// TypingChar: revealing the current script line.
	TypingChar
	// LineComplete: the line is done and the inter-line pause is running.
	// AddLine treats it like Idle.
	LineComplete
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case TypingChar:
		return "typing"
	case LineComplete:
		return "line-complete"
	default:
		return "unknown"
	}
}

const minDelay = time.Millisecond

// Config holds the stream's timing and layout constants.
type Config struct {
	LineHeight  float64
	CharDelay   time.Duration
	LinePause   time.Duration
	ScrollSpeed float64
	BaseOffset  float64
	Prompt      string
}

// DefaultConfig returns the intro screen's terminal settings.
func DefaultConfig() Config {
	return Config{
		LineHeight:  24,
		CharDelay:   10 * time.Millisecond,
		LinePause:   40 * time.Millisecond,
		ScrollSpeed: 0.3,
		BaseOffset:  -24,
		Prompt:      "> ",
	}
}

// Cursor is the reveal position inside the script.
type Cursor struct {
	Line int
	Char int
}

// Stream owns the script cursor, the scrollback buffer and the scroll state.
// It is driven by Advance (time) and Scroll (frames) from a single goroutine.
type Stream struct {
	cfg    Config
	script [][]rune

	cursor   Cursor
	revealed []rune
	typing   bool
	state    State
	started  bool

	lines    []string
	capacity int
	filled   bool
	offset   float64
	evicted  int

	timers timerQueue

	// OnReveal, when set, is called for every rune as it appears.
	OnReveal func(r rune)
}

// New returns an idle stream over script, sized for a viewport of the given
// height. An empty script behaves as a single empty line.
func New(cfg Config, script []string, viewportHeight float64) *Stream {
	if cfg.LineHeight <= 0 {
		cfg.LineHeight = DefaultConfig().LineHeight
	}
	if cfg.CharDelay < minDelay {
		cfg.CharDelay = minDelay
	}
	if cfg.LinePause < minDelay {
		cfg.LinePause = minDelay
	}
	if len(script) == 0 {
		script = []string{""}
	}
	s := &Stream{cfg: cfg, script: make([][]rune, len(script))}
	for i, line := range script {
		s.script[i] = []rune(line)
	}
	s.Resize(viewportHeight)
	return s
}

// Start begins the first line. The script then cycles for the life of the
// stream; there is no way to stop or rewind it.
func (s *Stream) Start() {
	if s.started {
		return
	}
	s.started = true
	s.AddLine()
}

// AddLine opens a new scrollback entry and starts revealing the current
// script line, unless a line is already being typed. Once the buffer has
// filled, a new entry waits until scrolling has made room, so the buffer never
// holds more than capacity+1 lines.
func (s *Stream) AddLine() {
	if s.typing {
		return
	}
	if s.filled && len(s.lines) > s.capacity {
		s.state = Idle
		s.timers.schedule(s.cfg.LinePause, s.AddLine)
		return
	}
	s.typing = true
	s.state = TypingChar
	s.revealed = s.revealed[:0]
	s.lines = append(s.lines, s.cfg.Prompt)
	s.typeNextChar()
	if len(s.lines) > s.capacity {
		s.filled = true
	}
}

func (s *Stream) typeNextChar() {
	line := s.script[s.cursor.Line]
	if s.cursor.Char < len(line) {
		r := line[s.cursor.Char]
		s.cursor.Char++
		s.revealed = append(s.revealed, r)
		if n := len(s.lines); n > 0 {
			s.lines[n-1] = s.cfg.Prompt + string(s.revealed)
		}
		if s.OnReveal != nil {
			s.OnReveal(r)
		}
		s.timers.schedule(s.cfg.CharDelay, s.typeNextChar)
		return
	}
	s.cursor.Line = (s.cursor.Line + 1) % len(s.script)
	s.cursor.Char = 0
	s.typing = false
	s.state = LineComplete
	s.timers.schedule(s.cfg.LinePause, s.AddLine)
}

// Advance moves the stream's clock forward by d, running every reveal and
// line pause that falls due.
func (s *Stream) Advance(d time.Duration) int {
	return s.timers.advance(d)
}

// Scroll is called once per frame. After the buffer has filled it moves the
// text up by ScrollSpeed; each time a full line height has passed the offset
// resets and the oldest line is dropped. It reports whether a scroll cycle
// completed on this frame.
func (s *Stream) Scroll() bool {
	if !s.filled {
		return false
	}
	s.offset += s.cfg.ScrollSpeed
	if s.offset < s.cfg.LineHeight {
		return false
	}
	s.offset = 0
	if len(s.lines) > 0 {
		copy(s.lines, s.lines[1:])
		s.lines[len(s.lines)-1] = ""
		s.lines = s.lines[:len(s.lines)-1]
		s.evicted++
	}
	return true
}

// Resize recomputes the capacity for a new viewport height. Lines already in
// the buffer are kept as they are.
func (s *Stream) Resize(viewportHeight float64) {
	c := int(math.Floor(viewportHeight / s.cfg.LineHeight))
	if c < 0 {
		c = 0
	}
	s.capacity = c
}

// Lines returns the scrollback buffer, oldest first. The slice is owned by
// the stream.
func (s *Stream) Lines() []string { return s.lines }

// Translation is the vertical offset to draw the buffer at.
func (s *Stream) Translation() float64 { return s.cfg.BaseOffset - s.offset }

// Offset is the sub-line scroll offset in [0, LineHeight).
func (s *Stream) Offset() float64 { return s.offset }

// Capacity is the number of lines that fit the viewport.
func (s *Stream) Capacity() int { return s.capacity }

// Filled reports whether the buffer has ever exceeded its capacity.
func (s *Stream) Filled() bool { return s.filled }

func (s *Stream) State() State { return s.state }

func (s *Stream) Cursor() Cursor { return s.cursor }

// Evicted counts lines dropped by scrolling.
func (s *Stream) Evicted() int { return s.evicted }

// Pending reports the number of scheduled steps; a started stream always has
// exactly one.
func (s *Stream) Pending() int { return s.timers.pending() }

func (s *Stream) LineHeight() float64 { return s.cfg.LineHeight }

// LineTop is the y coordinate of the top of buffered line i, translation
// included.
func (s *Stream) LineTop(i int) float64 {
	return s.Translation() + float64(i)*s.cfg.LineHeight
}

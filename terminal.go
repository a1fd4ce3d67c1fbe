package cellgrid

import (
	"context"
	"fmt"
	"log/slog"
)

// Widget paints itself into a region of a buffer.
type Widget interface {
	Render(area Rect, buf *Buffer)
}

// WidgetFunc adapts a function to Widget.
type WidgetFunc func(area Rect, buf *Buffer)

func (f WidgetFunc) Render(area Rect, buf *Buffer) { f(area, buf) }

// Frame is handed to the render function of Terminal.Draw. Everything drawn
// into it becomes the next screen.
type Frame struct {
	area   Rect
	buffer *Buffer
	cursor *Position
	count  int
}

// Area is the full drawable region.
func (f *Frame) Area() Rect { return f.area }

// Buffer is the buffer being drawn.
func (f *Frame) Buffer() *Buffer { return f.buffer }

// Render draws w into area.
func (f *Frame) Render(w Widget, area Rect) { w.Render(area, f.buffer) }

// SetCursor shows the cursor at pos once the frame is flushed. Frames that
// do not call it hide the cursor.
func (f *Frame) SetCursor(pos Position) { f.cursor = &pos }

// Count is the number of frames drawn before this one.
func (f *Frame) Count() int { return f.count }

// CompletedFrame describes a frame that reached the backend.
type CompletedFrame struct {
	Buffer  *Buffer
	Area    Rect
	Patches int
	Count   int
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithLogger sets the logger used for resize and frame events.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Terminal) { t.logger = logger }
}

// WithViewport pins the drawable area instead of following the backend
// size.
func WithViewport(area Rect) Option {
	return func(t *Terminal) {
		t.area = area
		t.fixed = true
	}
}

// Terminal runs the immediate mode render loop: every Draw paints a fresh
// buffer and sends the backend only what changed since the last successful
// frame.
type Terminal struct {
	backend    Backend
	previous   *Buffer
	area       Rect
	fixed      bool
	needsClear bool
	cursorShow bool
	frameCount int
	patches    []Patch
	logger     *slog.Logger
}

// NewTerminal queries the backend size and prepares the first frame, which
// clears the screen before drawing.
func NewTerminal(backend Backend, opts ...Option) (*Terminal, error) {
	t := &Terminal{
		backend:    backend,
		needsClear: true,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	if !t.fixed {
		size, err := backend.Size()
		if err != nil {
			return nil, fmt.Errorf("terminal size: %w", err)
		}
		t.area = RectFrom(Position{}, size)
	}
	return t, nil
}

// Area is the region the next frame will cover.
func (t *Terminal) Area() Rect { return t.area }

// Backend returns the backend frames are drawn to.
func (t *Terminal) Backend() Backend { return t.backend }

// Draw runs render on a fresh frame, then diffs it against the previous
// frame and flushes the difference. The previous frame is replaced only when
// the backend accepted the new one.
func (t *Terminal) Draw(render func(*Frame)) (CompletedFrame, error) {
	if err := t.autoresize(); err != nil {
		return CompletedFrame{}, err
	}

	current := NewBuffer(t.area)
	f := &Frame{area: t.area, buffer: current, count: t.frameCount}
	render(f)

	if t.needsClear {
		if err := t.backend.Clear(); err != nil {
			return CompletedFrame{}, fmt.Errorf("clear: %w", err)
		}
		t.needsClear = false
	}

	previous := t.previous
	if previous == nil {
		previous = NewBuffer(t.area)
	}
	t.patches = DiffInto(previous, current, t.patches[:0])
	if err := t.backend.Draw(t.patches); err != nil {
		return CompletedFrame{}, fmt.Errorf("draw: %w", err)
	}
	if err := t.updateCursor(f.cursor); err != nil {
		return CompletedFrame{}, err
	}
	if err := t.backend.Flush(); err != nil {
		return CompletedFrame{}, fmt.Errorf("flush: %w", err)
	}

	t.previous = current
	t.frameCount++
	t.logger.Debug("frame", "count", t.frameCount, "patches", len(t.patches), "area", t.area)

	return CompletedFrame{
		Buffer:  current,
		Area:    t.area,
		Patches: len(t.patches),
		Count:   t.frameCount,
	}, nil
}

func (t *Terminal) updateCursor(pos *Position) error {
	cb, ok := t.backend.(CursorBackend)
	if !ok {
		return nil
	}
	if pos == nil {
		if !t.cursorShow {
			return nil
		}
		t.cursorShow = false
		return cb.HideCursor()
	}
	t.cursorShow = true
	if err := cb.SetCursor(*pos); err != nil {
		return fmt.Errorf("cursor: %w", err)
	}
	return cb.ShowCursor()
}

func (t *Terminal) autoresize() error {
	if t.fixed {
		return nil
	}
	size, err := t.backend.Size()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	if area := RectFrom(Position{}, size); area != t.area {
		t.logger.Debug("resize", "from", t.area, "to", area)
		t.Resize(area)
	}
	return nil
}

// Resize changes the drawable area. The next frame clears the screen and is
// drawn in full.
func (t *Terminal) Resize(area Rect) {
	t.area = area
	t.previous = nil
	t.needsClear = true
}

// Clear forces the next frame to repaint everything.
func (t *Terminal) Clear() {
	t.previous = nil
	t.needsClear = true
}

// ResizeEvents fires whenever the controlling terminal changes size, so a
// loop can redraw without waiting for its next tick. The channel is nil on
// platforms without resize signals.
func (t *Terminal) ResizeEvents(ctx context.Context) <-chan struct{} {
	return notifyResize(ctx)
}

// Run takes over the terminal through backend, hands a Terminal to fn and
// gives the terminal back on every exit path. A panic in fn is re-raised
// after the terminal has been restored.
func Run(backend ScreenBackend, fn func(*Terminal) error, opts ...Option) (err error) {
	if err := backend.Enter(); err != nil {
		return err
	}
	defer func() {
		r := recover()
		if lerr := backend.Leave(); lerr != nil && err == nil {
			err = lerr
		}
		if r != nil {
			panic(r)
		}
	}()

	t, err := NewTerminal(backend, opts...)
	if err != nil {
		return err
	}
	return fn(t)
}

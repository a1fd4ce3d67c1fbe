package cellgrid

// Backend is the physical display a Terminal draws to.
type Backend interface {
	// Size reports the current screen size.
	Size() (Size, error)
	// Draw writes patches in the order given.
	Draw(patches []Patch) error
	// Clear blanks the whole screen.
	Clear() error
	// Flush pushes buffered output to the display.
	Flush() error
}

// CursorBackend is implemented by backends that can place the cursor.
type CursorBackend interface {
	HideCursor() error
	ShowCursor() error
	SetCursor(pos Position) error
}

// ScreenBackend is a backend that has to take over the terminal, switching
// to raw mode and the alternate screen, before it can draw.
type ScreenBackend interface {
	Backend
	Enter() error
	Leave() error
}

// TestBackend draws into an in-memory Buffer. It is meant for tests and for
// rendering frames without a terminal.
type TestBackend struct {
	buffer  *Buffer
	cursor  *Position
	Draws   int
	Flushes int
	Clears  int
	// FailDraw, when set, is returned by Draw without touching the buffer.
	FailDraw error
}

// NewTestBackend returns a backend with a width x height screen.
func NewTestBackend(width, height uint16) *TestBackend {
	return &TestBackend{buffer: NewBuffer(NewRect(0, 0, width, height))}
}

func (b *TestBackend) Size() (Size, error) {
	return b.buffer.Area().AsSize(), nil
}

func (b *TestBackend) Draw(patches []Patch) error {
	if b.FailDraw != nil {
		return b.FailDraw
	}
	b.Draws++
	b.buffer.Apply(patches)
	return nil
}

func (b *TestBackend) Clear() error {
	b.Clears++
	b.buffer.Reset()
	return nil
}

func (b *TestBackend) Flush() error {
	b.Flushes++
	return nil
}

func (b *TestBackend) HideCursor() error {
	b.cursor = nil
	return nil
}

func (b *TestBackend) ShowCursor() error { return nil }

func (b *TestBackend) SetCursor(pos Position) error {
	b.cursor = &pos
	return nil
}

// Cursor returns the cursor position, if one is shown.
func (b *TestBackend) Cursor() (Position, bool) {
	if b.cursor == nil {
		return Position{}, false
	}
	return *b.cursor, true
}

// Resize changes the simulated screen size, keeping what fits.
func (b *TestBackend) Resize(width, height uint16) {
	b.buffer.Resize(NewRect(0, 0, width, height))
}

// Buffer is what the simulated screen shows.
func (b *TestBackend) Buffer() *Buffer { return b.buffer }

package cellgrid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ANSIOptions configures an ANSIBackend.
type ANSIOptions struct {
	// Output receives escape sequences. Defaults to os.Stdout.
	Output io.Writer
	// Fd is the terminal queried for its size and switched to raw mode.
	// Defaults to stdout; a negative value means no terminal.
	Fd *int
	// Width and Height fix the reported size when non-zero, e.g. when
	// Output is not a terminal.
	Width  uint16
	Height uint16
	// AltScreen switches to the alternate screen on Enter.
	AltScreen bool
}

// ANSIBackend writes SGR and cursor addressing sequences to a writer.
type ANSIBackend struct {
	out   *bufio.Writer
	fd    int
	opts  ANSIOptions
	state *State
	sb    strings.Builder
}

// NewANSIBackend returns a backend writing to opts.Output.
func NewANSIBackend(opts ANSIOptions) *ANSIBackend {
	output := opts.Output
	if output == nil {
		output = os.Stdout
	}
	fd := Stdout()
	if opts.Fd != nil {
		fd = *opts.Fd
	}
	return &ANSIBackend{
		out:  bufio.NewWriterSize(output, 32*1024),
		fd:   fd,
		opts: opts,
	}
}

func (b *ANSIBackend) Size() (Size, error) {
	if b.opts.Width != 0 && b.opts.Height != 0 {
		return Size{Width: b.opts.Width, Height: b.opts.Height}, nil
	}
	if b.fd < 0 {
		return Size{}, fmt.Errorf("ansi backend: no terminal and no fixed size")
	}
	w, h, err := GetSize(b.fd)
	if err != nil {
		return Size{}, fmt.Errorf("ansi backend: get size: %w", err)
	}
	return Size{Width: uint16(w), Height: uint16(h)}, nil
}

func (b *ANSIBackend) Draw(patches []Patch) error {
	if len(patches) == 0 {
		return nil
	}
	b.sb.Reset()
	RunsToAnsiBuilder(Runs(patches), &b.sb)
	_, err := b.out.WriteString(b.sb.String())
	return err
}

func (b *ANSIBackend) Clear() error {
	_, err := b.out.WriteString(resetStr + clearScreenStr)
	return err
}

func (b *ANSIBackend) Flush() error {
	return b.out.Flush()
}

func (b *ANSIBackend) HideCursor() error {
	_, err := b.out.WriteString(hideCursorStr)
	return err
}

func (b *ANSIBackend) ShowCursor() error {
	_, err := b.out.WriteString(showCursorStr)
	return err
}

func (b *ANSIBackend) SetCursor(pos Position) error {
	_, err := b.out.WriteString(MoveCursor(pos.X, pos.Y))
	return err
}

// Enter switches the terminal to raw mode when there is one, then hides the
// cursor and clears the screen.
func (b *ANSIBackend) Enter() error {
	if b.fd >= 0 && IsTerminal(b.fd) {
		state, err := MakeRaw(b.fd)
		if err != nil {
			return fmt.Errorf("ansi backend: raw mode: %w", err)
		}
		b.state = state
	}
	if b.opts.AltScreen {
		b.out.WriteString(enterAltScreen)
	}
	b.out.WriteString(hideCursorStr + clearScreenStr)
	return b.out.Flush()
}

// Leave undoes Enter. It is safe to call more than once.
func (b *ANSIBackend) Leave() error {
	b.out.WriteString(resetStr + showCursorStr)
	if b.opts.AltScreen {
		b.out.WriteString(leaveAltScreen)
	}
	err := b.out.Flush()
	if b.state != nil {
		if rerr := Restore(b.fd, b.state); rerr != nil && err == nil {
			err = fmt.Errorf("ansi backend: restore: %w", rerr)
		}
		b.state = nil
	}
	return err
}

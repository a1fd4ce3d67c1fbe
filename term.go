package cellgrid

import (
	"os"

	"golang.org/x/term"
)

// State holds the terminal mode saved by MakeRaw.
type State = term.State

// MakeRaw puts the terminal into raw mode and returns the previous state.
func MakeRaw(fd int) (*State, error) {
	return term.MakeRaw(fd)
}

// Restore restores a state returned by MakeRaw.
func Restore(fd int, state *State) error {
	return term.Restore(fd, state)
}

// GetSize returns the terminal dimensions.
func GetSize(fd int) (width, height int, err error) {
	return term.GetSize(fd)
}

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// Stdin returns the file descriptor for stdin.
func Stdin() int {
	return int(os.Stdin.Fd())
}

// Stdout returns the file descriptor for stdout.
func Stdout() int {
	return int(os.Stdout.Fd())
}

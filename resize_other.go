//go:build !unix

package cellgrid

import "context"

// notifyResize never fires where SIGWINCH does not exist; size changes are
// still picked up by Terminal.Draw polling the backend.
func notifyResize(context.Context) <-chan struct{} {
	return nil
}

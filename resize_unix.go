//go:build unix

package cellgrid

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// notifyResize delivers a value on the returned channel for every window
// size change until ctx is done.
func notifyResize(ctx context.Context) <-chan struct{} {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, unix.SIGWINCH)

	out := make(chan struct{}, 1)
	go func() {
		defer signal.Stop(sigs)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sigs:
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out
}

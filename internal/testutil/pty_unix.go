//go:build !windows

package testutil

import (
	"os"
	"testing"

	"github.com/creack/pty"
)

// openTTY allocates a pseudo-terminal and returns its master and slave ends.
// The test is skipped when the host cannot allocate one.
func openTTY(t *testing.T) (*os.File, *os.File) {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pseudo-terminal unavailable: %v", err)
	}
	return ptmx, tty
}

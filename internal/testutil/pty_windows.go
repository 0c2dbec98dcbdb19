//go:build windows

package testutil

import (
	"os"
	"testing"
)

// openTTY skips: a console cannot be handed to a child as a plain file here.
func openTTY(t *testing.T) (*os.File, *os.File) {
	t.Helper()
	t.Skip("pseudo-terminal attachments are not supported on windows")
	return nil, nil
}

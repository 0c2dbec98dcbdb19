//go:build windows

package stdtty

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

var stdHandleIDs = map[Stream]uint32{
	Stdin:  windows.STD_INPUT_HANDLE,
	Stdout: windows.STD_OUTPUT_HANDLE,
	Stderr: windows.STD_ERROR_HANDLE,
}

// swapStdHandle points the standard handle for s at h for the rest of the test.
func swapStdHandle(t *testing.T, s Stream, h windows.Handle) {
	t.Helper()
	id := stdHandleIDs[s]
	orig, _ := windows.GetStdHandle(id)
	require.NoError(t, windows.SetStdHandle(id, h))
	t.Cleanup(func() { _ = windows.SetStdHandle(id, orig) })
}

func TestNullDeviceIsNotTerminal(t *testing.T) {
	null, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	require.NoError(t, err)
	defer func() { _ = null.Close() }()

	for _, s := range Streams() {
		t.Run(s.String(), func(t *testing.T) {
			swapStdHandle(t, s, windows.Handle(null.Fd()))
			assert.False(t, IsTerminal(s))
			assert.ErrorIs(t, Check(s), ErrNotTerminal)
		})
	}
}

func TestRegularFileIsNotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	swapStdHandle(t, Stdout, windows.Handle(f.Fd()))
	assert.False(t, StdoutIsTerminal())
	assert.ErrorIs(t, Check(Stdout), ErrNotTerminal)
}

func TestMissingHandleIsNotTerminal(t *testing.T) {
	for _, s := range Streams() {
		t.Run(s.String(), func(t *testing.T) {
			swapStdHandle(t, s, 0)
			assert.False(t, IsTerminal(s))
			assert.ErrorIs(t, Check(s), ErrNoHandle)
		})
	}
}

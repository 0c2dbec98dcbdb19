//go:build windows

package stdtty

import (
	"fmt"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/windows"
)

func probe(s Stream) error {
	h, err := handle(s)
	if err != nil {
		return err
	}
	// mintty and other MSYS2/Cygwin terminals hand the process a named pipe.
	if isatty.IsCygwinTerminal(uintptr(h)) {
		return nil
	}
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return fmt.Errorf("%w: %w", ErrNotTerminal, err)
	}
	return nil
}

// handle looks up the process-wide standard handle for s. The handle is
// borrowed and must not be closed.
func handle(s Stream) (windows.Handle, error) {
	var id uint32
	switch s {
	case Stdin:
		id = windows.STD_INPUT_HANDLE
	case Stdout:
		id = windows.STD_OUTPUT_HANDLE
	default:
		id = windows.STD_ERROR_HANDLE
	}
	h, err := windows.GetStdHandle(id)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNoHandle, err)
	}
	if h == windows.InvalidHandle || h == 0 {
		return 0, ErrNoHandle
	}
	return h, nil
}

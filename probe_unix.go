//go:build linux || aix || zos || darwin || freebsd || openbsd || netbsd || dragonfly || solaris

package stdtty

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

func probe(s Stream) error {
	return classify(isatty(descriptor(s)))
}

// descriptor maps s to its fixed file descriptor.
func descriptor(s Stream) int {
	switch s {
	case Stdin:
		return unix.Stdin
	case Stdout:
		return unix.Stdout
	default:
		return unix.Stderr
	}
}

// classify sorts an isatty errno into ErrNoHandle, ErrNotTerminal or a plain failure.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, unix.EBADF):
		return fmt.Errorf("%w: %w", ErrNoHandle, err)
	case errors.Is(err, unix.ENOTTY),
		errors.Is(err, unix.EINVAL),
		errors.Is(err, unix.ENODEV),
		errors.Is(err, unix.EOPNOTSUPP):
		return fmt.Errorf("%w: %w", ErrNotTerminal, err)
	default:
		return err
	}
}

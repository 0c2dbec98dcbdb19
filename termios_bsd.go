//go:build darwin || freebsd || openbsd || netbsd || dragonfly

package stdtty

import "golang.org/x/sys/unix"

// isatty performs the TIOCGETA ioctl libc uses for isatty(3).
func isatty(fd int) error {
	_, err := unix.IoctlGetTermios(fd, unix.TIOCGETA)
	return err
}

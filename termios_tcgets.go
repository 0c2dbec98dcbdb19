//go:build linux || aix || zos

package stdtty

import "golang.org/x/sys/unix"

// isatty performs the TCGETS ioctl libc uses for isatty(3).
func isatty(fd int) error {
	_, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	return err
}

//go:build solaris

package stdtty

import "golang.org/x/sys/unix"

// isatty mirrors illumos libc, which answers isatty(3) with TCGETA.
// see: https://src.illumos.org/source/xref/illumos-gate/usr/src/lib/libc/port/gen/isatty.c
func isatty(fd int) error {
	_, err := unix.IoctlGetTermio(fd, unix.TCGETA)
	return err
}

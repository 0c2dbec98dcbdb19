//go:build !linux && !aix && !zos && !darwin && !freebsd && !openbsd && !netbsd && !dragonfly && !solaris && !windows

package stdtty

import "golang.org/x/term"

// probe falls back to x/term, which answers false wherever the target has
// no terminal support. No errno is available here.
func probe(s Stream) error {
	if term.IsTerminal(descriptor(s)) {
		return nil
	}
	return ErrNotTerminal
}

func descriptor(s Stream) int {
	switch s {
	case Stdin:
		return 0
	case Stdout:
		return 1
	default:
		return 2
	}
}

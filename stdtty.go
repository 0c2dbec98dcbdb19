// Package stdtty reports whether the process's standard streams are attached
// to an interactive terminal.
//
// The answer is computed from the live process state on every call and never
// cached. The boolean functions never fail: a native query that errors is
// reported the same way as a stream that is not a terminal. Use Check to tell
// the two apart.
package stdtty

import (
	"errors"
	"fmt"
	"strings"
)

// Stream identifies one of the three standard streams.
type Stream int

// Standard streams.
const (
	Stdin Stream = iota
	Stdout
	Stderr
)

var (
	// ErrNotTerminal reports a successful query for a stream that is a file,
	// pipe or other non-terminal device.
	ErrNotTerminal = errors.New("not a terminal")
	// ErrNoHandle reports a stream without a usable descriptor or handle,
	// for example because it was closed.
	ErrNoHandle = errors.New("no usable handle")
	// ErrUnknownStream reports a Stream value outside Stdin, Stdout and Stderr.
	ErrUnknownStream = errors.New("unknown stream")
)

var streamNames = [...]string{
	Stdin:  "stdin",
	Stdout: "stdout",
	Stderr: "stderr",
}

// Streams returns the standard streams in descriptor order.
func Streams() []Stream {
	return []Stream{Stdin, Stdout, Stderr}
}

func (s Stream) valid() bool {
	return s >= Stdin && s <= Stderr
}

func (s Stream) String() string {
	if !s.valid() {
		return fmt.Sprintf("stream(%d)", int(s))
	}
	return streamNames[s]
}

// ParseStream returns the Stream named by name ("stdin", "stdout" or "stderr").
// Case and surrounding whitespace are ignored.
func ParseStream(name string) (Stream, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i, n := range streamNames {
		if n == normalized {
			return Stream(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownStream, name)
}

// StdinIsTerminal reports whether standard input is a terminal.
func StdinIsTerminal() bool {
	return IsTerminal(Stdin)
}

// StdoutIsTerminal reports whether standard output is a terminal.
func StdoutIsTerminal() bool {
	return IsTerminal(Stdout)
}

// StderrIsTerminal reports whether standard error is a terminal.
func StderrIsTerminal() bool {
	return IsTerminal(Stderr)
}

// IsTerminal reports whether s is attached to a terminal. Any failure,
// including an unknown s, yields false.
func IsTerminal(s Stream) bool {
	return Check(s) == nil
}

// Check returns nil when s is attached to a terminal. Otherwise the error
// wraps ErrNotTerminal when the stream was inspected and is not a terminal,
// ErrNoHandle when the stream has no usable descriptor or handle, or
// ErrUnknownStream for an invalid s. Other native failures are returned
// wrapped with the stream name.
func Check(s Stream) error {
	if !s.valid() {
		return fmt.Errorf("%s: %w", s, ErrUnknownStream)
	}
	if err := probe(s); err != nil {
		return fmt.Errorf("%s: %w", s, err)
	}
	return nil
}

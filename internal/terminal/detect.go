// Package terminal provides terminal-dependent decisions for the stdtty CLI.
package terminal

import "github.com/conn-castle/stdtty"

var (
	stdinIsTerminal  = stdtty.StdinIsTerminal
	stdoutIsTerminal = stdtty.StdoutIsTerminal
)

// IsInteractive reports whether stdin and stdout are both interactive terminals.
func IsInteractive() bool {
	return stdinIsTerminal() && stdoutIsTerminal()
}

// ColorEnabled reports whether colored output should be written to stdout.
// noColor carries the user's opt-out (NO_COLOR or an explicit flag).
func ColorEnabled(noColor bool) bool {
	return !noColor && stdoutIsTerminal()
}

// Package testutil runs the current test binary as a child process with its
// standard streams attached to terminals, files, pipes or the null device, and
// collects what the child observed about them.
//
// A test package opts in by calling ServeChild first thing in TestMain.
package testutil

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

// EnvReportPath names the variable carrying the child's report path.
const EnvReportPath = "STDTTY_TEST_REPORT"

// Attachment describes what a child's standard stream is connected to.
type Attachment int

const (
	// TTY attaches the stream to the slave side of a pseudo-terminal.
	TTY Attachment = iota
	// File attaches the stream to a regular file.
	File
	// Pipe attaches the stream to one end of an os.Pipe.
	Pipe
	// Null attaches the stream to the null device.
	Null
)

func (a Attachment) String() string {
	switch a {
	case TTY:
		return "tty"
	case File:
		return "file"
	case Pipe:
		return "pipe"
	case Null:
		return "null"
	}
	return fmt.Sprintf("attachment(%d)", int(a))
}

// Attachments configures the three standard streams of a child.
type Attachments struct {
	Stdin  Attachment
	Stdout Attachment
	Stderr Attachment
}

// All attaches every stream the same way.
// a is the attachment used for stdin, stdout and stderr.
func All(a Attachment) Attachments {
	return Attachments{Stdin: a, Stdout: a, Stderr: a}
}

// Report is what a child observed about its own standard streams.
type Report struct {
	Stdin  bool `toml:"stdin"`
	Stdout bool `toml:"stdout"`
	Stderr bool `toml:"stderr"`
}

// ServeChild turns the process into a reporting child when EnvReportPath is set:
// it writes observe's result to that path and exits. Otherwise it returns immediately.
// observe inspects the process's standard streams.
func ServeChild(observe func() Report) {
	path := os.Getenv(EnvReportPath)
	if path == "" {
		return
	}
	data, err := toml.Marshal(observe())
	if err == nil {
		err = os.WriteFile(path, data, 0o600)
	}
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	os.Exit(0)
}

// RunChild re-executes the test binary with its streams attached per a and returns its report.
// t is the active test; a configures the child's stdin, stdout and stderr.
func RunChild(t *testing.T, a Attachments) Report {
	t.Helper()
	dir := t.TempDir()
	reportPath := filepath.Join(dir, "report.toml")

	cmd := exec.Command(os.Args[0], "-test.run=^$")
	cmd.Env = append(os.Environ(), EnvReportPath+"="+reportPath)

	h := &harness{t: t, dir: dir}
	defer h.close()
	cmd.Stdin = h.attach(a.Stdin, "stdin", false)
	cmd.Stdout = h.attach(a.Stdout, "stdout", true)
	cmd.Stderr = h.attach(a.Stderr, "stderr", true)

	if err := cmd.Start(); err != nil {
		t.Fatalf("start child: %v", err)
	}
	h.release()
	if err := cmd.Wait(); err != nil {
		t.Fatalf("child (%+v) failed: %v", a, err)
	}
	return ReadReport(t, reportPath)
}

// ReadReport decodes a child report.
// t is the active test; path is the report file written by ServeChild.
func ReadReport(t *testing.T, path string) Report {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var r Report
	if err := toml.Unmarshal(data, &r); err != nil {
		t.Fatalf("decode report %q: %v", data, err)
	}
	return r
}

// harness owns the parent's side of every attachment for a single child.
type harness struct {
	t   *testing.T
	dir string
	tty *os.File
	// childEnds are handed to the child and closed in the parent once it starts.
	childEnds []*os.File
	// parentEnds stay open until the child exits.
	parentEnds []*os.File
}

func (h *harness) attach(a Attachment, name string, write bool) *os.File {
	h.t.Helper()
	switch a {
	case TTY:
		if h.tty == nil {
			ptmx, tty := openTTY(h.t)
			h.parentEnds = append(h.parentEnds, ptmx)
			h.childEnds = append(h.childEnds, tty)
			h.tty = tty
			go drain(ptmx)
		}
		return h.tty
	case File:
		f, err := os.Create(filepath.Join(h.dir, name))
		if err != nil {
			h.t.Fatalf("create %s file: %v", name, err)
		}
		h.childEnds = append(h.childEnds, f)
		return f
	case Pipe:
		r, w, err := os.Pipe()
		if err != nil {
			h.t.Fatalf("create %s pipe: %v", name, err)
		}
		if write {
			h.childEnds = append(h.childEnds, w)
			h.parentEnds = append(h.parentEnds, r)
			go drain(r)
			return w
		}
		h.childEnds = append(h.childEnds, r)
		h.parentEnds = append(h.parentEnds, w)
		return r
	case Null:
		f, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
		if err != nil {
			h.t.Fatalf("open %s: %v", os.DevNull, err)
		}
		h.childEnds = append(h.childEnds, f)
		return f
	}
	h.t.Fatalf("unknown attachment %v for %s", a, name)
	return nil
}

// release closes the child's ends in the parent.
func (h *harness) release() {
	for _, f := range h.childEnds {
		_ = f.Close()
	}
	h.childEnds = nil
}

func (h *harness) close() {
	h.release()
	for _, f := range h.parentEnds {
		_ = f.Close()
	}
	h.parentEnds = nil
}

func drain(r io.Reader) {
	_, _ = io.Copy(io.Discard, r)
}

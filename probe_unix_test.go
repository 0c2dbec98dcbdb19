//go:build linux || aix || zos || darwin || freebsd || openbsd || netbsd || dragonfly || solaris

package stdtty

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestDescriptorMapping(t *testing.T) {
	assert.Equal(t, 0, descriptor(Stdin))
	assert.Equal(t, 1, descriptor(Stdout))
	assert.Equal(t, 2, descriptor(Stderr))
}

func TestIsattyOnPseudoTerminal(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pseudo-terminal unavailable: %v", err)
	}
	defer func() { _ = ptmx.Close() }()
	defer func() { _ = tty.Close() }()

	assert.NoError(t, classify(isatty(int(tty.Fd()))))
}

func TestIsattyOnRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	err = classify(isatty(int(f.Fd())))
	assert.ErrorIs(t, err, ErrNotTerminal)
	assert.False(t, errors.Is(err, ErrNoHandle))
}

func TestIsattyOnPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer func() { _ = r.Close() }()
	defer func() { _ = w.Close() }()

	assert.ErrorIs(t, classify(isatty(int(r.Fd()))), ErrNotTerminal)
	assert.ErrorIs(t, classify(isatty(int(w.Fd()))), ErrNotTerminal)
}

func TestIsattyOnClosedDescriptor(t *testing.T) {
	// -1 is never a valid descriptor, so this cannot race with other tests reusing fds.
	err := classify(isatty(-1))
	assert.ErrorIs(t, err, ErrNoHandle)
	assert.ErrorIs(t, err, unix.EBADF)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		in   error
		want error
	}{
		{unix.ENOTTY, ErrNotTerminal},
		{unix.EINVAL, ErrNotTerminal},
		{unix.ENODEV, ErrNotTerminal},
		{unix.EOPNOTSUPP, ErrNotTerminal},
		{unix.EBADF, ErrNoHandle},
	}
	for _, tc := range cases {
		err := classify(tc.in)
		assert.ErrorIs(t, err, tc.want, "errno %v", tc.in)
		assert.ErrorIs(t, err, tc.in, "errno %v must stay wrapped", tc.in)
	}

	assert.NoError(t, classify(nil))
	assert.Equal(t, unix.EIO, classify(unix.EIO))
}

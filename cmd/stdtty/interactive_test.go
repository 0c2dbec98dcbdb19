package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractiveCommand(t *testing.T) {
	orig := isInteractive
	t.Cleanup(func() { isInteractive = orig })

	isInteractive = func() bool { return true }
	out, err := run(t, "interactive")
	require.NoError(t, err)
	assert.Empty(t, out)

	isInteractive = func() bool { return false }
	out, err = run(t, "interactive")
	var silent *SilentExitError
	require.ErrorAs(t, err, &silent)
	assert.Equal(t, 1, silent.Code)
	assert.Empty(t, out)
}

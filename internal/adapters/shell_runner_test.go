package adapters

import (
	"context"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDry(t *testing.T) {
	adapter := NewShellRunnerAdapter()
	// Dry mode must not execute anything, even a failing command.
	require.NoError(t, adapter.Run(context.Background(), "exit 7", true))
}

func TestRunFailure(t *testing.T) {
	adapter := NewShellRunnerAdapter()
	err := adapter.Run(context.Background(), "exit 7", false)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
}

func TestCapture(t *testing.T) {
	adapter := NewShellRunnerAdapter()
	out, err := adapter.Capture(context.Background(), "echo", "1.2.3")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", out)
}

func TestCheck(t *testing.T) {
	adapter := NewShellRunnerAdapter()
	assert.True(t, adapter.Check(context.Background(), "true"))
	assert.False(t, adapter.Check(context.Background(), "false"))
}

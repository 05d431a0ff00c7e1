package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModuleName(t *testing.T) {
	assert.Equal(t, "demo_service", ModuleName("demo-service"))
	assert.Equal(t, "plain", ModuleName(" plain "))
	assert.Equal(t, "", ModuleName(""))
}

func TestCommandError(t *testing.T) {
	base := errors.New("exit status 1")
	err := CommandError([]byte("  boom \n"), base)
	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "boom")
}

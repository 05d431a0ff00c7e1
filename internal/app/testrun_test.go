package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestInsideVirtualEnv(t *testing.T) {
	service, runner := newTestService(t.TempDir(), sampleManifest)

	result, err := service.Test(context.Background(), TestRequest{Dry: true})
	require.NoError(t, err)
	assert.Equal(t, `coverage run -m pytest -s && coverage report --omit="tests/*" -m`, result.Command)
	require.Len(t, runner.commands, 1)
}

func TestTestOutsideVirtualEnv(t *testing.T) {
	service, _ := newTestService(t.TempDir(), sampleManifest)
	service.ProjectInfo = &fakeProjectInfo{venv: false}

	result, err := service.Test(context.Background(), TestRequest{Dry: true})
	require.NoError(t, err)
	assert.Equal(t,
		`poetry run coverage run -m pytest -s && poetry run coverage report --omit="tests/*" -m`,
		result.Command)
}

func TestTestCoverageUnavailable(t *testing.T) {
	service, runner := newTestService(t.TempDir(), sampleManifest)
	runner.checkOK = false

	result, err := service.Test(context.Background(), TestRequest{Dry: true})
	require.NoError(t, err)
	assert.Contains(t, result.Command, "poetry run coverage run")
}

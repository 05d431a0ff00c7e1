package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastdev/internal/types"
)

func TestParseEntries(t *testing.T) {
	body := `
python = "^3.11"
# a comment
typer = {extras = ["all"], version = "^0.9.0"}

anyio = "*"
`
	entries, err := ParseEntries(body)
	require.NoError(t, err)
	expected := []types.DependencyEntry{
		{Name: "python", VersionSpec: "^3.11"},
		{Name: "typer", VersionSpec: `{extras = ["all"], version = "^0.9.0"}`},
		{Name: "anyio", VersionSpec: "*"},
	}
	if diff := cmp.Diff(expected, entries); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
}

func TestParseEntriesTrimsQuotes(t *testing.T) {
	entries, err := ParseEntries(`bumpversion = "*"`)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "bumpversion", entries[0].Name)
	assert.Equal(t, "*", entries[0].VersionSpec)
}

func TestParseEntriesMalformedLine(t *testing.T) {
	// A section header leaking into a body has no "=" and must surface
	// as a parse error, not an index panic.
	_, err := ParseEntries("[tool.isort]")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "malformed dependency line")
}

func TestParseEntriesEmptyBody(t *testing.T) {
	entries, err := ParseEntries("")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

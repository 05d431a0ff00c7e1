package adapters

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"fastdev/internal/ports"
)

const ManifestFileName = "pyproject.toml"

// DefaultSearchLevels bounds the upward walk when locating the project
// root from a nested working directory.
const DefaultSearchLevels = 5

type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter {
	return ManifestFileAdapter{}
}

func (a ManifestFileAdapter) FindProjectRoot(start string, levels int) (string, error) {
	if start == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("start directory is empty")
	}
	dir := start
	for i := 0; i < levels; i++ {
		if _, err := os.Stat(filepath.Join(dir, ManifestFileName)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("%s not found, make sure this is a poetry project", ManifestFileName))
}

func (a ManifestFileAdapter) LoadText(start string) (string, error) {
	root, err := a.FindProjectRoot(start, DefaultSearchLevels)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(root, ManifestFileName))
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read manifest").
			WithCause(err)
	}
	return string(data), nil
}

var _ ports.ManifestPort = ManifestFileAdapter{}

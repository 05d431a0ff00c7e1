package adapters

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"fastdev/internal/ports"
)

// ProjectInfoAdapter reads project metadata that sits outside the
// dependency blocks. Unlike the extractor this uses a real TOML decoder
// since the name fields are plain top-level keys.
type ProjectInfoAdapter struct{}

func NewProjectInfoAdapter() ProjectInfoAdapter {
	return ProjectInfoAdapter{}
}

func (a ProjectInfoAdapter) AppName(root string) string {
	data, err := os.ReadFile(filepath.Join(root, ManifestFileName))
	if err != nil {
		return ""
	}
	var pyproject struct {
		Tool struct {
			Poetry struct {
				Name string `toml:"name"`
			} `toml:"poetry"`
		} `toml:"tool"`
		Project struct {
			Name string `toml:"name"`
		} `toml:"project"`
	}
	if err := toml.Unmarshal(data, &pyproject); err != nil {
		return ""
	}
	if pyproject.Tool.Poetry.Name != "" {
		return pyproject.Tool.Poetry.Name
	}
	return pyproject.Project.Name
}

func (a ProjectInfoAdapter) InVirtualEnv() bool {
	return os.Getenv("VIRTUAL_ENV") != "" || os.Getenv("CONDA_PREFIX") != ""
}

var _ ports.ProjectInfoPort = ProjectInfoAdapter{}

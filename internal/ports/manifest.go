package ports

// ManifestPort locates and reads the project manifest (pyproject.toml).
type ManifestPort interface {
	// FindProjectRoot walks upward from start at most levels directories
	// looking for the manifest file. Returns the containing directory or
	// a not-found error when the bound is exhausted.
	FindProjectRoot(start string, levels int) (string, error)

	// LoadText returns the raw manifest text for the project containing
	// start (same upward search).
	LoadText(start string) (string, error)
}

// ProjectInfoPort answers questions about the surrounding project and
// environment that do not come from the manifest's dependency blocks.
type ProjectInfoPort interface {
	// AppName reads the project name from the manifest (tool.poetry.name,
	// falling back to project.name), empty when neither is declared.
	AppName(root string) string

	// InVirtualEnv reports whether the process runs inside an activated
	// Python virtual environment.
	InVirtualEnv() bool
}

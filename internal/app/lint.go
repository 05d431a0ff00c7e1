package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"fastdev/internal/shared"
)

// Lint chains isort, black, ruff and mypy over the given paths. In
// check-only mode the formatters verify instead of rewriting and ruff
// loses its --fix. Outside a virtualenv (or when black is not directly
// callable) every tool runs through `poetry run`.
func (s Service) Lint(ctx context.Context, req LintRequest) (LintResult, error) {
	root, err := s.projectRoot()
	if err != nil {
		return LintResult{}, err
	}
	cwd, err := s.workdir()
	if err != nil {
		return LintResult{}, err
	}
	paths := strings.Join(req.Files, " ")
	if paths == "" {
		paths = "."
	}

	tools := []string{"isort", "black", "ruff --fix", "mypy"}
	switch {
	case req.CheckOnly:
		tools[0] += " --check-only"
		tools[1] += " --check --fast"
		tools[2] = "ruff"
	case req.NoFix:
		tools[2] = "ruff"
	}
	if req.SkipMypy {
		// Mypy can dominate the chain's runtime on large trees.
		tools = tools[:len(tools)-1]
	}
	if src := s.isortSourceFlag(root, cwd); src != "" {
		tools[0] += " --src=" + src
	}

	prefix := "poetry run "
	if s.ProjectInfo.InVirtualEnv() && s.Runner.Check(ctx, "black --version") {
		prefix = ""
	}
	steps := make([]string, 0, len(tools))
	for _, tool := range tools {
		steps = append(steps, prefix+tool+" "+paths)
	}
	command := strings.Join(steps, " && ")
	if err := s.Runner.Run(ctx, command, req.Dry); err != nil {
		return LintResult{}, err
	}
	return LintResult{Command: command}, nil
}

// isortSourceFlag points isort at the project's import root so first
// party imports sort into their own section. The import root is the
// package directory named after the project, or a conventional app/
// directory; the returned path is relative to the current directory.
func (s Service) isortSourceFlag(root string, cwd string) string {
	name := shared.ModuleName(s.ProjectInfo.AppName(root))
	if name == "" {
		name = shared.ModuleName(filepath.Base(root))
	}
	appDir := filepath.Join(root, name)
	if !dirExists(appDir) {
		appDir = filepath.Join(root, "app")
		if !dirExists(appDir) {
			return ""
		}
	}
	rel, err := filepath.Rel(cwd, appDir)
	if err != nil {
		return ""
	}
	return rel
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

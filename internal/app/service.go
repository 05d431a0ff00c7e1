package app

import (
	"os"

	"fastdev/internal/adapters"
	"fastdev/internal/ports"
)

type Service struct {
	Manifest    ports.ManifestPort
	ProjectInfo ports.ProjectInfoPort
	Runner      ports.RunnerPort
	Git         ports.GitPort
	PlanWriter  ports.PlanWriterPort
	Getwd       func() (string, error)
}

func NewService() Service {
	return Service{
		Manifest:    adapters.NewManifestFileAdapter(),
		ProjectInfo: adapters.NewProjectInfoAdapter(),
		Runner:      adapters.NewShellRunnerAdapter(),
		Git:         adapters.NewGitRepoAdapter(),
		PlanWriter:  adapters.NewPlanWriterAdapter(),
		Getwd:       os.Getwd,
	}
}

// workdir resolves the current directory through the injected Getwd so
// tests can pin the starting point.
func (s Service) workdir() (string, error) {
	return s.Getwd()
}

// projectRoot locates the nearest ancestor holding the manifest.
func (s Service) projectRoot() (string, error) {
	cwd, err := s.workdir()
	if err != nil {
		return "", err
	}
	return s.Manifest.FindProjectRoot(cwd, adapters.DefaultSearchLevels)
}

package app

import (
	"context"

	"fastdev/internal/types"
)

type fakeRunner struct {
	commands   []string
	dries      []bool
	captureOut string
	captureErr error
	checkOK    bool
	runErr     error
}

func (r *fakeRunner) Run(_ context.Context, command string, dry bool) error {
	r.commands = append(r.commands, command)
	r.dries = append(r.dries, dry)
	return r.runErr
}

func (r *fakeRunner) Capture(_ context.Context, _ string, _ ...string) (string, error) {
	return r.captureOut, r.captureErr
}

func (r *fakeRunner) Check(_ context.Context, _ string) bool {
	return r.checkOK
}

type fakeManifest struct {
	root string
	text string
	err  error
}

func (m *fakeManifest) FindProjectRoot(_ string, _ int) (string, error) {
	return m.root, m.err
}

func (m *fakeManifest) LoadText(_ string) (string, error) {
	return m.text, m.err
}

type fakeGit struct {
	clean     bool
	ahead     bool
	tagExists bool
	err       error
}

func (g *fakeGit) WorktreeClean(_ string) (bool, error) { return g.clean, g.err }

func (g *fakeGit) HasUnpushedCommits(_ string) (bool, error) { return g.ahead, g.err }

func (g *fakeGit) TagExists(_ string, _ string) (bool, error) { return g.tagExists, g.err }

type fakeProjectInfo struct {
	name string
	venv bool
}

func (p *fakeProjectInfo) AppName(_ string) string { return p.name }

func (p *fakeProjectInfo) InVirtualEnv() bool { return p.venv }

type fakePlanWriter struct {
	path string
	plan types.ManifestPlan
}

func (w *fakePlanWriter) WritePlan(path string, plan types.ManifestPlan) error {
	w.path = path
	w.plan = plan
	return nil
}

func newTestService(root string, manifest string) (Service, *fakeRunner) {
	runner := &fakeRunner{checkOK: true}
	service := Service{
		Manifest:    &fakeManifest{root: root, text: manifest},
		ProjectInfo: &fakeProjectInfo{venv: true},
		Runner:      runner,
		Git:         &fakeGit{clean: true},
		PlanWriter:  &fakePlanWriter{},
		Getwd:       func() (string, error) { return root, nil },
	}
	return service, runner
}

package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fastdev/internal/core"
)

// Sync exports the locked dependency set to a requirements file and
// installs it with pip, so the environment matches the manifest exactly.
// The export file is removed afterwards unless it pre-existed or the
// caller asked to keep it.
func (s Service) Sync(ctx context.Context, req SyncRequest) (SyncResult, error) {
	cwd, err := s.workdir()
	if err != nil {
		return SyncResult{}, err
	}
	text, err := s.Manifest.LoadText(cwd)
	if err != nil {
		return SyncResult{}, err
	}
	_, statErr := os.Stat(filepath.Join(cwd, req.Filename))
	preExisting := statErr == nil

	export := "poetry export --with=dev --without-hashes -o %[1]s"
	if !core.HasDevSection(text) {
		export = strings.Replace(export, " --with=dev", "", 1)
	}
	if req.Extras != "" {
		export = strings.Replace(export, "export", fmt.Sprintf("export --extras=%q", req.Extras), 1)
	}
	command := export + " && poetry run pip install -r %[1]s"
	if !preExisting && !req.Save {
		command += " && rm -f %[1]s"
	}
	command = fmt.Sprintf(command, req.Filename)
	if err := s.Runner.Run(ctx, command, req.Dry); err != nil {
		return SyncResult{}, err
	}
	return SyncResult{Command: command}, nil
}

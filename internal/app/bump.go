package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"fastdev/internal/adapters"
	"fastdev/internal/core"
	"fastdev/internal/types"
)

// Bump raises the project version through bumpversion. The current
// version comes from poetry; the predicted next version is reported
// before anything runs.
func (s Service) Bump(ctx context.Context, req BumpRequest) (BumpResult, error) {
	part, err := core.ParseBumpPart(req.Part)
	if err != nil {
		return BumpResult{}, err
	}
	current, err := s.currentVersion(ctx)
	if err != nil {
		return BumpResult{}, err
	}
	next, err := core.NextVersion(current, part)
	if err != nil {
		return BumpResult{}, err
	}
	log.Ctx(ctx).Info().
		Str("current", current).
		Str("next", next).
		Msgf("current version (@%s): %s", adapters.ManifestFileName, current)

	command := core.BumpCommand(current, part, adapters.ManifestFileName, req.Commit)
	if err := s.Runner.Run(ctx, command, req.Dry); err != nil {
		return BumpResult{}, err
	}
	if !req.Commit && !req.Dry {
		updated, err := s.currentVersion(ctx)
		if err != nil {
			return BumpResult{}, err
		}
		log.Ctx(ctx).Info().Msgf("new version: %s", updated)
		if part != types.BumpPatch {
			log.Ctx(ctx).Info().Msg("you may want to pin the tag with `fastdev tag`")
		}
	}
	return BumpResult{Command: command, Part: part, Current: current, Next: next}, nil
}

// currentVersion asks poetry for the bare project version.
func (s Service) currentVersion(ctx context.Context) (string, error) {
	return s.Runner.Capture(ctx, "poetry", "version", "-s")
}

package app

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

// Tag pins the current project version as an annotated git tag and
// pushes it. Refuses to run against a dirty working tree.
func (s Service) Tag(ctx context.Context, req TagRequest) (TagResult, error) {
	root, err := s.projectRoot()
	if err != nil {
		return TagResult{}, err
	}
	clean, err := s.Git.WorktreeClean(root)
	if err != nil {
		return TagResult{}, err
	}
	if !clean {
		return TagResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("working tree is not clean, commit your changes first")
	}
	version, err := s.currentVersion(ctx)
	if err != nil {
		return TagResult{}, err
	}
	exists, err := s.Git.TagExists(root, version)
	if err != nil {
		return TagResult{}, err
	}
	if exists {
		return TagResult{}, errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg(fmt.Sprintf("tag %s already exists", version))
	}
	command := fmt.Sprintf("git tag -a %s -m '%s' && git push --tags", version, req.Message)
	ahead, err := s.Git.HasUnpushedCommits(root)
	if err != nil {
		return TagResult{}, err
	}
	if ahead {
		command += " && git push"
	}
	if err := s.Runner.Run(ctx, command, req.Dry); err != nil {
		return TagResult{}, err
	}
	if !req.Dry {
		log.Ctx(ctx).Info().Msg("you may want to publish the package: poetry publish --build")
	}
	return TagResult{Command: command, Version: version}, nil
}

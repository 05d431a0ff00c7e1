package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"fastdev/internal/core"
)

// Upgrade scans the manifest's dependency blocks and runs the grouped
// `poetry add` chain that moves every upgradable entry to @latest.
func (s Service) Upgrade(ctx context.Context, req UpgradeRequest) (UpgradeResult, error) {
	cwd, err := s.workdir()
	if err != nil {
		return UpgradeResult{}, err
	}
	text, err := s.Manifest.LoadText(cwd)
	if err != nil {
		return UpgradeResult{}, err
	}
	plan, err := core.BuildManifestPlan(ctx, text)
	if err != nil {
		return UpgradeResult{}, err
	}
	if req.PlanOut != "" {
		if err := s.PlanWriter.WritePlan(req.PlanOut, plan); err != nil {
			return UpgradeResult{}, err
		}
		log.Ctx(ctx).Info().Str("path", req.PlanOut).Msg("upgrade plan written")
	}
	command := core.AssembleCommand(plan)
	result := UpgradeResult{Command: command, Plan: plan}
	if command == "" {
		log.Ctx(ctx).Info().Msg("nothing to upgrade")
		return result, nil
	}
	if err := s.Runner.Run(ctx, command, req.Dry); err != nil {
		return UpgradeResult{}, err
	}
	return result, nil
}

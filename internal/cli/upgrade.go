package cli

import (
	"context"

	"github.com/spf13/cobra"

	"fastdev/internal/app"
)

type upgradeOptions struct {
	Dry     bool
	PlanOut string
}

func newUpgradeCommand() *cobra.Command {
	opts := upgradeOptions{}
	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade manifest dependencies to their latest versions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUpgrade(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolVar(&opts.Dry, "dry", false, "Only print, do not run the shell command")
	cmd.Flags().StringVar(&opts.PlanOut, "plan-out", "", "Write the upgrade plan as YAML to this path")
	return cmd
}

func runUpgrade(ctx context.Context, opts upgradeOptions) error {
	service := newAppService()
	_, err := service.Upgrade(ctx, app.UpgradeRequest{
		Dry:     opts.Dry,
		PlanOut: opts.PlanOut,
	})
	return err
}

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"fastdev/internal/app"
)

type testOptions struct {
	Dry bool
}

func newTestCommand() *cobra.Command {
	opts := testOptions{}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run the pytest suite under coverage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTest(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolVar(&opts.Dry, "dry", false, "Only print, do not run the shell command")
	return cmd
}

func runTest(ctx context.Context, opts testOptions) error {
	service := newAppService()
	_, err := service.Test(ctx, app.TestRequest{Dry: opts.Dry})
	return err
}

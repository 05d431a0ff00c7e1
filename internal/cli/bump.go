package cli

import (
	"context"

	"github.com/spf13/cobra"

	"fastdev/internal/app"
)

type bumpOptions struct {
	Commit bool
	Dry    bool
}

func newBumpCommand() *cobra.Command {
	opts := bumpOptions{}
	cmd := &cobra.Command{
		Use:   "bump [patch|minor|major]",
		Short: "Bump the project version (defaults to patch)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			part := ""
			if len(args) > 0 {
				part = args[0]
			}
			return runBump(cmd.Context(), part, opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.Commit, "commit", "c", false, "Run `git commit` after the version changed")
	cmd.Flags().BoolVar(&opts.Dry, "dry", false, "Only print, do not run the shell command")
	return cmd
}

func runBump(ctx context.Context, part string, opts bumpOptions) error {
	service := newAppService()
	_, err := service.Bump(ctx, app.BumpRequest{
		Part:   part,
		Commit: opts.Commit,
		Dry:    opts.Dry,
	})
	return err
}

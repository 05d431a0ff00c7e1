package cli

import (
	"context"

	"github.com/spf13/cobra"

	"fastdev/internal/app"
)

type tagOptions struct {
	Message string
	Dry     bool
}

func newTagCommand() *cobra.Command {
	opts := tagOptions{}
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Tag the current version and push the tag",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTag(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Message, "message", "m", "", "Tag annotation message")
	cmd.Flags().BoolVar(&opts.Dry, "dry", false, "Only print, do not run the shell command")
	return cmd
}

func runTag(ctx context.Context, opts tagOptions) error {
	service := newAppService()
	_, err := service.Tag(ctx, app.TagRequest{
		Message: opts.Message,
		Dry:     opts.Dry,
	})
	return err
}

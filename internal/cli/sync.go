package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fastdev/internal/app"
)

type syncOptions struct {
	Filename string
	Extras   string
	Save     bool
	Dry      bool
}

func newSyncCommand() *cobra.Command {
	opts := syncOptions{}
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Install the locked dependency set into the environment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSync(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Filename, "filename", "dev_requirements.txt", "Requirements export filename")
	cmd.Flags().StringVarP(&opts.Extras, "extras", "E", "", "Extras to include in the export")
	cmd.Flags().BoolVarP(&opts.Save, "save", "s", false, "Keep the requirements file")
	cmd.Flags().BoolVar(&opts.Dry, "dry", false, "Only print, do not run the shell command")
	_ = viper.BindPFlag("sync_filename", cmd.Flags().Lookup("filename"))
	return cmd
}

func runSync(ctx context.Context, cmd *cobra.Command, opts syncOptions) error {
	service := newAppService()
	_, err := service.Sync(ctx, app.SyncRequest{
		Filename: resolveString(cmd, opts.Filename, "sync_filename", "filename"),
		Extras:   opts.Extras,
		Save:     opts.Save,
		Dry:      opts.Dry,
	})
	return err
}

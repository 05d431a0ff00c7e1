package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fastdev/internal/app"
)

type lintOptions struct {
	CheckOnly bool
	NoFix     bool
	SkipMypy  bool
	Dry       bool
}

func newLintCommand() *cobra.Command {
	opts := lintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [files...]",
		Short: "Reformat with isort, black and ruff, then check with mypy",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd.Context(), cmd, args, opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.CheckOnly, "check-only", "c", false, "Verify formatting without rewriting files")
	cmd.Flags().BoolVar(&opts.NoFix, "no-fix", false, "Run ruff without --fix")
	cmd.Flags().BoolVar(&opts.SkipMypy, "skip-mypy", false, "Skip the mypy step")
	cmd.Flags().BoolVar(&opts.Dry, "dry", false, "Only print, do not run the shell command")
	_ = viper.BindPFlag("no_fix", cmd.Flags().Lookup("no-fix"))
	_ = viper.BindPFlag("skip_mypy", cmd.Flags().Lookup("skip-mypy"))
	return cmd
}

func newCheckCommand() *cobra.Command {
	opts := lintOptions{CheckOnly: true}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify formatting and types without changing files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLint(cmd.Context(), cmd, nil, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.Dry, "dry", false, "Only print, do not run the shell command")
	return cmd
}

func runLint(ctx context.Context, cmd *cobra.Command, files []string, opts lintOptions) error {
	service := newAppService()
	_, err := service.Lint(ctx, app.LintRequest{
		Files:     files,
		CheckOnly: opts.CheckOnly,
		NoFix:     resolveBool(cmd, opts.NoFix, "no_fix", "no-fix"),
		SkipMypy:  resolveBool(cmd, opts.SkipMypy, "skip_mypy", "skip-mypy"),
		Dry:       opts.Dry,
	})
	return err
}

package adapters

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"fastdev/internal/ports"
	"fastdev/internal/shared"
)

// ShellRunnerAdapter executes assembled command lines through the
// shell, mirroring what an operator would type.
type ShellRunnerAdapter struct{}

func NewShellRunnerAdapter() ShellRunnerAdapter {
	return ShellRunnerAdapter{}
}

func (a ShellRunnerAdapter) Run(ctx context.Context, command string, dry bool) error {
	fmt.Printf("--> %s\n", command)
	if dry {
		return nil
	}
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	if err := cmd.Run(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("command failed").
			WithCause(fmt.Errorf("%s: %w", command, err))
	}
	return nil
}

func (a ShellRunnerAdapter) Capture(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.Output()
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("%s command failed", name)).
			WithCause(shared.CommandError(output, err))
	}
	return strings.TrimSpace(string(output)), nil
}

func (a ShellRunnerAdapter) Check(ctx context.Context, command string) bool {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}

var _ ports.RunnerPort = ShellRunnerAdapter{}

package ports

import "context"

// RunnerPort executes assembled commands through the shell. Run echoes
// the command line before executing so the operator sees what the tool
// does on their behalf.
type RunnerPort interface {
	// Run executes a shell command line, echoing it first. Dry mode
	// echoes without executing.
	Run(ctx context.Context, command string, dry bool) error

	// Capture executes a program directly and returns its trimmed stdout.
	Capture(ctx context.Context, name string, args ...string) (string, error)

	// Check quietly runs a command line and reports whether it exited
	// zero. Used for tool availability probes.
	Check(ctx context.Context, command string) bool
}

// Package shared provides common utility functions used across multiple
// packages in the fastdev codebase.
package shared

import (
	"fmt"
	"strings"
)

// ModuleName maps a project name to its Python import directory,
// the inverse direction of pip normalization.
func ModuleName(value string) string {
	return strings.ReplaceAll(strings.TrimSpace(value), "-", "_")
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}

package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"fastdev/internal/types"
)

// ParseEntries splits a section body into dependency entries. Blank
// lines and comment lines are dropped. Every remaining line must carry
// an "=" separating name from version spec; a line without one means
// the manifest is malformed and parsing stops with an error.
func ParseEntries(body string) ([]types.DependencyEntry, error) {
	var entries []types.DependencyEntry
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		name, spec, found := strings.Cut(trimmed, "=")
		if !found {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("malformed dependency line: %q", trimmed))
		}
		entries = append(entries, types.DependencyEntry{
			Name:        strings.Trim(name, ` "`),
			VersionSpec: strings.Trim(spec, ` "`),
		})
	}
	return entries, nil
}

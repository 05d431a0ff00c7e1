package core

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"fastdev/internal/types"
)

// runtimeMarker is the manifest entry that pins the language runtime.
// It is a version constraint, never an installable package.
const runtimeMarker = "python"

// Classify decides what to do with one dependency entry. The decision
// chain is ordered; the first matching rule wins. Skips are reported to
// the operator through the log sink and carried in the result.
func Classify(ctx context.Context, entry types.DependencyEntry) types.Classification {
	if strings.ToLower(entry.Name) == runtimeMarker {
		return skip(ctx, entry, types.SkipRuntimeMarker, "runtime marker, nothing to upgrade")
	}
	spec := entry.VersionSpec
	compact := strings.ReplaceAll(spec, " ", "")
	if strings.HasPrefix(compact, "{url=") {
		return skip(ctx, entry, types.SkipURLSource, "pinned to url source, no latest to resolve")
	}
	version := compact
	if idx := strings.Index(version, "version="); idx >= 0 {
		version = strings.TrimPrefix(version[idx+len("version="):], `"`)
		version = strings.SplitN(version, `"`, 2)[0]
	}
	if version == "*" {
		return skip(ctx, entry, types.SkipWildcard, "wildcard constraint, already unconstrained")
	}
	if version != "" && (version[0] == '>' || version[0] == '<' || isDigit(version[0])) {
		return skip(ctx, entry, types.SkipPinned, "explicit version constraint kept as-is")
	}

	name := entry.Name
	if strings.Contains(spec, "extras") {
		name += "[" + ExtractValue(spec, "extras") + "]"
	}
	token := `"` + name + `@latest"`

	flagKey := ""
	if strings.Contains(spec, "platform") {
		flagKey = "--platform=" + ExtractValue(spec, "platform")
	}
	if strings.Contains(spec, "source") {
		flagKey = joinFlag(flagKey, "--source="+ExtractValue(spec, "source"))
	}
	if strings.Contains(spec, "optional = true") {
		flagKey = joinFlag(flagKey, "--optional")
	}
	if flagKey == "" {
		return types.Classification{Kind: types.ClassificationPlain, PackageToken: token}
	}
	return types.Classification{
		Kind:         types.ClassificationFlagged,
		PackageToken: token,
		FlagKey:      flagKey,
	}
}

func skip(ctx context.Context, entry types.DependencyEntry, reason types.SkipReason, detail string) types.Classification {
	log.Ctx(ctx).Info().
		Str("package", entry.Name).
		Str("reason", string(reason)).
		Msgf("skip %s: %s", entry.Name, detail)
	return types.Classification{Kind: types.ClassificationSkip, SkipReason: reason}
}

func joinFlag(existing string, flag string) string {
	if existing == "" {
		return flag
	}
	return existing + " " + flag
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

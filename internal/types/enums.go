package types

// ManifestSchema distinguishes the two dev-dependency header variants a
// poetry manifest may carry. The schema decides which command-line flag
// targets the development group.
type ManifestSchema string

const (
	// SchemaGroupDev is the modern header ([tool.poetry.group.dev.dependencies]).
	SchemaGroupDev ManifestSchema = "group-dev"
	// SchemaLegacyDev is the pre-1.2 header ([tool.poetry.dev-dependencies]).
	SchemaLegacyDev ManifestSchema = "legacy-dev"
)

// DevFlag returns the dev-group flag token for the schema.
func (s ManifestSchema) DevFlag() string {
	if s == SchemaLegacyDev {
		return "--dev"
	}
	return "--group dev"
}

type SkipReason string

const (
	SkipRuntimeMarker SkipReason = "runtime-marker"
	SkipURLSource     SkipReason = "url-source"
	SkipWildcard      SkipReason = "wildcard"
	SkipPinned        SkipReason = "pinned-constraint"
)

type BumpPart string

const (
	BumpPatch BumpPart = "patch"
	BumpMinor BumpPart = "minor"
	BumpMajor BumpPart = "major"
)

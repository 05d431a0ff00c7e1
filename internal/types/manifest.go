package types

// DependencyEntry is one line of a dependency block, split at the first
// "=" into package name and raw version spec, before classification.
type DependencyEntry struct {
	Name        string
	VersionSpec string
}

// ClassificationKind tags the outcome of classifying a dependency entry.
type ClassificationKind string

const (
	ClassificationSkip    ClassificationKind = "skip"
	ClassificationPlain   ClassificationKind = "plain"
	ClassificationFlagged ClassificationKind = "flagged"
)

// Classification is the per-entry decision: skip the entry (with a
// reason), upgrade it plainly, or upgrade it with installer flags.
// PackageToken is the quoted upgrade target ("name[extras]@latest");
// FlagKey is the normalized flag string (platform, then source, then
// optional, space-joined) and is empty unless Kind is flagged.
type Classification struct {
	Kind         ClassificationKind
	PackageToken string
	FlagKey      string
	SkipReason   SkipReason
}

// UpgradePlan partitions the upgrade targets of one dependency section.
// Flagged groups preserve first-seen flag-key order via FlagOrder.
type UpgradePlan struct {
	Plain     []string            `yaml:"plain"`
	Flagged   map[string][]string `yaml:"flagged,omitempty"`
	FlagOrder []string            `yaml:"flag_order,omitempty"`
}

// ManifestPlan is the full upgrade plan for a manifest: the production
// and development sections plus the dev-group flag dictated by the
// manifest schema.
type ManifestPlan struct {
	Main    UpgradePlan `yaml:"main"`
	Dev     UpgradePlan `yaml:"dev"`
	DevFlag string      `yaml:"dev_flag"`
}

// SectionSplit is the output of the section splitter: the raw bodies of
// the production and development dependency blocks and the schema that
// was detected for the development block.
type SectionSplit struct {
	MainBody string
	DevBody  string
	Schema   ManifestSchema
}

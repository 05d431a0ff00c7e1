package app

import "fastdev/internal/types"

type UpgradeRequest struct {
	Dry     bool
	PlanOut string
}

type UpgradeResult struct {
	Command string
	Plan    types.ManifestPlan
}

type BumpRequest struct {
	Part   string
	Commit bool
	Dry    bool
}

type BumpResult struct {
	Command string
	Part    types.BumpPart
	Current string
	Next    string
}

type TagRequest struct {
	Message string
	Dry     bool
}

type TagResult struct {
	Command string
	Version string
}

type LintRequest struct {
	Files     []string
	CheckOnly bool
	NoFix     bool
	SkipMypy  bool
	Dry       bool
}

type LintResult struct {
	Command string
}

type SyncRequest struct {
	Filename string
	Extras   string
	Save     bool
	Dry      bool
}

type SyncResult struct {
	Command string
}

type TestRequest struct {
	Dry bool
}

type TestResult struct {
	Command string
}

package ports

import "fastdev/internal/types"

// PlanWriterPort persists a structured upgrade plan for consumption by
// other tooling.
type PlanWriterPort interface {
	WritePlan(path string, plan types.ManifestPlan) error
}

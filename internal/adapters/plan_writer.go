package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"fastdev/internal/ports"
	"fastdev/internal/types"
)

// PlanWriterAdapter persists upgrade plans as YAML for other tooling.
type PlanWriterAdapter struct{}

func NewPlanWriterAdapter() PlanWriterAdapter {
	return PlanWriterAdapter{}
}

func (a PlanWriterAdapter) WritePlan(path string, plan types.ManifestPlan) error {
	data, err := yaml.Marshal(plan)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal upgrade plan").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write upgrade plan").
			WithCause(err)
	}
	return nil
}

var _ ports.PlanWriterPort = PlanWriterAdapter{}

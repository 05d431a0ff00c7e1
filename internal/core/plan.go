package core

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"

	"fastdev/internal/types"
)

const addCommand = "poetry add "

// BuildPlan classifies every entry of a section body and partitions the
// upgrade targets into plain and flagged groups. Flag-key order follows
// first appearance in the source text.
func BuildPlan(ctx context.Context, body string) (types.UpgradePlan, error) {
	entries, err := ParseEntries(body)
	if err != nil {
		return types.UpgradePlan{}, err
	}
	plan := types.UpgradePlan{}
	for _, entry := range entries {
		classification := Classify(ctx, entry)
		switch classification.Kind {
		case types.ClassificationSkip:
			continue
		case types.ClassificationPlain:
			plan.Plain = append(plan.Plain, classification.PackageToken)
		case types.ClassificationFlagged:
			assert.NotEmpty(ctx, classification.FlagKey, "flagged classification must carry a flag key")
			if plan.Flagged == nil {
				plan.Flagged = map[string][]string{}
			}
			if _, seen := plan.Flagged[classification.FlagKey]; !seen {
				plan.FlagOrder = append(plan.FlagOrder, classification.FlagKey)
			}
			plan.Flagged[classification.FlagKey] = append(plan.Flagged[classification.FlagKey], classification.PackageToken)
		}
	}
	return plan, nil
}

// BuildManifestPlan runs the splitter and plan builder over a whole
// manifest, producing independent plans for the production and
// development blocks.
func BuildManifestPlan(ctx context.Context, manifestText string) (types.ManifestPlan, error) {
	split := SplitSections(manifestText)
	main, err := BuildPlan(ctx, split.MainBody)
	if err != nil {
		return types.ManifestPlan{}, err
	}
	dev, err := BuildPlan(ctx, split.DevBody)
	if err != nil {
		return types.ManifestPlan{}, err
	}
	return types.ManifestPlan{
		Main:    main,
		Dev:     dev,
		DevFlag: split.Schema.DevFlag(),
	}, nil
}

// AssembleCommand renders a manifest plan as a single shell command
// chain: one add invocation for plain production targets, one for plain
// dev targets (carrying the dev-group flag), then one per distinct flag
// key. Dev-sourced flag groups get the dev-group flag appended as a
// trailing argument. Steps are joined with " && " so a failing step
// halts the chain.
func AssembleCommand(plan types.ManifestPlan) string {
	var steps []string
	if len(plan.Main.Plain) > 0 {
		steps = append(steps, addCommand+strings.Join(plan.Main.Plain, " "))
	}
	if len(plan.Dev.Plain) > 0 {
		steps = append(steps, addCommand+plan.DevFlag+" "+strings.Join(plan.Dev.Plain, " "))
	}
	for _, key := range plan.Main.FlagOrder {
		steps = append(steps, addCommand+key+" "+strings.Join(plan.Main.Flagged[key], " "))
	}
	for _, key := range plan.Dev.FlagOrder {
		steps = append(steps, addCommand+key+" "+strings.Join(plan.Dev.Flagged[key], " ")+" "+plan.DevFlag)
	}
	return strings.Join(steps, " && ")
}

package core

import (
	"strings"

	"fastdev/internal/types"
)

const (
	mainHeader      = "[tool.poetry.dependencies]"
	groupDevHeader  = "[tool.poetry.group.dev.dependencies]"
	legacyDevHeader = "[tool.poetry.dev-dependencies]"
)

// SplitSections isolates the production and development dependency
// bodies of a manifest. The dev header is tried in schema order: the
// group-dev variant first, the legacy variant as fallback. A manifest
// without a dev section yields an empty dev body and the group-dev
// schema (its flag is only used when dev entries exist).
func SplitSections(manifestText string) types.SectionSplit {
	text := manifestText
	if idx := strings.Index(text, mainHeader); idx >= 0 {
		text = text[idx+len(mainHeader):]
	}
	schema := types.SchemaGroupDev
	devHeader := groupDevHeader
	if !strings.Contains(text, groupDevHeader) {
		schema = types.SchemaLegacyDev
		devHeader = legacyDevHeader
	}
	mainBody := text
	devBody := ""
	if idx := strings.Index(text, devHeader); idx >= 0 {
		mainBody = text[:idx]
		devBody = text[idx+len(devHeader):]
	} else {
		schema = types.SchemaGroupDev
	}
	return types.SectionSplit{
		MainBody: sectionBody(mainBody),
		DevBody:  sectionBody(devBody),
		Schema:   schema,
	}
}

// HasDevSection reports whether the manifest declares a development
// dependency block under either header variant.
func HasDevSection(manifestText string) bool {
	return strings.Contains(manifestText, groupDevHeader) ||
		strings.Contains(manifestText, legacyDevHeader)
}

// sectionBody trims a raw block to the lines before the next section
// header (a line starting with "[").
func sectionBody(raw string) string {
	var kept []string
	seen := false
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") {
			if seen {
				break
			}
			continue
		}
		if trimmed != "" {
			seen = true
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

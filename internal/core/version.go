package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"

	"fastdev/internal/types"
)

// bumpParts maps accepted spellings (names and 1-based ordinals) to the
// canonical part.
var bumpParts = map[string]types.BumpPart{
	"1": types.BumpPatch, "patch": types.BumpPatch,
	"2": types.BumpMinor, "minor": types.BumpMinor,
	"3": types.BumpMajor, "major": types.BumpMajor,
}

// ParseBumpPart resolves a raw part argument. An empty argument
// defaults to patch.
func ParseBumpPart(raw string) (types.BumpPart, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return types.BumpPatch, nil
	}
	part, ok := bumpParts[trimmed]
	if !ok {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid part: %q (want patch, minor or major)", raw))
	}
	return part, nil
}

// NextVersion predicts the version bumpversion will write for the given
// part. The current version must be a valid PEP 440 three-component
// release, matching the parse pattern handed to bumpversion.
func NextVersion(current string, part types.BumpPart) (string, error) {
	if _, err := pep440.Parse(current); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("current version %q is not PEP 440", current)).
			WithCause(err)
	}
	fields := strings.Split(strings.TrimSpace(current), ".")
	if len(fields) != 3 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("current version %q is not major.minor.patch", current))
	}
	numbers := make([]int, 3)
	for i, field := range fields {
		value, err := strconv.Atoi(field)
		if err != nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("current version %q is not major.minor.patch", current)).
				WithCause(err)
		}
		numbers[i] = value
	}
	switch part {
	case types.BumpMajor:
		numbers[0], numbers[1], numbers[2] = numbers[0]+1, 0, 0
	case types.BumpMinor:
		numbers[1], numbers[2] = numbers[1]+1, 0
	default:
		numbers[2]++
	}
	return fmt.Sprintf("%d.%d.%d", numbers[0], numbers[1], numbers[2]), nil
}

// BumpCommand assembles the bumpversion invocation. With commit the
// change is committed and pushed (tagging non-patch bumps); without it
// the working tree may stay dirty.
func BumpCommand(current string, part types.BumpPart, filename string, commit bool) string {
	parse := `"(?P<major>\d+)\.(?P<minor>\d+)\.(?P<patch>\d+)"`
	cmd := fmt.Sprintf("bumpversion --parse %s --current-version='%s' %s %s", parse, current, part, filename)
	if commit {
		if part != types.BumpPatch {
			cmd += " --tag"
		}
		cmd += " --commit && git push && git push --tags && git log -1"
	} else {
		cmd += " --allow-dirty"
	}
	return cmd
}

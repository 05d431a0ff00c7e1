package core

import "strings"

// ExtractValue picks the raw value for key out of a single-line inline
// table version spec, e.g.
//
//	{extras = ["asyncpg","aiomysql"], version = "*", optional = true}
//
// Array values come back comma-joined with quotes stripped, quoted
// strings come back unquoted, and bare tokens run to the next comma or
// closing brace. This is a targeted substring extraction over the
// well-formed single-line tables poetry writes, not a TOML parser.
func ExtractValue(versionSpec string, key string) string {
	sep := key + " = "
	parts := strings.SplitN(versionSpec, sep, 2)
	rest := strings.Trim(parts[len(parts)-1], " =")
	switch {
	case strings.HasPrefix(rest, "["):
		rest = strings.SplitN(rest[1:], "]", 2)[0]
	case strings.HasPrefix(rest, `"`):
		rest = strings.SplitN(rest[1:], `"`, 2)[0]
	default:
		rest = strings.SplitN(rest, ",", 2)[0]
		rest = strings.SplitN(rest, "}", 2)[0]
	}
	return strings.ReplaceAll(strings.TrimSpace(rest), `"`, "")
}

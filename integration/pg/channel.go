package pg

import "regexp"

// channelNamePattern matches unquoted PostgreSQL identifiers.
var channelNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ValidChannel reports whether name is usable as a LISTEN/NOTIFY channel:
// a plain PostgreSQL identifier of at most 63 bytes.
func ValidChannel(name string) bool {
	return name != "" && len(name) <= 63 && channelNamePattern.MatchString(name)
}

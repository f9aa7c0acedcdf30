package utils

import "strings"

// userTablePrefix is prepended to every sanitized username to form the
// storage reference exposed as "tableName" in the registration response.
const userTablePrefix = "user_"

// SanitizeUsername maps an arbitrary display name to a storage-safe
// identifier: every character outside [A-Za-z0-9_] is replaced with '_'
// and the result is lowercased.
//
// The function is pure, total and idempotent: sanitizing an already
// sanitized string returns it unchanged. Display names that differ only
// in case or in punctuation collide onto the same identifier.
func SanitizeUsername(username string) string {
	var b strings.Builder
	b.Grow(len(username))

	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte('_')
		}
	}

	return b.String()
}

// TableNameForUsername derives the storage reference for a display name.
// The name is expected to be trimmed already.
func TableNameForUsername(username string) string {
	return userTablePrefix + SanitizeUsername(username)
}

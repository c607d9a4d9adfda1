// Package objectpath checks blob store object keys supplied by clients.
package objectpath

import "strings"

// Escapes reports whether a slash or backslash separated key climbs out of
// its directory.
func Escapes(key string) bool {
	for _, seg := range strings.FieldsFunc(key, isSeparator) {
		if seg == ".." {
			return true
		}
	}
	return false
}

// Within reports whether key sits under prefix without escaping it.
func Within(key, prefix string) bool {
	key = strings.TrimLeft(strings.TrimSpace(key), "/")
	return strings.HasPrefix(key, prefix) && len(key) > len(prefix) && !Escapes(key)
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

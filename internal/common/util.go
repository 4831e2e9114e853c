package common

import "strings"

// WipeByteArray overwrites b with zeros. Used for passwords read from the
// terminal once they have been sent. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// NormalizeRole trims and lower-cases role, falling back to DefaultRole.
func NormalizeRole(role string) string {
	r := strings.ToLower(strings.TrimSpace(role))
	if r == "" {
		return DefaultRole
	}
	return r
}

// RoleMatches reports whether two roles are equal after normalization.
func RoleMatches(have, want string) bool {
	return NormalizeRole(have) == NormalizeRole(want)
}

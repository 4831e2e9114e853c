// Package common contains constants shared by the Jabuspark client packages.
package common

const (
	// TokenStorageKey is the local storage key holding the raw bearer token.
	TokenStorageKey = "jabuspark_token"

	// UserStorageKey is the local storage key holding the JSON user record.
	UserStorageKey = "jabuspark_user"
)

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName identifies a single outbound request in logs.
	RequestIDHeaderName = "X-Request-ID"

	// BearerPrefix is prepended to the token in the Authorization header.
	BearerPrefix = "Bearer "
)

const (
	// DefaultRole is applied to stored users without a role.
	DefaultRole = "student"

	// DefaultDisplayName is applied to stored users without a name.
	DefaultDisplayName = "Student"
)

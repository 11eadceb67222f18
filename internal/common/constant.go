package common

// Persisted storage keys. Only the session controller writes these,
// and both must be cleared together whenever either is invalidated.
const (
	CredentialKey = "credential"
	CachedUserKey = "cached_user"
)

// AuthHeaderName is the HTTP header carrying the bearer credential
// on authorized requests.
const AuthHeaderName = "Authorization"

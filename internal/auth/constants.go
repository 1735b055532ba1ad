package auth

const (
	ContextKeyClaims = "claims"

	jsonKeyError = "error"

	headerAuthorization = "Authorization"

	bearerScheme    = "bearer"
	authHeaderParts = 2
)

const (
	msgMissingAuthorization    = "missing authorization token"
	msgInvalidOrExpiredToken   = "invalid or expired token"
	msgInsufficientPermissions = "insufficient permissions"
	msgAdminOnly               = "admins only"
	msgNotAuthenticated        = "request not authenticated"
	msgUnexpectedSigningMethod = "unexpected signing method: %v"
)

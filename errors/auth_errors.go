// errors/auth_errors.go
package errors

import "net/http"

// Machine-readable codes carried by every auth failure.
const (
	CodeValidationFailed        = "VALIDATION_FAILED"
	CodeUserExists              = "USER_EXISTS"
	CodeInvalidCredentials      = "INVALID_CREDENTIALS"
	CodeMissingToken            = "MISSING_TOKEN"
	CodeTokenExpired            = "TOKEN_EXPIRED"
	CodeUnauthenticated         = "UNAUTHENTICATED"
	CodeRoleMissing             = "ROLE_MISSING"
	CodeInsufficientPermissions = "INSUFFICIENT_PERMISSIONS"
	CodeProviderError           = "PROVIDER_ERROR"
	CodeInternalError           = "INTERNAL_ERROR"
)

var (
	// ErrUserExists rejects a registration for an already-taken email.
	ErrUserExists = New(http.StatusBadRequest, CodeUserExists, "User with this email already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password;
	// the message must stay identical for the two cases.
	ErrInvalidCredentials = New(http.StatusUnauthorized, CodeInvalidCredentials, "Invalid email or password")

	// ErrMissingToken is returned when no bearer header or refresh cookie is present.
	ErrMissingToken = New(http.StatusUnauthorized, CodeMissingToken, "Authentication token is missing")

	// ErrTokenInvalid covers both signature failure and expiry of an access
	// token; the two causes are not distinguished to the caller.
	ErrTokenInvalid = New(http.StatusForbidden, CodeTokenExpired, "Access denied").
			WithDetails("Token is expired or invalid")

	// ErrSessionExpired is the refresh-path equivalent of ErrTokenInvalid.
	ErrSessionExpired = New(http.StatusForbidden, CodeTokenExpired, "Session expired. Please login again")

	// ErrUnauthenticated means the role guard ran without a verified identity.
	ErrUnauthenticated = New(http.StatusUnauthorized, CodeUnauthenticated, "Authentication required")

	// ErrRoleMissing means the identity carries no role claim.
	ErrRoleMissing = New(http.StatusForbidden, CodeRoleMissing, "No role associated with this account")

	// ErrInsufficientPermissions means the role is not in the route's allow-list.
	ErrInsufficientPermissions = New(http.StatusForbidden, CodeInsufficientPermissions, "You do not have permission to access this resource")

	// ErrProvider propagates an OAuth code-exchange failure.
	ErrProvider = New(http.StatusBadGateway, CodeProviderError, "Failed to authenticate with identity provider")
)

// ValidationFailed collects every violated rule into one 400.
func ValidationFailed(violations []string) *AppError {
	return New(http.StatusBadRequest, CodeValidationFailed, "Validation failed").WithDetails(violations)
}

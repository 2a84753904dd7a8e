package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrAdminAccessOnly ErrCode = "ADMIN_ACCESS_ONLY"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation         ErrCode = "VALIDATION_ERROR"
	ErrMissingCredentials ErrCode = "MISSING_CREDENTIALS"
	ErrPasswordPolicy     ErrCode = "PASSWORD_POLICY"
	ErrInvalidPayload     ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrConflict ErrCode = "USERNAME_TAKEN"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns the human-readable message for a given error code.
// Several of these strings are part of the public API contract and are
// matched verbatim by clients; do not reword them.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrInvalidCredentials:
		return "Invalid username or password"
	case ErrTokenRequired:
		return "Authentication token is required"
	case ErrTokenInvalid:
		return "Invalid or expired authentication token"
	case ErrAdminAccessOnly:
		return "Access Denied: Admins only"
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrMissingCredentials:
		return "Username and password are required"
	case ErrPasswordPolicy:
		return "Password does not meet the policy requirements"
	case ErrInvalidPayload:
		return "Invalid request payload"
	case ErrNotFound:
		return "Resource not found"
	case ErrConflict:
		return "Username already exists"
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "An internal server error occurred"
	default:
		return "An unexpected error occurred"
	}
}

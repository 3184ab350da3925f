package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeBadID        = "BAD_ID"
	CodeBadData      = "BAD_DATA"
	CodeRateLimited  = "RATE_LIMITED"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeMissingDependency  = "MISSING_DEPENDENCY"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeDecryptionFailed   = "DECRYPTION_FAILED"
)

package apperrors

// ErrorCode classifies an application error.
type ErrorCode string

const (
	// System and unknown
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeNetworkError  ErrorCode = "NETWORK_ERROR"
	CodeUnknownError  ErrorCode = "UNKNOWN_ERROR"

	// Generic business-logic codes (used by factories)
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeServerRejected   ErrorCode = "SERVER_REJECTED"
	CodeLinkFailed       ErrorCode = "LINK_FAILED"
	CodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// Authentication
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeNoSession          ErrorCode = "NO_SESSION"
	CodeSessionExpired     ErrorCode = "SESSION_EXPIRED"
)

package apperrors

import "net/http"

// Factories and predeclared errors for the client domains.

// NetworkError wraps a transport-level failure: the request never reached the
// server or the response never arrived. HTTPCode 0 marks "no response".
func NetworkError(err error) *AppError {
	return Wrap(err, CodeNetworkError, "transport", "Network error occurred", 0)
}

// ValidationError carries local field validation failures. Never sent to the
// server; Details holds the per-field messages.
func ValidationError(details interface{}) *AppError {
	return New(CodeValidationFailed, "validation", "Validation failed", http.StatusBadRequest).WithDetails(details)
}

// ServerError represents a non-success envelope from the backend, with the
// message already extracted in priority order.
func ServerError(domain, message string, httpCode int) *AppError {
	if message == "" {
		message = "Request failed"
	}
	return New(CodeServerRejected, domain, message, httpCode)
}

// LinkWarning marks a failed link-after-save call. Savers treat it as a
// warning, not a failure: the section record exists, only the umbrella
// profile reference is missing.
func LinkWarning(section string, err error) *AppError {
	return Wrap(err, CodeLinkFailed, section, "Section saved but could not be linked to the profile", http.StatusOK)
}

func DecodeError(err error) *AppError {
	return Wrap(err, CodeInternalError, "decode", "Failed to decode server response", http.StatusOK)
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, resource, resource+" not found", http.StatusNotFound)
}

var (
	ErrNoSession = New(CodeNoSession, "session", "No active session", http.StatusUnauthorized)

	ErrSessionExpired = New(CodeSessionExpired, "session", "Session has expired", http.StatusUnauthorized)

	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)

	// ErrNoProfessionalsID is returned when profile creation is requested
	// before a professionals id is known (registration incomplete).
	ErrNoProfessionalsID = New(CodeInvalidOperation, "profile", "No professionals id available; complete registration first", http.StatusBadRequest)

	// ErrNoProfileID is returned when the backend reports success but no
	// usable numeric id could be extracted from the response.
	ErrNoProfileID = New(CodeInvalidOperation, "profile", "Backend returned no valid profile id", http.StatusOK)
)

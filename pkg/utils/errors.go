package utils

// Error codes returned in API responses.
const (
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// AppError is the error payload of the response envelope.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// NewAppError creates an AppError with optional details.
func NewAppError(code, message string, details ...string) *AppError {
	err := &AppError{Code: code, Message: message}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

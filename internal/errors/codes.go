package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_004"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
	TransactionInvalidKind   ErrorCode = "TRANSACTION_003"
	TransactionMissingID     ErrorCode = "TRANSACTION_004"
)

// Upload error codes (UPLOAD_*)
const (
	UploadMissingFile    ErrorCode = "UPLOAD_001"
	UploadNoValidRecords ErrorCode = "UPLOAD_002"
)

// Coach error codes (COACH_*)
const (
	CoachUpstreamError  ErrorCode = "COACH_001"
	CoachTimeout        ErrorCode = "COACH_002"
	CoachMissingMessage ErrorCode = "COACH_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_003"
	SystemServiceUnavailable ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidDate:   "Invalid date format or range",

	// Transaction errors
	TransactionNotFound:      "Transaction not found",
	TransactionInvalidAmount: "Transaction amount must be a positive number",
	TransactionInvalidKind:   "Transaction type must be income or expense",
	TransactionMissingID:     "Transaction ID is required",

	// Upload errors
	UploadMissingFile:    "No file uploaded",
	UploadNoValidRecords: "No valid transactions found in the file",

	// Coach errors
	CoachUpstreamError:  "AI coach service returned an error",
	CoachTimeout:        "AI coach service did not respond in time",
	CoachMissingMessage: "Message is required",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemServiceUnavailable: "Service temporarily unavailable",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

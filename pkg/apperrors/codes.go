package apperrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeAccountDisabled    ErrorCode = "ACCOUNT_DISABLED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeForbiddenRole      ErrorCode = "FORBIDDEN_ROLE"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"
	CodeInvalidStatus    ErrorCode = "INVALID_STATUS"
	CodeInvalidJobStatus ErrorCode = "INVALID_JOB_STATUS"

	// Resources
	CodeNotFound            ErrorCode = "NOT_FOUND"
	CodeUserNotFound        ErrorCode = "USER_NOT_FOUND"
	CodeProfileNotFound     ErrorCode = "PROFILE_NOT_FOUND"
	CodeJobNotFound         ErrorCode = "JOB_NOT_FOUND"
	CodeJobNotSaved         ErrorCode = "JOB_NOT_SAVED"
	CodeApplicationNotFound ErrorCode = "APPLICATION_NOT_FOUND"

	// Business logic
	CodeEmailAlreadyExists   ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeUsernameTaken        ErrorCode = "USERNAME_TAKEN"
	CodeDuplicateApplication ErrorCode = "DUPLICATE_APPLICATION"
	CodeJobNotAccepting      ErrorCode = "JOB_NOT_ACCEPTING_APPLICATIONS"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)

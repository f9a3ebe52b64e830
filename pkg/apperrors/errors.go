package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

type ErrorCode string

// AppError carries a machine-readable code, a human-readable message and the
// HTTP status the error maps to.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

var (
	// Authentication
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
	ErrAccountDisabled    = New(CodeAccountDisabled, "Account is disabled", http.StatusUnauthorized)

	// Authorization
	ErrForbidden     = New(CodeForbidden, "You do not have permission to perform this action", http.StatusForbidden)
	ErrForbiddenRole = New(CodeForbiddenRole, "Only job seekers can apply for jobs", http.StatusForbidden)

	// Users and profiles
	ErrUserNotFound       = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "A user with this email already exists", http.StatusConflict)
	ErrUsernameTaken      = New(CodeUsernameTaken, "A user with this username already exists", http.StatusConflict)
	ErrInvalidUserRole    = New(CodeInvalidUserRole, "Invalid user role", http.StatusBadRequest)
	ErrProfileNotFound    = New(CodeProfileNotFound, "Profile not found", http.StatusNotFound)
	ErrWeakPassword       = New(CodeWeakPassword, "Password must be at least 8 characters", http.StatusBadRequest)

	// Jobs
	ErrJobNotFound  = New(CodeJobNotFound, "Job not found", http.StatusNotFound)
	ErrJobNotSaved  = New(CodeJobNotSaved, "Job not saved", http.StatusNotFound)
	ErrInvalidJobStatus = New(CodeInvalidJobStatus, "Invalid job status", http.StatusBadRequest)

	// Applications
	ErrApplicationNotFound         = New(CodeApplicationNotFound, "Application not found", http.StatusNotFound)
	ErrDuplicateApplication        = New(CodeDuplicateApplication, "You have already applied for this job", http.StatusConflict)
	ErrJobNotAcceptingApplications = New(CodeJobNotAccepting, "This job is not currently accepting applications", http.StatusBadRequest)
	ErrInvalidApplicationStatus    = New(CodeInvalidStatus, "Invalid application status", http.StatusBadRequest)

	// Validation
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

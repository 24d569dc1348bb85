package errors

import (
	"net/http"

	"jobboard/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError carrying the same business error code, so copies made by
// WithDetails still compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication gate
	ErrMissingAuth = NewBaseError(
		http.StatusBadRequest,
		"MISSING_AUTH",
		"Authorization header is required",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TOKEN",
		"Invalid token",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusBadRequest,
		"SESSION_EXPIRED",
		"Login session expired, please log in again",
		"",
	)

	ErrAccountBanned = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_BANNED",
		"This account has been banned",
		"",
	)

	// Authorization gate
	ErrAccessDenied = NewBaseError(
		http.StatusForbidden,
		"ACCESS_DENIED",
		"You are not allowed to perform this action",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrDuplicateCredential = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_CREDENTIAL",
		"Email or phone number is already registered",
		"",
	)

	ErrUserNotConfirmed = NewBaseError(
		http.StatusBadRequest,
		"USER_NOT_CONFIRMED",
		"Please confirm your email first",
		"",
	)

	ErrAlreadyConfirmed = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_CONFIRMED",
		"Email is already confirmed",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrProviderMismatch = NewBaseError(
		http.StatusConflict,
		"PROVIDER_MISMATCH",
		"This email is registered with a different sign-in method",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// OTP-related errors
	ErrNoSuchOTP = NewBaseError(
		http.StatusBadRequest,
		"NO_SUCH_OTP",
		"No code was requested for this action",
		"",
	)

	ErrOTPMismatch = NewBaseError(
		http.StatusBadRequest,
		"OTP_MISMATCH",
		"Invalid code",
		"",
	)

	ErrExpiredOTP = NewBaseError(
		http.StatusBadRequest,
		"EXPIRED_OTP",
		"Code has expired",
		"",
	)

	ErrOTPRequestThrottled = NewBaseError(
		http.StatusTooManyRequests,
		"OTP_REQUEST_THROTTLED",
		"A code was sent recently, please wait before requesting another",
		"",
	)

	// OAuth-related errors
	ErrOAuthTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_TOKEN_INVALID",
		"Invalid Google ID token",
		"",
	)

	// Company-related errors
	ErrCompanyNotFound = NewBaseError(
		http.StatusNotFound,
		"COMPANY_NOT_FOUND",
		"Company not found",
		"",
	)

	ErrCompanyAlreadyExists = NewBaseError(
		http.StatusConflict,
		"COMPANY_ALREADY_EXISTS",
		"Company name or email is already registered",
		"",
	)

	// Chat-related errors
	ErrChatNotFound = NewBaseError(
		http.StatusNotFound,
		"CHAT_NOT_FOUND",
		"Chat not found",
		"",
	)

	// Moderation and state transitions
	ErrInvalidAction = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ACTION",
		"This action is not valid in the current state",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		"Too many requests",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error for logging.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

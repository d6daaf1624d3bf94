// Package errors provides the coded error type used across red-panda.
//
// Every fatal condition the installer can hit carries a stable ErrorCode so
// tests and the CLI can tell a missing dependency from a failed clone without
// matching on message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrAlreadyExists  ErrorCode = "ALREADY_EXISTS"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Precondition errors, raised before anything is mutated
	ErrInstallDirInvalid ErrorCode = "INSTALL_DIR_INVALID"
	ErrDependencyMissing ErrorCode = "DEPENDENCY_MISSING"
	ErrUnknownFeature    ErrorCode = "UNKNOWN_FEATURE"
	ErrHomeUnset         ErrorCode = "HOME_UNSET"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Repository errors
	ErrSourceUnset       ErrorCode = "SOURCE_UNSET"
	ErrDestinationExists ErrorCode = "DESTINATION_EXISTS"
	ErrCloneFailed       ErrorCode = "CLONE_FAILED"
	ErrRestoreFailed     ErrorCode = "RESTORE_FAILED"
	ErrNotRepository     ErrorCode = "NOT_REPOSITORY"

	// Process errors
	ErrCommandSpawn  ErrorCode = "COMMAND_SPAWN"
	ErrCommandFailed ErrorCode = "COMMAND_FAILED"

	// FileSystem errors
	ErrFileNotFound  ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrFileWrite     ErrorCode = "FILE_WRITE"
	ErrFileRename    ErrorCode = "FILE_RENAME"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"

	// State machine errors
	ErrInvalidState ErrorCode = "INVALID_STATE"
)

// RedPandaError represents a structured error with code and details
type RedPandaError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RedPandaError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RedPandaError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RedPandaError) Is(target error) bool {
	var targetErr *RedPandaError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RedPandaError with the given code and message
func New(code ErrorCode, message string) *RedPandaError {
	return &RedPandaError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RedPandaError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RedPandaError {
	return &RedPandaError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RedPandaError
func Wrap(err error, code ErrorCode, message string) *RedPandaError {
	if err == nil {
		return nil
	}
	return &RedPandaError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RedPandaError {
	if err == nil {
		return nil
	}
	return &RedPandaError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RedPandaError) WithDetail(key string, value interface{}) *RedPandaError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code.
// The outermost RedPandaError in the chain decides.
func IsErrorCode(err error, code ErrorCode) bool {
	var rpErr *RedPandaError
	if errors.As(err, &rpErr) {
		return rpErr.Code == code
	}
	return false
}

// HasErrorCode reports whether any RedPandaError in the chain carries code.
func HasErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		var rpErr *RedPandaError
		if !errors.As(err, &rpErr) {
			return false
		}
		if rpErr.Code == code {
			return true
		}
		err = rpErr.Wrapped
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RedPandaError
func GetErrorCode(err error) ErrorCode {
	var rpErr *RedPandaError
	if errors.As(err, &rpErr) {
		return rpErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a RedPandaError
func GetErrorDetails(err error) map[string]interface{} {
	var rpErr *RedPandaError
	if errors.As(err, &rpErr) {
		return rpErr.Details
	}
	return nil
}

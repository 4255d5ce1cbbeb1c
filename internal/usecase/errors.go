package usecase

import (
	"errors"
	"fmt"

	"portfolio-assistant/internal/locale"
)

type ErrorCode string

const (
	ErrorInvalidInput       ErrorCode = "INVALID_INPUT"
	ErrorConfiguration      ErrorCode = "CONFIGURATION_ERROR"
	ErrorAuthentication     ErrorCode = "AUTHENTICATION_ERROR"
	ErrorRateLimited        ErrorCode = "RATE_LIMITED"
	ErrorNetwork            ErrorCode = "NETWORK_ERROR"
	ErrorModelUnavailable   ErrorCode = "MODEL_UNAVAILABLE"
	ErrorAllModelsExhausted ErrorCode = "ALL_MODELS_EXHAUSTED"
	ErrorUpstream           ErrorCode = "UPSTREAM_ERROR"
	ErrorNotFound           ErrorCode = "NOT_FOUND"
	ErrorInternal           ErrorCode = "INTERNAL_ERROR"
)

type Error struct {
	Code   ErrorCode
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("usecase: %s (%s)", e.Code, e.Reason)
	}
	return fmt.Sprintf("usecase: %s (%s): %v", e.Code, e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(code ErrorCode, reason string, err error) *Error {
	return &Error{Code: code, Reason: reason, Err: err}
}

// CodeOf returns the code carried by err, or ErrorInternal for anything that
// is not a usecase error.
func CodeOf(err error) ErrorCode {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Code
	}
	return ErrorInternal
}

func failureFor(code ErrorCode) locale.Failure {
	switch code {
	case ErrorConfiguration:
		return locale.FailureConfiguration
	case ErrorAuthentication:
		return locale.FailureAuthentication
	case ErrorRateLimited:
		return locale.FailureRateLimit
	case ErrorNetwork:
		return locale.FailureNetwork
	default:
		return 0
	}
}

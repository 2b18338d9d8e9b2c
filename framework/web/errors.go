package web

import (
	"errors"
	"net/http"
)

// Set of error variables for returning on operations.
var (
	ErrNotFound              = errors.New("not found")
	ErrAuthenticationFailure = errors.New("authentication failed")
	ErrInternalServerError   = errors.New("internal server error")
)

// ErrorResponse is the form used for API responses from failures in the API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error is used to pass an error during the request through the
// application with web specific context.
type Error struct {
	Err    error
	Status int
}

// NewRequestError wraps a provided error with an HTTP status code. This
// function should be used when handlers encounter expected errors.
func NewRequestError(err error, status int) error {
	return &Error{err, status}
}

// Error implements the error interface. It uses the default message of the
// wrapped error. This is what will be shown in the services' logs.
func (err *Error) Error() string {
	return err.Err.Error()
}

func (err *Error) Unwrap() error {
	return err.Err
}

// shutdown is a type used to help with the graceful termination of the service.
type shutdown struct {
	Message string
}

// NewShutdownError returns an error that causes the framework to signal
// a graceful shutdown.
func NewShutdownError(message string) error {
	return &shutdown{message}
}

// Error is the implementation of the error interface.
func (s *shutdown) Error() string {
	return s.Message
}

// IsShutdown checks to see if the shutdown error is contained
// in the specified error value.
func IsShutdown(err error) bool {
	var s *shutdown
	return errors.As(err, &s)
}

// TranslateError checks whether the error wraps one of our errors set and
// returns it with the related http status code, or nil when it wraps none.
// This function should be used only inside handlers.
func TranslateError(err error) error {
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return NewRequestError(err, http.StatusNotFound)
		case errors.Is(err, ErrAuthenticationFailure):
			return NewRequestError(err, http.StatusUnauthorized)
		case errors.Is(err, ErrInternalServerError):
			return NewRequestError(err, http.StatusInternalServerError)
		}
	}

	return nil
}

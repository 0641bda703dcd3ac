// Package richerrors provides an error type that carries an HTTP status
// code and a message safe to return to the caller, while keeping the
// internal error for logging.
package richerrors

// Error wraps an internal error with an HTTP status code and an
// external message. The internal error is never sent to the caller.
type Error struct {
	// Code is the HTTP status code returned to the caller.
	Code int
	// ExternalMsg is the message returned to the caller.
	ExternalMsg string
	// Err is the internal error, used for logging only.
	Err error
}

func (e Error) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.ExternalMsg
}

func (e Error) Unwrap() error {
	return e.Err
}

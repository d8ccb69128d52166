package models

import "errors"

type ErrorType string

const (
	WrongParams ErrorType = "wrong_params"
	NotFound    ErrorType = "not_found"
)

// PMError is a client-side error raised before or after talking to the API.
type PMError struct {
	Type    ErrorType
	Message string
}

func NewPMError(errType ErrorType, message string) *PMError {
	return &PMError{Type: errType, Message: message}
}

func (e *PMError) Error() string {
	return e.Message
}

func IsWrongParams(err error) bool {
	return isType(err, WrongParams)
}

func IsNotFound(err error) bool {
	return isType(err, NotFound)
}

func isType(err error, errType ErrorType) bool {
	var pmErr *PMError
	return errors.As(err, &pmErr) && pmErr.Type == errType
}

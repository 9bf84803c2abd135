package httperror

import "net/http"

// Error carries the HTTP status and the envelope fields the boundary writes
// for a failed request.
type Error struct {
	Status  int
	Message string
	Errors  []string
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, message string, errs []string) *Error {
	return &Error{Status: status, Message: message, Errors: errs}
}

func BadRequest(message string, errs []string) *Error {
	return New(http.StatusBadRequest, message, errs)
}

func NotFound(message string, errs []string) *Error {
	return New(http.StatusNotFound, message, errs)
}

func InternalServerError(message string, errs []string) *Error {
	return New(http.StatusInternalServerError, message, errs)
}

package response

import "time"

// Envelope is the uniform wrapper every endpoint returns. Data is present
// only on success and Errors only on failure; absent fields are omitted from
// the serialized body entirely.
type Envelope struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Data      any       `json:"data,omitempty"`
	Errors    []string  `json:"errors,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Success wraps the payload of a completed operation.
func Success(message string, data any) Envelope {
	return Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

// Failure wraps the error detail list of a rejected operation.
func Failure(message string, errs []string) Envelope {
	return Envelope{
		Success:   false,
		Message:   message,
		Errors:    errs,
		Timestamp: time.Now().UTC(),
	}
}

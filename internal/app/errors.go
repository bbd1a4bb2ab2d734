package app

import "fmt"

// DomainError is a failure the API reports deliberately: Status becomes the
// HTTP status, Code is the stable machine-readable tag clients switch on
// (GROUP_NOT_FOUND, FORBIDDEN, ALIAS_CONFLICT, ...), Message is for humans.
// Details optionally carries field-level context for validation errors.
// Anything else that escapes a handler surfaces as a generic 500.
type DomainError struct {
	Status  int
	Code    string
	Message string
	Details any
}

func (e *DomainError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func domainError(status int, code, message string, details any) *DomainError {
	return &DomainError{
		Status:  status,
		Code:    code,
		Message: message,
		Details: details,
	}
}

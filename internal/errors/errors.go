package errors

// DomainError is a handler-visible failure with a stable machine code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches DomainErrors by code, so a sentinel refined with WithMessage
// still satisfies errors.Is against the sentinel.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// WithMessage returns a copy of the error carrying a more specific
// message under the same code.
func (e *DomainError) WithMessage(message string) *DomainError {
	return &DomainError{Code: e.Code, Message: message}
}

// Package apperr defines the error variant that crosses layer boundaries:
// a kind plus a client-facing message. The delivery layer owns the mapping
// from kind to HTTP status.
package apperr

import "fmt"

type Kind uint8

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindConflict
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

func Validation(message string) *Error {
	return New(KindValidation, message)
}

func Validationf(format string, args ...any) *Error {
	return New(KindValidation, fmt.Sprintf(format, args...))
}

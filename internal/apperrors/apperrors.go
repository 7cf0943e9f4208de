// internal/apperrors/apperrors.go
package apperrors

import (
	"errors"
	"fmt"
)

// Kind is a stable classification attached to errors crossing component
// boundaries. Handlers map kinds to HTTP status codes; nothing else is
// derived from an error's message text.
type Kind string

const (
	KindInvalidReference Kind = "invalid_reference"
	KindMalformedImage   Kind = "malformed_image"
	KindUploadFailed     Kind = "upload_failed"
	KindPersistence      Kind = "persistence_error"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf reports the kind of err, or "" if err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

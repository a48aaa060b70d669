package domain

import "errors"

// Error kinds shared by every entity package. Handlers map them to
// status codes with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrConflict         = errors.New("already exists")
	ErrInvalidReference = errors.New("references a missing entity")
)

// Error pairs one of the kinds above with a message fit for the client.
type Error struct {
	Err     error
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation wraps a client-facing validation message.
func Validation(msg string) error {
	return &Error{Err: ErrValidation, Message: msg}
}

// Depth bounds for nested serialisation of related entities.
const (
	DepthFlat = 0
	DepthMax  = 2
)

// ClampDepth keeps a requested nesting depth inside [DepthFlat, DepthMax].
func ClampDepth(depth int) int {
	if depth < DepthFlat {
		return DepthFlat
	}
	if depth > DepthMax {
		return DepthMax
	}
	return depth
}

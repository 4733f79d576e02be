package assignment

import (
	"fmt"

	"github.com/pkg/errors"
)

type ErrorKind string

const (
	KindEmptyName          ErrorKind = "EmptyName"
	KindNameTooLong        ErrorKind = "NameTooLong"
	KindDuplicateVolunteer ErrorKind = "DuplicateVolunteer"
	KindTaskFull           ErrorKind = "TaskFull"
	KindNotFound           ErrorKind = "NotFound"
	KindInvalidTask        ErrorKind = "InvalidTask"
)

// Error is a validation failure returned by the engine. It leaves the
// snapshot it was computed from untouched.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements error.
func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}

	return e.Message
}

// UserMessage returns the message to display to the coordinator.
func (e *Error) UserMessage() string {
	return e.Error()
}

// Is matches any engine error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}

var (
	ErrEmptyName          = &Error{Kind: KindEmptyName, Message: "please enter a valid name"}
	ErrNameTooLong        = &Error{Kind: KindNameTooLong, Message: "name is too long"}
	ErrDuplicateVolunteer = &Error{Kind: KindDuplicateVolunteer, Message: "volunteer is already signed up for this task"}
	ErrTaskFull           = &Error{Kind: KindTaskFull, Message: "this task is already full"}
	ErrNotFound           = &Error{Kind: KindNotFound, Message: "person is not assigned to this task"}
	ErrInvalidTask        = &Error{Kind: KindInvalidTask, Message: "invalid task"}
)

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// KindOf returns the kind of the engine error wrapped in err, if any.
func KindOf(err error) (ErrorKind, bool) {
	var engineErr *Error
	if !errors.As(err, &engineErr) {
		return "", false
	}

	return engineErr.Kind, true
}

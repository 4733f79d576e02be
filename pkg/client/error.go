package client

import (
	"fmt"
	"net/http"
)

// Error is a failure reported by the server.
type Error struct {
	StatusCode int
	Kind       string
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected response code %d (%s)", e.StatusCode, http.StatusText(e.StatusCode))
	}

	return fmt.Sprintf("%s (%s)", e.Message, e.Kind)
}

// UserMessage returns the message to display to the coordinator.
func (e *Error) UserMessage() string {
	if e.Message == "" {
		return http.StatusText(e.StatusCode)
	}

	return e.Message
}

func (e *Error) IsConflict() bool {
	return e.StatusCode == http.StatusConflict
}

func (e *Error) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

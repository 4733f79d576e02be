package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/roster/internal/core/assignment"
	"github.com/bornholm/roster/internal/core/port"
	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

const (
	KindMissingField = "MissingField"
	KindBadRequest   = "BadRequest"
	KindTaskNotFound = "TaskNotFound"
	KindConflict     = "Conflict"
	KindStoreError   = "StoreError"
)

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type missingFieldError struct {
	Field string
}

func (e *missingFieldError) Error() string {
	return fmt.Sprintf("missing required field '%s'", e.Field)
}

func requireField(name string, value string) error {
	if value == "" {
		return &missingFieldError{Field: name}
	}

	return nil
}

type badRequestError struct {
	Message string
}

func (e *badRequestError) Error() string {
	return e.Message
}

// writeError maps err to its transport representation. Validation failures
// are client errors, anything unexpected is reported as a store error.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	var (
		status int
		detail ErrorDetail
	)

	var (
		missingField *missingFieldError
		badRequest   *badRequestError
		engineErr    *assignment.Error
	)

	switch {
	case errors.As(err, &missingField):
		status = http.StatusBadRequest
		detail = ErrorDetail{Kind: KindMissingField, Message: missingField.Error()}

	case errors.As(err, &badRequest):
		status = http.StatusBadRequest
		detail = ErrorDetail{Kind: KindBadRequest, Message: badRequest.Error()}

	case errors.As(err, &engineErr):
		status = http.StatusBadRequest
		detail = ErrorDetail{Kind: string(engineErr.Kind), Message: engineErr.UserMessage()}

	case errors.Is(err, port.ErrNotFound):
		status = http.StatusNotFound
		detail = ErrorDetail{Kind: KindTaskNotFound, Message: "task not found"}

	case errors.Is(err, port.ErrConflict):
		status = http.StatusConflict
		detail = ErrorDetail{Kind: KindConflict, Message: "task was modified by someone else, please reload and try again"}

	default:
		slog.ErrorContext(ctx, "could not process request", slog.String("path", r.URL.Path), slogx.Error(errors.WithStack(err)))
		sentry.CaptureException(err)
		status = http.StatusInternalServerError
		detail = ErrorDetail{Kind: KindStoreError, Message: http.StatusText(http.StatusInternalServerError)}
	}

	writeJSONStatus(w, r, status, ErrorResponse{Error: detail})
}

package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

const maxBodySize = 1 << 20

func getQueryBool(query url.Values, name string, defaultValue bool) bool {
	raw := query.Get(name)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}

	return value
}

func readBody(r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

func decodeBody(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return &badRequestError{Message: "invalid request body: " + err.Error()}
	}

	return nil
}

func decodeRequest(r *http.Request, v any) error {
	data, err := readBody(r)
	if err != nil {
		return errors.WithStack(err)
	}

	return decodeBody(data, v)
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	writeJSONStatus(w, r, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, r *http.Request, status int, v any) {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := encoder.Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "could not encode response", slog.Any("error", errors.WithStack(err)))
	}
}

package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMiddleware(t *testing.T) {
	handler := Middleware(
		WithRate(time.Hour, 2),
		WithMethods(http.MethodPost),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func(method string, remoteAddr string) int {
		req := httptest.NewRequest(method, "/tasks", nil)
		req.RemoteAddr = remoteAddr
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)
		return res.Code
	}

	for i := range 2 {
		if e, g := http.StatusNoContent, do(http.MethodPost, "10.0.0.1:1234"); e != g {
			t.Errorf("post #%d: expected status %d, got %d", i, e, g)
		}
	}

	if e, g := http.StatusTooManyRequests, do(http.MethodPost, "10.0.0.1:4321"); e != g {
		t.Errorf("post over limit: expected status %d, got %d", e, g)
	}

	if e, g := http.StatusNoContent, do(http.MethodGet, "10.0.0.1:1234"); e != g {
		t.Errorf("get: expected status %d, got %d", e, g)
	}

	if e, g := http.StatusNoContent, do(http.MethodPost, "10.0.0.2:1234"); e != g {
		t.Errorf("post from other address: expected status %d, got %d", e, g)
	}
}

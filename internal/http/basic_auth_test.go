package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	httpCtx "github.com/bornholm/roster/internal/http/context"
)

func TestBasicAuth(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("writer-secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	server := NewServer(
		WithBasicAuth(true,
			User{Username: "reader", Password: "reader-secret"},
			User{Username: "writer", Password: string(hashed), CanWrite: true},
		),
	)

	var account *httpCtx.Account

	handler := server.basicAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account = httpCtx.User(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	type testCase struct {
		Name             string
		Method           string
		Username         string
		Password         string
		ExpectedStatus   int
		ExpectedUsername string
	}

	testCases := []testCase{
		{Name: "anonymous read", Method: http.MethodGet, ExpectedStatus: http.StatusNoContent},
		{Name: "anonymous write", Method: http.MethodPost, ExpectedStatus: http.StatusUnauthorized},
		{Name: "reader read", Method: http.MethodGet, Username: "reader", Password: "reader-secret", ExpectedStatus: http.StatusNoContent, ExpectedUsername: "reader"},
		{Name: "reader write", Method: http.MethodPut, Username: "reader", Password: "reader-secret", ExpectedStatus: http.StatusForbidden},
		{Name: "writer with hashed password", Method: http.MethodPost, Username: "writer", Password: "writer-secret", ExpectedStatus: http.StatusNoContent, ExpectedUsername: "writer"},
		{Name: "writer with wrong password", Method: http.MethodPost, Username: "writer", Password: "nope", ExpectedStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			account = nil

			req := httptest.NewRequest(tc.Method, "/tasks", nil)
			if tc.Username != "" {
				req.SetBasicAuth(tc.Username, tc.Password)
			}

			res := httptest.NewRecorder()
			handler.ServeHTTP(res, req)

			if e, g := tc.ExpectedStatus, res.Code; e != g {
				t.Errorf("res.Code: expected %d, got %d", e, g)
			}

			username := ""
			if account != nil {
				username = account.Username
			}

			if e, g := tc.ExpectedUsername, username; e != g {
				t.Errorf("account.Username: expected %q, got %q", e, g)
			}
		})
	}
}

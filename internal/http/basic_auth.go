package http

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"slices"
	"strings"

	"golang.org/x/crypto/bcrypt"

	httpCtx "github.com/bornholm/roster/internal/http/context"
)

func (s *Server) basicAuth(next http.Handler) http.Handler {
	hasWriter := slices.ContainsFunc(s.opts.Auth.Users, func(u User) bool { return u.CanWrite })

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := s.authenticate(r)

		if user != nil {
			if !user.CanWrite && !isSafeMethod(r.Method) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			ctx := httpCtx.SetUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		if s.opts.Auth.AllowAnonymous && (isSafeMethod(r.Method) || !hasWriter) {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	})
}

func (s *Server) authenticate(r *http.Request) *httpCtx.Account {
	username, password, ok := r.BasicAuth()
	if !ok {
		return nil
	}

	usernameHash := sha256.Sum256([]byte(username))

	for _, u := range s.opts.Auth.Users {
		expectedUsername := sha256.Sum256([]byte(u.Username))

		if subtle.ConstantTimeCompare(usernameHash[:], expectedUsername[:]) != 1 {
			continue
		}

		if matchPassword(u.Password, password) {
			return &httpCtx.Account{
				Username: u.Username,
				CanWrite: u.CanWrite,
			}
		}
	}

	return nil
}

// matchPassword accepts either a plain text or a bcrypt hashed expected
// password.
func matchPassword(expected string, password string) bool {
	if isBcryptHash(expected) {
		return bcrypt.CompareHashAndPassword([]byte(expected), []byte(password)) == nil
	}

	expectedHash := sha256.Sum256([]byte(expected))
	passwordHash := sha256.Sum256([]byte(password))

	return subtle.ConstantTimeCompare(passwordHash[:], expectedHash[:]) == 1
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

package context

import (
	"context"
)

type contextKey string

// Account is the identity of an authenticated request.
type Account struct {
	Username string
	CanWrite bool
}

const keyUser contextKey = "user"

// User returns the authenticated account, or nil for anonymous requests.
func User(ctx context.Context) *Account {
	user, ok := ctx.Value(keyUser).(*Account)
	if !ok {
		return nil
	}

	return user
}

func SetUser(ctx context.Context, user *Account) context.Context {
	return context.WithValue(ctx, keyUser, user)
}

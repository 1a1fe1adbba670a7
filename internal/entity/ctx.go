package entity

import (
	"context"
	"errors"
)

type (
	CtxKeyIP   struct{}
	CtxKeyUser struct{}
)

// UserFromContext returns the authenticated user placed there by the auth
// middleware. Handlers behind the auth group can rely on it being present.
func UserFromContext(ctx context.Context) (User, error) {
	user, ok := ctx.Value(CtxKeyUser{}).(User)
	if !ok {
		return User{}, errors.New("no user in context")
	}

	return user, nil
}

func SetUserToContext(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, CtxKeyUser{}, user)
}

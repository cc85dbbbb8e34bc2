package secretmanager

import (
	"context"
	"errors"
)

// ErrEmptyToken is returned by StaticToken for an empty token.
var ErrEmptyToken = errors.New("secretmanager: empty access token")

// TokenProvider supplies OAuth2 access tokens. Failures surface as
// apierror.KindAuthentication.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// TokenProviderFunc adapts a function to the TokenProvider interface.
type TokenProviderFunc func(ctx context.Context) (string, error)

// Token implements TokenProvider.
func (f TokenProviderFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

// StaticToken returns a TokenProvider that always supplies token.
func StaticToken(token string) TokenProvider {
	return TokenProviderFunc(func(context.Context) (string, error) {
		if token == "" {
			return "", ErrEmptyToken
		}
		return token, nil
	})
}

package auth

import (
	"context"
	"errors"

	"golang.org/x/oauth2"
)

// ErrNoToken is returned by TokenStore implementations when no token has been
// persisted yet.
var ErrNoToken = errors.New("No token has been stored")

// TokenStore defines an interface for loading and persisting OAuth2 token material
// between runs. Implementations are expected to be used by a single process at a
// time; concurrent writers are not a supported scenario.
type TokenStore interface {
	// Load returns the most recently persisted token, or ErrNoToken.
	Load(ctx context.Context) (*oauth2.Token, error)
	// Save persists 'tok', replacing any previously stored token.
	Save(ctx context.Context, tok *oauth2.Token) error
}

package primary

import (
	"context"
	"time"
)

// CredentialService defines the primary port for the bearer token.
type CredentialService interface {
	// Login stores a bearer token and returns what it claims.
	Login(ctx context.Context, token string) (*Identity, error)

	// Logout removes the stored token.
	Logout(ctx context.Context) error

	// Whoami describes the token currently in use.
	Whoami(ctx context.Context) (*Identity, error)
}

// Identity describes a bearer token. Claims are read without verifying the
// signature; the server stays the authority.
type Identity struct {
	Subject   string
	ExpiresAt time.Time
	Expired   bool
	Source    string // "env" or "store"
}

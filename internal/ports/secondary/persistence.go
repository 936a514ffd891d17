package secondary

import (
	"context"
	"errors"
)

// ErrNoToken is returned when no bearer token is stored.
var ErrNoToken = errors.New("no stored token")

// CredentialStore defines the secondary port for local credential storage.
type CredentialStore interface {
	// Token returns the stored bearer token or ErrNoToken.
	Token(ctx context.Context) (string, error)

	// SaveToken replaces the stored token.
	SaveToken(ctx context.Context, token string) error

	// ClearToken removes the stored token. Clearing an empty store is not an error.
	ClearToken(ctx context.Context) error
}

// SettingsStore defines the secondary port for small key/value preferences.
type SettingsStore interface {
	// Get returns the value for key; ok is false when it is not set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key.
	Set(ctx context.Context, key, value string) error
}

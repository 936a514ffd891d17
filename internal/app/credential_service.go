package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/example/anketa/internal/ports/primary"
	"github.com/example/anketa/internal/ports/secondary"
)

// CredentialServiceImpl implements the CredentialService interface. A token
// given through the environment takes precedence over the stored one.
type CredentialServiceImpl struct {
	store    secondary.CredentialStore
	envToken string
	now      func() time.Time
}

// NewCredentialService creates a new CredentialService.
func NewCredentialService(store secondary.CredentialStore, envToken string) *CredentialServiceImpl {
	return &CredentialServiceImpl{
		store:    store,
		envToken: strings.TrimSpace(envToken),
		now:      time.Now,
	}
}

// Login stores a bearer token and returns what it claims.
func (s *CredentialServiceImpl) Login(ctx context.Context, token string) (*primary.Identity, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return nil, fmt.Errorf("token must not be empty")
	}
	if err := s.store.SaveToken(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to save token: %w", err)
	}
	return s.inspect(token, "store"), nil
}

// Logout removes the stored token.
func (s *CredentialServiceImpl) Logout(ctx context.Context) error {
	if err := s.store.ClearToken(ctx); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}

// Whoami describes the token currently in use.
func (s *CredentialServiceImpl) Whoami(ctx context.Context) (*primary.Identity, error) {
	token, source, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return s.inspect(token, source), nil
}

// Token returns the bearer token for outgoing requests, or "" when there is
// none. Requests without a token are left to the server to reject.
func (s *CredentialServiceImpl) Token(ctx context.Context) (string, error) {
	token, _, err := s.current(ctx)
	if errors.Is(err, secondary.ErrNoToken) {
		return "", nil
	}
	return token, err
}

func (s *CredentialServiceImpl) current(ctx context.Context) (token, source string, err error) {
	if s.envToken != "" {
		return s.envToken, "env", nil
	}
	token, err = s.store.Token(ctx)
	if err != nil {
		return "", "", err
	}
	return token, "store", nil
}

// inspect reads the token claims without verifying the signature. Opaque
// tokens yield an identity with no subject and no expiry.
func (s *CredentialServiceImpl) inspect(token, source string) *primary.Identity {
	identity := &primary.Identity{Source: source}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return identity
	}
	if sub, err := claims.GetSubject(); err == nil {
		identity.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		identity.ExpiresAt = exp.Time
		identity.Expired = !s.now().Before(exp.Time)
	}
	return identity
}

// Ensure CredentialServiceImpl implements the interface
var _ primary.CredentialService = (*CredentialServiceImpl)(nil)

package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/example/anketa/internal/ports/primary"
)

// CredentialAdapter translates login/logout/whoami to CredentialService calls.
type CredentialAdapter struct {
	service primary.CredentialService
	out     io.Writer
}

// NewCredentialAdapter creates a new CredentialAdapter.
func NewCredentialAdapter(service primary.CredentialService, out io.Writer) *CredentialAdapter {
	return &CredentialAdapter{service: service, out: out}
}

// Login stores a token.
func (a *CredentialAdapter) Login(ctx context.Context, token string) error {
	identity, err := a.service.Login(ctx, token)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Token saved\n", okMark)
	a.printIdentity(identity)
	return nil
}

// Logout removes the stored token.
func (a *CredentialAdapter) Logout(ctx context.Context) error {
	if err := a.service.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Logged out\n", okMark)
	return nil
}

// Whoami prints what the current token claims.
func (a *CredentialAdapter) Whoami(ctx context.Context) error {
	identity, err := a.service.Whoami(ctx)
	if err != nil {
		return err
	}
	a.printIdentity(identity)
	return nil
}

func (a *CredentialAdapter) printIdentity(identity *primary.Identity) {
	subject := identity.Subject
	if subject == "" {
		subject = "(opaque token)"
	}
	fmt.Fprintf(a.out, "Subject: %s\n", subject)
	fmt.Fprintf(a.out, "Source:  %s\n", identity.Source)
	if identity.ExpiresAt.IsZero() {
		return
	}
	expires := identity.ExpiresAt.Format(time.RFC3339)
	if identity.Expired {
		expires += " " + warnText("(expired)")
	}
	fmt.Fprintf(a.out, "Expires: %s\n", expires)
}

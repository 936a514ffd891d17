// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/anketa/internal/ports/secondary"
)

// CredentialRepository implements secondary.CredentialStore with SQLite.
// The table holds at most one row.
type CredentialRepository struct {
	db *sql.DB
}

// NewCredentialRepository creates a new SQLite credential repository.
func NewCredentialRepository(db *sql.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// Token returns the stored token.
func (r *CredentialRepository) Token(ctx context.Context) (string, error) {
	var token string
	err := r.db.QueryRowContext(ctx, "SELECT token FROM credentials WHERE id = 1").Scan(&token)
	if err == sql.ErrNoRows {
		return "", secondary.ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}
	return token, nil
}

// SaveToken replaces the stored token.
func (r *CredentialRepository) SaveToken(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO credentials (id, token, saved_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET token = excluded.token, saved_at = excluded.saved_at`,
		token,
	)
	if err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// ClearToken removes the stored token.
func (r *CredentialRepository) ClearToken(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM credentials WHERE id = 1"); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}

// Ensure CredentialRepository implements the interface
var _ secondary.CredentialStore = (*CredentialRepository)(nil)

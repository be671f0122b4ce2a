package driven

import (
	"context"

	"github.com/custodia-labs/onebox/internal/core/domain"
)

// Directory is the read-only employee directory.
type Directory interface {
	// Lookup returns the record with the given id, or domain.ErrNotFound.
	Lookup(ctx context.Context, id string) (*domain.Record, error)

	// Iterate returns every record in a stable order.
	Iterate(ctx context.Context) ([]domain.Record, error)
}

// RoleStore maps user ids to authorization roles.
type RoleStore interface {
	// Role returns the role for userID, or domain.ErrNotFound.
	Role(ctx context.Context, userID string) (domain.Role, error)
}

// PasswordStore holds the stored secret for each user. Secrets are either
// plain text or bcrypt hashes.
type PasswordStore interface {
	// Secret returns the stored secret for username, or domain.ErrNotFound.
	Secret(ctx context.Context, username string) (string, error)
}

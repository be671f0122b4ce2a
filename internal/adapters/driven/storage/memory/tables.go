package memory

import (
	"context"

	"github.com/custodia-labs/onebox/internal/adapters/driven/storage/seed"
	"github.com/custodia-labs/onebox/internal/core/domain"
	"github.com/custodia-labs/onebox/internal/core/ports/driven"
)

var (
	_ driven.RoleStore     = (*RoleStore)(nil)
	_ driven.PasswordStore = (*PasswordStore)(nil)
)

// RoleStore is an immutable user id to role table.
type RoleStore struct {
	roles map[string]domain.Role
}

// NewRoleStore copies the fixture's role table.
func NewRoleStore(f *seed.Fixture) *RoleStore {
	roles := make(map[string]domain.Role, len(f.Roles))
	for id, role := range f.Roles {
		roles[id] = role
	}
	return &RoleStore{roles: roles}
}

// Role returns the role for userID.
func (s *RoleStore) Role(_ context.Context, userID string) (domain.Role, error) {
	role, ok := s.roles[userID]
	if !ok {
		return "", domain.ErrNotFound
	}
	return role, nil
}

// PasswordStore is an immutable username to secret table.
type PasswordStore struct {
	secrets map[string]string
}

// NewPasswordStore copies the fixture's password table.
func NewPasswordStore(f *seed.Fixture) *PasswordStore {
	secrets := make(map[string]string, len(f.Passwords))
	for user, secret := range f.Passwords {
		secrets[user] = secret
	}
	return &PasswordStore{secrets: secrets}
}

// Secret returns the stored secret for username.
func (s *PasswordStore) Secret(_ context.Context, username string) (string, error) {
	secret, ok := s.secrets[username]
	if !ok {
		return "", domain.ErrNotFound
	}
	return secret, nil
}

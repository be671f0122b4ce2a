package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/custodia-labs/onebox/internal/core/domain"
	"github.com/custodia-labs/onebox/internal/core/ports/driven"
)

// Ensure PasswordVerifier implements the interface.
var _ driven.CredentialVerifier = (*PasswordVerifier)(nil)

// PasswordVerifier checks passwords against a PasswordStore. Stored secrets
// starting with a bcrypt prefix are compared as hashes, anything else as
// plain text.
type PasswordVerifier struct {
	store driven.PasswordStore
}

// NewPasswordVerifier creates a verifier over store.
func NewPasswordVerifier(store driven.PasswordStore) *PasswordVerifier {
	return &PasswordVerifier{store: store}
}

// Verify returns nil when password matches the stored secret for username.
func (v *PasswordVerifier) Verify(ctx context.Context, username, password string) error {
	secret, err := v.store.Secret(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: unknown user", domain.ErrAuthInvalid)
		}
		return fmt.Errorf("load secret: %w", err)
	}

	if IsHashed(secret) {
		if err := bcrypt.CompareHashAndPassword([]byte(secret), []byte(password)); err != nil {
			return fmt.Errorf("%w: password mismatch", domain.ErrAuthInvalid)
		}
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(secret), []byte(password)) != 1 {
		return fmt.Errorf("%w: password mismatch", domain.ErrAuthInvalid)
	}
	return nil
}

// IsHashed reports whether secret looks like a bcrypt hash.
func IsHashed(secret string) bool {
	return strings.HasPrefix(secret, "$2a$") ||
		strings.HasPrefix(secret, "$2b$") ||
		strings.HasPrefix(secret, "$2y$")
}

// HashPassword returns a bcrypt hash suitable for a password table.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

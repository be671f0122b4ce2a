package driven

import (
	"context"

	"github.com/custodia-labs/onebox/internal/core/domain"
)

// CredentialVerifier checks a username and password.
type CredentialVerifier interface {
	// Verify returns nil when the pair is valid and an error wrapping
	// domain.ErrAuthInvalid when it is not.
	Verify(ctx context.Context, username, password string) error
}

// DNResolver extracts a user id from an LDAP distinguished name. The
// directory server has already authenticated the DN.
type DNResolver interface {
	// UserID returns the identifying attribute value and true, or false
	// when the DN carries no such attribute.
	UserID(dn string) (string, bool)
}

// CookieResolver turns an SSO cookie into a user id.
type CookieResolver interface {
	// UserID returns the user id carried by the cookie.
	UserID(ctx context.Context, cookie domain.Cookie) (string, error)
}

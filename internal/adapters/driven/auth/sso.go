package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/gorilla/securecookie"

	"github.com/custodia-labs/onebox/internal/core/domain"
	"github.com/custodia-labs/onebox/internal/core/ports/driven"
)

// Ensure CookieResolver implements the interface.
var _ driven.CookieResolver = (*CookieResolver)(nil)

// CookieResolver maps an SSO cookie to a user id.
//
// Without keys the cookie value is the user id. With a hash key the value
// must be a securecookie encoding of the user id under the cookie's name,
// as issued by EncodeCookie.
type CookieResolver struct {
	codec *securecookie.SecureCookie
}

// NewRawCookieResolver treats cookie values as opaque user ids.
func NewRawCookieResolver() *CookieResolver {
	return &CookieResolver{}
}

// NewSignedCookieResolver verifies and decodes cookie values. blockKey may
// be empty to authenticate without encrypting.
func NewSignedCookieResolver(hashKey, blockKey []byte) (*CookieResolver, error) {
	if len(hashKey) == 0 {
		return nil, errors.New("sso: hash key is required for signed cookies")
	}
	var block []byte
	if len(blockKey) > 0 {
		block = blockKey
	}
	codec := securecookie.New(hashKey, block)
	codec.SetSerializer(securecookie.JSONEncoder{})
	return &CookieResolver{codec: codec}, nil
}

// Signed reports whether cookie values are verified.
func (r *CookieResolver) Signed() bool {
	return r.codec != nil
}

// UserID returns the user id carried by the cookie.
func (r *CookieResolver) UserID(_ context.Context, cookie domain.Cookie) (string, error) {
	if r.codec == nil {
		return cookie.Value, nil
	}
	var userID string
	if err := r.codec.Decode(cookie.Name, cookie.Value, &userID); err != nil {
		return "", fmt.Errorf("sso: decode cookie %q: %w", cookie.Name, err)
	}
	return userID, nil
}

// EncodeCookie produces a cookie value for userID that UserID accepts.
// For raw resolvers the value is the user id itself.
func (r *CookieResolver) EncodeCookie(name, userID string) (string, error) {
	if r.codec == nil {
		return userID, nil
	}
	value, err := r.codec.Encode(name, userID)
	if err != nil {
		return "", fmt.Errorf("sso: encode cookie %q: %w", name, err)
	}
	return value, nil
}

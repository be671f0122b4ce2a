package domain

import (
	"fmt"
	"strings"
)

// AuthCapability is the set of authentication types a provider implements.
// This is a bitfield allowing providers to support any subset of variants.
type AuthCapability uint8

const (
	// AuthCapAnonymous indicates the provider answers unauthenticated queries.
	AuthCapAnonymous AuthCapability = 1 << 0
	// AuthCapBasic indicates username/password authentication is supported.
	AuthCapBasic AuthCapability = 1 << 1
	// AuthCapLDAP indicates LDAP distinguished-name identities are supported.
	AuthCapLDAP AuthCapability = 1 << 2
	// AuthCapSSO indicates SSO cookie identities are supported.
	AuthCapSSO AuthCapability = 1 << 3

	// AuthCapAll enables every variant.
	AuthCapAll = AuthCapAnonymous | AuthCapBasic | AuthCapLDAP | AuthCapSSO
)

// Supports returns true if the given auth type is in the set.
func (c AuthCapability) Supports(t AuthType) bool {
	bit := t.Capability()
	return bit != 0 && c&bit != 0
}

// Types returns the supported auth types in dispatch order.
func (c AuthCapability) Types() []AuthType {
	var types []AuthType
	for _, t := range AllAuthTypes {
		if c.Supports(t) {
			types = append(types, t)
		}
	}
	return types
}

// String returns a comma-separated list of supported selectors.
func (c AuthCapability) String() string {
	types := c.Types()
	if len(types) == 0 {
		return "none supported"
	}
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}

// ParseAuthCapability builds a capability set from selector names.
func ParseAuthCapability(names []string) (AuthCapability, error) {
	var c AuthCapability
	for _, name := range names {
		t, ok := ParseAuthType(strings.TrimSpace(name))
		if !ok {
			return 0, fmt.Errorf("%w: unknown auth type %q", ErrInvalidInput, name)
		}
		c |= t.Capability()
	}
	return c, nil
}

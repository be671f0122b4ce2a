// Package auth provides the identity-resolution backends used by the
// directory provider: password verification for basic authentication,
// distinguished-name parsing for LDAP and cookie decoding for SSO.
package auth

// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Directory: Read-only employee lookup and iteration
//   - RoleStore: Requester id to role table
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// A nil value disables the matching authentication variant:
//
//   - CredentialVerifier + PasswordStore: Basic authentication
//   - DNResolver: LDAP distinguished-name identities
//   - CookieResolver: SSO cookie identities
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven

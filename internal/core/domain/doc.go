// Package domain defines the core types of the OneBox directory provider.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Record: A read-only directory entry owned by the directory collaborator
//   - Identity: The resolved requester (user id, role, record)
//   - Credential: The identity-bearing input of one authentication variant
//   - Request: The typed form of a OneBox query
//   - ResultSet: The bounded response aggregate rendered as XML
//
// It also holds the authorization policy, which is a pure function over
// these types.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

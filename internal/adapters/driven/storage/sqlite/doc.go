// Package sqlite provides a SQLite-backed implementation of the directory,
// role and password ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. All three tables live in one database file:
//
//   - employees: Directory records
//   - roles: User id to role
//   - passwords: User id to plain or bcrypt secret
//
// # Schema
//
// The schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql
// files.
//
// # Data Location
//
// By default, the database is stored at ~/.onebox/data/directory.db
//
// # Lifecycle
//
// The store is opened and seeded once at startup. Request handling only
// reads from it.
package sqlite

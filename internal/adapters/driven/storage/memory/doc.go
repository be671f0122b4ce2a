// Package memory provides in-memory implementations of the directory,
// role, password and config ports.
//
// Directory tables are built once from a seed.Fixture and never mutated
// afterwards, so they are safe for concurrent use without locking.
package memory

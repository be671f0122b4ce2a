package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/onebox/internal/adapters/driven/storage/seed"
	"github.com/custodia-labs/onebox/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/onebox/internal/core/domain"
	"github.com/custodia-labs/onebox/internal/core/ports/driven"
)

// Store is a SQLite database holding the directory, role and password
// tables. Port implementations are obtained through its accessor methods.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the database in dataDir.
// If dataDir is empty, defaults to ~/.onebox/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".onebox", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "directory.db")

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Directory returns a Directory backed by this store.
func (s *Store) Directory() driven.Directory {
	return &directory{db: s.db}
}

// RoleStore returns a RoleStore backed by this store.
func (s *Store) RoleStore() driven.RoleStore {
	return &roleStore{db: s.db}
}

// PasswordStore returns a PasswordStore backed by this store.
func (s *Store) PasswordStore() driven.PasswordStore {
	return &passwordStore{db: s.db}
}

// Seed replaces the contents of all three tables with the fixture in a
// single transaction.
func (s *Store) Seed(ctx context.Context, f *seed.Fixture) error {
	if err := f.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for _, table := range []string{"employees", "roles", "passwords"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, e := range f.Employees {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO employees (id, first_name, last_name, phone, email, position, department, building, office)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.FirstName, e.LastName, e.Phone, e.Email, e.Position, e.Department, e.Building, e.Office)
		if err != nil {
			return fmt.Errorf("inserting employee %s: %w", e.ID, err)
		}
	}
	for _, id := range sortedKeys(f.Roles) {
		if _, err := tx.ExecContext(ctx, "INSERT INTO roles (user_id, role) VALUES (?, ?)",
			id, string(f.Roles[id])); err != nil {
			return fmt.Errorf("inserting role for %s: %w", id, err)
		}
	}
	for _, id := range sortedKeys(f.Passwords) {
		if _, err := tx.ExecContext(ctx, "INSERT INTO passwords (user_id, secret) VALUES (?, ?)",
			id, f.Passwords[id]); err != nil {
			return fmt.Errorf("inserting password for %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_directory.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}
	return nil
}

// ==================== Directory ====================

type directory struct {
	db *sql.DB
}

var _ driven.Directory = (*directory)(nil)

const employeeColumns = "id, first_name, last_name, phone, email, position, department, building, office"

func (d *directory) Lookup(ctx context.Context, id string) (*domain.Record, error) {
	row := d.db.QueryRowContext(ctx, "SELECT "+employeeColumns+" FROM employees WHERE id = ?", id)
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying employee %s: %w", id, err)
	}
	return r, nil
}

func (d *directory) Iterate(ctx context.Context) ([]domain.Record, error) {
	rows, err := d.db.QueryContext(ctx, "SELECT "+employeeColumns+" FROM employees ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying employees: %w", err)
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning employee: %w", err)
		}
		records = append(records, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employees: %w", err)
	}
	return records, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*domain.Record, error) {
	var r domain.Record
	err := s.Scan(&r.ID, &r.FirstName, &r.LastName, &r.Phone, &r.Email,
		&r.Position, &r.Department, &r.Building, &r.Office)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ==================== Roles ====================

type roleStore struct {
	db *sql.DB
}

var _ driven.RoleStore = (*roleStore)(nil)

func (s *roleStore) Role(ctx context.Context, userID string) (domain.Role, error) {
	var role string
	err := s.db.QueryRowContext(ctx, "SELECT role FROM roles WHERE user_id = ?", userID).Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("querying role for %s: %w", userID, err)
	}
	return domain.ParseRole(role)
}

// ==================== Passwords ====================

type passwordStore struct {
	db *sql.DB
}

var _ driven.PasswordStore = (*passwordStore)(nil)

func (s *passwordStore) Secret(ctx context.Context, username string) (string, error) {
	var secret string
	err := s.db.QueryRowContext(ctx, "SELECT secret FROM passwords WHERE user_id = ?", username).Scan(&secret)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("querying secret for %s: %w", username, err)
	}
	return secret, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

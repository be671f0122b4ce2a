package memory

import (
	"context"

	"github.com/custodia-labs/onebox/internal/adapters/driven/storage/seed"
	"github.com/custodia-labs/onebox/internal/core/domain"
	"github.com/custodia-labs/onebox/internal/core/ports/driven"
)

// Ensure DirectoryStore implements the interface.
var _ driven.Directory = (*DirectoryStore)(nil)

// DirectoryStore is an immutable in-memory employee directory.
type DirectoryStore struct {
	byID    map[string]domain.Record
	ordered []domain.Record
}

// NewDirectoryStore builds a directory from the fixture's employees.
func NewDirectoryStore(f *seed.Fixture) (*DirectoryStore, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	ordered := f.SortedEmployees()
	byID := make(map[string]domain.Record, len(ordered))
	for _, r := range ordered {
		byID[r.ID] = r
	}
	return &DirectoryStore{byID: byID, ordered: ordered}, nil
}

// Lookup returns the record with the given id.
func (s *DirectoryStore) Lookup(_ context.Context, id string) (*domain.Record, error) {
	r, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &r, nil
}

// Iterate returns every record ordered by id.
func (s *DirectoryStore) Iterate(_ context.Context) ([]domain.Record, error) {
	out := make([]domain.Record, len(s.ordered))
	copy(out, s.ordered)
	return out, nil
}

// Len returns the number of records.
func (s *DirectoryStore) Len() int {
	return len(s.ordered)
}

package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/onebox/internal/adapters/driven/storage/seed"
	"github.com/custodia-labs/onebox/internal/core/domain"
)

func TestDirectoryStore_Lookup(t *testing.T) {
	store, err := NewDirectoryStore(seed.ACME())
	require.NoError(t, err)
	ctx := context.Background()

	rec, err := store.Lookup(ctx, "sbrown")
	require.NoError(t, err)
	assert.Equal(t, "Susan", rec.FirstName)
	assert.Equal(t, "Marketing", rec.Department)

	_, err = store.Lookup(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDirectoryStore_IterateIsOrderedCopy(t *testing.T) {
	store, err := NewDirectoryStore(seed.ACME())
	require.NoError(t, err)
	ctx := context.Background()

	first, err := store.Iterate(ctx)
	require.NoError(t, err)
	require.Len(t, first, store.Len())
	assert.Equal(t, "arodriguez", first[0].ID)

	first[0].LastName = "Changed"
	second, err := store.Iterate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Rodriguez", second[0].LastName)
}

func TestDirectoryStore_RejectsInvalidFixture(t *testing.T) {
	_, err := NewDirectoryStore(&seed.Fixture{Employees: []domain.Record{{ID: "a"}, {ID: "a"}}})
	assert.Error(t, err)
}

func TestDirectoryStore_ConcurrentReads(t *testing.T) {
	store, err := NewDirectoryStore(seed.ACME())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			records, err := store.Iterate(context.Background())
			assert.NoError(t, err)
			assert.Len(t, records, 30)
			_, err = store.Lookup(context.Background(), "jsmith")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

func TestRoleStore(t *testing.T) {
	store := NewRoleStore(seed.ACME())

	role, err := store.Role(context.Background(), "mhernandez")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, role)

	_, err = store.Role(context.Background(), "jjohnson")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPasswordStore(t *testing.T) {
	store := NewPasswordStore(seed.ACME())

	secret, err := store.Secret(context.Background(), "jsmith")
	require.NoError(t, err)
	assert.Equal(t, "jsmith", secret)

	_, err = store.Secret(context.Background(), "jjohnson")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

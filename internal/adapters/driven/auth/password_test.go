package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/onebox/internal/core/domain"
)

type mapPasswordStore struct {
	secrets map[string]string
	err     error
}

func (m *mapPasswordStore) Secret(_ context.Context, username string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	s, ok := m.secrets[username]
	if !ok {
		return "", domain.ErrNotFound
	}
	return s, nil
}

func TestPasswordVerifier_Plain(t *testing.T) {
	v := NewPasswordVerifier(&mapPasswordStore{secrets: map[string]string{"jsmith": "jsmith"}})
	ctx := context.Background()

	assert.NoError(t, v.Verify(ctx, "jsmith", "jsmith"))
	assert.ErrorIs(t, v.Verify(ctx, "jsmith", "wrong"), domain.ErrAuthInvalid)
	assert.ErrorIs(t, v.Verify(ctx, "jsmith", ""), domain.ErrAuthInvalid)
	assert.ErrorIs(t, v.Verify(ctx, "nobody", "nobody"), domain.ErrAuthInvalid)
}

func TestPasswordVerifier_Bcrypt(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.True(t, IsHashed(hash))

	v := NewPasswordVerifier(&mapPasswordStore{secrets: map[string]string{"rmiller": hash}})
	ctx := context.Background()

	assert.NoError(t, v.Verify(ctx, "rmiller", "s3cret"))
	assert.ErrorIs(t, v.Verify(ctx, "rmiller", hash), domain.ErrAuthInvalid)
}

func TestPasswordVerifier_StoreError(t *testing.T) {
	boom := errors.New("disk on fire")
	v := NewPasswordVerifier(&mapPasswordStore{err: boom})

	err := v.Verify(context.Background(), "jsmith", "jsmith")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrAuthInvalid)
}

func TestIsHashed(t *testing.T) {
	assert.False(t, IsHashed("plain"))
	assert.True(t, IsHashed("$2a$10$abcdefghijklmnopqrstuv"))
}

package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/custodia-labs/onebox/internal/core/services"
)

func TestDirectoryList(t *testing.T) {
	setupTestApp(t)

	out, err := execute(t, "directory", "list", "--department", "sales")

	require.NoError(t, err)
	assert.Contains(t, out, "Anderson, Christopher")
	assert.NotContains(t, out, "Miller, Richard")
	assert.Contains(t, out, "7 records")
}

func TestDirectoryList_ShowsRoles(t *testing.T) {
	setupTestApp(t)

	out, err := execute(t, "directory", "list", "--department", "Operations")

	require.NoError(t, err)
	assert.Contains(t, out, "admin")
	assert.Contains(t, out, "2 records")
}

func TestDirectorySeed_MemoryBackend(t *testing.T) {
	setupTestApp(t)

	_, err := execute(t, "directory", "seed")

	assert.Error(t, err)
}

func TestDirectorySeed_SQLite(t *testing.T) {
	store := setupTestApp(t)
	_ = store.Set(services.KeyDirectoryBackend, "sqlite")
	_ = store.Set(services.KeyDataDir, t.TempDir())

	out, err := execute(t, "directory", "seed")

	require.NoError(t, err)
	assert.Contains(t, out, "Seeded 30 records")
}

func TestDirectoryHashPassword(t *testing.T) {
	setupTestApp(t)
	rootCmd.SetIn(strings.NewReader("hunter2\n"))

	out, err := execute(t, "directory", "hash-password")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	hash := strings.TrimSpace(lines[len(lines)-1])
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter2")))
}

func TestDirectoryHashPassword_Empty(t *testing.T) {
	setupTestApp(t)
	rootCmd.SetIn(strings.NewReader("\n"))

	_, err := execute(t, "directory", "hash-password")

	assert.Error(t, err)
}

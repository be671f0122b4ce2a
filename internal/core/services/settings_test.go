package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/onebox/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/onebox/internal/core/domain"
)

func TestLoadSettings_Defaults(t *testing.T) {
	settings, err := LoadSettings(memory.NewConfigStore())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProviderSettings(), settings)
}

func TestLoadSettings_NilStore(t *testing.T) {
	settings, err := LoadSettings(nil)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProviderSettings(), settings)
}

func TestLoadSettings_StoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyDirectoryName, "Widgets Directory")
	_ = store.Set(KeyBaseURL, "https://onebox.widgets.io/")
	_ = store.Set(KeyAuthTypes, []any{"none", "sso"})
	_ = store.Set(KeyMinAPIMajor, int64(2))
	_ = store.Set(KeyMinAPIMinor, int64(1))
	_ = store.Set(KeyEscapeXML, true)
	_ = store.Set(KeyDirectoryBackend, domain.BackendSQLite)
	_ = store.Set(KeyRateLimit, 10.0)
	_ = store.Set(KeyRateBurst, int64(20))

	settings, err := LoadSettings(store)

	require.NoError(t, err)
	assert.Equal(t, "OneBoxDirectoryProvider: Widgets Directory", settings.ProviderLabel())
	assert.Equal(t, "https://onebox.widgets.io/", settings.BaseURL)
	assert.Equal(t, domain.AuthCapAnonymous|domain.AuthCapSSO, settings.AuthTypes)
	assert.Equal(t, domain.APIVersion{Major: 2, Minor: 1}, settings.MinVersion)
	assert.True(t, settings.EscapeXML)
	assert.Equal(t, domain.BackendSQLite, settings.DirectoryBackend)
	assert.InDelta(t, 10.0, settings.RateLimit, 0.0001)
	assert.Equal(t, 20, settings.RateBurst)
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"auth type", KeyAuthTypes, []string{"none", "kerberos"}},
		{"backend", KeyDirectoryBackend, "postgres"},
		{"rate", KeyRateLimit, -1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			_ = store.Set(tt.key, tt.value)

			_, err := LoadSettings(store)

			assert.Error(t, err)
		})
	}
}

func TestApplySetting(t *testing.T) {
	store := memory.NewConfigStore()

	require.NoError(t, ApplySetting(store, KeyLanguage, "en"))
	require.NoError(t, ApplySetting(store, KeyMinAPIMajor, "2"))
	require.NoError(t, ApplySetting(store, KeyRateLimit, "2.5"))
	require.NoError(t, ApplySetting(store, KeyEscapeXML, "true"))
	require.NoError(t, ApplySetting(store, KeyAuthTypes, "none, ldap"))

	assert.Equal(t, "en", store.GetString(KeyLanguage))
	assert.Equal(t, 2, store.GetInt(KeyMinAPIMajor))
	assert.InDelta(t, 2.5, store.GetFloat(KeyRateLimit), 0.0001)
	assert.True(t, store.GetBool(KeyEscapeXML))
	assert.Equal(t, []string{"none", "ldap"}, store.GetStringSlice(KeyAuthTypes))
}

func TestApplySetting_Errors(t *testing.T) {
	store := memory.NewConfigStore()

	assert.ErrorIs(t, ApplySetting(store, "provider.colour", "blue"), domain.ErrInvalidInput)
	assert.ErrorIs(t, ApplySetting(store, KeyMinAPIMajor, "one"), domain.ErrInvalidInput)
	assert.ErrorIs(t, ApplySetting(store, KeyRateLimit, "fast"), domain.ErrInvalidInput)
	assert.ErrorIs(t, ApplySetting(store, KeyEscapeXML, "maybe"), domain.ErrInvalidInput)
	assert.ErrorIs(t, ApplySetting(store, KeyAuthTypes, "none,NTLM"), domain.ErrInvalidInput)
	assert.Empty(t, store.Keys())
}

func TestKnownKeys(t *testing.T) {
	keys := KnownKeys()

	assert.Len(t, keys, len(knownKeys))
	assert.Contains(t, keys, KeyAuthTypes)
	assert.IsIncreasing(t, keys)
}

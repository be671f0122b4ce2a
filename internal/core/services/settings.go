package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/onebox/internal/core/domain"
	"github.com/custodia-labs/onebox/internal/core/ports/driven"
)

// Configuration keys.
const (
	KeyProviderName     = "provider.name"
	KeyDirectoryName    = "provider.directory_name"
	KeyBaseURL          = "provider.base_url"
	KeyImagePath        = "provider.image_path"
	KeyDirectoryPage    = "provider.directory_page"
	KeyAuthTypes        = "provider.auth_types"
	KeyMinAPIMajor      = "provider.min_api_major"
	KeyMinAPIMinor      = "provider.min_api_minor"
	KeyLanguage         = "provider.language"
	KeyEscapeXML        = "provider.escape_xml"
	KeyLDAPAttribute    = "ldap.identity_attribute"
	KeySSOHashKey       = "sso.hash_key"
	KeySSOBlockKey      = "sso.block_key"
	KeyDirectoryBackend = "directory.backend"
	KeyDataDir          = "directory.data_dir"
	KeyFixture          = "directory.fixture"
	KeyListenAddr       = "server.listen_addr"
	KeyRateLimit        = "server.rate_limit"
	KeyRateBurst        = "server.burst"
)

type keyKind int

const (
	kindString keyKind = iota
	kindInt
	kindFloat
	kindBool
	kindList
)

var knownKeys = map[string]keyKind{
	KeyProviderName:     kindString,
	KeyDirectoryName:    kindString,
	KeyBaseURL:          kindString,
	KeyImagePath:        kindString,
	KeyDirectoryPage:    kindString,
	KeyAuthTypes:        kindList,
	KeyMinAPIMajor:      kindInt,
	KeyMinAPIMinor:      kindInt,
	KeyLanguage:         kindString,
	KeyEscapeXML:        kindBool,
	KeyLDAPAttribute:    kindString,
	KeySSOHashKey:       kindString,
	KeySSOBlockKey:      kindString,
	KeyDirectoryBackend: kindString,
	KeyDataDir:          kindString,
	KeyFixture:          kindString,
	KeyListenAddr:       kindString,
	KeyRateLimit:        kindFloat,
	KeyRateBurst:        kindInt,
}

// KnownKeys returns every supported configuration key, sorted.
func KnownKeys() []string {
	keys := make([]string, 0, len(knownKeys))
	for k := range knownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LoadSettings reads provider settings from store, applying defaults for
// unset keys.
func LoadSettings(store driven.ConfigStore) (domain.ProviderSettings, error) {
	s := domain.DefaultProviderSettings()
	if store == nil {
		return s, nil
	}

	stringKey(store, KeyProviderName, &s.ProviderName)
	stringKey(store, KeyDirectoryName, &s.DirectoryName)
	stringKey(store, KeyBaseURL, &s.BaseURL)
	stringKey(store, KeyImagePath, &s.ImagePath)
	stringKey(store, KeyDirectoryPage, &s.DirectoryPage)
	stringKey(store, KeyLanguage, &s.Language)
	stringKey(store, KeyLDAPAttribute, &s.LDAPAttribute)
	stringKey(store, KeySSOHashKey, &s.SSOHashKey)
	stringKey(store, KeySSOBlockKey, &s.SSOBlockKey)
	stringKey(store, KeyDirectoryBackend, &s.DirectoryBackend)
	stringKey(store, KeyDataDir, &s.DataDir)
	stringKey(store, KeyFixture, &s.FixturePath)
	stringKey(store, KeyListenAddr, &s.ListenAddr)

	if _, ok := store.Get(KeyAuthTypes); ok {
		caps, err := domain.ParseAuthCapability(store.GetStringSlice(KeyAuthTypes))
		if err != nil {
			return s, fmt.Errorf("%s: %w", KeyAuthTypes, err)
		}
		s.AuthTypes = caps
	}
	if _, ok := store.Get(KeyMinAPIMajor); ok {
		s.MinVersion.Major = store.GetInt(KeyMinAPIMajor)
	}
	if _, ok := store.Get(KeyMinAPIMinor); ok {
		s.MinVersion.Minor = store.GetInt(KeyMinAPIMinor)
	}
	s.EscapeXML = store.GetBool(KeyEscapeXML)
	s.RateLimit = store.GetFloat(KeyRateLimit)
	s.RateBurst = store.GetInt(KeyRateBurst)

	switch s.DirectoryBackend {
	case domain.BackendMemory, domain.BackendSQLite:
	default:
		return s, fmt.Errorf("%w: %s must be %q or %q, got %q", domain.ErrInvalidInput,
			KeyDirectoryBackend, domain.BackendMemory, domain.BackendSQLite, s.DirectoryBackend)
	}
	if s.RateLimit < 0 {
		return s, fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidInput, KeyRateLimit)
	}
	return s, nil
}

// ApplySetting parses raw according to the key's type and stores it.
func ApplySetting(store driven.ConfigStore, key, raw string) error {
	kind, ok := knownKeys[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	var value any
	switch kind {
	case kindString:
		value = raw
	case kindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s expects an integer", domain.ErrInvalidInput, key)
		}
		value = int64(n)
	case kindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%w: %s expects a number", domain.ErrInvalidInput, key)
		}
		value = f
	case kindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false", domain.ErrInvalidInput, key)
		}
		value = b
	case kindList:
		var items []string
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		if key == KeyAuthTypes {
			if _, err := domain.ParseAuthCapability(items); err != nil {
				return err
			}
		}
		value = items
	}
	return store.Set(key, value)
}

func stringKey(store driven.ConfigStore, key string, dst *string) {
	if v := store.GetString(key); v != "" {
		*dst = v
	}
}

// Package app wires configuration, storage and authentication adapters into
// a ready-to-serve OneBox dispatcher.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/onebox/internal/adapters/driven/auth"
	"github.com/custodia-labs/onebox/internal/adapters/driven/config/file"
	"github.com/custodia-labs/onebox/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/onebox/internal/adapters/driven/storage/seed"
	"github.com/custodia-labs/onebox/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/onebox/internal/core/domain"
	"github.com/custodia-labs/onebox/internal/core/ports/driven"
	"github.com/custodia-labs/onebox/internal/core/services"
	"github.com/custodia-labs/onebox/internal/logger"
)

// Options controls how the application is assembled.
type Options struct {
	// ConfigDir holds config.toml. Empty means ~/.onebox.
	ConfigDir string

	// Config replaces the file-based config store when set.
	Config driven.ConfigStore
}

// App holds the assembled components.
type App struct {
	Config     driven.ConfigStore
	Settings   domain.ProviderSettings
	Fixture    *seed.Fixture
	Directory  driven.Directory
	Roles      driven.RoleStore
	Cookies    *auth.CookieResolver
	Provider   *services.DirectoryProvider
	Dispatcher *services.Dispatcher

	// Store is set when the sqlite backend is in use.
	Store *sqlite.Store
}

// New loads configuration and builds the provider stack.
func New(ctx context.Context, opts Options) (*App, error) {
	logger.Section("Startup")

	cfg := opts.Config
	if cfg == nil {
		store, err := file.NewConfigStore(opts.ConfigDir)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = store
	}
	logger.Debug("Config: %s", cfg.Path())

	settings, err := services.LoadSettings(cfg)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	fixture, err := loadFixture(settings.FixturePath)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:   cfg,
		Settings: settings,
		Fixture:  fixture,
	}

	var passwords driven.PasswordStore
	switch settings.DirectoryBackend {
	case domain.BackendSQLite:
		store, err := sqlite.NewStore(settings.DataDir)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite directory: %w", err)
		}
		a.Store = store
		if err := a.seedIfEmpty(ctx); err != nil {
			store.Close()
			return nil, err
		}
		a.Directory = store.Directory()
		a.Roles = store.RoleStore()
		passwords = store.PasswordStore()
		logger.Debug("Directory backend: sqlite (%s)", store.Path())
	default:
		directory, err := memory.NewDirectoryStore(fixture)
		if err != nil {
			return nil, fmt.Errorf("building directory: %w", err)
		}
		a.Directory = directory
		a.Roles = memory.NewRoleStore(fixture)
		passwords = memory.NewPasswordStore(fixture)
		logger.Debug("Directory backend: memory (%d records)", directory.Len())
	}

	cookies, err := newCookieResolver(settings)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Cookies = cookies

	provider := services.NewDirectoryProvider(settings, a.Directory, a.Roles)
	provider.SetCredentialVerifier(auth.NewPasswordVerifier(passwords))
	provider.SetDNResolver(auth.NewDNResolver(settings.LDAPAttribute))
	provider.SetCookieResolver(cookies)
	a.Provider = provider
	a.Dispatcher = services.NewDispatcher(provider, services.NewSerializer(settings.EscapeXML))

	logger.Debug("Auth types: %s", provider.Capabilities())
	return a, nil
}

// Close releases the sqlite store, if any.
func (a *App) Close() error {
	if a.Store == nil {
		return nil
	}
	return a.Store.Close()
}

// Reseed replaces the sqlite tables with the configured fixture.
func (a *App) Reseed(ctx context.Context) error {
	if a.Store == nil {
		return fmt.Errorf("%w: directory backend is %q, reseeding needs %q",
			domain.ErrInvalidInput, a.Settings.DirectoryBackend, domain.BackendSQLite)
	}
	if err := a.Store.Seed(ctx, a.Fixture); err != nil {
		return fmt.Errorf("seeding directory: %w", err)
	}
	logger.Info("Seeded %d records into %s", len(a.Fixture.Employees), a.Store.Path())
	return nil
}

func (a *App) seedIfEmpty(ctx context.Context) error {
	records, err := a.Store.Directory().Iterate(ctx)
	if err != nil {
		return fmt.Errorf("reading sqlite directory: %w", err)
	}
	if len(records) > 0 {
		return nil
	}
	return a.Reseed(ctx)
}

func loadFixture(path string) (*seed.Fixture, error) {
	if path == "" {
		return seed.ACME(), nil
	}
	f, err := seed.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading fixture: %w", err)
	}
	return f, nil
}

func newCookieResolver(settings domain.ProviderSettings) (*auth.CookieResolver, error) {
	if settings.SSOHashKey == "" {
		if settings.SSOBlockKey != "" {
			return nil, errors.New("sso.block_key requires sso.hash_key")
		}
		return auth.NewRawCookieResolver(), nil
	}
	return auth.NewSignedCookieResolver([]byte(settings.SSOHashKey), []byte(settings.SSOBlockKey))
}

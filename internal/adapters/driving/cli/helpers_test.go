package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/custodia-labs/onebox/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/onebox/internal/app"
	"github.com/custodia-labs/onebox/internal/core/ports/driven"
)

// setupTestApp points the commands at an in-memory config store and
// restores the package state afterwards.
func setupTestApp(t *testing.T) *memory.ConfigStore {
	t.Helper()
	store := memory.NewConfigStore()

	oldApp, oldConfig := newApp, newConfigStore
	newApp = func(ctx context.Context) (*app.App, error) {
		return app.New(ctx, app.Options{Config: store})
	}
	newConfigStore = func() (driven.ConfigStore, error) {
		return store, nil
	}

	t.Cleanup(func() {
		newApp, newConfigStore = oldApp, oldConfig
		resetFlags()
	})
	return store
}

func resetFlags() {
	queryAuth = "none"
	queryUser = ""
	queryPassword = ""
	queryCookie = ""
	queryLang = "en"
	queryAPIMajor = 1
	queryAPIMinor = 0
	queryMatch = nil
	queryXML = false
	directoryDepartment = ""
	rootCmd.SetArgs(nil)
	rootCmd.SetIn(nil)
}

// execute runs the root command with args and returns the combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

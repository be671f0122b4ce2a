// Package cli provides the cobra command tree for the onebox binary.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/onebox/internal/adapters/driven/config/file"
	"github.com/custodia-labs/onebox/internal/app"
	"github.com/custodia-labs/onebox/internal/core/ports/driven"
	"github.com/custodia-labs/onebox/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// newApp builds the application for commands that serve queries.
var newApp = func(ctx context.Context) (*app.App, error) {
	return app.New(ctx, app.Options{ConfigDir: configDir})
}

// newConfigStore opens the config store for the settings commands.
var newConfigStore = func() (driven.ConfigStore, error) {
	return file.NewConfigStore(configDir)
}

var rootCmd = &cobra.Command{
	Use:   "onebox",
	Short: "OneBox employee directory provider",
	Long: `onebox answers OneBox queries against an employee directory.

Each query carries an authentication type (none, basic, ldap or sso) and
the results a requester sees depend on their role: admins see everyone,
employees and managers see their own department, contractors see only
themselves. Results are returned as a OneBox XML document.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.onebox)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

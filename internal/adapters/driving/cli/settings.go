package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/onebox/internal/core/domain"
	"github.com/custodia-labs/onebox/internal/core/services"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage provider settings",
	Long: `View and change the provider configuration stored in config.toml.

Run "onebox settings keys" for the list of supported keys.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration key",
	Long: `Set a configuration key. Lists are comma-separated.

Examples:
  onebox settings set provider.auth_types none,basic
  onebox settings set server.rate_limit 5
  onebox settings set provider.escape_xml true`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List supported configuration keys",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		for _, key := range services.KnownKeys() {
			cmd.Println(key)
		}
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	store, err := newConfigStore()
	if err != nil {
		return err
	}
	settings, err := services.LoadSettings(store)
	if err != nil {
		return err
	}

	cmd.Printf("Config file: %s\n\n", store.Path())
	cmd.Println("Provider")
	cmd.Printf("  Label:          %s\n", settings.ProviderLabel())
	cmd.Printf("  Base URL:       %s\n", orDefault(settings.BaseURL, "(from request)"))
	cmd.Printf("  Image:          %s\n", settings.ImagePath)
	cmd.Printf("  Directory page: %s\n", settings.DirectoryPage)
	cmd.Printf("  Auth types:     %s\n", settings.AuthTypes)
	cmd.Printf("  Min API:        %d.%d\n", settings.MinVersion.Major, settings.MinVersion.Minor)
	cmd.Printf("  Language:       %s\n", settings.Language)
	cmd.Printf("  Escape XML:     %t\n", settings.EscapeXML)
	cmd.Println()
	cmd.Println("Authentication")
	cmd.Printf("  LDAP attribute: %s\n", settings.LDAPAttribute)
	cmd.Printf("  SSO cookies:    %s\n", ssoMode(settings))
	cmd.Println()
	cmd.Println("Directory")
	cmd.Printf("  Backend:        %s\n", settings.DirectoryBackend)
	if settings.DirectoryBackend == domain.BackendSQLite {
		cmd.Printf("  Data dir:       %s\n", orDefault(settings.DataDir, "~/.onebox/data"))
	}
	cmd.Printf("  Fixture:        %s\n", orDefault(settings.FixturePath, "(built-in ACME)"))
	cmd.Println()
	cmd.Println("Server")
	cmd.Printf("  Listen:         %s\n", settings.ListenAddr)
	if settings.RateLimit > 0 {
		cmd.Printf("  Rate limit:     %g req/s per client (burst %d)\n", settings.RateLimit, settings.RateBurst)
	} else {
		cmd.Println("  Rate limit:     off")
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	store, err := newConfigStore()
	if err != nil {
		return err
	}
	if err := services.ApplySetting(store, args[0], args[1]); err != nil {
		return err
	}
	if _, err := services.LoadSettings(store); err != nil {
		return fmt.Errorf("saved, but configuration is now invalid: %w", err)
	}
	cmd.Printf("%s updated\n", args[0])
	return nil
}

func ssoMode(s domain.ProviderSettings) string {
	switch {
	case s.SSOHashKey != "" && s.SSOBlockKey != "":
		return "signed and encrypted"
	case s.SSOHashKey != "":
		return "signed"
	default:
		return "raw value"
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/onebox/internal/adapters/driving/httpapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve OneBox queries over HTTP",
	Long: `Start the OneBox HTTP endpoint.

Queries are answered at /onebox with a text/xml OneBox document. The
listen address, base URL, rate limit and accepted authentication types
come from config.toml; --addr overrides the listen address.

Example:
  onebox serve --addr :9090
  curl 'http://localhost:9090/onebox?apiMaj=1&apiMin=0&lang=en&authType=none&query=Brown'`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from server.listen_addr)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	addr, err := cmd.Flags().GetString("addr")
	if err != nil {
		return fmt.Errorf("getting addr flag: %w", err)
	}
	if addr == "" {
		addr = a.Settings.ListenAddr
	}

	server := httpapi.NewServer(a.Dispatcher, httpapi.Options{
		Addr:      addr,
		RateLimit: a.Settings.RateLimit,
		Burst:     a.Settings.RateBurst,
	})
	cmd.Printf("OneBox provider listening on %s%s (auth: %s)\n", addr, httpapi.DefaultPath, a.Provider.Capabilities())
	return server.Run(ctx)
}

// Command onebox serves OneBox queries against an employee directory.
package main

import (
	"os"

	"github.com/custodia-labs/onebox/internal/adapters/driving/cli"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/onebox/internal/adapters/driven/auth"
)

var directoryDepartment string

var directoryCmd = &cobra.Command{
	Use:   "directory",
	Short: "Inspect and manage the employee directory",
}

var directoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List directory records",
	Args:  cobra.NoArgs,
	RunE:  runDirectoryList,
}

var directorySeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the sqlite directory with the configured fixture",
	Long: `Replace the employees, roles and passwords tables of the sqlite backend
with the configured fixture (directory.fixture, or the built-in ACME data).`,
	Args: cobra.NoArgs,
	RunE: runDirectorySeed,
}

var directoryHashCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Print a bcrypt hash for a fixture password table",
	Args:  cobra.NoArgs,
	RunE:  runDirectoryHash,
}

func init() {
	directoryListCmd.Flags().StringVarP(&directoryDepartment, "department", "d", "", "only list this department")
	directoryCmd.AddCommand(directoryListCmd)
	directoryCmd.AddCommand(directorySeedCmd)
	directoryCmd.AddCommand(directoryHashCmd)
	rootCmd.AddCommand(directoryCmd)
}

func runDirectoryList(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	records, err := a.Directory.Iterate(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing directory: %w", err)
	}

	st := newStyles()
	count := 0
	for i := range records {
		r := records[i]
		if directoryDepartment != "" && !strings.EqualFold(r.Department, directoryDepartment) {
			continue
		}
		role := "-"
		if rr, err := a.Roles.Role(cmd.Context(), r.ID); err == nil {
			role = rr.String()
		}
		cmd.Printf("%-12s %-24s %-14s %-12s %s\n",
			r.ID, r.DisplayName(), r.Position, r.Department, st.Muted.Render(role))
		count++
	}
	cmd.Printf("\n%d records\n", count)
	return nil
}

func runDirectorySeed(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Reseed(cmd.Context()); err != nil {
		return err
	}
	cmd.Printf("Seeded %d records into %s\n", len(a.Fixture.Employees), a.Store.Path())
	return nil
}

func runDirectoryHash(cmd *cobra.Command, _ []string) error {
	cmd.Print("Password: ")
	password := readPassword(cmd.InOrStdin())
	cmd.Println()
	if password == "" {
		return errors.New("password is empty")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	cmd.Println(hash)
	return nil
}

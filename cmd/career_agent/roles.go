package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-navigator/internal/catalog"
	"github.com/jonathan/career-navigator/internal/observability"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the selectable target roles",
	RunE:  runRoles,
}

func init() {
	rootCmd.AddCommand(rolesCmd)
}

func runRoles(_ *cobra.Command, _ []string) error {
	c, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load role catalog: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintRoles(c.Roles())
	return nil
}

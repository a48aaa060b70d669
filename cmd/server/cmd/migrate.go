package cmd

import (
	"fmt"

	"docstore/internal/infrastructure/migration"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := migration.NewMigration(cfg, nil).Up(); err != nil {
			return err
		}
		color.Green("✓ schema is up to date")
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert all migrations, dropping every table",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := migration.NewMigration(cfg, nil).Down(); err != nil {
			return err
		}
		color.Yellow("schema reverted, all data removed")
		return nil
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the applied schema version",
	RunE: func(_ *cobra.Command, _ []string) error {
		version, dirty, ok, err := migration.NewMigration(cfg, nil).Version()
		if err != nil {
			return err
		}

		switch {
		case !ok:
			color.Yellow("no migrations applied")
		case dirty:
			color.Red("version %d (dirty)", version)
		default:
			fmt.Printf("version %d\n", version)
		}
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
}

package cmd

import (
	"fmt"
	"os"

	"docstore/internal/app/server/config"
	"docstore/internal/utils/logger"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

var (
	cfg *config.Config
	log *slog.Logger

	runAddress  string
	databaseURI string
	dbDriver    string
)

var rootCmd = &cobra.Command{
	Use:   "docstore",
	Short: "Docstore - users, folders and documents over HTTP",
	Long: `Docstore keeps users, their folders and their uploaded documents in a
relational database and serves them as JSON over HTTP.

Configuration comes from the environment (optionally a .env file);
flags override it.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(_ *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	if runAddress != "" {
		cfg.Server.RunAddress = runAddress
	}
	if databaseURI != "" {
		cfg.DB.DatabaseURI = databaseURI
	}
	if dbDriver != "" {
		cfg.DB.Driver = dbDriver
	}

	switch cfg.DB.Driver {
	case config.DriverSQLite, config.DriverPostgres:
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}

	log = logger.FromConfig(cfg)
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&runAddress, "addr", "", "listen address, overrides RUN_ADDRESS")
	rootCmd.PersistentFlags().StringVar(&databaseURI, "db", "", "database file or URL, overrides DATABASE_URI")
	rootCmd.PersistentFlags().StringVar(&dbDriver, "driver", "", "sqlite or postgres, overrides DB_DRIVER")

	rootCmd.AddCommand(serveCmd, migrateCmd, userCmd)
}

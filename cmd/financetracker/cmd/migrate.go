package cmd

import (
	"fmt"

	"github.com/Basri-akbas/Finance-Tracker/internal/platform/config"
	"github.com/Basri-akbas/Finance-Tracker/pkg/database"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply PostgreSQL schema migrations",
	Long: `Apply every pending migration in MIGRATIONS_PATH to PGSQL_URL.
Only meaningful with STORE_DRIVER=postgres; the bolt store needs no schema.

Example:
  STORE_DRIVER=postgres PGSQL_URL=postgres://... financetracker migrate`,
	Run: runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadConfig()
	exitOnError(err, "failed to load config")
	if cfg.StoreDriver != config.StorePostgres {
		exitOnError(fmt.Errorf("STORE_DRIVER is %q", cfg.StoreDriver), "migrations need the postgres store")
	}
	exitOnError(database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath), "failed to apply migrations")
}

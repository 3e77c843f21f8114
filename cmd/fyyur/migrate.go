package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"fyyur/internal/database/migrations"
	"fyyur/internal/db"
)

var errNotPostgres = errors.New("migrations apply to PostgreSQL only; SQLite tables are created by serve")

var withSeed bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the PostgreSQL schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply the schema migrations (and the sample data with --seed)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRunner(cmd, migrations.MigrateOptions{AutoMigrate: true, SeedData: withSeed}, func(r *migrations.Runner) error {
			return r.RunMigrations()
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back every migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRunner(cmd, migrations.DefaultOptions(), func(r *migrations.Runner) error {
			if err := r.MigrateDown(); err != nil {
				return err
			}
			log.Info("MIGRATE", "All migrations rolled back")
			return nil
		})
	},
}

var migrateToCmd = &cobra.Command{
	Use:   "to [version]",
	Short: "Migrate up or down to a specific version",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid version %q", args[0])
		}
		return withRunner(cmd, migrations.DefaultOptions(), func(r *migrations.Runner) error {
			if err := r.MigrateTo(uint(version)); err != nil {
				return err
			}
			log.Info("MIGRATE", fmt.Sprintf("Schema now at version %d", version))
			return nil
		})
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the applied migration version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRunner(cmd, migrations.DefaultOptions(), func(r *migrations.Runner) error {
			version, dirty, err := r.Version()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
			return nil
		})
	},
}

func init() {
	migrateUpCmd.Flags().BoolVar(&withSeed, "seed", false, "also apply the sample-data migration")

	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateToCmd)
	migrateCmd.AddCommand(migrateVersionCmd)
}

func withRunner(cmd *cobra.Command, opts migrations.MigrateOptions, fn func(*migrations.Runner) error) error {
	if !db.IsPostgres(cfg.Database.URL) {
		return errNotPostgres
	}
	store, err := db.Connect(cmd.Context(), cfg.Database, log)
	if err != nil {
		return err
	}
	defer store.Close()

	runner := migrations.NewRunner(store.Bun, opts, log)
	defer runner.Close()
	return fn(runner)
}

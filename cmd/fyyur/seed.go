package main

import (
	"github.com/spf13/cobra"

	"fyyur/internal/database/seed"
	"fyyur/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample venues, artists and shows into an empty directory",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store, err := db.Connect(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer store.Close()

	if db.IsPostgres(cfg.Database.URL) {
		return prepareSchema(ctx, store, true)
	}
	if err := prepareSchema(ctx, store, false); err != nil {
		return err
	}
	_, err = seed.Load(ctx, store, log)
	return err
}

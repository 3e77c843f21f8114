package db

import (
	"context"
	"fmt"

	"fyyur/internal/models"
)

// CreateSchema creates the directory tables when they are missing. Postgres deployments
// use the versioned migrations instead.
func (d *DB) CreateSchema(ctx context.Context) error {
	if _, err := d.Bun.NewCreateTable().
		Model((*models.Venue)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("create venues table: %w", err)
	}
	if _, err := d.Bun.NewCreateTable().
		Model((*models.Artist)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("create artists table: %w", err)
	}
	if _, err := d.Bun.NewCreateTable().
		Model((*models.Show)(nil)).
		IfNotExists().
		ForeignKey(`("venue_id") REFERENCES "venues" ("id") ON DELETE CASCADE`).
		ForeignKey(`("artist_id") REFERENCES "artists" ("id") ON DELETE CASCADE`).
		Exec(ctx); err != nil {
		return fmt.Errorf("create shows table: %w", err)
	}
	return nil
}

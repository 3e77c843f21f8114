package db

import (
	"context"

	"github.com/uptrace/bun"

	"fyyur/internal/models"
)

// CreateShow books an artist at a venue. Both must already exist.
func (d *DB) CreateShow(ctx context.Context, show *models.Show) error {
	if show.StartTime.IsZero() {
		return &ValidationError{Entity: "show", Fields: []string{"start_time"}}
	}
	show.StartTime = show.StartTime.UTC()
	return d.inTx(ctx, "create show", func(ctx context.Context, tx bun.Tx) error {
		found, err := exists(ctx, tx, (*models.Venue)(nil), show.VenueID)
		if err != nil {
			return err
		}
		if !found {
			return dangling("venue", show.VenueID)
		}
		found, err = exists(ctx, tx, (*models.Artist)(nil), show.ArtistID)
		if err != nil {
			return err
		}
		if !found {
			return dangling("artist", show.ArtistID)
		}
		_, err = tx.NewInsert().Model(show).Exec(ctx)
		return err
	})
}

// ListShowsByVenue returns the venue's shows with their artists loaded.
func (d *DB) ListShowsByVenue(ctx context.Context, venueID int64) ([]models.Show, error) {
	var shows []models.Show
	err := d.Bun.NewSelect().
		Model(&shows).
		Relation("Artist").
		Where("?TableAlias.venue_id = ?", venueID).
		Order("start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, classify("list shows by venue", err)
	}
	return shows, nil
}

// ListShowsByArtist returns the artist's shows with their venues loaded.
func (d *DB) ListShowsByArtist(ctx context.Context, artistID int64) ([]models.Show, error) {
	var shows []models.Show
	err := d.Bun.NewSelect().
		Model(&shows).
		Relation("Venue").
		Where("?TableAlias.artist_id = ?", artistID).
		Order("start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, classify("list shows by artist", err)
	}
	return shows, nil
}

// ListShows returns every show with venue and artist loaded.
func (d *DB) ListShows(ctx context.Context) ([]models.Show, error) {
	var shows []models.Show
	err := d.Bun.NewSelect().
		Model(&shows).
		Relation("Venue").
		Relation("Artist").
		Order("start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, classify("list shows", err)
	}
	return shows, nil
}

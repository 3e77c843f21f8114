package db

import (
	"context"

	"github.com/uptrace/bun"

	"fyyur/internal/models"
)

func validateArtist(a *models.Artist) error {
	return required("artist", map[string]string{
		"name":  a.Name,
		"city":  a.City,
		"state": a.State,
		"phone": a.Phone,
	})
}

// CreateArtist inserts artist and sets its generated ID.
func (d *DB) CreateArtist(ctx context.Context, artist *models.Artist) error {
	if err := validateArtist(artist); err != nil {
		return err
	}
	return d.inTx(ctx, "create artist", func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(artist).Exec(ctx)
		return err
	})
}

// UpdateArtist overwrites every mutable column of the artist with artist.ID.
func (d *DB) UpdateArtist(ctx context.Context, artist *models.Artist) error {
	if err := validateArtist(artist); err != nil {
		return err
	}
	return d.inTx(ctx, "update artist", func(ctx context.Context, tx bun.Tx) error {
		found, err := exists(ctx, tx, (*models.Artist)(nil), artist.ID)
		if err != nil {
			return err
		}
		if !found {
			return notFound("artist", artist.ID)
		}
		_, err = tx.NewUpdate().
			Model(artist).
			Column(models.ArtistColumns...).
			WherePK().
			Exec(ctx)
		return err
	})
}

func (d *DB) GetArtist(ctx context.Context, id int64) (*models.Artist, error) {
	artist := new(models.Artist)
	err := d.Bun.NewSelect().
		Model(artist).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, scanOne("get artist", "artist", id, err)
	}
	return artist, nil
}

// ListArtists returns artists in insertion order.
func (d *DB) ListArtists(ctx context.Context) ([]models.Artist, error) {
	var artists []models.Artist
	err := d.Bun.NewSelect().
		Model(&artists).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, classify("list artists", err)
	}
	return artists, nil
}

// SearchArtists returns the candidate artists for term, narrowed like SearchVenues.
func (d *DB) SearchArtists(ctx context.Context, term string) ([]models.Artist, error) {
	var artists []models.Artist
	q := d.Bun.NewSelect().
		Model(&artists).
		Order("id ASC")
	err := d.nameFilter(q, term).Scan(ctx)
	if err != nil {
		return nil, classify("search artists", err)
	}
	return artists, nil
}

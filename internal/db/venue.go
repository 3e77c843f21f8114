package db

import (
	"context"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"

	"fyyur/internal/models"
)

func validateVenue(v *models.Venue) error {
	return required("venue", map[string]string{
		"name":    v.Name,
		"city":    v.City,
		"state":   v.State,
		"address": v.Address,
		"phone":   v.Phone,
	})
}

// CreateVenue inserts venue and sets its generated ID.
func (d *DB) CreateVenue(ctx context.Context, venue *models.Venue) error {
	if err := validateVenue(venue); err != nil {
		return err
	}
	return d.inTx(ctx, "create venue", func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(venue).Exec(ctx)
		return err
	})
}

// UpdateVenue overwrites every mutable column of the venue with venue.ID.
func (d *DB) UpdateVenue(ctx context.Context, venue *models.Venue) error {
	if err := validateVenue(venue); err != nil {
		return err
	}
	return d.inTx(ctx, "update venue", func(ctx context.Context, tx bun.Tx) error {
		found, err := exists(ctx, tx, (*models.Venue)(nil), venue.ID)
		if err != nil {
			return err
		}
		if !found {
			return notFound("venue", venue.ID)
		}
		_, err = tx.NewUpdate().
			Model(venue).
			Column(models.VenueColumns...).
			WherePK().
			Exec(ctx)
		return err
	})
}

// DeleteVenue removes the venue together with the shows booked at it.
func (d *DB) DeleteVenue(ctx context.Context, id int64) error {
	return d.inTx(ctx, "delete venue", func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*models.Show)(nil)).
			Where("venue_id = ?", id).
			Exec(ctx)
		if err != nil {
			return err
		}
		res, err := tx.NewDelete().
			Model((*models.Venue)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return notFound("venue", id)
		}
		return nil
	})
}

func (d *DB) GetVenue(ctx context.Context, id int64) (*models.Venue, error) {
	venue := new(models.Venue)
	err := d.Bun.NewSelect().
		Model(venue).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, scanOne("get venue", "venue", id, err)
	}
	return venue, nil
}

// ListVenues returns every venue ordered by state then city, both descending.
func (d *DB) ListVenues(ctx context.Context) ([]models.Venue, error) {
	var venues []models.Venue
	err := d.Bun.NewSelect().
		Model(&venues).
		Order("state DESC", "city DESC").
		Scan(ctx)
	if err != nil {
		return nil, classify("list venues", err)
	}
	return venues, nil
}

// SearchVenues returns the candidate venues for term. Postgres narrows them with
// ILIKE; SQLite returns every venue because its LIKE folds ASCII letters only.
// Callers run the result through search.Search.
func (d *DB) SearchVenues(ctx context.Context, term string) ([]models.Venue, error) {
	var venues []models.Venue
	q := d.Bun.NewSelect().
		Model(&venues).
		Order("id ASC")
	err := d.nameFilter(q, term).Scan(ctx)
	if err != nil {
		return nil, classify("search venues", err)
	}
	return venues, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// likePattern matches term literally, as typed, anywhere in a value.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func (d *DB) nameFilter(q *bun.SelectQuery, term string) *bun.SelectQuery {
	if d.Bun.Dialect().Name() != dialect.PG {
		return q
	}
	return q.Where(`?TableAlias.name ILIKE ? ESCAPE '\'`, likePattern(term))
}

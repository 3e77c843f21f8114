package db

import (
	"context"
	"database/sql"
	"errors"
	"sort"

	"github.com/uptrace/bun"

	"fyyur/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// inTx runs fn in a transaction that is committed on success and rolled back on any
// error or panic. The transaction is always released before inTx returns.
func (d *DB) inTx(ctx context.Context, op string, fn func(ctx context.Context, tx bun.Tx) error) error {
	return classify(op, d.Bun.RunInTx(ctx, nil, fn))
}

func (d *DB) Ping(ctx context.Context) error {
	return d.Bun.PingContext(ctx)
}

func (d *DB) Close() error {
	return d.Bun.Close()
}

// Counts holds table sizes for the home page.
type Counts struct {
	Venues  int `json:"venues"`
	Artists int `json:"artists"`
	Shows   int `json:"shows"`
}

func (d *DB) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	var err error
	if c.Venues, err = d.Bun.NewSelect().Model((*models.Venue)(nil)).Count(ctx); err != nil {
		return Counts{}, classify("count venues", err)
	}
	if c.Artists, err = d.Bun.NewSelect().Model((*models.Artist)(nil)).Count(ctx); err != nil {
		return Counts{}, classify("count artists", err)
	}
	if c.Shows, err = d.Bun.NewSelect().Model((*models.Show)(nil)).Count(ctx); err != nil {
		return Counts{}, classify("count shows", err)
	}
	return c, nil
}

func exists(ctx context.Context, tx bun.IDB, model interface{}, id int64) (bool, error) {
	return tx.NewSelect().Model(model).Where("?TableAlias.id = ?", id).Exists(ctx)
}

func scanOne(op, entity string, id int64, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(entity, id)
	}
	return classify(op, err)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"fyyur/internal/db"
	"fyyur/internal/models"
)

var sampleStart = time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)

func setupMockDB(t *testing.T) (*db.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqldb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { sqldb.Close() })

	return &db.DB{Bun: bun.NewDB(sqldb, pgdialect.New())}, mock
}

func TestUpdateVenueRollsBackOnFailure(t *testing.T) {
	store, mock := setupMockDB(t)
	venue := musicalHop()
	venue.ID = 1

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").WillReturnError(errors.New("connection reset by peer"))
	mock.ExpectRollback()

	err := store.UpdateVenue(context.Background(), venue)

	assert.ErrorIs(t, err, db.ErrPersistence)
	assert.NotErrorIs(t, err, db.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteVenueRollsBackWhenShowDeleteFails(t *testing.T) {
	store, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "shows"`).WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	err := store.DeleteVenue(context.Background(), 1)

	assert.ErrorIs(t, err, db.ErrPersistence)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteVenueCommitFailure(t *testing.T) {
	store, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "shows"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "venues"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("could not serialize access"))

	err := store.DeleteVenue(context.Background(), 1)

	assert.ErrorIs(t, err, db.ErrPersistence)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateShowDanglingRollsBack(t *testing.T) {
	store, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT EXISTS").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	err := store.CreateShow(context.Background(), &models.Show{VenueID: 1, ArtistID: 2, StartTime: sampleStart})

	assert.ErrorIs(t, err, db.ErrReference)
	assert.NotErrorIs(t, err, db.ErrPersistence)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListShowsQueryFailure(t *testing.T) {
	store, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("relation does not exist"))

	_, err := store.ListShows(context.Background())

	assert.ErrorIs(t, err, db.ErrPersistence)
}

func TestSearchVenuesOnPostgresUsesEscapedILike(t *testing.T) {
	store, mock := setupMockDB(t)

	mock.ExpectQuery(`ILIKE '%50.*ESCAPE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "50% Club"))

	venues, err := store.SearchVenues(context.Background(), "50%")

	require.NoError(t, err)
	require.Len(t, venues, 1)
	assert.Equal(t, "50% Club", venues[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

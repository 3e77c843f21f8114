// Package directory is the application layer behind the web handlers: it loads records
// from the store, classifies shows against a single "now" per call and assembles the
// listing views.
package directory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fyyur/internal/db"
	"fyyur/internal/listing"
	"fyyur/internal/logger"
	"fyyur/internal/models"
	"fyyur/internal/search"
)

// Store is the persistence surface the service needs. *db.DB implements it.
type Store interface {
	CreateVenue(ctx context.Context, venue *models.Venue) error
	UpdateVenue(ctx context.Context, venue *models.Venue) error
	DeleteVenue(ctx context.Context, id int64) error
	GetVenue(ctx context.Context, id int64) (*models.Venue, error)
	ListVenues(ctx context.Context) ([]models.Venue, error)
	SearchVenues(ctx context.Context, term string) ([]models.Venue, error)

	CreateArtist(ctx context.Context, artist *models.Artist) error
	UpdateArtist(ctx context.Context, artist *models.Artist) error
	GetArtist(ctx context.Context, id int64) (*models.Artist, error)
	ListArtists(ctx context.Context) ([]models.Artist, error)
	SearchArtists(ctx context.Context, term string) ([]models.Artist, error)

	CreateShow(ctx context.Context, show *models.Show) error
	ListShows(ctx context.Context) ([]models.Show, error)
	ListShowsByVenue(ctx context.Context, venueID int64) ([]models.Show, error)
	ListShowsByArtist(ctx context.Context, artistID int64) ([]models.Show, error)

	Counts(ctx context.Context) (db.Counts, error)
}

type Service struct {
	DB        Store
	Formatter listing.TimeFormatter
	Now       func() time.Time
	Logger    *logger.Logger
}

func NewService(store Store, f listing.TimeFormatter, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{DB: store, Formatter: f, Now: time.Now, Logger: log}
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// Counts backs the home page statistics.
func (s *Service) Counts(ctx context.Context) (db.Counts, error) {
	return s.DB.Counts(ctx)
}

// upcoming loads every show once and counts the upcoming ones per owner.
func (s *Service) upcoming(ctx context.Context, now time.Time, owner func(*models.Show) int64) (map[int64]int, error) {
	shows, err := s.DB.ListShows(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	return listing.CountUpcoming(shows, now, owner), nil
}

func blank(term string) bool {
	return strings.TrimSpace(term) == ""
}

func emptyResult() search.Result {
	return search.Result{Data: []listing.Summary{}}
}

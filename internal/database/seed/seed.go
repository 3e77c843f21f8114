// Package seed loads the sample directory used for demos and local development.
// Postgres deployments get the same rows from the seed migration.
package seed

import (
	"context"
	"fmt"
	"time"

	"fyyur/internal/db"
	"fyyur/internal/logger"
	"fyyur/internal/models"
)

type Store interface {
	Counts(ctx context.Context) (db.Counts, error)
	CreateVenue(ctx context.Context, venue *models.Venue) error
	CreateArtist(ctx context.Context, artist *models.Artist) error
	CreateShow(ctx context.Context, show *models.Show) error
}

type booking struct {
	venue, artist int
	start         time.Time
}

func Venues() []models.Venue {
	return []models.Venue{
		{
			Name:               "The Musical Hop",
			City:               "San Francisco",
			State:              "CA",
			Address:            "1015 Folsom Street",
			Phone:              "123-123-1234",
			ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5",
			FacebookLink:       "https://www.facebook.com/TheMusicalHop",
			Website:            "https://www.themusicalhop.com",
			Genres:             []string{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
			SeekingTalent:      true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
		},
		{
			Name:         "The Dueling Pianos Bar",
			City:         "New York",
			State:        "NY",
			Address:      "335 Delancey Street",
			Phone:        "914-003-1132",
			ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae",
			FacebookLink: "https://www.facebook.com/theduelingpianos",
			Website:      "https://www.theduelingpianos.com",
			Genres:       []string{"Classical", "R&B", "Hip-Hop"},
		},
		{
			Name:         "Park Square Live Music & Coffee",
			City:         "San Francisco",
			State:        "CA",
			Address:      "34 Whiskey Moore Ave",
			Phone:        "415-000-1234",
			ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7",
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			Website:      "https://www.parksquarelivemusicandcoffee.com",
			Genres:       []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
		},
	}
}

func Artists() []models.Artist {
	return []models.Artist{
		{
			Name:               "Guns N Petals",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "326-123-5000",
			Genres:             []string{"Rock n Roll"},
			ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f",
			FacebookLink:       "https://www.facebook.com/GunsNPetals",
			Website:            "https://www.gunsnpetalsband.com",
			SeekingVenue:       true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		},
		{
			Name:         "Matt Quevedo",
			City:         "New York",
			State:        "NY",
			Phone:        "300-400-5000",
			Genres:       []string{"Jazz"},
			ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5",
			FacebookLink: "https://www.facebook.com/mattquevedo923251523",
		},
		{
			Name:      "The Wild Sax Band",
			City:      "San Francisco",
			State:     "CA",
			Phone:     "432-325-5432",
			Genres:    []string{"Jazz", "Classical"},
			ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61",
		},
	}
}

// bookings index into Venues and Artists.
var bookings = []booking{
	{0, 0, time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
	{2, 1, time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC)},
	{2, 2, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)},
	{2, 2, time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)},
	{2, 2, time.Date(2035, 4, 15, 20, 0, 0, 0, time.UTC)},
}

// Load inserts the sample rows into an empty directory. It reports false and does
// nothing when any venue, artist or show already exists.
func Load(ctx context.Context, store Store, log *logger.Logger) (bool, error) {
	if log == nil {
		log = logger.Discard()
	}

	counts, err := store.Counts(ctx)
	if err != nil {
		return false, err
	}
	if counts != (db.Counts{}) {
		log.Warn("SEED", fmt.Sprintf("Directory already has %d venues, %d artists, %d shows; skipping", counts.Venues, counts.Artists, counts.Shows))
		return false, nil
	}

	venues := Venues()
	for i := range venues {
		if err := store.CreateVenue(ctx, &venues[i]); err != nil {
			return false, fmt.Errorf("seed venue %q: %w", venues[i].Name, err)
		}
		log.LogListing("SEED", "venue", venues[i].ID, venues[i].Name)
	}

	artists := Artists()
	for i := range artists {
		if err := store.CreateArtist(ctx, &artists[i]); err != nil {
			return false, fmt.Errorf("seed artist %q: %w", artists[i].Name, err)
		}
		log.LogListing("SEED", "artist", artists[i].ID, artists[i].Name)
	}

	for _, b := range bookings {
		show := &models.Show{
			VenueID:   venues[b.venue].ID,
			ArtistID:  artists[b.artist].ID,
			StartTime: b.start,
		}
		if err := store.CreateShow(ctx, show); err != nil {
			return false, fmt.Errorf("seed show: %w", err)
		}
	}
	log.LogDatabase("INSERT", "shows", fmt.Sprintf("%d sample shows booked", len(bookings)))

	log.Info("SEED", fmt.Sprintf("✅ Loaded %d venues, %d artists, %d shows", len(venues), len(artists), len(bookings)))
	return true, nil
}

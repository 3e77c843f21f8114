// Package listing turns stored venues, artists and shows into the read views rendered by
// the web pages. Every function takes the reference instant explicitly so one request
// classifies all of its shows against the same "now".
package listing

import (
	"time"

	"fyyur/internal/datetime"
	"fyyur/internal/models"
)

// TimeFormatter renders show start times.
type TimeFormatter interface {
	FormatTime(t time.Time, style datetime.Style) string
}

// Summary is the short form of a venue or artist used in listings and search results.
type Summary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

type Area struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

// ByVenue and ByArtist select the owner a show is counted against.
func ByVenue(s *models.Show) int64  { return s.VenueID }
func ByArtist(s *models.Show) int64 { return s.ArtistID }

// CountUpcoming counts, per owner, the shows starting strictly after now.
func CountUpcoming(shows []models.Show, now time.Time, owner func(*models.Show) int64) map[int64]int {
	counts := make(map[int64]int)
	for i := range shows {
		if shows[i].Upcoming(now) {
			counts[owner(&shows[i])]++
		}
	}
	return counts
}

// Partition splits shows into past and upcoming, keeping their relative order.
func Partition(shows []models.Show, now time.Time) (past, upcoming []models.Show) {
	for _, s := range shows {
		if s.Upcoming(now) {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}
	return past, upcoming
}

// GroupVenuesByArea buckets venues by (city, state). Buckets appear in the order their
// pair is first seen in venues; venues keep their input order inside a bucket.
func GroupVenuesByArea(venues []models.Venue, upcoming map[int64]int) []Area {
	areas := []Area{}
	index := make(map[[2]string]int)

	for _, v := range venues {
		key := [2]string{v.City, v.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, Area{City: v.City, State: v.State})
		}
		areas[i].Venues = append(areas[i].Venues, Summary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: upcoming[v.ID],
		})
	}
	return areas
}

// Artists is the artist index: id and name only.
func Artists(artists []models.Artist) []Summary {
	out := make([]Summary, 0, len(artists))
	for _, a := range artists {
		out = append(out, Summary{ID: a.ID, Name: a.Name})
	}
	return out
}

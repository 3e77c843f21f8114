package listing

import (
	"time"

	"fyyur/internal/datetime"
	"fyyur/internal/models"
)

// VenueShow is a show on a venue page, described by its artist.
type VenueShow struct {
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ArtistShow is a show on an artist page, described by its venue.
type ArtistShow struct {
	VenueID        int64  `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

type VenueDetail struct {
	models.Venue
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

type ArtistDetail struct {
	models.Artist
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// BuildVenueDetail expects shows to carry their Artist relation; a missing artist
// leaves name and image empty.
func BuildVenueDetail(venue models.Venue, shows []models.Show, now time.Time, f TimeFormatter) VenueDetail {
	past, upcoming := Partition(shows, now)
	d := VenueDetail{
		Venue:         venue,
		PastShows:     make([]VenueShow, 0, len(past)),
		UpcomingShows: make([]VenueShow, 0, len(upcoming)),
	}
	for i := range past {
		d.PastShows = append(d.PastShows, venueShow(&past[i], f))
	}
	for i := range upcoming {
		d.UpcomingShows = append(d.UpcomingShows, venueShow(&upcoming[i], f))
	}
	d.PastShowsCount = len(d.PastShows)
	d.UpcomingShowsCount = len(d.UpcomingShows)
	return d
}

// BuildArtistDetail mirrors BuildVenueDetail, enriching shows with their Venue relation.
func BuildArtistDetail(artist models.Artist, shows []models.Show, now time.Time, f TimeFormatter) ArtistDetail {
	past, upcoming := Partition(shows, now)
	d := ArtistDetail{
		Artist:        artist,
		PastShows:     make([]ArtistShow, 0, len(past)),
		UpcomingShows: make([]ArtistShow, 0, len(upcoming)),
	}
	for i := range past {
		d.PastShows = append(d.PastShows, artistShow(&past[i], f))
	}
	for i := range upcoming {
		d.UpcomingShows = append(d.UpcomingShows, artistShow(&upcoming[i], f))
	}
	d.PastShowsCount = len(d.PastShows)
	d.UpcomingShowsCount = len(d.UpcomingShows)
	return d
}

func venueShow(s *models.Show, f TimeFormatter) VenueShow {
	vs := VenueShow{
		ArtistID:  s.ArtistID,
		StartTime: f.FormatTime(s.StartTime, datetime.Medium),
	}
	if s.Artist != nil {
		vs.ArtistName = s.Artist.Name
		vs.ArtistImageLink = s.Artist.ImageLink
	}
	return vs
}

func artistShow(s *models.Show, f TimeFormatter) ArtistShow {
	as := ArtistShow{
		VenueID:   s.VenueID,
		StartTime: f.FormatTime(s.StartTime, datetime.Medium),
	}
	if s.Venue != nil {
		as.VenueName = s.Venue.Name
		as.VenueImageLink = s.Venue.ImageLink
	}
	return as
}

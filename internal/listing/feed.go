package listing

import (
	"fyyur/internal/datetime"
	"fyyur/internal/models"
)

type FeedEntry struct {
	VenueID         int64  `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// BuildShowsFeed flattens every show with its venue and artist resolved.
func BuildShowsFeed(shows []models.Show, f TimeFormatter) []FeedEntry {
	feed := make([]FeedEntry, 0, len(shows))
	for _, s := range shows {
		e := FeedEntry{
			VenueID:   s.VenueID,
			ArtistID:  s.ArtistID,
			StartTime: f.FormatTime(s.StartTime, datetime.Medium),
		}
		if s.Venue != nil {
			e.VenueName = s.Venue.Name
		}
		if s.Artist != nil {
			e.ArtistName = s.Artist.Name
			e.ArtistImageLink = s.Artist.ImageLink
		}
		feed = append(feed, e)
	}
	return feed
}

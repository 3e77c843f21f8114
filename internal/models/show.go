package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Show links an artist to a venue at a point in time. Shows are immutable once listed.
type Show struct {
	bun.BaseModel `bun:"table:shows"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	VenueID   int64     `bun:"venue_id,notnull" json:"venue_id"`
	ArtistID  int64     `bun:"artist_id,notnull" json:"artist_id"`
	StartTime time.Time `bun:"start_time,notnull" json:"start_time"`

	Venue  *Venue  `bun:"rel:belongs-to,join:venue_id=id" json:"-"`
	Artist *Artist `bun:"rel:belongs-to,join:artist_id=id" json:"-"`
}

// Upcoming reports whether the show starts strictly after now.
func (s *Show) Upcoming(now time.Time) bool {
	return s.StartTime.After(now)
}

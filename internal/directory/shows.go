package directory

import (
	"context"
	"fmt"

	"fyyur/internal/listing"
	"fyyur/internal/models"
)

func (s *Service) ShowsFeed(ctx context.Context) ([]listing.FeedEntry, error) {
	shows, err := s.DB.ListShows(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	return listing.BuildShowsFeed(shows, s.Formatter), nil
}

// CreateShow fails with db.ErrReference when the venue or artist does not exist.
func (s *Service) CreateShow(ctx context.Context, show *models.Show) error {
	show.ID = 0
	if err := s.DB.CreateShow(ctx, show); err != nil {
		s.Logger.Error("LISTING", fmt.Sprintf("create show venue=%d artist=%d: %v", show.VenueID, show.ArtistID, err))
		return err
	}
	s.Logger.LogListing("created", "show", show.ID, fmt.Sprintf("venue=%d artist=%d", show.VenueID, show.ArtistID))
	return nil
}

package directory

import (
	"context"
	"fmt"

	"fyyur/internal/listing"
	"fyyur/internal/models"
	"fyyur/internal/search"
)

// Areas lists every venue grouped by city and state.
func (s *Service) Areas(ctx context.Context) ([]listing.Area, error) {
	now := s.now()
	venues, err := s.DB.ListVenues(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	counts, err := s.upcoming(ctx, now, listing.ByVenue)
	if err != nil {
		return nil, err
	}
	return listing.GroupVenuesByArea(venues, counts), nil
}

func (s *Service) SearchVenues(ctx context.Context, term string) (search.Result, error) {
	if blank(term) {
		return emptyResult(), nil
	}
	now := s.now()
	venues, err := s.DB.SearchVenues(ctx, term)
	if err != nil {
		return search.Result{}, fmt.Errorf("search venues: %w", err)
	}
	counts, err := s.upcoming(ctx, now, listing.ByVenue)
	if err != nil {
		return search.Result{}, err
	}
	return search.Search(term, search.Venues(venues), counts), nil
}

func (s *Service) VenueDetail(ctx context.Context, id int64) (listing.VenueDetail, error) {
	now := s.now()
	venue, err := s.DB.GetVenue(ctx, id)
	if err != nil {
		return listing.VenueDetail{}, err
	}
	shows, err := s.DB.ListShowsByVenue(ctx, id)
	if err != nil {
		return listing.VenueDetail{}, fmt.Errorf("list shows for venue %d: %w", id, err)
	}
	return listing.BuildVenueDetail(*venue, shows, now, s.Formatter), nil
}

func (s *Service) VenueForEdit(ctx context.Context, id int64) (*models.Venue, error) {
	return s.DB.GetVenue(ctx, id)
}

func (s *Service) CreateVenue(ctx context.Context, venue *models.Venue) error {
	venue.ID = 0
	if err := s.DB.CreateVenue(ctx, venue); err != nil {
		s.Logger.Error("LISTING", fmt.Sprintf("create venue %q: %v", venue.Name, err))
		return err
	}
	s.Logger.LogListing("created", "venue", venue.ID, venue.Name)
	return nil
}

func (s *Service) UpdateVenue(ctx context.Context, id int64, venue *models.Venue) error {
	venue.ID = id
	if err := s.DB.UpdateVenue(ctx, venue); err != nil {
		s.Logger.Error("LISTING", fmt.Sprintf("update venue %d: %v", id, err))
		return err
	}
	s.Logger.LogListing("updated", "venue", id, venue.Name)
	return nil
}

// DeleteVenue removes the venue together with its shows.
func (s *Service) DeleteVenue(ctx context.Context, id int64) error {
	if err := s.DB.DeleteVenue(ctx, id); err != nil {
		s.Logger.Error("LISTING", fmt.Sprintf("delete venue %d: %v", id, err))
		return err
	}
	s.Logger.LogListing("deleted", "venue", id, "")
	return nil
}

package directory

import (
	"context"
	"fmt"

	"fyyur/internal/listing"
	"fyyur/internal/models"
	"fyyur/internal/search"
)

func (s *Service) Artists(ctx context.Context) ([]listing.Summary, error) {
	artists, err := s.DB.ListArtists(ctx)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	return listing.Artists(artists), nil
}

func (s *Service) SearchArtists(ctx context.Context, term string) (search.Result, error) {
	if blank(term) {
		return emptyResult(), nil
	}
	now := s.now()
	artists, err := s.DB.SearchArtists(ctx, term)
	if err != nil {
		return search.Result{}, fmt.Errorf("search artists: %w", err)
	}
	counts, err := s.upcoming(ctx, now, listing.ByArtist)
	if err != nil {
		return search.Result{}, err
	}
	return search.Search(term, search.Artists(artists), counts), nil
}

func (s *Service) ArtistDetail(ctx context.Context, id int64) (listing.ArtistDetail, error) {
	now := s.now()
	artist, err := s.DB.GetArtist(ctx, id)
	if err != nil {
		return listing.ArtistDetail{}, err
	}
	shows, err := s.DB.ListShowsByArtist(ctx, id)
	if err != nil {
		return listing.ArtistDetail{}, fmt.Errorf("list shows for artist %d: %w", id, err)
	}
	return listing.BuildArtistDetail(*artist, shows, now, s.Formatter), nil
}

func (s *Service) ArtistForEdit(ctx context.Context, id int64) (*models.Artist, error) {
	return s.DB.GetArtist(ctx, id)
}

func (s *Service) CreateArtist(ctx context.Context, artist *models.Artist) error {
	artist.ID = 0
	if err := s.DB.CreateArtist(ctx, artist); err != nil {
		s.Logger.Error("LISTING", fmt.Sprintf("create artist %q: %v", artist.Name, err))
		return err
	}
	s.Logger.LogListing("created", "artist", artist.ID, artist.Name)
	return nil
}

func (s *Service) UpdateArtist(ctx context.Context, id int64, artist *models.Artist) error {
	artist.ID = id
	if err := s.DB.UpdateArtist(ctx, artist); err != nil {
		s.Logger.Error("LISTING", fmt.Sprintf("update artist %d: %v", id, err))
		return err
	}
	s.Logger.LogListing("updated", "artist", id, artist.Name)
	return nil
}

// Package search implements the case-insensitive name search behind /venues/search and
// /artists/search.
package search

import (
	"strings"

	"fyyur/internal/listing"
	"fyyur/internal/models"
)

// Candidate is anything with an id and a searchable name.
type Candidate struct {
	ID   int64
	Name string
}

type Result struct {
	Count int               `json:"count"`
	Data  []listing.Summary `json:"data"`
}

// Search returns the candidates whose name contains term, ignoring case, in input order.
// The term is matched as typed, surrounding spaces included; a blank term matches
// nothing. upcoming supplies NumUpcomingShows per id.
func Search(term string, candidates []Candidate, upcoming map[int64]int) Result {
	res := Result{Data: []listing.Summary{}}
	if strings.TrimSpace(term) == "" {
		return res
	}
	needle := strings.ToLower(term)
	for _, c := range candidates {
		if !strings.Contains(strings.ToLower(c.Name), needle) {
			continue
		}
		res.Data = append(res.Data, listing.Summary{
			ID:               c.ID,
			Name:             c.Name,
			NumUpcomingShows: upcoming[c.ID],
		})
	}
	res.Count = len(res.Data)
	return res
}

func Venues(venues []models.Venue) []Candidate {
	out := make([]Candidate, 0, len(venues))
	for _, v := range venues {
		out = append(out, Candidate{ID: v.ID, Name: v.Name})
	}
	return out
}

func Artists(artists []models.Artist) []Candidate {
	out := make([]Candidate, 0, len(artists))
	for _, a := range artists {
		out = append(out, Candidate{ID: a.ID, Name: a.Name})
	}
	return out
}

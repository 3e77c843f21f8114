package forms

import (
	"net/http"
	"strconv"
	"time"

	"fyyur/internal/models"
)

// TimeParser turns the posted start_time text into an instant.
type TimeParser interface {
	Parse(raw string) (time.Time, error)
}

type ShowForm struct {
	ArtistID  int64     `form:"artist_id" validate:"gt=0"`
	VenueID   int64     `form:"venue_id" validate:"gt=0"`
	StartTime time.Time `form:"start_time" validate:"required"`
}

// ParseShow reads artist_id, venue_id and start_time. Non-numeric ids and unparseable
// times are reported as invalid fields along with any other validation failure.
func ParseShow(r *http.Request, p TimeParser) (ShowForm, error) {
	if err := parse(r); err != nil {
		return ShowForm{}, err
	}
	var (
		f   ShowForm
		bad []string
		err error
	)
	if f.ArtistID, err = strconv.ParseInt(text(r, "artist_id"), 10, 64); err != nil {
		bad = append(bad, "artist_id")
	}
	if f.VenueID, err = strconv.ParseInt(text(r, "venue_id"), 10, 64); err != nil {
		bad = append(bad, "venue_id")
	}
	if f.StartTime, err = p.Parse(text(r, "start_time")); err != nil {
		bad = append(bad, "start_time")
	}
	if err := f.Validate(); err != nil {
		bad = append(bad, fieldsOf(err)...)
	}
	if len(bad) > 0 {
		return f, invalid("show", bad...)
	}
	return f, nil
}

func (f ShowForm) Validate() error {
	return check("show", f)
}

func (f ShowForm) Show() *models.Show {
	return &models.Show{ArtistID: f.ArtistID, VenueID: f.VenueID, StartTime: f.StartTime}
}

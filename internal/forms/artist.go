package forms

import (
	"net/http"

	"fyyur/internal/models"
)

type ArtistForm struct {
	Name               string   `form:"name" validate:"required,max=120"`
	City               string   `form:"city" validate:"required,max=120"`
	State              string   `form:"state" validate:"required,usstate"`
	Phone              string   `form:"phone" validate:"required,max=120"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url,max=500"`
	Genres             []string `form:"genres" validate:"min=1,dive,genre"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url,max=120"`
	Website            string   `form:"website" validate:"omitempty,url,max=120"`
	SeekingVenue       bool     `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" validate:"max=500"`
}

func ParseArtist(r *http.Request) (ArtistForm, error) {
	if err := parse(r); err != nil {
		return ArtistForm{}, err
	}
	f := ArtistForm{
		Name:               text(r, "name"),
		City:               text(r, "city"),
		State:              text(r, "state"),
		Phone:              text(r, "phone"),
		ImageLink:          text(r, "image_link"),
		Genres:             list(r, "genres"),
		FacebookLink:       text(r, "facebook_link"),
		Website:            text(r, "website"),
		SeekingVenue:       checkbox(r, "seeking_venue"),
		SeekingDescription: text(r, "seeking_description"),
	}
	return f, f.Validate()
}

func (f ArtistForm) Validate() error {
	return check("artist", f)
}

func (f ArtistForm) Artist() *models.Artist {
	return &models.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		Genres:             append([]string(nil), f.Genres...),
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
}

func ArtistFormFrom(a *models.Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		Genres:             append([]string(nil), a.Genres...),
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}

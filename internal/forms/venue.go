package forms

import (
	"net/http"

	"fyyur/internal/models"
)

type VenueForm struct {
	Name               string   `form:"name" validate:"required,max=120"`
	City               string   `form:"city" validate:"required,max=120"`
	State              string   `form:"state" validate:"required,usstate"`
	Address            string   `form:"address" validate:"required,max=120"`
	Phone              string   `form:"phone" validate:"required,max=120"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url,max=500"`
	Genres             []string `form:"genres" validate:"min=1,dive,genre"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url,max=120"`
	Website            string   `form:"website" validate:"omitempty,url,max=120"`
	SeekingTalent      bool     `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" validate:"max=500"`
}

// ParseVenue reads a venue form from the request body and validates it. The returned
// form is populated even when validation fails so the page can be re-rendered.
func ParseVenue(r *http.Request) (VenueForm, error) {
	if err := parse(r); err != nil {
		return VenueForm{}, err
	}
	f := VenueForm{
		Name:               text(r, "name"),
		City:               text(r, "city"),
		State:              text(r, "state"),
		Address:            text(r, "address"),
		Phone:              text(r, "phone"),
		ImageLink:          text(r, "image_link"),
		Genres:             list(r, "genres"),
		FacebookLink:       text(r, "facebook_link"),
		Website:            text(r, "website"),
		SeekingTalent:      checkbox(r, "seeking_talent"),
		SeekingDescription: text(r, "seeking_description"),
	}
	return f, f.Validate()
}

func (f VenueForm) Validate() error {
	return check("venue", f)
}

// Venue copies the form onto a model. The id is left for the caller.
func (f VenueForm) Venue() *models.Venue {
	return &models.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		Genres:             append([]string(nil), f.Genres...),
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}

// VenueFormFrom pre-fills the edit page.
func VenueFormFrom(v *models.Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		Genres:             append([]string(nil), v.Genres...),
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

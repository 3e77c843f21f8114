package models

import (
	"github.com/uptrace/bun"
)

type Venue struct {
	bun.BaseModel `bun:"table:venues"`

	ID                 int64    `bun:"id,pk,autoincrement" json:"id"`
	Name               string   `bun:"name,notnull" json:"name"`
	City               string   `bun:"city,notnull" json:"city"`
	State              string   `bun:"state,notnull" json:"state"`
	Address            string   `bun:"address,notnull" json:"address"`
	Phone              string   `bun:"phone,notnull" json:"phone"`
	ImageLink          string   `bun:"image_link" json:"image_link"`
	FacebookLink       string   `bun:"facebook_link" json:"facebook_link"`
	Website            string   `bun:"website,nullzero" json:"website,omitempty"`
	Genres             []string `bun:"genres" json:"genres"`
	SeekingTalent      bool     `bun:"seeking_talent,notnull,default:false" json:"seeking_talent"`
	SeekingDescription string   `bun:"seeking_description,nullzero" json:"seeking_description,omitempty"`

	Shows []*Show `bun:"rel:has-many,join:id=venue_id" json:"-"`
}

// VenueColumns lists the columns overwritten by an edit.
var VenueColumns = []string{
	"name", "city", "state", "address", "phone", "image_link", "facebook_link",
	"website", "genres", "seeking_talent", "seeking_description",
}

package models

import (
	"github.com/uptrace/bun"
)

type Artist struct {
	bun.BaseModel `bun:"table:artists"`

	ID                 int64    `bun:"id,pk,autoincrement" json:"id"`
	Name               string   `bun:"name,notnull" json:"name"`
	City               string   `bun:"city,notnull" json:"city"`
	State              string   `bun:"state,notnull" json:"state"`
	Phone              string   `bun:"phone,notnull" json:"phone"`
	Genres             []string `bun:"genres" json:"genres"`
	ImageLink          string   `bun:"image_link" json:"image_link"`
	FacebookLink       string   `bun:"facebook_link" json:"facebook_link"`
	Website            string   `bun:"website,nullzero" json:"website,omitempty"`
	SeekingVenue       bool     `bun:"seeking_venue,notnull,default:false" json:"seeking_venue"`
	SeekingDescription string   `bun:"seeking_description,nullzero" json:"seeking_description,omitempty"`

	Shows []*Show `bun:"rel:has-many,join:id=artist_id" json:"-"`
}

// ArtistColumns lists the columns overwritten by an edit.
var ArtistColumns = []string{
	"name", "city", "state", "phone", "genres", "image_link", "facebook_link",
	"website", "seeking_venue", "seeking_description",
}

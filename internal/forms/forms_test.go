package forms

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/datetime"
	"fyyur/internal/db"
)

func post(values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func venueValues() url.Values {
	return url.Values{
		"name":           {"The Musical Hop"},
		"city":           {"San Francisco"},
		"state":          {"CA"},
		"address":        {"1015 Folsom Street"},
		"phone":          {"123-123-1234"},
		"genres":         {"Jazz", "Reggae"},
		"image_link":     {"https://images.example.com/hop.png"},
		"facebook_link":  {"https://www.facebook.com/TheMusicalHop"},
		"website":        {"https://www.themusicalhop.com"},
		"seeking_talent": {"y"},
	}
}

func invalidFields(t *testing.T, err error) []string {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, db.ErrValidation))
	var verr *db.ValidationError
	require.True(t, errors.As(err, &verr))
	return verr.Fields
}

func TestParseVenue(t *testing.T) {
	f, err := ParseVenue(post(venueValues()))
	require.NoError(t, err)

	v := f.Venue()
	assert.Equal(t, "The Musical Hop", v.Name)
	assert.Equal(t, []string{"Jazz", "Reggae"}, v.Genres)
	assert.Equal(t, "https://www.themusicalhop.com", v.Website)
	assert.True(t, v.SeekingTalent)
	assert.Zero(t, v.ID)
}

func TestParseVenueMissingRequired(t *testing.T) {
	values := venueValues()
	values.Del("name")
	values.Set("phone", "   ")
	values.Del("genres")

	f, err := ParseVenue(post(values))

	assert.Equal(t, []string{"genres", "name", "phone"}, invalidFields(t, err))
	assert.Equal(t, "San Francisco", f.City)
}

func TestParseVenueRejectsUnknownChoices(t *testing.T) {
	values := venueValues()
	values.Set("state", "ZZ")
	values["genres"] = []string{"Jazz", "Polka", "Polka Fusion"}

	_, err := ParseVenue(post(values))

	assert.Equal(t, []string{"genres", "state"}, invalidFields(t, err))
}

func TestParseVenueRejectsBadURL(t *testing.T) {
	values := venueValues()
	values.Set("image_link", "not a url")

	_, err := ParseVenue(post(values))

	assert.Equal(t, []string{"image_link"}, invalidFields(t, err))
}

func TestCheckboxValues(t *testing.T) {
	for value, want := range map[string]bool{
		"y": true, "on": true, "true": true, "Yes": true,
		"": false, "n": false, "off": false,
	} {
		values := venueValues()
		values.Set("seeking_talent", value)

		f, err := ParseVenue(post(values))
		require.NoError(t, err)
		assert.Equal(t, want, f.SeekingTalent, "value %q", value)
	}
}

func TestVenueFormRoundTrip(t *testing.T) {
	f, err := ParseVenue(post(venueValues()))
	require.NoError(t, err)

	assert.Equal(t, f, VenueFormFrom(f.Venue()))
}

func TestParseArtist(t *testing.T) {
	values := url.Values{
		"name":                {"Guns N Petals"},
		"city":                {"San Francisco"},
		"state":               {"CA"},
		"phone":               {"326-123-5000"},
		"genres":              {"Rock n Roll"},
		"seeking_venue":       {"on"},
		"seeking_description": {"Looking for shows in the Bay Area"},
	}

	f, err := ParseArtist(post(values))
	require.NoError(t, err)

	a := f.Artist()
	assert.True(t, a.SeekingVenue)
	assert.Equal(t, "Looking for shows in the Bay Area", a.SeekingDescription)
	assert.Equal(t, f, ArtistFormFrom(a))
}

func TestParseArtistMissingRequired(t *testing.T) {
	_, err := ParseArtist(post(url.Values{"name": {"Solo"}}))

	assert.Equal(t, []string{"city", "genres", "phone", "state"}, invalidFields(t, err))
}

func TestParseShow(t *testing.T) {
	values := url.Values{
		"artist_id":  {"4"},
		"venue_id":   {"1"},
		"start_time": {"2035-04-01 20:00:00"},
	}

	f, err := ParseShow(post(values), datetime.New("", time.UTC))
	require.NoError(t, err)

	s := f.Show()
	assert.Equal(t, int64(4), s.ArtistID)
	assert.Equal(t, int64(1), s.VenueID)
	assert.Equal(t, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC), s.StartTime)
}

func TestParseShowInvalid(t *testing.T) {
	values := url.Values{
		"artist_id":  {"abc"},
		"venue_id":   {"0"},
		"start_time": {"whenever"},
	}

	_, err := ParseShow(post(values), datetime.New("", time.UTC))

	assert.Equal(t, []string{"artist_id", "start_time", "venue_id"}, invalidFields(t, err))
}

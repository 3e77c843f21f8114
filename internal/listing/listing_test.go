package listing

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"fyyur/internal/datetime"
	"fyyur/internal/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func fixtures() ([]models.Venue, []models.Artist, []models.Show) {
	venues := []models.Venue{
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA", ImageLink: "hop.png"},
		{ID: 2, Name: "Park Square Live Music & Coffee", City: "New York", State: "NY", ImageLink: "park.png"},
		{ID: 3, Name: "The Dueling Pianos Bar", City: "San Francisco", State: "CA"},
	}
	artists := []models.Artist{
		{ID: 4, Name: "Guns N Petals", ImageLink: "gnp.png"},
		{ID: 5, Name: "Matt Quevedo", ImageLink: "mq.png"},
	}
	shows := []models.Show{
		{ID: 1, VenueID: 1, ArtistID: 4, StartTime: now.Add(-48 * time.Hour), Venue: &venues[0], Artist: &artists[0]},
		{ID: 2, VenueID: 1, ArtistID: 5, StartTime: now.Add(72 * time.Hour), Venue: &venues[0], Artist: &artists[1]},
		{ID: 3, VenueID: 2, ArtistID: 4, StartTime: now.Add(24 * time.Hour), Venue: &venues[1], Artist: &artists[0]},
		{ID: 4, VenueID: 1, ArtistID: 4, StartTime: now, Venue: &venues[0], Artist: &artists[0]},
	}
	return venues, artists, shows
}

func TestCountUpcomingIsStrict(t *testing.T) {
	_, _, shows := fixtures()

	byVenue := CountUpcoming(shows, now, ByVenue)
	assert.Equal(t, map[int64]int{1: 1, 2: 1}, byVenue)

	byArtist := CountUpcoming(shows, now, ByArtist)
	assert.Equal(t, map[int64]int{4: 1, 5: 1}, byArtist)
}

func TestGroupVenuesByArea(t *testing.T) {
	venues, _, shows := fixtures()

	areas := GroupVenuesByArea(venues, CountUpcoming(shows, now, ByVenue))

	want := []Area{
		{City: "San Francisco", State: "CA", Venues: []Summary{
			{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 1},
			{ID: 3, Name: "The Dueling Pianos Bar", NumUpcomingShows: 0},
		}},
		{City: "New York", State: "NY", Venues: []Summary{
			{ID: 2, Name: "Park Square Live Music & Coffee", NumUpcomingShows: 1},
		}},
	}
	if diff := cmp.Diff(want, areas); diff != "" {
		t.Errorf("areas mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupVenuesByAreaEmpty(t *testing.T) {
	areas := GroupVenuesByArea(nil, nil)
	require.NotNil(t, areas)
	assert.Empty(t, areas)
}

func TestGroupSeparatesSameCityDifferentState(t *testing.T) {
	venues := []models.Venue{
		{ID: 1, Name: "A", City: "Portland", State: "OR"},
		{ID: 2, Name: "B", City: "Portland", State: "ME"},
	}

	areas := GroupVenuesByArea(venues, nil)

	require.Len(t, areas, 2)
	assert.Equal(t, "OR", areas[0].State)
	assert.Equal(t, "ME", areas[1].State)
}

func TestArtistsIndex(t *testing.T) {
	_, artists, _ := fixtures()

	assert.Equal(t, []Summary{{ID: 4, Name: "Guns N Petals"}, {ID: 5, Name: "Matt Quevedo"}}, Artists(artists))
}

func TestBuildVenueDetail(t *testing.T) {
	venues, _, shows := fixtures()
	f := datetime.New("", time.UTC)
	var own []models.Show
	for _, s := range shows {
		if s.VenueID == 1 {
			own = append(own, s)
		}
	}

	d := BuildVenueDetail(venues[0], own, now, f)

	assert.Equal(t, int64(1), d.ID)
	assert.Equal(t, "The Musical Hop", d.Name)
	assert.Equal(t, 2, d.PastShowsCount)
	assert.Equal(t, 1, d.UpcomingShowsCount)
	assert.Len(t, d.PastShows, d.PastShowsCount)
	assert.Len(t, d.UpcomingShows, d.UpcomingShowsCount)

	assert.Equal(t, VenueShow{
		ArtistID:        5,
		ArtistName:      "Matt Quevedo",
		ArtistImageLink: "mq.png",
		StartTime:       "Tue Jun, 04, 24 12:00pm",
	}, d.UpcomingShows[0])
	assert.Equal(t, "Guns N Petals", d.PastShows[0].ArtistName)
}

func TestBuildVenueDetailNoShows(t *testing.T) {
	venues, _, _ := fixtures()

	d := BuildVenueDetail(venues[2], nil, now, datetime.New("", time.UTC))

	assert.NotNil(t, d.PastShows)
	assert.NotNil(t, d.UpcomingShows)
	assert.Zero(t, d.PastShowsCount)
	assert.Zero(t, d.UpcomingShowsCount)
}

func TestBuildArtistDetail(t *testing.T) {
	_, artists, shows := fixtures()
	var own []models.Show
	for _, s := range shows {
		if s.ArtistID == 4 {
			own = append(own, s)
		}
	}

	d := BuildArtistDetail(artists[0], own, now, datetime.New("", time.UTC))

	assert.Equal(t, 2, d.PastShowsCount)
	assert.Equal(t, 1, d.UpcomingShowsCount)
	assert.Equal(t, ArtistShow{
		VenueID:        2,
		VenueName:      "Park Square Live Music & Coffee",
		VenueImageLink: "park.png",
		StartTime:      "Sun Jun, 02, 24 12:00pm",
	}, d.UpcomingShows[0])
}

func TestBuildShowsFeed(t *testing.T) {
	_, _, shows := fixtures()
	shows[3].Artist = nil

	feed := BuildShowsFeed(shows, datetime.New("", time.UTC))

	require.Len(t, feed, 4)
	assert.Equal(t, FeedEntry{
		VenueID:         1,
		VenueName:       "The Musical Hop",
		ArtistID:        4,
		ArtistName:      "Guns N Petals",
		ArtistImageLink: "gnp.png",
		StartTime:       "Thu May, 30, 24 12:00pm",
	}, feed[0])
	assert.Empty(t, feed[3].ArtistName)
	assert.Equal(t, int64(4), feed[3].ArtistID)
}

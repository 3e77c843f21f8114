package qr

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL(t *testing.T) {
	g := NewGenerator("http://localhost:5000/")

	assert.Equal(t, "http://localhost:5000/venues/1", g.URL("/venues/1"))
	assert.Equal(t, "http://localhost:5000/artists/4", g.URL("artists/4"))
}

func TestListingPNG(t *testing.T) {
	g := NewGenerator("http://localhost:5000")

	data, err := g.ListingPNG("/venues/1")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, img.Bounds().Dx())
}

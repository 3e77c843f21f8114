// Package qr renders share codes that link to venue and artist pages.
package qr

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const DefaultSize = 256

type Generator struct {
	BaseURL string
	Size    int
}

// NewGenerator trims any trailing slash from baseURL, e.g. "http://localhost:5000".
func NewGenerator(baseURL string) *Generator {
	return &Generator{BaseURL: strings.TrimRight(baseURL, "/"), Size: DefaultSize}
}

// URL is the absolute link encoded for path.
func (g *Generator) URL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return g.BaseURL + path
}

// ListingPNG encodes the absolute URL of path as a PNG QR code.
func (g *Generator) ListingPNG(path string) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = DefaultSize
	}
	png, err := qrcode.Encode(g.URL(path), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode share code for %s: %w", path, err)
	}
	return png, nil
}

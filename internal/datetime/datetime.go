// Package datetime renders show start times for listings and templates.
package datetime

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/goodsign/monday"
)

type Style string

const (
	Full   Style = "full"
	Medium Style = "medium"
	// Input is the numeric form accepted back by Parse, used to pre-fill form fields.
	Input Style = "input"
)

const (
	fullLayout   = "Monday January, 2, 2006 at 3:04pm"
	mediumLayout = "Mon Jan, 02, 06 3:04pm"
	inputLayout  = "2006-01-02 15:04:05"
)

// ErrUnknownStyle is returned by Format and ParseStyle for names other than the styles above.
var ErrUnknownStyle = errors.New("unknown datetime style")

// ParseStyle maps a style name to a Style. An empty name means Medium.
func ParseStyle(name string) (Style, error) {
	switch s := Style(name); s {
	case "":
		return Medium, nil
	case Full, Medium, Input:
		return s, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownStyle, name)
	}
}

// SupportedLocale reports whether locale (e.g. "fr_FR") has translated month and day names.
func SupportedLocale(locale string) bool {
	for _, l := range monday.ListLocales() {
		if string(l) == locale {
			return true
		}
	}
	return false
}

// ParseError reports input that is not a recognizable date-time.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as a date-time: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type Formatter struct {
	locale   monday.Locale
	location *time.Location
}

// New returns a Formatter for locale (e.g. "en_US", "fr_FR"). An empty locale means en_US.
// Naive timestamps are interpreted in loc; nil means UTC.
func New(locale string, loc *time.Location) *Formatter {
	if locale == "" {
		locale = string(monday.LocaleEnUS)
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Formatter{locale: monday.Locale(locale), location: loc}
}

// Parse accepts ISO-like date-time text such as "2024-06-04T19:00:00" or
// "2024-06-04 19:00:00".
func (f *Formatter) Parse(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, &ParseError{Input: raw, Err: fmt.Errorf("empty input")}
	}
	t, err := dateparse.ParseIn(raw, f.location)
	if err != nil {
		return time.Time{}, &ParseError{Input: raw, Err: err}
	}
	return t, nil
}

// Format parses raw and renders it in style. An empty style means Medium.
func (f *Formatter) Format(raw string, style Style) (string, error) {
	style, err := ParseStyle(string(style))
	if err != nil {
		return "", err
	}
	t, err := f.Parse(raw)
	if err != nil {
		return "", err
	}
	return f.FormatTime(t, style), nil
}

// FormatTime renders t in style using the formatter's locale and location. Callers pass
// one of the declared styles; anything else renders as Medium.
func (f *Formatter) FormatTime(t time.Time, style Style) string {
	layout := mediumLayout
	switch style {
	case Full:
		layout = fullLayout
	case Input:
		layout = inputLayout
	}
	return monday.Format(t.In(f.location), layout, f.locale)
}

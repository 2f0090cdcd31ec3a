// Package locale renders appointment times the way a clinic's patients
// expect to read them.
package locale

import (
	"fmt"
	"time"
	_ "time/tzdata" // zone database for minimal containers

	"golang.org/x/text/language"
)

// clockLayouts maps supported languages to their hour:minute layout.
var clockLayouts = map[language.Tag]string{
	language.Polish:          "15:04",
	language.German:          "15:04",
	language.BritishEnglish:  "15:04",
	language.AmericanEnglish: "3:04 PM",
}

// supported lists matchable languages; the first entry is the fallback.
var supported = []language.Tag{
	language.Polish,
	language.German,
	language.BritishEnglish,
	language.AmericanEnglish,
}

var matcher = language.NewMatcher(supported)

// TimeFormatter formats instants as wall-clock time in one zone.
type TimeFormatter struct {
	tag    language.Tag
	layout string
	loc    *time.Location
}

// NewTimeFormatter parses a BCP 47 locale and an IANA zone name.
// Unsupported languages fall back to Polish conventions.
func NewTimeFormatter(locale, zone string) (*TimeFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("locale: invalid tag %q: %w", locale, err)
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("locale: invalid time zone %q: %w", zone, err)
	}

	_, idx, _ := matcher.Match(tag)
	matched := supported[idx]

	return &TimeFormatter{
		tag:    matched,
		layout: clockLayouts[matched],
		loc:    loc,
	}, nil
}

// Clock returns hour:minute for t in the formatter's zone.
func (f *TimeFormatter) Clock(t time.Time) string {
	return t.In(f.loc).Format(f.layout)
}

// Location is the zone that defines "today".
func (f *TimeFormatter) Location() *time.Location {
	return f.loc
}

// Tag is the matched language.
func (f *TimeFormatter) Tag() language.Tag {
	return f.tag
}

package domain

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// Archetype is one of the ten day-stem fortune types.
type Archetype struct {
	Index   int    `json:"index" yaml:"index"`
	Name    string `json:"name" yaml:"name"`
	Reading string `json:"reading" yaml:"reading"`
	Title   string `json:"title" yaml:"title"`
	Emblem  string `json:"emblem" yaml:"emblem"`
	Tagline string `json:"tagline" yaml:"tagline"`
	Style   string `json:"style" yaml:"style"`
	Tip     string `json:"tip" yaml:"tip"`
}

// BirthDate is a calendar date with no time of day and no location.
type BirthDate struct {
	d civil.Date
}

// NewBirthDate returns the date for year, month and day, or ErrInvalidDate
// when the triple does not name a real Gregorian date (Feb 30, Nov 31, ...).
func NewBirthDate(year, month, day int) (BirthDate, error) {
	d := civil.Date{Year: year, Month: time.Month(month), Day: day}
	if !d.IsValid() {
		return BirthDate{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return BirthDate{d: d}, nil
}

// MustBirthDate is NewBirthDate for literals known to be valid.
func MustBirthDate(year, month, day int) BirthDate {
	b, err := NewBirthDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return b
}

func (b BirthDate) Year() int  { return b.d.Year }
func (b BirthDate) Month() int { return int(b.d.Month) }
func (b BirthDate) Day() int   { return b.d.Day }

// AddDays returns the date n calendar days after b (n may be negative).
func (b BirthDate) AddDays(n int) BirthDate {
	return BirthDate{d: b.d.AddDays(n)}
}

// DaysSince returns the signed number of whole days from s to b.
func (b BirthDate) DaysSince(s BirthDate) int {
	return b.d.DaysSince(s.d)
}

// String renders the date as YYYY-MM-DD.
func (b BirthDate) String() string {
	return b.d.String()
}

// Diagnosis pairs an input date with the archetype it maps to.
type Diagnosis struct {
	Date      BirthDate
	Archetype Archetype
}

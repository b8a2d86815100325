package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/kinun-go/internal/domain"
)

func TestStemIndex_Epoch(t *testing.T) {
	assert.Equal(t, 6, domain.StemIndex(domain.MustBirthDate(1900, 1, 31)))
}

func TestStemIndex_KnownDates(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		want             int
	}{
		{"day before epoch", 1900, 1, 30, 5},
		{"ten days before epoch", 1900, 1, 21, 6},
		{"seven days before epoch", 1900, 1, 24, 9},
		{"1990-01-01", 1990, 1, 1, 8},
		{"2000-05-15", 2000, 5, 15, 5},
		{"leap day", 2000, 2, 29, 9},
		{"far past", 1600, 3, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := domain.MustBirthDate(tt.year, tt.month, tt.day)
			assert.Equal(t, tt.want, domain.StemIndex(d))
		})
	}
}

func TestStemIndex_Range(t *testing.T) {
	start := domain.MustBirthDate(1850, 1, 1)
	for i := 0; i < 365*200; i++ {
		idx := domain.StemIndex(start.AddDays(i))
		if idx < 0 || idx >= domain.StemCount {
			t.Fatalf("%s: index %d out of range", start.AddDays(i), idx)
		}
	}
}

func TestStemIndex_PeriodTen(t *testing.T) {
	start := domain.MustBirthDate(1890, 6, 1)
	for i := 0; i < 20000; i++ {
		d1 := start.AddDays(i)
		d2 := d1.AddDays(10)
		require.Equal(t, domain.StemIndex(d1), domain.StemIndex(d2), "dates %s and %s", d1, d2)
	}
}

func TestStemIndex_Successor(t *testing.T) {
	start := domain.MustBirthDate(1890, 6, 1)
	for i := 0; i < 20000; i++ {
		d1 := start.AddDays(i)
		d2 := d1.AddDays(1)
		want := (domain.StemIndex(d1) + 1) % domain.StemCount
		require.Equal(t, want, domain.StemIndex(d2), "dates %s and %s", d1, d2)
	}
}

func TestDiagnose_EndToEnd(t *testing.T) {
	d := domain.MustBirthDate(1990, 1, 1)

	// 1900-01-31 .. 1990-01-01 is 32842 days; (32842+6) mod 10 = 8.
	assert.Equal(t, 32842, d.DaysSince(domain.MustBirthDate(1900, 1, 31)))

	dx := domain.Diagnose(d)
	assert.Equal(t, 8, dx.Archetype.Index)
	assert.Equal(t, "壬", dx.Archetype.Name)
	assert.Equal(t, "大海のクジラ", dx.Archetype.Title)

	msg := domain.FormatMessage(dx.Archetype, dx.Date)
	assert.Contains(t, msg, "1990年1月1日")
	assert.Contains(t, msg, "大海のクジラ")
}

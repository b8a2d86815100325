package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/kinun-go/internal/domain"
)

func TestCatalog_Shape(t *testing.T) {
	all := domain.Catalog()
	require.Len(t, all, 10)

	seen := make(map[int]bool)
	for i, a := range all {
		assert.Equal(t, i, a.Index, "record %d out of order", i)
		assert.False(t, seen[a.Index], "duplicate index %d", a.Index)
		seen[a.Index] = true

		for field, v := range map[string]string{
			"Name":    a.Name,
			"Reading": a.Reading,
			"Title":   a.Title,
			"Emblem":  a.Emblem,
			"Tagline": a.Tagline,
			"Style":   a.Style,
			"Tip":     a.Tip,
		} {
			assert.NotEmpty(t, v, "record %d: empty %s", i, field)
		}
	}
}

func TestCatalog_StemOrder(t *testing.T) {
	want := []string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
	for i, name := range want {
		assert.Equal(t, name, domain.Lookup(i).Name)
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	all := domain.Catalog()
	all[2].Title = "changed"
	assert.Equal(t, "太陽のライオン", domain.Lookup(2).Title)
}

func TestLookup_OutOfRangePanics(t *testing.T) {
	for _, idx := range []int{-1, 10, 100} {
		assert.Panics(t, func() { domain.Lookup(idx) }, "index %d", idx)
	}
}

package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/kinun-go/internal/domain"
)

func TestNewBirthDate_Valid(t *testing.T) {
	d, err := domain.NewBirthDate(2000, 2, 29)
	require.NoError(t, err)
	assert.Equal(t, 2000, d.Year())
	assert.Equal(t, 2, d.Month())
	assert.Equal(t, 29, d.Day())
	assert.Equal(t, "2000-02-29", d.String())
}

func TestNewBirthDate_Invalid(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
	}{
		{"feb 30", 2001, 2, 30},
		{"feb 29 non-leap", 2001, 2, 29},
		{"feb 29 century", 1900, 2, 29},
		{"nov 31", 1999, 11, 31},
		{"month 13", 1999, 13, 1},
		{"month 0", 1999, 0, 1},
		{"day 0", 1999, 1, 0},
		{"day 32", 1999, 1, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewBirthDate(tt.year, tt.month, tt.day)
			assert.True(t, errors.Is(err, domain.ErrInvalidDate), "got %v", err)
		})
	}
}

func TestBirthDate_DaysSince(t *testing.T) {
	a := domain.MustBirthDate(1900, 1, 31)
	b := domain.MustBirthDate(1900, 3, 1)
	assert.Equal(t, 29, b.DaysSince(a))
	assert.Equal(t, -29, a.DaysSince(b))
	assert.Equal(t, b, a.AddDays(29))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "生年月日を選択してください。", domain.UserMessage(domain.ErrIncompleteDate))
	_, err := domain.NewBirthDate(2001, 2, 30)
	assert.Equal(t, "有効な日付を入力してください。", domain.UserMessage(err))
	assert.Equal(t, "コピーに失敗しました。手動でコピーしてください。", domain.UserMessage(domain.ErrCopyFailed))
	assert.Empty(t, domain.UserMessage(domain.ErrNoResult))
}

package app

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/randomtoy/kinun-go/internal/domain"
)

// FormInput holds the raw select values; "" means not selected.
type FormInput struct {
	Year  string
	Month string
	Day   string
}

// FormOptions lists the values each select offers.
type FormOptions struct {
	Years  []int `json:"years"`
	Months []int `json:"months"`
	Days   []int `json:"days"`
}

// NewFormOptions offers years from yearMax down to yearMin, months 1-12 and
// days 1-31. Day validity against the month is checked on submit.
func NewFormOptions(yearMin, yearMax int) FormOptions {
	var o FormOptions
	for y := yearMax; y >= yearMin; y-- {
		o.Years = append(o.Years, y)
	}
	for m := 1; m <= 12; m++ {
		o.Months = append(o.Months, m)
	}
	for d := 1; d <= 31; d++ {
		o.Days = append(o.Days, d)
	}
	return o
}

// Parse checks that every field holds one of the offered values.
func (o FormOptions) Parse(in FormInput) (year, month, day int, err error) {
	if year, err = pick("year", in.Year, o.Years); err != nil {
		return 0, 0, 0, err
	}
	if month, err = pick("month", in.Month, o.Months); err != nil {
		return 0, 0, 0, err
	}
	if day, err = pick("day", in.Day, o.Days); err != nil {
		return 0, 0, 0, err
	}
	return year, month, day, nil
}

func pick(field, raw string, allowed []int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s missing", domain.ErrIncompleteDate, field)
	}
	v, err := strconv.Atoi(raw)
	if err != nil || !slices.Contains(allowed, v) {
		return 0, fmt.Errorf("%w: %s %q not offered", domain.ErrIncompleteDate, field, raw)
	}
	return v, nil
}

package domain

import (
	"fmt"
	"time"
)

const periodLayout = "2006-01"

// Period identifies one interest cycle, formatted YYYY-MM.
type Period string

func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse(periodLayout, s)
	if err != nil {
		return "", fmt.Errorf("ParsePeriod: %q: %w", s, ErrInvalidPeriod)
	}
	return Period(t.Format(periodLayout)), nil
}

func PeriodOf(t time.Time) Period {
	return Period(t.UTC().Format(periodLayout))
}

func (p Period) String() string { return string(p) }

// After reports whether p is a later cycle than q.
func (p Period) After(q Period) bool { return p > q }

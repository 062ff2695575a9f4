package date

import (
	"fmt"
	"strings"
)

// Period is a reporting granularity: one bucket per day, ISO week, or month.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// ParsePeriod parses a period name, accepting both the adjective and the noun form.
func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(p) {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	default:
		return Daily, fmt.Errorf("unknown period %s", p)
	}
}

// Key returns the bucket key identifying the period that contains d.
//
// Keys are "2006-01-02" for Daily, "2006-01" for Monthly and the ISO-8601
// week-numbering form "2006-W02" for Weekly. All three forms sort
// chronologically under plain string comparison.
func (d Date) Key(p Period) string {
	switch p {
	case Daily:
		return d.String()
	case Weekly:
		year, week := d.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case Monthly:
		return fmt.Sprintf("%04d-%02d", d.y, int(d.m))
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

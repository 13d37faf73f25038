package utils

import (
	"strings"
	"time"
)

// Period is a named time window used to scope leaderboard aggregation.
type Period string

const (
	PeriodThisMonth Period = "THIS_MONTH"
	PeriodLastMonth Period = "LAST_MONTH"
	PeriodThisYear  Period = "THIS_YEAR"
	PeriodAllTime   Period = "ALL_TIME"
)

// ParsePeriod normalizes a period string. Unrecognized values fall back to
// ALL_TIME.
func ParsePeriod(s string) Period {
	switch Period(strings.ToUpper(strings.TrimSpace(s))) {
	case PeriodThisMonth:
		return PeriodThisMonth
	case PeriodLastMonth:
		return PeriodLastMonth
	case PeriodThisYear:
		return PeriodThisYear
	default:
		return PeriodAllTime
	}
}

// HasPrevious reports whether the period has a look-back window for trend
// comparison.
func (p Period) HasPrevious() bool {
	return p != PeriodAllTime
}

// InWindow reports whether date falls inside the period's window relative to
// now. With previous set, the window one step back is tested instead: the
// prior month for THIS_MONTH, two months back for LAST_MONTH, the prior year
// for THIS_YEAR. ALL_TIME has no previous window.
func InWindow(p Period, now, date time.Time, previous bool) bool {
	switch p {
	case PeriodThisMonth:
		offset := 0
		if previous {
			offset = 1
		}
		return SameMonth(date, AddMonths(now, -offset))
	case PeriodLastMonth:
		offset := 1
		if previous {
			offset = 2
		}
		return SameMonth(date, AddMonths(now, -offset))
	case PeriodThisYear:
		offset := 0
		if previous {
			offset = 1
		}
		return date.Year() == now.Year()-offset
	default:
		return !previous
	}
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// AddMonths shifts t by n calendar months, anchored to the first of the
// month so day-of-month overflow cannot skip a month.
func AddMonths(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, t.Location())
}

// MonthKey formats t as a yyyy-mm bucket key.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

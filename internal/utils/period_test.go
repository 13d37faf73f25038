package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePeriod(t *testing.T) {
	assert.Equal(t, PeriodThisMonth, ParsePeriod("this_month"))
	assert.Equal(t, PeriodLastMonth, ParsePeriod(" LAST_MONTH "))
	assert.Equal(t, PeriodThisYear, ParsePeriod("This_Year"))
	assert.Equal(t, PeriodAllTime, ParsePeriod("ALL_TIME"))
	assert.Equal(t, PeriodAllTime, ParsePeriod(""))
	assert.Equal(t, PeriodAllTime, ParsePeriod("weekly"))
}

func TestInWindow(t *testing.T) {
	// Jan 31 exercises the day-of-month overflow anchoring.
	now := time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)

	t.Run("This Month", func(t *testing.T) {
		inMonth := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
		prevMonth := time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)

		assert.True(t, InWindow(PeriodThisMonth, now, inMonth, false))
		assert.False(t, InWindow(PeriodThisMonth, now, prevMonth, false))
		assert.True(t, InWindow(PeriodThisMonth, now, prevMonth, true))
		assert.False(t, InWindow(PeriodThisMonth, now, inMonth, true))
	})

	t.Run("Last Month", func(t *testing.T) {
		prevMonth := time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)
		twoBack := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

		assert.True(t, InWindow(PeriodLastMonth, now, prevMonth, false))
		assert.False(t, InWindow(PeriodLastMonth, now, twoBack, false))
		assert.True(t, InWindow(PeriodLastMonth, now, twoBack, true))
	})

	t.Run("This Year", func(t *testing.T) {
		thisYear := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		lastYear := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

		assert.True(t, InWindow(PeriodThisYear, now, thisYear, false))
		assert.False(t, InWindow(PeriodThisYear, now, lastYear, false))
		assert.True(t, InWindow(PeriodThisYear, now, lastYear, true))
	})

	t.Run("All Time", func(t *testing.T) {
		ancient := time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
		assert.True(t, InWindow(PeriodAllTime, now, ancient, false))
		assert.False(t, InWindow(PeriodAllTime, now, ancient, true), "no previous window")
	})
}

func TestHasPrevious(t *testing.T) {
	assert.True(t, PeriodThisMonth.HasPrevious())
	assert.True(t, PeriodLastMonth.HasPrevious())
	assert.True(t, PeriodThisYear.HasPrevious())
	assert.False(t, PeriodAllTime.HasPrevious())
}

func TestAddMonths(t *testing.T) {
	jan31 := time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)

	// Anchoring to day 1 keeps -1 month in December, not skipping it.
	assert.Equal(t, time.December, AddMonths(jan31, -1).Month())
	assert.Equal(t, 2025, AddMonths(jan31, -1).Year())
	assert.Equal(t, time.February, AddMonths(jan31, 1).Month())
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2026-03", MonthKey(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)))
}

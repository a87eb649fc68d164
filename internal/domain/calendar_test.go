package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthCalendar(t *testing.T) {
	// March 2024 starts on a Friday.
	month := time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)
	counts := CountByDay([]string{"2024-03-01", "2024-03-01", "2024-03-31", "2024-02-26"})

	days := BuildMonthCalendar(month, counts)

	require.Len(t, days, CalendarGridCells)
	assert.Equal(t, CalendarDay{DayKey: "2024-02-26", InCurrentMonth: false, Count: 1}, days[0])
	assert.Equal(t, CalendarDay{DayKey: "2024-03-01", InCurrentMonth: true, Count: 2}, days[4])
	assert.Equal(t, CalendarDay{DayKey: "2024-03-31", InCurrentMonth: true, Count: 1}, days[34])
	assert.Equal(t, CalendarDay{DayKey: "2024-04-07", InCurrentMonth: false, Count: 0}, days[41])
}

func TestBuildMonthCalendar_MonthStartingOnMonday(t *testing.T) {
	// April 2024 starts on a Monday.
	days := BuildMonthCalendar(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), nil)

	require.Len(t, days, CalendarGridCells)
	assert.Equal(t, "2024-04-01", days[0].DayKey)
	assert.True(t, days[0].InCurrentMonth)
}

func TestInsightForDay(t *testing.T) {
	a := InsightForDay("2024-03-06")
	b := InsightForDay("2024-03-06")

	assert.Equal(t, a, b)
	assert.Equal(t, "2024-03-06", a.DayKey)
	assert.Contains(t, dreamInsights, a.Insight)
}

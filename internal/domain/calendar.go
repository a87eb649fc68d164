package domain

import "time"

// CalendarGridCells is six weeks of days, enough to show any month.
const CalendarGridCells = 42

// CalendarDay is one cell of a month grid.
type CalendarDay struct {
	DayKey         string `json:"day_key"`
	InCurrentMonth bool   `json:"in_current_month"`
	Count          int    `json:"count"`
}

// CountByDay tallies day keys.
func CountByDay(dayKeys []string) map[string]int {
	counts := make(map[string]int, len(dayKeys))
	for _, k := range dayKeys {
		counts[k]++
	}
	return counts
}

// BuildMonthCalendar lays out the month containing month as a Monday-first
// grid of CalendarGridCells days, filling each cell from counts.
func BuildMonthCalendar(month time.Time, counts map[string]int) []CalendarDay {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	offset := (int(first.Weekday()) + 6) % 7
	start := first.AddDate(0, 0, -offset)

	days := make([]CalendarDay, 0, CalendarGridCells)
	for i := range CalendarGridCells {
		d := start.AddDate(0, 0, i)
		key := d.Format(DayKeyLayout)
		days = append(days, CalendarDay{
			DayKey:         key,
			InCurrentMonth: d.Month() == first.Month(),
			Count:          counts[key],
		})
	}
	return days
}

package domain

import (
	"math"
	"sort"
	"time"
)

// StreakStats summarises journaling consistency over a set of day keys.
type StreakStats struct {
	CurrentStreak      int `json:"current_streak"`
	BestStreak         int `json:"best_streak"`
	DaysLoggedThisWeek int `json:"days_logged_this_week"`
}

// CalculateStreaks computes streak statistics for the given day keys
// relative to today. Duplicate and malformed keys are ignored. Today's
// calendar day is taken in today's own location.
func CalculateStreaks(dayKeys []string, today time.Time) StreakStats {
	days := make(map[string]time.Time, len(dayKeys))
	for _, key := range dayKeys {
		d, err := time.Parse(DayKeyLayout, key)
		if err != nil {
			continue
		}
		days[d.Format(DayKeyLayout)] = d
	}
	if len(days) == 0 {
		return StreakStats{}
	}

	todayDate := civilDate(today)

	return StreakStats{
		CurrentStreak:      currentStreak(days, todayDate),
		BestStreak:         bestStreak(days),
		DaysLoggedThisWeek: daysLoggedThisWeek(days, todayDate),
	}
}

// civilDate returns midnight UTC of t's calendar day in t's location.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func currentStreak(days map[string]time.Time, today time.Time) int {
	streak := 0
	for d := today; ; d = d.AddDate(0, 0, -1) {
		if _, ok := days[d.Format(DayKeyLayout)]; !ok {
			return streak
		}
		streak++
	}
}

func bestStreak(days map[string]time.Time) int {
	sorted := make([]time.Time, 0, len(days))
	for _, d := range days {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	best, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if math.Round(sorted[i].Sub(sorted[i-1]).Hours()/24) == 1 {
			run++
		} else {
			run = 1
		}
		best = max(best, run)
	}
	return best
}

func daysLoggedThisWeek(days map[string]time.Time, today time.Time) int {
	// Weeks start on Monday.
	sinceMonday := (int(today.Weekday()) + 6) % 7
	count := 0
	for d := today.AddDate(0, 0, -sinceMonday); !d.After(today); d = d.AddDate(0, 0, 1) {
		if _, ok := days[d.Format(DayKeyLayout)]; ok {
			count++
		}
	}
	return count
}

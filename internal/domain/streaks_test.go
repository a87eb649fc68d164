package domain

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateStreaks(t *testing.T) {
	// Wednesday; the week started on Monday 2024-03-04.
	today := time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		keys []string
		want StreakStats
	}{
		{
			name: "no_days",
			keys: nil,
			want: StreakStats{},
		},
		{
			name: "only_today",
			keys: []string{"2024-03-06"},
			want: StreakStats{CurrentStreak: 1, BestStreak: 1, DaysLoggedThisWeek: 1},
		},
		{
			name: "three_day_run_ending_today",
			keys: []string{"2024-03-04", "2024-03-05", "2024-03-06"},
			want: StreakStats{CurrentStreak: 3, BestStreak: 3, DaysLoggedThisWeek: 3},
		},
		{
			name: "longer_run_in_the_past_across_leap_day",
			keys: []string{"2024-03-06", "2024-03-05", "2024-03-01", "2024-02-29", "2024-02-28", "2024-02-27"},
			want: StreakStats{CurrentStreak: 2, BestStreak: 4, DaysLoggedThisWeek: 2},
		},
		{
			name: "nothing_today_breaks_current",
			keys: []string{"2024-03-05", "2024-03-04"},
			want: StreakStats{CurrentStreak: 0, BestStreak: 2, DaysLoggedThisWeek: 2},
		},
		{
			name: "duplicates_and_malformed_ignored",
			keys: []string{"2024-03-06", "2024-03-06", "not-a-date", ""},
			want: StreakStats{CurrentStreak: 1, BestStreak: 1, DaysLoggedThisWeek: 1},
		},
		{
			name: "last_sunday_is_previous_week",
			keys: []string{"2024-03-03"},
			want: StreakStats{CurrentStreak: 0, BestStreak: 1, DaysLoggedThisWeek: 0},
		},
		{
			name: "today_yesterday_and_three_days_ago",
			keys: []string{"2024-03-06", "2024-03-05", "2024-03-03"},
			want: StreakStats{CurrentStreak: 2, BestStreak: 2, DaysLoggedThisWeek: 2},
		},
		{
			name: "today_and_five_days_ago",
			keys: []string{"2024-03-01", "2024-03-06"},
			want: StreakStats{CurrentStreak: 1, BestStreak: 1, DaysLoggedThisWeek: 1},
		},
		{
			name: "only_malformed",
			keys: []string{"yesterday"},
			want: StreakStats{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateStreaks(tc.keys, today)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCalculateStreaks_AcrossDaylightSavingChange(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Clocks went forward on 2024-03-10; Monday 2024-03-11 starts a new week.
	today := time.Date(2024, 3, 11, 10, 0, 0, 0, loc)
	got := CalculateStreaks([]string{"2024-03-09", "2024-03-10", "2024-03-11"}, today)

	assert.Equal(t, StreakStats{CurrentStreak: 3, BestStreak: 3, DaysLoggedThisWeek: 1}, got)
}

func TestCalculateStreaks_TodayIsTakenInItsOwnLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// Still the 5th in UTC, already the 6th in Tokyo.
	today := time.Date(2024, 3, 5, 20, 0, 0, 0, time.UTC).In(tokyo)

	got := CalculateStreaks([]string{"2024-03-06"}, today)

	assert.Equal(t, 1, got.CurrentStreak)
}

func TestCalculateStreaks_Idempotent(t *testing.T) {
	today := time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC)
	keys := []string{"2024-03-06", "2024-03-05", "2024-02-01"}

	assert.Equal(t, CalculateStreaks(keys, today), CalculateStreaks(keys, today))
}

func TestCalculateStreaks_UsesDayKeysFromDreams(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	today := time.Date(2024, 3, 6, 12, 0, 0, 0, loc)
	dreams := []Dream{
		// 02:00 UTC on the 6th is still the 5th at UTC-5.
		{ID: "a", CreatedAt: time.Date(2024, 3, 6, 2, 0, 0, 0, time.UTC)},
		{ID: "b", CreatedAt: time.Date(2024, 3, 6, 18, 0, 0, 0, time.UTC)},
		{ID: "c"},
	}

	got := CalculateStreaks(DreamDayKeys(dreams, loc), today)

	assert.Equal(t, StreakStats{CurrentStreak: 2, BestStreak: 2, DaysLoggedThisWeek: 2}, got)
}

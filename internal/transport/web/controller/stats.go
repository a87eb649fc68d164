package controller

import (
	"net/http"
	"time"

	"github.com/jbeshir/dream-journal/internal/command"
	"github.com/jbeshir/dream-journal/internal/domain"
)

const calendarMonthLayout = "2006-01"

// StreaksGet handles GET /v1/stats/streaks.
type StreaksGet struct {
	StreaksCmd      command.Command[command.GetStreaksRequest, domain.StreakStats]
	DefaultLocation *time.Location
}

func (c StreaksGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	loc, err := locationFromQuery(r.URL.Query(), c.DefaultLocation)
	if err != nil {
		logger.WarnContext(ctx, "unable to parse timezone", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	stats, err := c.StreaksCmd.Execute(ctx, command.GetStreaksRequest{
		OwnerID:  domain.UserIDFromContext(ctx),
		Location: loc,
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to calculate streaks", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, stats)
}

// CalendarGet handles GET /v1/calendar. The month defaults to the current
// month in the requested timezone.
type CalendarGet struct {
	CalendarCmd     command.Command[command.GetCalendarRequest, command.CalendarMonth]
	DefaultLocation *time.Location
	Now             func() time.Time
}

func (c CalendarGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	q := r.URL.Query()

	loc, err := locationFromQuery(q, c.DefaultLocation)
	if err != nil {
		logger.WarnContext(ctx, "unable to parse timezone", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	month := now(c.Now).In(loc)
	if q.Has("month") {
		month, err = time.ParseInLocation(calendarMonthLayout, q.Get("month"), loc)
		if err != nil {
			logger.WarnContext(ctx, "unable to parse month", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	calendar, err := c.CalendarCmd.Execute(ctx, command.GetCalendarRequest{
		OwnerID:  domain.UserIDFromContext(ctx),
		Month:    month,
		Location: loc,
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to build calendar", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, calendar)
}

// DailyInsightGet handles GET /v1/insights/daily. It needs no user.
type DailyInsightGet struct {
	DefaultLocation *time.Location
	Now             func() time.Time
	CacheMaxAge     time.Duration
}

func (c DailyInsightGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	loc, err := locationFromQuery(r.URL.Query(), c.DefaultLocation)
	if err != nil {
		logger.WarnContext(ctx, "unable to parse timezone", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	dayKey := now(c.Now).In(loc).Format(domain.DayKeyLayout)
	if c.CacheMaxAge > 0 {
		w.Header().Set("Cache-Control", cacheControl(c.CacheMaxAge))
	}
	writeJSON(ctx, w, http.StatusOK, domain.InsightForDay(dayKey))
}

func now(f func() time.Time) time.Time {
	if f == nil {
		return time.Now()
	}
	return f()
}

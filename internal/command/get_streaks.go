package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"
)

type GetStreaksRequest struct {
	OwnerID string
	// Location decides which calendar day each dream falls on. Nil means UTC.
	Location *time.Location
}

type GetStreaks struct {
	DreamLister datasources.DreamsByOwnerLister
	Now         func() time.Time
}

func (c *GetStreaks) Execute(ctx context.Context, req GetStreaksRequest) (domain.StreakStats, error) {
	loc := req.Location
	if loc == nil {
		loc = time.UTC
	}

	dreams, err := c.DreamLister.ListDreamsByOwner(ctx, req.OwnerID, 1, 0)
	if err != nil {
		return domain.StreakStats{}, fmt.Errorf("listing dreams: %w", err)
	}

	today := nowFunc(c.Now).In(loc)
	return domain.CalculateStreaks(domain.DreamDayKeys(dreams, loc), today), nil
}

type GetCalendarRequest struct {
	OwnerID string
	// Month is any instant in the month to show; only its year and month are used.
	Month    time.Time
	Location *time.Location
}

type CalendarMonth struct {
	Month string               `json:"month"`
	Days  []domain.CalendarDay `json:"days"`
}

// GetCalendar counts an owner's dreams per day over a month grid.
type GetCalendar struct {
	DreamLister datasources.DreamsByOwnerLister
}

func (c *GetCalendar) Execute(ctx context.Context, req GetCalendarRequest) (CalendarMonth, error) {
	loc := req.Location
	if loc == nil {
		loc = time.UTC
	}

	dreams, err := c.DreamLister.ListDreamsByOwner(ctx, req.OwnerID, 1, 0)
	if err != nil {
		return CalendarMonth{}, fmt.Errorf("listing dreams: %w", err)
	}

	counts := domain.CountByDay(domain.DreamDayKeys(dreams, loc))
	return CalendarMonth{
		Month: req.Month.Format("2006-01"),
		Days:  domain.BuildMonthCalendar(req.Month, counts),
	}, nil
}

// Package schedule runs periodic jobs as app components.
package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jbeshir/dream-journal/internal/command"
	"github.com/jbeshir/dream-journal/internal/domain"
	"github.com/robfig/cron/v3"
)

// Backfill embeds every owner's missing dreams on a cron schedule.
type Backfill struct {
	Schedule cron.Schedule
	Cmd      command.Command[command.BackfillAllOwnersRequest, command.BackfillAllOwnersResult]
	Location *time.Location

	now   func() time.Time
	after func(time.Duration) <-chan time.Time
}

// NewBackfill parses a standard 5-field cron expression (minute hour
// day-of-month month day-of-week), e.g. "0 4 * * *" for 04:00 daily.
func NewBackfill(
	expr string,
	cmd command.Command[command.BackfillAllOwnersRequest, command.BackfillAllOwnersResult],
	loc *time.Location,
) (*Backfill, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	sched, err := parser.Parse(strings.TrimSpace(expr))
	if err != nil {
		return nil, fmt.Errorf("parsing backfill schedule [%s]: %w", expr, err)
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Backfill{
		Schedule: sched,
		Cmd:      cmd,
		Location: loc,
	}, nil
}

// Run blocks until ctx is cancelled. A failed run is logged and the next
// scheduled run still happens.
func (b *Backfill) Run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)
	now, after := b.now, b.after
	if now == nil {
		now = time.Now
	}
	if after == nil {
		after = time.After
	}

	for {
		current := now().In(b.Location)
		next := b.Schedule.Next(current)
		logger.InfoContext(ctx, "next embedding backfill scheduled",
			"next_run", next, "wait", next.Sub(current).Round(time.Second).String())

		select {
		case <-ctx.Done():
			return nil
		case <-after(next.Sub(current)):
		}

		result, err := b.Cmd.Execute(ctx, command.BackfillAllOwnersRequest{})
		if err != nil {
			logger.ErrorContext(ctx, "scheduled embedding backfill failed", "error", err)
			continue
		}
		logger.InfoContext(ctx, "scheduled embedding backfill complete",
			"owners", result.Owners,
			"owner_failures", result.OwnerFailures,
			"embedded", result.Embedded,
			"failed", result.Failed)
	}
}

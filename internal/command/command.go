package command

import (
	"context"
	"errors"
	"time"
)

// Command is the generic interface for all commands.
// Req is the request type and Res is the result type.
type Command[Req, Res any] interface {
	Execute(ctx context.Context, req Req) (Res, error)
}

// Empty is used as the result type for commands that only return an error.
type Empty struct{}

// ErrForbidden is returned when the caller may not act on a dream.
var ErrForbidden = errors.New("forbidden")

// nowFunc returns now() in UTC, or time.Now when now is nil.
func nowFunc(now func() time.Time) time.Time {
	if now == nil {
		return time.Now().UTC()
	}
	return now().UTC()
}

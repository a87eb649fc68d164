package command

import (
	"context"
	"log/slog"
	"time"

	"github.com/jbeshir/dream-journal/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), testLogger())
}

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time {
	return testNow
}

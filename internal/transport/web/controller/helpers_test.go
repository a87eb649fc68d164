package controller

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jbeshir/dream-journal/internal/domain"
)

var testTime = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time {
	return testTime
}

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		return r.WithContext(ctx)
	}
}

func testContextWithUserID(userID string) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		ctx = domain.ContextWithUserID(ctx, userID)
		return r.WithContext(ctx)
	}
}

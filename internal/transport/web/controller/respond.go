package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jbeshir/dream-journal/internal/command"
	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"
)

// ErrorResponse is the JSON body written for client errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}

// statusForError maps command errors to HTTP statuses. Dreams the caller may
// not see are reported as missing.
func statusForError(err error) int {
	switch {
	case errors.Is(err, datasources.ErrNotFound), errors.Is(err, command.ErrForbidden):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidDream):
		return http.StatusBadRequest
	case errors.Is(err, command.ErrTokenLimitExceeded):
		return http.StatusConflict
	case errors.Is(err, command.ErrAnalysisCooldown), errors.Is(err, command.ErrAnalysisRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, command.ErrMalformedGeneration):
		return http.StatusBadGateway
	case errors.Is(err, datasources.ErrGeneratorDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeCommandError logs err and writes the matching status. Client errors
// carry the error text; server errors are written bare.
func writeCommandError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	logger := domain.LoggerFromContext(ctx)

	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.ErrorContext(ctx, msg, "error", err)
		w.WriteHeader(status)
		return
	}

	logger.WarnContext(ctx, msg, "error", err, "status", status)
	switch status {
	case http.StatusNotFound:
		w.WriteHeader(status)
	default:
		writeJSON(ctx, w, status, ErrorResponse{Error: err.Error()})
	}
}

func cacheControl(maxAge time.Duration) string {
	return fmt.Sprintf("max-age=%d", int(maxAge.Seconds()))
}

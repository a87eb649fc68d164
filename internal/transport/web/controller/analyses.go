package controller

import (
	"errors"
	"net/http"

	"github.com/jbeshir/dream-journal/internal/command"
	"github.com/jbeshir/dream-journal/internal/domain"
)

// DreamPatternsGet handles GET /v1/patterns.
type DreamPatternsGet struct {
	PatternsCmd command.Command[command.ListDreamPatternsRequest, domain.DreamPatterns]
}

func (c DreamPatternsGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	patterns, err := c.PatternsCmd.Execute(ctx, command.ListDreamPatternsRequest{
		OwnerID: domain.UserIDFromContext(ctx),
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to list dream patterns", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, patterns)
}

// AnalysisResponse wraps a cached analysis, which is null until the first run.
type AnalysisResponse[T any] struct {
	Analysis *T     `json:"analysis"`
	Error    string `json:"error,omitempty"`
}

// PatternAnalysisGet handles GET /v1/patterns/analysis.
type PatternAnalysisGet struct {
	GetCmd command.Command[command.GetAnalysisRequest, *domain.PatternAnalysis]
}

func (c PatternAnalysisGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	analysis, err := c.GetCmd.Execute(ctx, command.GetAnalysisRequest{OwnerID: domain.UserIDFromContext(ctx)})
	if err != nil {
		writeCommandError(ctx, w, "unable to fetch pattern analysis", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, AnalysisResponse[domain.PatternAnalysis]{Analysis: analysis})
}

// PatternAnalysisRun handles POST /v1/patterns/analysis. During the cooldown
// it answers 429 with the previous analysis.
type PatternAnalysisRun struct {
	AnalyseCmd command.Command[command.AnalysePatternsRequest, domain.PatternAnalysis]
}

func (c PatternAnalysisRun) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	analysis, err := c.AnalyseCmd.Execute(ctx, command.AnalysePatternsRequest{OwnerID: domain.UserIDFromContext(ctx)})
	if errors.Is(err, command.ErrAnalysisCooldown) {
		logger := domain.LoggerFromContext(ctx)
		logger.InfoContext(ctx, "pattern analysis still cooling down")
		writeJSON(ctx, w, http.StatusTooManyRequests, AnalysisResponse[domain.PatternAnalysis]{
			Analysis: &analysis,
			Error:    err.Error(),
		})
		return
	}
	if err != nil {
		writeCommandError(ctx, w, "unable to analyse patterns", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, AnalysisResponse[domain.PatternAnalysis]{Analysis: &analysis})
}

// ThemeAnalysisGet handles GET /v1/themes/analysis.
type ThemeAnalysisGet struct {
	GetCmd command.Command[command.GetAnalysisRequest, *domain.ThemeAnalysis]
}

func (c ThemeAnalysisGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	analysis, err := c.GetCmd.Execute(ctx, command.GetAnalysisRequest{OwnerID: domain.UserIDFromContext(ctx)})
	if err != nil {
		writeCommandError(ctx, w, "unable to fetch theme analysis", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, AnalysisResponse[domain.ThemeAnalysis]{Analysis: analysis})
}

// ThemeAnalysisRun handles POST /v1/themes/analysis.
type ThemeAnalysisRun struct {
	AnalyseCmd command.Command[command.AnalyseTopThemesRequest, domain.ThemeAnalysis]
}

func (c ThemeAnalysisRun) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	analysis, err := c.AnalyseCmd.Execute(ctx, command.AnalyseTopThemesRequest{OwnerID: domain.UserIDFromContext(ctx)})
	if errors.Is(err, command.ErrAnalysisRateLimited) {
		logger := domain.LoggerFromContext(ctx)
		logger.InfoContext(ctx, "theme analysis rate limited")
		resp := AnalysisResponse[domain.ThemeAnalysis]{Error: err.Error()}
		if !analysis.CreatedAt.IsZero() {
			resp.Analysis = &analysis
		}
		writeJSON(ctx, w, http.StatusTooManyRequests, resp)
		return
	}
	if err != nil {
		writeCommandError(ctx, w, "unable to analyse themes", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, AnalysisResponse[domain.ThemeAnalysis]{Analysis: &analysis})
}

package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"
)

// ErrAnalysisRateLimited is returned once the theme analysis has run
// MaxThemeAnalysisRuns times inside ThemeAnalysisRunWindow.
var ErrAnalysisRateLimited = errors.New(
	"you have already run this themes analysis 8 times in the last 30 days; " +
		"let some new dreams accumulate before running it again")

const (
	MaxThemeAnalysisRuns     = 8
	ThemeAnalysisRunWindow   = 30 * 24 * time.Hour
	ThemeAnalysisTopThemes   = 50
	themeAnalysisTemperature = 0.6
)

type AnalyseTopThemesRequest struct {
	OwnerID string
}

// AnalyseTopThemes writes a short reading of the owner's most frequent
// themes and caches it along with the runs that count towards the limit.
type AnalyseTopThemes struct {
	DreamLister   datasources.DreamsByOwnerLister
	AnalysisStore datasources.ThemeAnalysisStore
	Generator     datasources.TextGenerator
	Now           func() time.Time
}

func (c *AnalyseTopThemes) Execute(ctx context.Context, req AnalyseTopThemesRequest) (domain.ThemeAnalysis, error) {
	now := nowFunc(c.Now)

	previous, err := c.AnalysisStore.GetThemeAnalysis(ctx, req.OwnerID)
	if err != nil && !errors.Is(err, datasources.ErrNotFound) {
		return domain.ThemeAnalysis{}, fmt.Errorf("fetching previous analysis: %w", err)
	}
	runs := previous.RunsSince(now.Add(-ThemeAnalysisRunWindow))
	if len(runs) >= MaxThemeAnalysisRuns {
		return previous, ErrAnalysisRateLimited
	}

	dreams, err := c.DreamLister.ListDreamsByOwner(ctx, req.OwnerID, 1, 0)
	if err != nil {
		return domain.ThemeAnalysis{}, fmt.Errorf("listing dreams: %w", err)
	}

	var themes []string
	for _, d := range dreams {
		themes = append(themes, d.Themes...)
	}
	counts := domain.CountValues(themes)
	top := make([]string, 0, min(len(counts), ThemeAnalysisTopThemes))
	for _, vc := range counts[:min(len(counts), ThemeAnalysisTopThemes)] {
		top = append(top, vc.Value)
	}

	analysis := domain.ThemeAnalysis{
		OwnerID:     req.OwnerID,
		CreatedAt:   now,
		TotalDreams: len(dreams),
		Themes:      top,
		RecentRuns:  append(runs, now),
	}

	if len(top) == 0 {
		analysis.Analysis = noThemesMessage
	} else {
		text, err := c.Generator.GenerateText(ctx, datasources.GenerateRequest{
			SystemPrompt: analyseThemesSystemPrompt,
			UserPrompt:   themesPrompt(top, len(dreams)),
			Temperature:  themeAnalysisTemperature,
		})
		if err != nil {
			return domain.ThemeAnalysis{}, fmt.Errorf("generating theme analysis: %w", err)
		}
		analysis.Analysis = strings.TrimSpace(text)
		if analysis.Analysis == "" {
			analysis.Analysis = noThemeSummaryMessage
		}
	}

	if err := c.AnalysisStore.SaveThemeAnalysis(ctx, analysis); err != nil {
		return domain.ThemeAnalysis{}, fmt.Errorf("saving theme analysis: %w", err)
	}
	return analysis, nil
}

func themesPrompt(themes []string, totalDreams int) string {
	var b strings.Builder
	b.WriteString("Total dreams logged: " + strconv.Itoa(totalDreams) + "\n\n")
	b.WriteString("Here are the most frequent themes, ordered from most common downward:\n\n")
	for i, t := range themes {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strconv.Itoa(i+1) + ". " + t)
	}
	return b.String()
}

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

// ErrAnalysisCooldown is returned when a pattern analysis ran too recently.
var ErrAnalysisCooldown = errors.New("you can run a new analysis once 30 days have passed")

const (
	PatternAnalysisCooldown    = 30 * 24 * time.Hour
	PatternAnalysisWindow      = 30
	MinDreamsForPatterns       = 3
	patternAnalysisTemperature = 0.7
)

type AnalysePatternsRequest struct {
	OwnerID string
}

// AnalysePatterns writes an overview of the owner's most recent dreams and
// caches it. It runs at most once per PatternAnalysisCooldown.
type AnalysePatterns struct {
	DreamLister   datasources.DreamsByOwnerLister
	AnalysisStore datasources.PatternAnalysisStore
	Generator     datasources.TextGenerator
	Now           func() time.Time
}

func (c *AnalysePatterns) Execute(ctx context.Context, req AnalysePatternsRequest) (domain.PatternAnalysis, error) {
	now := nowFunc(c.Now)

	previous, err := c.AnalysisStore.GetPatternAnalysis(ctx, req.OwnerID)
	switch {
	case errors.Is(err, datasources.ErrNotFound):
	case err != nil:
		return domain.PatternAnalysis{}, fmt.Errorf("fetching previous analysis: %w", err)
	case now.Sub(previous.CreatedAt) < PatternAnalysisCooldown:
		return previous, ErrAnalysisCooldown
	}

	dreams, err := c.DreamLister.ListDreamsByOwner(ctx, req.OwnerID, 1, 0)
	if err != nil {
		return domain.PatternAnalysis{}, fmt.Errorf("listing dreams: %w", err)
	}

	analysis := domain.PatternAnalysis{
		OwnerID:     req.OwnerID,
		CreatedAt:   now,
		TotalDreams: len(dreams),
	}

	if len(dreams) < MinDreamsForPatterns {
		analysis.Analysis = patternsStillFormingMessage
		analysis.WindowDreams = len(dreams)
		analysis.WindowType = domain.AnalysisWindowLastAvailable
	} else {
		window := dreams[:min(len(dreams), PatternAnalysisWindow)]
		text, err := c.Generator.GenerateText(ctx, datasources.GenerateRequest{
			SystemPrompt: analysePatternsSystemPrompt,
			UserPrompt:   patternsPrompt(window, len(dreams)),
			Temperature:  patternAnalysisTemperature,
		})
		if err != nil {
			return domain.PatternAnalysis{}, fmt.Errorf("generating pattern analysis: %w", err)
		}
		analysis.Analysis = strings.TrimSpace(text)
		analysis.WindowDreams = len(window)
		analysis.WindowType = domain.AnalysisWindowLast30
	}

	if err := c.AnalysisStore.SavePatternAnalysis(ctx, analysis); err != nil {
		return domain.PatternAnalysis{}, fmt.Errorf("saving pattern analysis: %w", err)
	}
	return analysis, nil
}

func patternsPrompt(window []domain.Dream, totalDreams int) string {
	var b strings.Builder
	b.WriteString("Total dreams ever logged: " + strconv.Itoa(totalDreams) + "\n")
	b.WriteString("Dreams in this analysis window: " + strconv.Itoa(len(window)) + "\n\n")
	b.WriteString("Here is a compact list of dreams with their extracted symbols and themes:\n\n")

	for i, d := range window {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "- Dream %s (%s)\n  Symbols: %s\n  Themes: %s",
			d.ID, d.CreatedAt.Format(domain.DayKeyLayout), joinOrNone(d.Symbols), joinOrNone(d.Themes))
	}
	return b.String()
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}

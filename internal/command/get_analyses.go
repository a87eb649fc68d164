package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"
)

type GetAnalysisRequest struct {
	OwnerID string
}

// GetPatternAnalysis returns the cached pattern analysis, or nil if the owner
// has never run one.
type GetPatternAnalysis struct {
	AnalysisStore datasources.PatternAnalysisStore
}

func (c *GetPatternAnalysis) Execute(ctx context.Context, req GetAnalysisRequest) (*domain.PatternAnalysis, error) {
	analysis, err := c.AnalysisStore.GetPatternAnalysis(ctx, req.OwnerID)
	if errors.Is(err, datasources.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching pattern analysis: %w", err)
	}
	return &analysis, nil
}

// GetThemeAnalysis returns the cached theme analysis, or nil if the owner has
// never run one.
type GetThemeAnalysis struct {
	AnalysisStore datasources.ThemeAnalysisStore
}

func (c *GetThemeAnalysis) Execute(ctx context.Context, req GetAnalysisRequest) (*domain.ThemeAnalysis, error) {
	analysis, err := c.AnalysisStore.GetThemeAnalysis(ctx, req.OwnerID)
	if errors.Is(err, datasources.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching theme analysis: %w", err)
	}
	return &analysis, nil
}

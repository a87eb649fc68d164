package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"
)

func (r *Repository) GetPatternAnalysis(ctx context.Context, ownerID string) (domain.PatternAnalysis, error) {
	sb := sqlbuilder.Select("analysis", "created_at", "total_dreams", "window_dreams", "window_type")
	sb.From("pattern_analyses")
	sb.Where(sb.Equal("owner_id", ownerID))

	query, args := sb.Build()
	a := domain.PatternAnalysis{OwnerID: ownerID}
	var windowType string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&a.Analysis,
		&a.CreatedAt,
		&a.TotalDreams,
		&a.WindowDreams,
		&windowType,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.PatternAnalysis{}, datasources.ErrNotFound
	}
	if err != nil {
		return domain.PatternAnalysis{}, fmt.Errorf("fetching pattern analysis: %w", err)
	}
	a.WindowType = domain.AnalysisWindowType(windowType)

	return a, nil
}

func (r *Repository) SavePatternAnalysis(ctx context.Context, a domain.PatternAnalysis) error {
	ib := sqlbuilder.NewInsertBuilder()
	ib.ReplaceInto("pattern_analyses")
	ib.Cols("owner_id", "analysis", "created_at", "total_dreams", "window_dreams", "window_type")
	ib.Values(a.OwnerID, a.Analysis, a.CreatedAt, a.TotalDreams, a.WindowDreams, string(a.WindowType))

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("saving pattern analysis: %w", err)
	}
	return nil
}

func (r *Repository) GetThemeAnalysis(ctx context.Context, ownerID string) (domain.ThemeAnalysis, error) {
	sb := sqlbuilder.Select("analysis", "created_at", "total_dreams", "themes", "recent_runs")
	sb.From("theme_analyses")
	sb.Where(sb.Equal("owner_id", ownerID))

	query, args := sb.Build()
	a := domain.ThemeAnalysis{OwnerID: ownerID}
	var themes, runs []byte
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&a.Analysis,
		&a.CreatedAt,
		&a.TotalDreams,
		&themes,
		&runs,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ThemeAnalysis{}, datasources.ErrNotFound
	}
	if err != nil {
		return domain.ThemeAnalysis{}, fmt.Errorf("fetching theme analysis: %w", err)
	}

	if a.Themes, err = decodeStrings(themes); err != nil {
		return domain.ThemeAnalysis{}, fmt.Errorf("decoding theme snapshot: %w", err)
	}
	a.RecentRuns = []time.Time{}
	if len(runs) > 0 {
		if err := json.Unmarshal(runs, &a.RecentRuns); err != nil {
			return domain.ThemeAnalysis{}, fmt.Errorf("decoding recent runs: %w", err)
		}
	}

	return a, nil
}

func (r *Repository) SaveThemeAnalysis(ctx context.Context, a domain.ThemeAnalysis) error {
	themes, err := encodeStrings(a.Themes)
	if err != nil {
		return fmt.Errorf("encoding theme snapshot: %w", err)
	}
	runs, err := json.Marshal(a.RecentRuns)
	if err != nil {
		return fmt.Errorf("encoding recent runs: %w", err)
	}

	ib := sqlbuilder.NewInsertBuilder()
	ib.ReplaceInto("theme_analyses")
	ib.Cols("owner_id", "analysis", "created_at", "total_dreams", "themes", "recent_runs")
	ib.Values(a.OwnerID, a.Analysis, a.CreatedAt, a.TotalDreams, themes, runs)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("saving theme analysis: %w", err)
	}
	return nil
}

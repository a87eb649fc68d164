package domain

import "time"

// AnalysisWindowType records which dreams a pattern analysis looked at.
type AnalysisWindowType string

const (
	// AnalysisWindowLast30 covers the most recent thirty dreams.
	AnalysisWindowLast30 AnalysisWindowType = "last-30"
	// AnalysisWindowLastAvailable covers every dream, when there are too few to window.
	AnalysisWindowLastAvailable AnalysisWindowType = "last-available"
)

// PatternAnalysis is the cached written overview of a user's recent dreams.
type PatternAnalysis struct {
	OwnerID      string             `json:"-"`
	Analysis     string             `json:"analysis"`
	CreatedAt    time.Time          `json:"created_at"`
	TotalDreams  int                `json:"total_dreams_at_analysis"`
	WindowDreams int                `json:"analysis_window_dreams"`
	WindowType   AnalysisWindowType `json:"analysis_window_type"`
}

// ThemeAnalysis is the cached written reading of a user's most common themes.
type ThemeAnalysis struct {
	OwnerID     string      `json:"-"`
	Analysis    string      `json:"analysis"`
	CreatedAt   time.Time   `json:"created_at"`
	TotalDreams int         `json:"total_dreams_at_analysis"`
	Themes      []string    `json:"top_themes_snapshot"`
	RecentRuns  []time.Time `json:"recent_runs"`
}

// RunsSince returns the recent runs at or after cutoff.
func (a ThemeAnalysis) RunsSince(cutoff time.Time) []time.Time {
	runs := make([]time.Time, 0, len(a.RecentRuns))
	for _, r := range a.RecentRuns {
		if !r.Before(cutoff) {
			runs = append(runs, r)
		}
	}
	return runs
}

// DreamPatterns is the pattern overview for one user.
type DreamPatterns struct {
	TotalDreams         int            `json:"total_dreams"`
	DreamsWithEmbedding int            `json:"dreams_with_embedding"`
	ThemeCounts         []ValueCount   `json:"theme_counts"`
	SymbolCounts        []ValueCount   `json:"symbol_counts"`
	Clusters            []DreamCluster `json:"clusters"`
}

package datasources

import (
	"context"
	"errors"
	"time"

	"github.com/jbeshir/dream-journal/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// DatasetRepository combines every document store operation.
type DatasetRepository interface {
	DreamCreator
	DreamFetcher
	DreamsByOwnerLister
	DreamOwnerLister
	DreamsSharedWithLister
	DreamContentUpdater
	DreamInterpretationSetter
	DreamSharesSetter
	DreamDeleter
	PatternAnalysisStore
	ThemeAnalysisStore
	APITokenRepository
}

type DreamCreator interface {
	CreateDream(ctx context.Context, dream domain.Dream) error
}

// DreamFetcher returns ErrNotFound when the dream does not exist.
type DreamFetcher interface {
	FetchDream(ctx context.Context, dreamID string) (domain.Dream, error)
}

// DreamsByOwnerLister lists an owner's dreams, newest first.
// A pageSize of 0 lists every dream.
type DreamsByOwnerLister interface {
	ListDreamsByOwner(ctx context.Context, ownerID string, page, pageSize int) ([]domain.Dream, error)
}

type DreamOwnerLister interface {
	ListDreamOwners(ctx context.Context) ([]string, error)
}

// DreamsSharedWithLister lists dreams shared with userID, newest first.
// An empty ownerID matches every owner.
type DreamsSharedWithLister interface {
	ListDreamsSharedWith(ctx context.Context, userID, ownerID string) ([]domain.Dream, error)
}

// DreamContentUpdater replaces title and body. Changing content clears any
// stored embedding since it no longer describes the dream.
type DreamContentUpdater interface {
	UpdateDreamContent(ctx context.Context, dreamID, title, body string, updatedAt time.Time) error
}

type DreamInterpretationSetter interface {
	SetDreamInterpretation(ctx context.Context, dreamID string, interpretation domain.Interpretation) error
}

type DreamSharesSetter interface {
	SetDreamShares(ctx context.Context, dreamID string, userIDs []string) error
}

type DreamDeleter interface {
	DeleteDream(ctx context.Context, dreamID string) error
}

// PatternAnalysisStore returns ErrNotFound from GetPatternAnalysis when the
// owner has never run an analysis.
type PatternAnalysisStore interface {
	GetPatternAnalysis(ctx context.Context, ownerID string) (domain.PatternAnalysis, error)
	SavePatternAnalysis(ctx context.Context, analysis domain.PatternAnalysis) error
}

// ThemeAnalysisStore returns ErrNotFound from GetThemeAnalysis when the
// owner has never run an analysis.
type ThemeAnalysisStore interface {
	GetThemeAnalysis(ctx context.Context, ownerID string) (domain.ThemeAnalysis, error)
	SaveThemeAnalysis(ctx context.Context, analysis domain.ThemeAnalysis) error
}

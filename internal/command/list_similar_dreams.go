package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"
)

const (
	DefaultSimilarDreamsLimit = 5
	MaxSimilarDreamsLimit     = 50
)

type ListSimilarDreamsRequest struct {
	UserID  string
	DreamID string
	// Limit of 0 means DefaultSimilarDreamsLimit.
	Limit int
}

// ListSimilarDreams ranks the caller's other dreams by similarity to one of
// their dreams.
type ListSimilarDreams struct {
	DreamFetcher datasources.DreamFetcher
	Ensure       Command[EnsureDreamEmbeddingsRequest, BackfillEmbeddingsResult]
}

func NewListSimilarDreams(
	dreamFetcher datasources.DreamFetcher,
	ensure Command[EnsureDreamEmbeddingsRequest, BackfillEmbeddingsResult],
) *ListSimilarDreams {
	return &ListSimilarDreams{
		DreamFetcher: dreamFetcher,
		Ensure:       ensure,
	}
}

func (c *ListSimilarDreams) Execute(
	ctx context.Context,
	req ListSimilarDreamsRequest,
) ([]domain.SimilarDream, error) {
	source, err := c.DreamFetcher.FetchDream(ctx, req.DreamID)
	if err != nil {
		if errors.Is(err, datasources.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("fetching dream: %w", err)
	}
	if source.OwnerID != req.UserID {
		return nil, ErrForbidden
	}

	limit := req.Limit
	if limit == 0 {
		limit = DefaultSimilarDreamsLimit
	}
	limit = min(limit, MaxSimilarDreamsLimit)

	ensured, err := c.Ensure.Execute(ctx, EnsureDreamEmbeddingsRequest{OwnerID: source.OwnerID})
	if err != nil {
		return nil, fmt.Errorf("loading dream embeddings: %w", err)
	}

	return domain.RankSimilarDreams(ensured.Dreams, source.ID, limit), nil
}

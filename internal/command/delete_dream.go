package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"
)

type DeleteDreamRequest struct {
	UserID  string
	DreamID string
}

type DeleteDream struct {
	DreamFetcher     datasources.DreamFetcher
	DreamDeleter     datasources.DreamDeleter
	EmbeddingDeleter datasources.DreamEmbeddingDeleter
}

func (c *DeleteDream) Execute(ctx context.Context, req DeleteDreamRequest) (Empty, error) {
	dream, err := fetchOwnedDream(ctx, c.DreamFetcher, req.UserID, req.DreamID)
	if err != nil {
		return Empty{}, err
	}

	if err := c.DreamDeleter.DeleteDream(ctx, dream.ID); err != nil {
		return Empty{}, fmt.Errorf("deleting dream: %w", err)
	}
	if err := c.EmbeddingDeleter.DeleteDreamEmbedding(ctx, dream.OwnerID, dream.ID); err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "unable to delete dream embedding",
			"error", err, "dream_id", dream.ID)
	}
	return Empty{}, nil
}

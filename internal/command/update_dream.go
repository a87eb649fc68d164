package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"
)

type UpdateDreamRequest struct {
	UserID  string
	DreamID string
	Title   string
	Body    string
}

// UpdateDream replaces a dream's title and body. Changed content drops the
// stored embedding so the next backfill embeds the new text.
type UpdateDream struct {
	DreamFetcher     datasources.DreamFetcher
	ContentUpdater   datasources.DreamContentUpdater
	EmbeddingDeleter datasources.DreamEmbeddingDeleter
	Now              func() time.Time
}

func (c *UpdateDream) Execute(ctx context.Context, req UpdateDreamRequest) (domain.Dream, error) {
	dream, err := fetchOwnedDream(ctx, c.DreamFetcher, req.UserID, req.DreamID)
	if err != nil {
		return domain.Dream{}, err
	}

	input := domain.DreamInput{
		OwnerID: dream.OwnerID,
		Title:   plainText(req.Title),
		Body:    plainText(req.Body),
	}
	if err := input.Validate(); err != nil {
		return domain.Dream{}, err
	}
	if input.Title == dream.Title && input.Body == dream.Body {
		return dream, nil
	}

	updatedAt := nowFunc(c.Now)
	if err := c.ContentUpdater.UpdateDreamContent(ctx, dream.ID, input.Title, input.Body, updatedAt); err != nil {
		return domain.Dream{}, fmt.Errorf("updating dream: %w", err)
	}
	if err := c.EmbeddingDeleter.DeleteDreamEmbedding(ctx, dream.OwnerID, dream.ID); err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "unable to delete stale dream embedding",
			"error", err, "dream_id", dream.ID)
	}

	dream.Title = input.Title
	dream.Body = input.Body
	dream.UpdatedAt = updatedAt
	dream.Embedding = nil
	return dream, nil
}

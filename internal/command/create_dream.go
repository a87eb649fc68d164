package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"
)

type CreateDreamRequest struct {
	OwnerID string
	Title   string
	Body    string
}

// CreateDream stores a new dream and then embeds it on a best-effort basis.
type CreateDream struct {
	DreamCreator datasources.DreamCreator
	Backfill     Command[BackfillEmbeddingsRequest, BackfillEmbeddingsResult]
	Now          func() time.Time
}

func NewCreateDream(
	dreamCreator datasources.DreamCreator,
	backfill Command[BackfillEmbeddingsRequest, BackfillEmbeddingsResult],
) *CreateDream {
	return &CreateDream{
		DreamCreator: dreamCreator,
		Backfill:     backfill,
		Now:          time.Now,
	}
}

func (c *CreateDream) Execute(ctx context.Context, req CreateDreamRequest) (domain.Dream, error) {
	input := domain.DreamInput{
		OwnerID: req.OwnerID,
		Title:   plainText(req.Title),
		Body:    plainText(req.Body),
	}
	if err := input.Validate(); err != nil {
		return domain.Dream{}, err
	}

	dream := domain.Dream{
		ID:        uuid.New().String(),
		OwnerID:   input.OwnerID,
		Title:     input.Title,
		Body:      input.Body,
		CreatedAt: nowFunc(c.Now),
		Symbols:   []string{},
		Themes:    []string{},
	}
	if err := c.DreamCreator.CreateDream(ctx, dream); err != nil {
		return domain.Dream{}, fmt.Errorf("creating dream: %w", err)
	}

	backfilled, err := c.Backfill.Execute(ctx, BackfillEmbeddingsRequest{
		OwnerID: dream.OwnerID,
		Dreams:  []domain.Dream{dream},
	})
	if err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "unable to embed new dream",
			"error", err, "dream_id", dream.ID)
		return dream, nil
	}
	if len(backfilled.Dreams) == 1 {
		dream = backfilled.Dreams[0]
	}
	return dream, nil
}

package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"
)

type EnsureDreamEmbeddingsRequest struct {
	OwnerID string
}

// EnsureDreamEmbeddings loads all of an owner's dreams, attaches stored
// embeddings and backfills the rest. Dreams are returned newest first.
// An unreachable embedding store only costs extra embedding requests.
type EnsureDreamEmbeddings struct {
	DreamLister      datasources.DreamsByOwnerLister
	EmbeddingFetcher datasources.DreamEmbeddingFetcher
	Backfill         Command[BackfillEmbeddingsRequest, BackfillEmbeddingsResult]
}

func NewEnsureDreamEmbeddings(
	dreamLister datasources.DreamsByOwnerLister,
	embeddingFetcher datasources.DreamEmbeddingFetcher,
	backfill Command[BackfillEmbeddingsRequest, BackfillEmbeddingsResult],
) *EnsureDreamEmbeddings {
	return &EnsureDreamEmbeddings{
		DreamLister:      dreamLister,
		EmbeddingFetcher: embeddingFetcher,
		Backfill:         backfill,
	}
}

func (c *EnsureDreamEmbeddings) Execute(
	ctx context.Context,
	req EnsureDreamEmbeddingsRequest,
) (BackfillEmbeddingsResult, error) {
	if req.OwnerID == "" {
		return BackfillEmbeddingsResult{Dreams: []domain.Dream{}}, nil
	}

	dreams, err := c.DreamLister.ListDreamsByOwner(ctx, req.OwnerID, 1, 0)
	if err != nil {
		return BackfillEmbeddingsResult{}, fmt.Errorf("listing dreams: %w", err)
	}
	if len(dreams) == 0 {
		return BackfillEmbeddingsResult{Dreams: []domain.Dream{}}, nil
	}

	ids := make([]string, 0, len(dreams))
	for _, d := range dreams {
		ids = append(ids, d.ID)
	}
	embeddings, err := c.EmbeddingFetcher.FetchDreamEmbeddings(ctx, req.OwnerID, ids)
	if err != nil {
		// Treat every dream as unembedded; the backfill re-embeds them.
		domain.LoggerFromContext(ctx).WarnContext(ctx,
			"unable to fetch stored dream embeddings", "owner_id", req.OwnerID, "error", err)
		embeddings = map[string][]float32{}
	}
	for i := range dreams {
		if embedding, ok := embeddings[dreams[i].ID]; ok {
			dreams[i].Embedding = embedding
		}
	}

	result, err := c.Backfill.Execute(ctx, BackfillEmbeddingsRequest{
		OwnerID: req.OwnerID,
		Dreams:  dreams,
	})
	if err != nil {
		return BackfillEmbeddingsResult{}, fmt.Errorf("backfilling embeddings: %w", err)
	}
	return result, nil
}

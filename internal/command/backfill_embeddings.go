package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"
)

// DefaultEmbedTimeout bounds a single request to the embedding service.
const DefaultEmbedTimeout = 30 * time.Second

type BackfillEmbeddingsRequest struct {
	OwnerID string
	Dreams  []domain.Dream
}

type BackfillEmbeddingsResult struct {
	// Dreams is the input with any new embeddings attached, in input order.
	Dreams   []domain.Dream
	Embedded int
	Skipped  int
	Failed   int
}

// BackfillEmbeddings embeds dreams that have no vector yet and persists the
// result. Failures are logged and skipped; they never fail the batch.
type BackfillEmbeddings struct {
	Embedder        datasources.Embedder
	EmbeddingWriter datasources.DreamEmbeddingWriter
	EmbedTimeout    time.Duration
}

func NewBackfillEmbeddings(
	embedder datasources.Embedder,
	embeddingWriter datasources.DreamEmbeddingWriter,
	embedTimeout time.Duration,
) *BackfillEmbeddings {
	return &BackfillEmbeddings{
		Embedder:        embedder,
		EmbeddingWriter: embeddingWriter,
		EmbedTimeout:    embedTimeout,
	}
}

func (c *BackfillEmbeddings) Execute(
	ctx context.Context,
	req BackfillEmbeddingsRequest,
) (BackfillEmbeddingsResult, error) {
	logger := domain.LoggerFromContext(ctx)

	result := BackfillEmbeddingsResult{
		Dreams: make([]domain.Dream, len(req.Dreams)),
	}
	copy(result.Dreams, req.Dreams)

	for i := range result.Dreams {
		dream := &result.Dreams[i]
		if dream.HasEmbedding() {
			continue
		}

		text := dream.EmbeddingText()
		if text == "" {
			result.Skipped++
			continue
		}

		embedding, err := c.embed(ctx, text)
		if err != nil {
			logger.WarnContext(ctx, "unable to embed dream, skipping",
				"error", err, "dream_id", dream.ID, "owner_id", req.OwnerID)
			result.Failed++
			continue
		}

		if err := c.EmbeddingWriter.SetDreamEmbedding(ctx, req.OwnerID, dream.ID, embedding); err != nil {
			logger.WarnContext(ctx, "unable to store dream embedding, skipping",
				"error", err, "dream_id", dream.ID, "owner_id", req.OwnerID)
			result.Failed++
			continue
		}

		dream.Embedding = embedding
		result.Embedded++
	}

	if result.Embedded > 0 || result.Failed > 0 {
		logger.InfoContext(ctx, "embedding backfill finished",
			"owner_id", req.OwnerID,
			"embedded", result.Embedded,
			"skipped", result.Skipped,
			"failed", result.Failed)
	}
	return result, nil
}

func (c *BackfillEmbeddings) embed(ctx context.Context, text string) ([]float32, error) {
	timeout := c.EmbedTimeout
	if timeout <= 0 {
		timeout = DefaultEmbedTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	embedding, err := c.Embedder.EmbedText(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embedding text: %w", err)
	}
	if len(embedding) == 0 {
		return nil, fmt.Errorf("embedding service returned no vector")
	}
	return embedding, nil
}

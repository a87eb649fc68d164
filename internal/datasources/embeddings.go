package datasources

import "context"

// EmbeddingRepository combines all embedding storage operations.
type EmbeddingRepository interface {
	DreamEmbeddingFetcher
	DreamEmbeddingWriter
	DreamEmbeddingDeleter
}

// DreamEmbeddingFetcher returns the stored vectors for the given dreams of one
// owner, keyed by dream ID. Dreams without a stored vector are absent.
type DreamEmbeddingFetcher interface {
	FetchDreamEmbeddings(ctx context.Context, ownerID string, dreamIDs []string) (map[string][]float32, error)
}

type DreamEmbeddingWriter interface {
	SetDreamEmbedding(ctx context.Context, ownerID, dreamID string, embedding []float32) error
}

type DreamEmbeddingDeleter interface {
	DeleteDreamEmbedding(ctx context.Context, ownerID, dreamID string) error
}

// NullEmbeddingRepository stores nothing.
type NullEmbeddingRepository struct{}

var _ EmbeddingRepository = NullEmbeddingRepository{}

func (NullEmbeddingRepository) FetchDreamEmbeddings(
	_ context.Context,
	_ string,
	_ []string,
) (map[string][]float32, error) {
	return map[string][]float32{}, nil
}

func (NullEmbeddingRepository) SetDreamEmbedding(_ context.Context, _, _ string, _ []float32) error {
	return nil
}

func (NullEmbeddingRepository) DeleteDreamEmbedding(_ context.Context, _, _ string) error {
	return nil
}

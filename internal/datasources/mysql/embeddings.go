package mysql

import (
	"context"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/dream-journal/internal/domain"
)

// FetchDreamEmbeddings reads vectors stored alongside the dreams.
func (r *Repository) FetchDreamEmbeddings(
	ctx context.Context,
	ownerID string,
	dreamIDs []string,
) (map[string][]float32, error) {
	result := make(map[string][]float32, len(dreamIDs))
	if len(dreamIDs) == 0 {
		return result, nil
	}

	sb := sqlbuilder.Select("id", "embedding")
	sb.From("dreams")
	sb.Where(
		sb.Equal("owner_id", ownerID),
		sb.In("id", sqlbuilder.Flatten(dreamIDs)...),
		sb.IsNotNull("embedding"),
	)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching dream embeddings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scanning dream embedding: %w", err)
		}
		addEmbedding(ctx, result, id, raw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dream embeddings: %w", err)
	}

	return result, nil
}

// addEmbedding decodes raw into result. A blob that does not decode is left
// out, so the dream reads as unembedded and gets embedded again.
func addEmbedding(ctx context.Context, result map[string][]float32, dreamID string, raw []byte) {
	vector, err := bytesToFloat32Slice(raw)
	if err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx,
			"skipping undecodable dream embedding", "dream_id", dreamID, "error", err)
		return
	}
	if len(vector) > 0 {
		result[dreamID] = vector
	}
}

func (r *Repository) SetDreamEmbedding(ctx context.Context, ownerID, dreamID string, embedding []float32) error {
	return r.updateEmbedding(ctx, ownerID, dreamID, float32SliceToBytes(embedding))
}

func (r *Repository) DeleteDreamEmbedding(ctx context.Context, ownerID, dreamID string) error {
	return r.updateEmbedding(ctx, ownerID, dreamID, nil)
}

func (r *Repository) updateEmbedding(ctx context.Context, ownerID, dreamID string, raw []byte) error {
	ub := sqlbuilder.NewUpdateBuilder()
	ub.Update("dreams")
	ub.Set(ub.Assign("embedding", raw))
	ub.Where(
		ub.Equal("id", dreamID),
		ub.Equal("owner_id", ownerID),
	)

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("storing embedding for dream [%s]: %w", dreamID, err)
	}
	return nil
}

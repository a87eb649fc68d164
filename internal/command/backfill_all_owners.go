package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"
)

// BackfillAllOwnersRequest limits the run to one owner when OwnerID is set.
type BackfillAllOwnersRequest struct {
	OwnerID string
}

type BackfillAllOwnersResult struct {
	Owners        int
	OwnerFailures int
	Embedded      int
	Skipped       int
	Failed        int
}

// BackfillAllOwners runs the embedding backfill for every owner with dreams,
// continuing past owners that fail.
type BackfillAllOwners struct {
	OwnerLister datasources.DreamOwnerLister
	Ensure      Command[EnsureDreamEmbeddingsRequest, BackfillEmbeddingsResult]
}

func NewBackfillAllOwners(
	ownerLister datasources.DreamOwnerLister,
	ensure Command[EnsureDreamEmbeddingsRequest, BackfillEmbeddingsResult],
) *BackfillAllOwners {
	return &BackfillAllOwners{
		OwnerLister: ownerLister,
		Ensure:      ensure,
	}
}

func (c *BackfillAllOwners) Execute(
	ctx context.Context,
	req BackfillAllOwnersRequest,
) (BackfillAllOwnersResult, error) {
	logger := domain.LoggerFromContext(ctx)

	owners := []string{req.OwnerID}
	if req.OwnerID == "" {
		var err error
		owners, err = c.OwnerLister.ListDreamOwners(ctx)
		if err != nil {
			return BackfillAllOwnersResult{}, fmt.Errorf("listing dream owners: %w", err)
		}
	}

	if len(owners) == 0 {
		logger.InfoContext(ctx, "no dream owners to backfill")
		return BackfillAllOwnersResult{}, nil
	}
	logger.InfoContext(ctx, "starting embedding backfill", "owner_count", len(owners))

	var result BackfillAllOwnersResult
	for _, ownerID := range owners {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result.Owners++
		ownerResult, err := c.Ensure.Execute(ctx, EnsureDreamEmbeddingsRequest{OwnerID: ownerID})
		if err != nil {
			logger.WarnContext(ctx, "unable to backfill embeddings for owner, skipping",
				"error", err, "owner_id", ownerID)
			result.OwnerFailures++
			continue
		}
		result.Embedded += ownerResult.Embedded
		result.Skipped += ownerResult.Skipped
		result.Failed += ownerResult.Failed
	}

	logger.InfoContext(ctx, "embedding backfill complete",
		"owner_count", result.Owners,
		"owner_failures", result.OwnerFailures,
		"embedded", result.Embedded,
		"failed", result.Failed)

	return result, nil
}

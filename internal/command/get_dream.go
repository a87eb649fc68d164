package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"
)

type GetDreamRequest struct {
	UserID  string
	DreamID string
}

// GetDream returns a dream its owner or a user it was shared with may read.
type GetDream struct {
	DreamFetcher datasources.DreamFetcher
}

func (c *GetDream) Execute(ctx context.Context, req GetDreamRequest) (domain.Dream, error) {
	dream, err := c.DreamFetcher.FetchDream(ctx, req.DreamID)
	if err != nil {
		if errors.Is(err, datasources.ErrNotFound) {
			return domain.Dream{}, err
		}
		return domain.Dream{}, fmt.Errorf("fetching dream: %w", err)
	}
	if !dream.ReadableBy(req.UserID) {
		return domain.Dream{}, ErrForbidden
	}
	return dream, nil
}

// fetchOwnedDream loads a dream the caller owns.
func fetchOwnedDream(
	ctx context.Context,
	fetcher datasources.DreamFetcher,
	userID, dreamID string,
) (domain.Dream, error) {
	dream, err := fetcher.FetchDream(ctx, dreamID)
	if err != nil {
		if errors.Is(err, datasources.ErrNotFound) {
			return domain.Dream{}, err
		}
		return domain.Dream{}, fmt.Errorf("fetching dream: %w", err)
	}
	if userID == "" || dream.OwnerID != userID {
		return domain.Dream{}, ErrForbidden
	}
	return dream, nil
}

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/jbeshir/dream-journal/internal/datasources"
)

type SetDreamSharesRequest struct {
	UserID  string
	DreamID string
	UserIDs []string
}

// SetDreamShares replaces the users a dream is shared with and returns the
// stored list.
type SetDreamShares struct {
	DreamFetcher datasources.DreamFetcher
	SharesSetter datasources.DreamSharesSetter
}

func (c *SetDreamShares) Execute(ctx context.Context, req SetDreamSharesRequest) ([]string, error) {
	dream, err := fetchOwnedDream(ctx, c.DreamFetcher, req.UserID, req.DreamID)
	if err != nil {
		return nil, err
	}

	shares := normaliseShares(req.UserIDs, dream.OwnerID)
	if err := c.SharesSetter.SetDreamShares(ctx, dream.ID, shares); err != nil {
		return nil, fmt.Errorf("setting dream shares: %w", err)
	}
	return shares, nil
}

func normaliseShares(userIDs []string, ownerID string) []string {
	seen := make(map[string]struct{}, len(userIDs))
	shares := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		id = strings.TrimSpace(id)
		if id == "" || id == ownerID {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		shares = append(shares, id)
	}
	return shares
}

package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"
)

type ListDreamsRequest struct {
	OwnerID  string
	Page     int
	PageSize int
}

type ListDreams struct {
	DreamLister datasources.DreamsByOwnerLister
}

func (c *ListDreams) Execute(ctx context.Context, req ListDreamsRequest) ([]domain.Dream, error) {
	dreams, err := c.DreamLister.ListDreamsByOwner(ctx, req.OwnerID, req.Page, req.PageSize)
	if err != nil {
		return nil, fmt.Errorf("listing dreams: %w", err)
	}
	if dreams == nil {
		dreams = []domain.Dream{}
	}
	return dreams, nil
}

type ListSharedDreamsRequest struct {
	UserID string
	// FromOwnerID restricts results to one owner when set.
	FromOwnerID string
}

// ListSharedDreams lists dreams other users have shared with the caller.
type ListSharedDreams struct {
	SharedLister datasources.DreamsSharedWithLister
}

func (c *ListSharedDreams) Execute(ctx context.Context, req ListSharedDreamsRequest) ([]domain.Dream, error) {
	dreams, err := c.SharedLister.ListDreamsSharedWith(ctx, req.UserID, req.FromOwnerID)
	if err != nil {
		return nil, fmt.Errorf("listing shared dreams: %w", err)
	}

	visible := make([]domain.Dream, 0, len(dreams))
	for _, d := range dreams {
		if d.OwnerID != req.UserID {
			visible = append(visible, d)
		}
	}
	return visible, nil
}

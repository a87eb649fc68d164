package controller

import (
	"net/http"
	"time"

	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"
)

// APITokenListItem describes a token without its secret.
type APITokenListItem struct {
	ID         string     `json:"id"`
	Prefix     string     `json:"prefix"`
	Name       *string    `json:"name,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	Revoked    bool       `json:"revoked"`
	Active     bool       `json:"active"`
}

type APITokenListResponse struct {
	Data []APITokenListItem `json:"data"`
}

func newAPITokenListItem(token domain.APIToken, at time.Time) APITokenListItem {
	return APITokenListItem{
		ID:         token.ID,
		Prefix:     token.Prefix,
		Name:       token.Name,
		CreatedAt:  token.CreatedAt,
		LastUsedAt: token.LastUsedAt,
		ExpiresAt:  token.ExpiresAt,
		Revoked:    token.RevokedAt != nil,
		Active:     token.IsActiveAt(at),
	}
}

// APITokenList serves GET /v1/tokens, newest first, including revoked and
// expired tokens.
type APITokenList struct {
	TokenLister datasources.UserAPITokenLister
	Now         func() time.Time
}

func (c APITokenList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	tokens, err := c.TokenLister.ListUserAPITokens(ctx, userID)
	if err != nil {
		writeCommandError(ctx, w, "unable to list API tokens", err)
		return
	}

	at := now(c.Now)
	resp := APITokenListResponse{Data: make([]APITokenListItem, len(tokens))}
	for i, token := range tokens {
		resp.Data[i] = newAPITokenListItem(token, at)
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

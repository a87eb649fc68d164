package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jbeshir/dream-journal/internal/command"
	"github.com/jbeshir/dream-journal/internal/domain"
)

// APITokenCreateRequest is the JSON request body for creating a token.
type APITokenCreateRequest struct {
	Name          string `json:"name,omitempty"`
	ExpiresInDays int    `json:"expires_in_days,omitempty"`
}

// APITokenCreateResponse is the JSON response for a created token.
type APITokenCreateResponse struct {
	ID        string     `json:"id"`
	Token     string     `json:"token"`
	Prefix    string     `json:"prefix"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// APITokenCreate handles POST /v1/tokens to create a new API token.
type APITokenCreate struct {
	CreateCmd command.Command[command.CreateAPITokenRequest, command.CreateAPITokenResponse]
}

func (c APITokenCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var reqBody APITokenCreateRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
			logger.ErrorContext(ctx, "unable to parse request body", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}
	if reqBody.ExpiresInDays < 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	req := command.CreateAPITokenRequest{
		UserID:    userID,
		ExpiresIn: time.Duration(reqBody.ExpiresInDays) * 24 * time.Hour,
	}
	if reqBody.Name != "" {
		req.Name = &reqBody.Name
	}

	result, err := c.CreateCmd.Execute(ctx, req)
	if err != nil {
		writeCommandError(ctx, w, "unable to create API token", err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, APITokenCreateResponse{
		ID:        result.Token.ID,
		Token:     result.FullToken,
		Prefix:    result.Token.Prefix,
		ExpiresAt: result.Token.ExpiresAt,
	})
}

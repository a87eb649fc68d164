package controller

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"
)

// APITokenRevoke serves DELETE /v1/tokens/{token_id}. Tokens owned by
// someone else, or already revoked, are reported as missing.
type APITokenRevoke struct {
	TokenRevoker datasources.APITokenRevoker
	Now          func() time.Time
}

func (c APITokenRevoke) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	tokenID := mux.Vars(r)["token_id"]
	if tokenID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := c.TokenRevoker.RevokeAPIToken(ctx, tokenID, userID, now(c.Now).UTC()); err != nil {
		writeCommandError(ctx, w, "unable to revoke API token "+tokenID, err)
		return
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "revoked API token", "token_id", tokenID)
	w.WriteHeader(http.StatusNoContent)
}

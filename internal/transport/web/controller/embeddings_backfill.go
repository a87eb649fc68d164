package controller

import (
	"net/http"

	"github.com/jbeshir/dream-journal/internal/command"
	"github.com/jbeshir/dream-journal/internal/domain"
)

// EmbeddingsBackfill handles POST /v1/embeddings/backfill, embedding any of
// the caller's dreams that are missing a vector.
type EmbeddingsBackfill struct {
	EnsureCmd command.Command[command.EnsureDreamEmbeddingsRequest, command.BackfillEmbeddingsResult]
}

type EmbeddingsBackfillResponse struct {
	Dreams   int `json:"dreams"`
	Embedded int `json:"embedded"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

func (c EmbeddingsBackfill) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := c.EnsureCmd.Execute(ctx, command.EnsureDreamEmbeddingsRequest{
		OwnerID: domain.UserIDFromContext(ctx),
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to backfill embeddings", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, EmbeddingsBackfillResponse{
		Dreams:   len(result.Dreams),
		Embedded: result.Embedded,
		Skipped:  result.Skipped,
		Failed:   result.Failed,
	})
}

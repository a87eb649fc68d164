package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/dream-journal/internal/command"
	"github.com/jbeshir/dream-journal/internal/domain"
)

type SimilarDreamsList struct {
	SimilarCmd command.Command[command.ListSimilarDreamsRequest, []domain.SimilarDream]
}

type SimilarDreamsListResponse struct {
	Data []domain.SimilarDream `json:"data"`
}

func (c SimilarDreamsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	dreamID := mux.Vars(r)["dream_id"]
	logger := domain.LoggerFromContext(r.Context()).With("dream_id", dreamID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	limit, err := parseLimit(r.URL.Query())
	if err != nil {
		logger.WarnContext(ctx, "unable to parse limit", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	similar, err := c.SimilarCmd.Execute(ctx, command.ListSimilarDreamsRequest{
		UserID:  domain.UserIDFromContext(ctx),
		DreamID: dreamID,
		Limit:   limit,
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to list similar dreams", err)
		return
	}
	if similar == nil {
		similar = []domain.SimilarDream{}
	}

	writeJSON(ctx, w, http.StatusOK, SimilarDreamsListResponse{Data: similar})
}

package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/dream-journal/internal/command"
	"github.com/jbeshir/dream-journal/internal/domain"
)

type DreamGet struct {
	GetCmd command.Command[command.GetDreamRequest, domain.Dream]
}

func (c DreamGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	dreamID := mux.Vars(r)["dream_id"]
	logger := domain.LoggerFromContext(r.Context()).With("dream_id", dreamID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	dream, err := c.GetCmd.Execute(ctx, command.GetDreamRequest{
		UserID:  domain.UserIDFromContext(ctx),
		DreamID: dreamID,
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to fetch dream", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, dream)
}

// DreamInterpret handles POST /v1/dreams/{dream_id}/interpret.
type DreamInterpret struct {
	InterpretCmd command.Command[command.InterpretDreamRequest, domain.Dream]
}

func (c DreamInterpret) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	dreamID := mux.Vars(r)["dream_id"]
	logger := domain.LoggerFromContext(r.Context()).With("dream_id", dreamID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	dream, err := c.InterpretCmd.Execute(ctx, command.InterpretDreamRequest{
		UserID:  domain.UserIDFromContext(ctx),
		DreamID: dreamID,
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to interpret dream", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, dream)
}

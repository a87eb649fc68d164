package controller

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/dream-journal/internal/command"
	"github.com/jbeshir/dream-journal/internal/domain"
)

// DreamWriteRequest is the JSON body for creating or updating a dream.
type DreamWriteRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// DreamCreate handles POST /v1/dreams.
type DreamCreate struct {
	CreateCmd command.Command[command.CreateDreamRequest, domain.Dream]
}

func (c DreamCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body DreamWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.WarnContext(ctx, "unable to parse request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	dream, err := c.CreateCmd.Execute(ctx, command.CreateDreamRequest{
		OwnerID: domain.UserIDFromContext(ctx),
		Title:   body.Title,
		Body:    body.Body,
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to create dream", err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, dream)
}

// DreamUpdate handles PUT /v1/dreams/{dream_id}.
type DreamUpdate struct {
	UpdateCmd command.Command[command.UpdateDreamRequest, domain.Dream]
}

func (c DreamUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	dreamID := mux.Vars(r)["dream_id"]
	logger := domain.LoggerFromContext(r.Context()).With("dream_id", dreamID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	var body DreamWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.WarnContext(ctx, "unable to parse request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	dream, err := c.UpdateCmd.Execute(ctx, command.UpdateDreamRequest{
		UserID:  domain.UserIDFromContext(ctx),
		DreamID: dreamID,
		Title:   body.Title,
		Body:    body.Body,
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to update dream", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, dream)
}

// DreamDelete handles DELETE /v1/dreams/{dream_id}.
type DreamDelete struct {
	DeleteCmd command.Command[command.DeleteDreamRequest, command.Empty]
}

func (c DreamDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	dreamID := mux.Vars(r)["dream_id"]
	logger := domain.LoggerFromContext(r.Context()).With("dream_id", dreamID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	if _, err := c.DeleteCmd.Execute(ctx, command.DeleteDreamRequest{
		UserID:  domain.UserIDFromContext(ctx),
		DreamID: dreamID,
	}); err != nil {
		writeCommandError(ctx, w, "unable to delete dream", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DreamSharesRequest is the JSON body for replacing a dream's share list.
type DreamSharesRequest struct {
	UserIDs []string `json:"user_ids"`
}

// DreamSharesSet handles PUT /v1/dreams/{dream_id}/shares.
type DreamSharesSet struct {
	SetSharesCmd command.Command[command.SetDreamSharesRequest, []string]
}

func (c DreamSharesSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	dreamID := mux.Vars(r)["dream_id"]
	logger := domain.LoggerFromContext(r.Context()).With("dream_id", dreamID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	var body DreamSharesRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.WarnContext(ctx, "unable to parse request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shares, err := c.SetSharesCmd.Execute(ctx, command.SetDreamSharesRequest{
		UserID:  domain.UserIDFromContext(ctx),
		DreamID: dreamID,
		UserIDs: body.UserIDs,
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to set dream shares", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, DreamSharesRequest{UserIDs: shares})
}

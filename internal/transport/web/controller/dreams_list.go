package controller

import (
	"net/http"

	"github.com/jbeshir/dream-journal/internal/command"
	"github.com/jbeshir/dream-journal/internal/domain"
)

type DreamsList struct {
	ListCmd command.Command[command.ListDreamsRequest, []domain.Dream]
}

type DreamsListResponse struct {
	Data     []domain.Dream     `json:"data"`
	Metadata DreamsListMetadata `json:"metadata"`
}

type DreamsListMetadata struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

func (c DreamsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		logger.WarnContext(ctx, "unable to parse pagination", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	dreams, err := c.ListCmd.Execute(ctx, command.ListDreamsRequest{
		OwnerID:  domain.UserIDFromContext(ctx),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to list dreams", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, DreamsListResponse{
		Data:     dreams,
		Metadata: DreamsListMetadata{Page: page, PageSize: pageSize},
	})
}

// SharedDreamsList handles GET /v1/dreams/shared.
type SharedDreamsList struct {
	ListCmd command.Command[command.ListSharedDreamsRequest, []domain.Dream]
}

func (c SharedDreamsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dreams, err := c.ListCmd.Execute(ctx, command.ListSharedDreamsRequest{
		UserID:      domain.UserIDFromContext(ctx),
		FromOwnerID: r.URL.Query().Get("from"),
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to list shared dreams", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, DreamsListResponse{Data: dreams})
}

package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/jbeshir/dream-journal/internal/command"
	cmdmocks "github.com/jbeshir/dream-journal/internal/command/mocks"
	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDreamsList_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		query      string
		wantReq    *command.ListDreamsRequest
		result     []domain.Dream
		cmdErr     error
		wantStatus int
		wantIDs    []string
	}{
		{
			name:       "defaults",
			wantReq:    &command.ListDreamsRequest{OwnerID: "user-1", Page: 1, PageSize: 50},
			result:     []domain.Dream{{ID: "d2"}, {ID: "d1"}},
			wantStatus: http.StatusOK,
			wantIDs:    []string{"d2", "d1"},
		},
		{
			name:       "explicit_page",
			query:      "?page=2&page_size=10",
			wantReq:    &command.ListDreamsRequest{OwnerID: "user-1", Page: 2, PageSize: 10},
			result:     []domain.Dream{},
			wantStatus: http.StatusOK,
			wantIDs:    []string{},
		},
		{
			name:       "page_size_too_large",
			query:      "?page_size=500",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "store_error",
			wantReq:    &command.ListDreamsRequest{OwnerID: "user-1", Page: 1, PageSize: 50},
			cmdErr:     errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := cmdmocks.NewMockCommand[command.ListDreamsRequest, []domain.Dream](t)
			if tc.wantReq != nil {
				cmd.EXPECT().Execute(mock.Anything, *tc.wantReq).Return(tc.result, tc.cmdErr)
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/dreams"+tc.query, nil)
			req = testContextWithUserID("user-1")(req)
			rec := httptest.NewRecorder()

			DreamsList{ListCmd: cmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}

			var resp DreamsListResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			ids := []string{}
			for _, d := range resp.Data {
				ids = append(ids, d.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
			assert.Equal(t, tc.wantReq.Page, resp.Metadata.Page)
		})
	}
}

func TestSharedDreamsList_ServeHTTP(t *testing.T) {
	cmd := cmdmocks.NewMockCommand[command.ListSharedDreamsRequest, []domain.Dream](t)
	cmd.EXPECT().
		Execute(mock.Anything, command.ListSharedDreamsRequest{UserID: "user-1", FromOwnerID: "friend"}).
		Return([]domain.Dream{{ID: "d9", OwnerID: "friend"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dreams/shared?from=friend", nil)
	req = testContextWithUserID("user-1")(req)
	rec := httptest.NewRecorder()

	SharedDreamsList{ListCmd: cmd}.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp DreamsListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "d9", resp.Data[0].ID)
}

func TestDreamCreate_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		cmdResult  domain.Dream
		cmdErr     error
		skipCmd    bool
		wantStatus int
	}{
		{
			name:       "created",
			body:       `{"title":"Stairs","body":"Endless stairs."}`,
			cmdResult:  domain.Dream{ID: "d1", OwnerID: "user-1", Title: "Stairs", Body: "Endless stairs.", CreatedAt: testTime},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid_json",
			body:       `{"title":`,
			skipCmd:    true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "validation_error",
			body:       `{"title":"","body":""}`,
			cmdErr:     fmt.Errorf("%w: title is required", domain.ErrInvalidDream),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := cmdmocks.NewMockCommand[command.CreateDreamRequest, domain.Dream](t)
			if !tc.skipCmd {
				cmd.EXPECT().Execute(mock.Anything, mock.MatchedBy(func(req command.CreateDreamRequest) bool {
					return req.OwnerID == "user-1"
				})).Return(tc.cmdResult, tc.cmdErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/dreams", strings.NewReader(tc.body))
			req = testContextWithUserID("user-1")(req)
			rec := httptest.NewRecorder()

			DreamCreate{CreateCmd: cmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			switch tc.wantStatus {
			case http.StatusCreated:
				var dream domain.Dream
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&dream))
				assert.Equal(t, "d1", dream.ID)
				assert.Equal(t, "Stairs", dream.Title)
			case http.StatusBadRequest:
				if tc.cmdErr != nil {
					var resp ErrorResponse
					require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
					assert.Contains(t, resp.Error, "title is required")
				}
			}
		})
	}
}

func TestDreamGet_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		cmdErr     error
		wantStatus int
	}{
		{name: "found", wantStatus: http.StatusOK},
		{name: "missing", cmdErr: datasources.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "not_shared_with_caller", cmdErr: command.ErrForbidden, wantStatus: http.StatusNotFound},
		{name: "store_error", cmdErr: errors.New("database error"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := cmdmocks.NewMockCommand[command.GetDreamRequest, domain.Dream](t)
			cmd.EXPECT().
				Execute(mock.Anything, command.GetDreamRequest{UserID: "user-1", DreamID: "d1"}).
				Return(domain.Dream{ID: "d1", Title: "Stairs"}, tc.cmdErr)

			req := httptest.NewRequest(http.MethodGet, "/v1/dreams/d1", nil)
			req = testContextWithUserID("user-1")(req)
			req = mux.SetURLVars(req, map[string]string{"dream_id": "d1"})
			rec := httptest.NewRecorder()

			DreamGet{GetCmd: cmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				var dream domain.Dream
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&dream))
				assert.Equal(t, "Stairs", dream.Title)
				assert.NotContains(t, rec.Body.String(), "embedding")
			}
		})
	}
}

func TestDreamUpdate_ServeHTTP(t *testing.T) {
	cmd := cmdmocks.NewMockCommand[command.UpdateDreamRequest, domain.Dream](t)
	cmd.EXPECT().Execute(mock.Anything, command.UpdateDreamRequest{
		UserID:  "user-1",
		DreamID: "d1",
		Title:   "New title",
		Body:    "New body",
	}).Return(domain.Dream{ID: "d1", Title: "New title"}, nil)

	req := httptest.NewRequest(http.MethodPut, "/v1/dreams/d1", strings.NewReader(`{"title":"New title","body":"New body"}`))
	req = testContextWithUserID("user-1")(req)
	req = mux.SetURLVars(req, map[string]string{"dream_id": "d1"})
	rec := httptest.NewRecorder()

	DreamUpdate{UpdateCmd: cmd}.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDreamDelete_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		cmdErr     error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "not_owner", cmdErr: command.ErrForbidden, wantStatus: http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := cmdmocks.NewMockCommand[command.DeleteDreamRequest, command.Empty](t)
			cmd.EXPECT().
				Execute(mock.Anything, command.DeleteDreamRequest{UserID: "user-1", DreamID: "d1"}).
				Return(command.Empty{}, tc.cmdErr)

			req := httptest.NewRequest(http.MethodDelete, "/v1/dreams/d1", nil)
			req = testContextWithUserID("user-1")(req)
			req = mux.SetURLVars(req, map[string]string{"dream_id": "d1"})
			rec := httptest.NewRecorder()

			DreamDelete{DeleteCmd: cmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestDreamSharesSet_ServeHTTP(t *testing.T) {
	cmd := cmdmocks.NewMockCommand[command.SetDreamSharesRequest, []string](t)
	cmd.EXPECT().Execute(mock.Anything, command.SetDreamSharesRequest{
		UserID:  "user-1",
		DreamID: "d1",
		UserIDs: []string{"friend", "friend", "user-1"},
	}).Return([]string{"friend"}, nil)

	req := httptest.NewRequest(http.MethodPut, "/v1/dreams/d1/shares",
		strings.NewReader(`{"user_ids":["friend","friend","user-1"]}`))
	req = testContextWithUserID("user-1")(req)
	req = mux.SetURLVars(req, map[string]string{"dream_id": "d1"})
	rec := httptest.NewRecorder()

	DreamSharesSet{SetSharesCmd: cmd}.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp DreamSharesRequest
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []string{"friend"}, resp.UserIDs)
}

func TestDreamInterpret_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		cmdErr     error
		wantStatus int
	}{
		{name: "interpreted", wantStatus: http.StatusOK},
		{name: "malformed_answer", cmdErr: command.ErrMalformedGeneration, wantStatus: http.StatusBadGateway},
		{name: "generator_disabled", cmdErr: datasources.ErrGeneratorDisabled, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := cmdmocks.NewMockCommand[command.InterpretDreamRequest, domain.Dream](t)
			cmd.EXPECT().
				Execute(mock.Anything, command.InterpretDreamRequest{UserID: "user-1", DreamID: "d1"}).
				Return(domain.Dream{ID: "d1", Symbols: []string{"stairs"}}, tc.cmdErr)

			req := httptest.NewRequest(http.MethodPost, "/v1/dreams/d1/interpret", nil)
			req = testContextWithUserID("user-1")(req)
			req = mux.SetURLVars(req, map[string]string{"dream_id": "d1"})
			rec := httptest.NewRecorder()

			DreamInterpret{InterpretCmd: cmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

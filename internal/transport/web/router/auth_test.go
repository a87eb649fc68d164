package router

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jbeshir/dream-journal/internal/command"
	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/datasources/mocks"
	"github.com/jbeshir/dream-journal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

// echoUser writes the authenticated user and method.
var echoUser = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	_, _ = w.Write([]byte(domain.UserIDFromContext(ctx) + "/" + string(domain.AuthMethodFromContext(ctx))))
})

func TestNewAuthMiddleware(t *testing.T) {
	skip := AuthValidator(func(*http.Request) (*AuthResult, error) { return nil, nil })
	accept := AuthValidator(func(*http.Request) (*AuthResult, error) {
		return &AuthResult{UserID: "user-1", Method: domain.AuthMethodAPIToken}, nil
	})
	reject := AuthValidator(func(*http.Request) (*AuthResult, error) { return nil, errors.New("bad token") })

	cases := []struct {
		name       string
		validators []AuthValidator
		wantStatus int
		wantBody   string
	}{
		{name: "no_validators_is_anonymous", wantStatus: http.StatusOK, wantBody: "/"},
		{name: "skips_non_matching", validators: []AuthValidator{skip, accept}, wantStatus: http.StatusOK, wantBody: "user-1/api_token"},
		{name: "rejects", validators: []AuthValidator{reject, accept}, wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(testContext())
			rec := httptest.NewRecorder()

			NewAuthMiddleware(tc.validators)(echoUser).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.Equal(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRequireAuthMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(testContext())
	rec := httptest.NewRecorder()

	requireAuthMiddleware(echoUser).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"authentication required"}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil).
		WithContext(domain.ContextWithUserID(testContext(), "user-1"))
	rec = httptest.NewRecorder()

	requireAuthMiddleware(echoUser).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewAPITokenValidator(t *testing.T) {
	const fullToken = command.APITokenPrefix + "0123456789abcdef"
	expired := testTime.Add(-time.Minute)

	cases := []struct {
		name       string
		header     string
		token      domain.APIToken
		getErr     error
		skipGet    bool
		wantResult bool
		wantErr    bool
	}{
		{name: "other_scheme", header: "Bearer auth0|jwt", skipGet: true},
		{name: "no_header", skipGet: true},
		{name: "unknown_token", header: "Bearer " + fullToken, getErr: datasources.ErrNotFound, wantErr: true},
		{
			name:    "expired_token",
			header:  "Bearer " + fullToken,
			token:   domain.APIToken{ID: "t1", UserID: "user-1", ExpiresAt: &expired},
			wantErr: true,
		},
		{
			name:       "valid_token",
			header:     "Bearer " + fullToken,
			token:      domain.APIToken{ID: "t1", UserID: "user-1"},
			wantResult: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			getter := mocks.NewMockAPITokenByHashGetter(t)
			updater := mocks.NewMockAPITokenLastUsedUpdater(t)

			if !tc.skipGet {
				getter.EXPECT().
					GetAPITokenByHash(mock.Anything, command.HashAPIToken(fullToken)).
					Return(tc.token, tc.getErr)
			}

			updated := make(chan time.Time, 1)
			if tc.wantResult {
				updater.EXPECT().
					UpdateAPITokenLastUsed(mock.Anything, "t1", testTime).
					RunAndReturn(func(_ context.Context, _ string, usedAt time.Time) error {
						updated <- usedAt
						return nil
					})
			}

			validate := NewAPITokenValidator(testContext(), getter, updater, func() time.Time { return testTime })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			result, err := validate(req)

			if tc.wantErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			if !tc.wantResult {
				assert.Nil(t, result)
				return
			}

			require.NotNil(t, result)
			assert.Equal(t, "user-1", result.UserID)
			assert.Equal(t, domain.AuthMethodAPIToken, result.Method)

			select {
			case usedAt := <-updated:
				assert.Equal(t, testTime, usedAt)
			case <-time.After(time.Second):
				t.Fatal("last used time was not updated")
			}
		})
	}
}

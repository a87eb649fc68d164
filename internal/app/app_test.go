package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/datasources/memory"
	"github.com/jbeshir/dream-journal/internal/domain"
	"github.com/jbeshir/dream-journal/internal/transport/web/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keywordEmbedder places text on two axes by whether it mentions water or
// stairs.
type keywordEmbedder struct{}

func (keywordEmbedder) EmbedText(_ context.Context, text string) ([]float32, error) {
	var v [3]float32
	if strings.Contains(text, "water") {
		v[0] = 1
	}
	if strings.Contains(text, "stairs") {
		v[1] = 1
	}
	v[2] = 0.1
	return v[:], nil
}

func TestEnvironmentHelpers(t *testing.T) {
	ctx := context.Background()

	t.Setenv("TEST_LIST", " auth0, ,api_token ")
	assert.Equal(t, []string{"auth0", "api_token"}, MustGetEnvAsStrings(ctx, "TEST_LIST"))

	t.Setenv("TEST_TZ", "Europe/London")
	assert.Equal(t, "Europe/London", GetEnvOrLocation(ctx, "TEST_TZ", time.UTC).String())
	assert.Equal(t, time.UTC, GetEnvOrLocation(ctx, "TEST_TZ_UNSET", time.UTC))

	t.Setenv("TEST_TIMEOUT", "5s")
	assert.Equal(t, 5*time.Second, GetEnvOrDuration(ctx, "TEST_TIMEOUT", time.Minute))
	assert.Equal(t, time.Minute, GetEnvOrDuration(ctx, "TEST_TIMEOUT_UNSET", time.Minute))

	t.Setenv("TEST_INT", "1024")
	assert.Equal(t, 1024, GetEnvOrInt(ctx, "TEST_INT", 0))
	assert.Equal(t, 7, GetEnvOrInt(ctx, "TEST_INT_UNSET", 7))

	t.Setenv("TEST_BAD_TZ", "Nowhere/Place")
	assert.Panics(t, func() { MustGetEnvAsLocation(ctx, "TEST_BAD_TZ") })
	assert.Panics(t, func() { MustGetEnvAsString(ctx, "TEST_DEFINITELY_UNSET") })
}

func TestSetupDrivers(t *testing.T) {
	ctx := context.Background()

	t.Setenv("DATASET_DRIVER", "memory")
	stores, err := SetupStores(ctx)
	require.NoError(t, err)
	assert.IsType(t, &memory.Store{}, stores.Dataset)
	assert.Same(t, stores.Dataset, stores.Embeddings)

	t.Setenv("DATASET_DRIVER", "sqlite")
	_, err = SetupStores(ctx)
	assert.ErrorContains(t, err, "unknown dataset driver [sqlite]")

	t.Setenv("EMBEDDER_DRIVER", "null")
	embedder, err := SetupEmbedder(ctx)
	require.NoError(t, err)
	assert.Equal(t, datasources.NullEmbedder{}, embedder)

	generator, err := SetupGenerator(ctx)
	require.NoError(t, err)
	assert.Equal(t, datasources.NullTextGenerator{}, generator)

	t.Setenv("GENERATOR_DRIVER", "markov")
	_, err = SetupGenerator(ctx)
	assert.ErrorContains(t, err, "unknown generator driver [markov]")
}

func newTestAPI(t *testing.T) http.Handler {
	t.Helper()
	store := memory.New()
	cmds := NewCommands(store, store, keywordEmbedder{}, datasources.NullTextGenerator{}, DefaultCommandConfig())

	validator := func(r *http.Request) (*router.AuthResult, error) {
		user := r.Header.Get("X-Test-User")
		if user == "" {
			return nil, nil
		}
		return &router.AuthResult{UserID: user, Method: domain.AuthMethodAPIToken}, nil
	}

	handler, err := router.MakeRouter(
		cmds.Commands, store, "https://dreams.example.com", time.UTC, DefaultInsightCacheMaxAge,
		router.NewAuthMiddleware([]router.AuthValidator{validator}),
	)
	require.NoError(t, err)
	return handler
}

func doRequest(t *testing.T, h http.Handler, method, path, user string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if user != "" {
		req.Header.Set("X-Test-User", user)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAPI_SimilarDreams(t *testing.T) {
	h := newTestAPI(t)

	ids := map[string]string{}
	for title, body := range map[string]string{
		"Flooded library": "The shelves stood in water.",
		"Ocean":           "Warm water all around me.",
		"Tower":           "I kept climbing stairs.",
	} {
		rec := doRequest(t, h, http.MethodPost, "/v1/dreams", "alice", map[string]string{"title": title, "body": body})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var dream domain.Dream
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&dream))
		ids[title] = dream.ID
	}

	rec := doRequest(t, h, http.MethodGet, "/v1/dreams/"+ids["Flooded library"]+"/similar", "alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var similar struct {
		Data []domain.SimilarDream `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&similar))
	require.Len(t, similar.Data, 2)
	assert.Equal(t, ids["Ocean"], similar.Data[0].DreamID)
	assert.InDelta(t, 1.0, similar.Data[0].Similarity, 1e-6)
	assert.Equal(t, ids["Tower"], similar.Data[1].DreamID)

	rec = doRequest(t, h, http.MethodGet, "/v1/dreams/"+ids["Ocean"]+"/similar", "bob", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/v1/dreams/"+ids["Ocean"]+"/similar?limit=0", "alice", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/v1/stats/streaks", "alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var streaks domain.StreakStats
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&streaks))
	assert.Equal(t, 1, streaks.BestStreak)
}

func TestAPI_Authentication(t *testing.T) {
	h := newTestAPI(t)

	rec := doRequest(t, h, http.MethodGet, "/v1/dreams", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/v1/insights/daily", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "max-age=3600", rec.Header().Get("Cache-Control"))
}

func TestAPI_InterpretWithoutGenerator(t *testing.T) {
	h := newTestAPI(t)

	rec := doRequest(t, h, http.MethodPost, "/v1/dreams", "alice", map[string]string{"title": "Stairs", "body": "Endless stairs."})
	require.Equal(t, http.StatusCreated, rec.Code)
	var dream domain.Dream
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&dream))

	rec = doRequest(t, h, http.MethodPost, "/v1/dreams/"+dream.ID+"/interpret", "alice", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/v1/patterns/analysis", "alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Analysis domain.PatternAnalysis `json:"analysis"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Analysis.TotalDreams)
}

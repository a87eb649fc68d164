package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jbeshir/dream-journal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Requests(t *testing.T) {
	cases := []struct {
		name       string
		call       func(c *Client) (any, error)
		wantMethod string
		wantURI    string
		response   any
	}{
		{
			name:       "list_dreams",
			call:       func(c *Client) (any, error) { return c.ListDreams(t.Context(), 2, 10) },
			wantMethod: http.MethodGet,
			wantURI:    "/v1/dreams?page=2&page_size=10",
			response:   dreamsResponse{Data: []domain.Dream{{ID: "d1"}}},
		},
		{
			name:       "similar_with_limit",
			call:       func(c *Client) (any, error) { return c.GetSimilarDreams(t.Context(), "d1", 3) },
			wantMethod: http.MethodGet,
			wantURI:    "/v1/dreams/d1/similar?limit=3",
			response:   similarResponse{Data: []domain.SimilarDream{{DreamID: "d2", Similarity: 0.9}}},
		},
		{
			name:       "streaks_with_time_zone",
			call:       func(c *Client) (any, error) { return c.GetStreaks(t.Context(), "Europe/London") },
			wantMethod: http.MethodGet,
			wantURI:    "/v1/stats/streaks?tz=Europe%2FLondon",
			response:   domain.StreakStats{CurrentStreak: 2},
		},
		{
			name:       "interpret",
			call:       func(c *Client) (any, error) { return c.InterpretDream(t.Context(), "d1") },
			wantMethod: http.MethodPost,
			wantURI:    "/v1/dreams/d1/interpret",
			response:   domain.Dream{ID: "d1"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tc.wantMethod, r.Method)
				assert.Equal(t, tc.wantURI, r.URL.RequestURI())
				assert.Equal(t, "Bearer user_api|abc", r.Header.Get("Authorization"))
				_ = json.NewEncoder(w).Encode(tc.response)
			}))
			defer srv.Close()

			_, err := tc.call(NewClient(srv.URL+"/", "user_api|abc"))
			require.NoError(t, err)
		})
	}
}

func TestClient_CreateDream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"title": "Stairs", "body": "Endless stairs."}, body)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain.Dream{ID: "d1", Title: "Stairs"})
	}))
	defer srv.Close()

	dream, err := NewClient(srv.URL, "").CreateDream(t.Context(), "Stairs", "Endless stairs.")
	require.NoError(t, err)
	assert.Equal(t, "d1", dream.ID)
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"slow down"}` + "\n"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").GetPatterns(t.Context())
	require.Error(t, err)
	assert.Equal(t, `API error (status 429): {"error":"slow down"}`, err.Error())
}

package voyageai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_EmbedText(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		response string
		want     []float32
		wantErr  bool
	}{
		{
			name:     "success",
			status:   http.StatusOK,
			response: `{"data":[{"index":0,"embedding":[0.25,-0.5]}]}`,
			want:     []float32{0.25, -0.5},
		},
		{
			name:     "empty_data",
			status:   http.StatusOK,
			response: `{"data":[]}`,
			want:     nil,
		},
		{
			name:     "api_error",
			status:   http.StatusTooManyRequests,
			response: `{"detail":"rate limited"}`,
			wantErr:  true,
		},
		{
			name:     "bad_json",
			status:   http.StatusOK,
			response: `{`,
			wantErr:  true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got embeddingRequest
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/embeddings", r.URL.Path)
				assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.response))
			}))
			defer srv.Close()

			c := NewClient("key", "", 512)
			c.baseURL = srv.URL

			vec, err := c.EmbedText(context.Background(), "a dream")
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, vec)
			assert.Equal(t, []string{"a dream"}, got.Input)
			assert.Equal(t, DefaultModel, got.Model)
			assert.Equal(t, 512, got.OutputDimension)
		})
	}
}

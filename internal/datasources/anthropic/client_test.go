package anthropic

import (
	"strings"
	"testing"

	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageParams(t *testing.T) {
	cases := []struct {
		name            string
		req             datasources.GenerateRequest
		wantSystem      bool
		wantJSONHint    bool
		wantTemperature float64
	}{
		{
			name:            "plain",
			req:             datasources.GenerateRequest{SystemPrompt: "sys", UserPrompt: "user", Temperature: 0.6},
			wantSystem:      true,
			wantTemperature: 0.6,
		},
		{
			name:            "json_adds_hint",
			req:             datasources.GenerateRequest{SystemPrompt: "sys", UserPrompt: "user", Temperature: 0.7, JSON: true},
			wantSystem:      true,
			wantJSONHint:    true,
			wantTemperature: 0.7,
		},
		{
			name:            "no_system_prompt",
			req:             datasources.GenerateRequest{UserPrompt: "user", Temperature: 1.5},
			wantTemperature: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := messageParams("model-x", tc.req)

			assert.Equal(t, "model-x", string(params.Model))
			assert.Equal(t, int64(4096), params.MaxTokens)
			assert.InDelta(t, tc.wantTemperature, params.Temperature.Value, 0.0001)
			assert.Len(t, params.Messages, 1)

			if !tc.wantSystem {
				assert.Empty(t, params.System)
				return
			}
			require.Len(t, params.System, 1)
			assert.True(t, strings.HasPrefix(params.System[0].Text, "sys"))
			assert.Equal(t, tc.wantJSONHint, strings.Contains(params.System[0].Text, "JSON"))
		})
	}
}

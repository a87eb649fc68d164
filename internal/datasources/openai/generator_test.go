package openai

import (
	"testing"

	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatMessages(t *testing.T) {
	cases := []struct {
		name       string
		req        datasources.GenerateRequest
		wantSystem bool
	}{
		{
			name:       "with_system_prompt",
			req:        datasources.GenerateRequest{SystemPrompt: "You interpret dreams.", UserPrompt: "I was flying."},
			wantSystem: true,
		},
		{
			name:       "user_only",
			req:        datasources.GenerateRequest{UserPrompt: "I was flying."},
			wantSystem: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			messages := chatMessages(tc.req)

			last := messages[len(messages)-1]
			require.NotNil(t, last.OfUser)
			assert.Equal(t, tc.req.UserPrompt, last.OfUser.Content.OfString.Value)

			if tc.wantSystem {
				require.Len(t, messages, 2)
				require.NotNil(t, messages[0].OfSystem)
				assert.Equal(t, tc.req.SystemPrompt, messages[0].OfSystem.Content.OfString.Value)
			} else {
				assert.Len(t, messages, 1)
			}
		})
	}
}

func TestFloat64sToFloat32s(t *testing.T) {
	assert.Nil(t, float64sToFloat32s(nil))
	assert.Equal(t, []float32{0.5, -1}, float64sToFloat32s([]float64{0.5, -1}))
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("key", "", "", "")
	assert.Equal(t, DefaultEmbeddingModel, c.embeddingModel)
	assert.Equal(t, DefaultChatModel, c.chatModel)
}

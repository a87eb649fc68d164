// Package openai embeds dreams and generates interpretations through the
// OpenAI API.
package openai

import (
	"net/http"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	DefaultEmbeddingModel = "text-embedding-3-small"
	DefaultChatModel      = "gpt-4.1-mini"

	embeddingDimensions = 1536
)

type Client struct {
	client         *openai.Client
	embeddingModel string
	chatModel      string
}

// NewClient creates a client. Empty model names fall back to the defaults.
// A non-empty baseURL points the client at an OpenAI-compatible provider.
func NewClient(apiKey, embeddingModel, chatModel, baseURL string) *Client {
	if embeddingModel == "" {
		embeddingModel = DefaultEmbeddingModel
	}
	if chatModel == "" {
		chatModel = DefaultChatModel
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: 2 * time.Minute}),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)

	return &Client{
		client:         &client,
		embeddingModel: embeddingModel,
		chatModel:      chatModel,
	}
}

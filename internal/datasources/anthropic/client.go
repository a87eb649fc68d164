// Package anthropic generates interpretations and analyses through the
// Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/jbeshir/dream-journal/internal/datasources"
)

const DefaultModel = "claude-sonnet-4-20250514"

var _ datasources.TextGenerator = (*Client)(nil)

type Client struct {
	client anthropic.Client
	model  string
}

func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (c *Client) GenerateText(ctx context.Context, req datasources.GenerateRequest) (string, error) {
	message, err := c.client.Messages.New(ctx, messageParams(c.model, req))
	if err != nil {
		return "", fmt.Errorf("creating message: %w", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", errors.New("no text content in response")
}

func messageParams(model string, req datasources.GenerateRequest) anthropic.MessageNewParams {
	system := req.SystemPrompt
	if req.JSON {
		system += "\n\nRespond with a single JSON object and nothing else."
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   4096,
		Temperature: anthropic.Float(min(req.Temperature, 1)),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.UserPrompt)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}
	return params
}

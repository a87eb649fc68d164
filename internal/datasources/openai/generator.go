package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/packages/param"
)

var _ datasources.TextGenerator = (*Client)(nil)

func (c *Client) GenerateText(ctx context.Context, req datasources.GenerateRequest) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:       c.chatModel,
		Messages:    chatMessages(req),
		Temperature: param.NewOpt(req.Temperature),
	}
	if req.JSON {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("creating chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	choice := resp.Choices[0]
	if choice.Message.Refusal != "" {
		return "", fmt.Errorf("model refused: %s", choice.Message.Refusal)
	}
	return choice.Message.Content, nil
}

func chatMessages(req datasources.GenerateRequest) []openai.ChatCompletionMessageParamUnion {
	var messages []openai.ChatCompletionMessageParamUnion
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessageParamUnion{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: param.NewOpt(req.SystemPrompt),
				},
			},
		})
	}
	messages = append(messages, openai.ChatCompletionMessageParamUnion{
		OfUser: &openai.ChatCompletionUserMessageParam{
			Content: openai.ChatCompletionUserMessageParamContentUnion{
				OfString: param.NewOpt(req.UserPrompt),
			},
		},
	})
	return messages
}

package openai

import (
	"context"
	"fmt"

	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/openai/openai-go"
)

var _ datasources.Embedder = (*Client)(nil)

func (c *Client) EmbedText(ctx context.Context, text string) ([]float32, error) {
	resp, err := c.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model:          c.embeddingModel,
		Input:          openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: []string{text}},
		Dimensions:     openai.Int(embeddingDimensions),
		EncodingFormat: openai.EmbeddingNewParamsEncodingFormatFloat,
	})
	if err != nil {
		return nil, fmt.Errorf("creating embedding: %w", err)
	}

	for _, item := range resp.Data {
		if item.Index == 0 {
			return float64sToFloat32s(item.Embedding), nil
		}
	}
	return nil, nil
}

func float64sToFloat32s(values []float64) []float32 {
	if len(values) == 0 {
		return nil
	}
	out := make([]float32, len(values))
	for i, v := range values {
		out[i] = float32(v)
	}
	return out
}

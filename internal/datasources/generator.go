package datasources

import (
	"context"
	"errors"
)

// ErrGeneratorDisabled is returned by NullTextGenerator.
var ErrGeneratorDisabled = errors.New("text generation is not configured")

// GenerateRequest is a single-turn prompt for a text generation model.
type GenerateRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float64
	// JSON asks the model to answer with a single JSON object.
	JSON bool
}

// TextGenerator produces a completion for a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, req GenerateRequest) (string, error)
}

// NullTextGenerator refuses every request.
type NullTextGenerator struct{}

var _ TextGenerator = NullTextGenerator{}

func (NullTextGenerator) GenerateText(_ context.Context, _ GenerateRequest) (string, error) {
	return "", ErrGeneratorDisabled
}

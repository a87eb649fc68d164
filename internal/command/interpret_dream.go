package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"
)

// ErrMalformedGeneration is returned when a model answer cannot be parsed.
var ErrMalformedGeneration = errors.New("malformed generation")

const interpretTemperature = 0.7

type InterpretDreamRequest struct {
	UserID  string
	DreamID string
}

// InterpretDream asks the text generator for a reading of a dream and stores
// it along with the extracted symbols and themes. Dreams may be
// re-interpreted; the latest answer replaces the previous one.
type InterpretDream struct {
	DreamFetcher         datasources.DreamFetcher
	Generator            datasources.TextGenerator
	InterpretationSetter datasources.DreamInterpretationSetter
}

func (c *InterpretDream) Execute(ctx context.Context, req InterpretDreamRequest) (domain.Dream, error) {
	dream, err := fetchOwnedDream(ctx, c.DreamFetcher, req.UserID, req.DreamID)
	if err != nil {
		return domain.Dream{}, err
	}

	text := dream.EmbeddingText()
	if text == "" {
		return domain.Dream{}, fmt.Errorf("%w: dream has no text", domain.ErrInvalidDream)
	}

	raw, err := c.Generator.GenerateText(ctx, datasources.GenerateRequest{
		SystemPrompt: interpretDreamSystemPrompt,
		UserPrompt:   "Here is the dream text:\n\n\"" + text + "\"",
		Temperature:  interpretTemperature,
		JSON:         true,
	})
	if err != nil {
		return domain.Dream{}, fmt.Errorf("generating interpretation: %w", err)
	}

	interpretation, err := parseInterpretation(raw)
	if err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "unable to parse interpretation",
			"error", err, "dream_id", dream.ID)
		return domain.Dream{}, err
	}

	if err := c.InterpretationSetter.SetDreamInterpretation(ctx, dream.ID, interpretation); err != nil {
		return domain.Dream{}, fmt.Errorf("storing interpretation: %w", err)
	}

	dream.PsychInterpretation = interpretation.PsychInterpretation
	dream.MysticInterpretation = interpretation.MysticInterpretation
	dream.Symbols = interpretation.Symbols
	dream.Themes = interpretation.Themes
	return dream, nil
}

type generatedInterpretation struct {
	PsychInterpretation  string          `json:"psychInterpretation"`
	MysticInterpretation string          `json:"mysticInterpretation"`
	Symbols              json.RawMessage `json:"symbols"`
	Themes               json.RawMessage `json:"themes"`
}

func parseInterpretation(raw string) (domain.Interpretation, error) {
	object, ok := extractJSONObject(raw)
	if !ok {
		return domain.Interpretation{}, fmt.Errorf("%w: no JSON object in answer", ErrMalformedGeneration)
	}

	var parsed generatedInterpretation
	if err := json.Unmarshal([]byte(object), &parsed); err != nil {
		return domain.Interpretation{}, fmt.Errorf("%w: %w", ErrMalformedGeneration, err)
	}

	return domain.Interpretation{
		PsychInterpretation:  strings.TrimSpace(parsed.PsychInterpretation),
		MysticInterpretation: strings.TrimSpace(parsed.MysticInterpretation),
		Symbols:              domain.CleanTags(tagList(parsed.Symbols), domain.MaxDreamTags),
		Themes:               domain.CleanTags(tagList(parsed.Themes), domain.MaxDreamTags),
	}, nil
}

// extractJSONObject returns the outermost {...} span, which tolerates models
// that wrap their answer in a markdown fence.
func extractJSONObject(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return "", false
	}
	return raw[start : end+1], true
}

// tagList reads a JSON array of tags. Non-arrays give no tags and non-string
// elements are formatted as text.
func tagList(raw json.RawMessage) []string {
	var values []any
	if len(raw) == 0 || json.Unmarshal(raw, &values) != nil {
		return nil
	}

	tags := make([]string, 0, len(values))
	for _, v := range values {
		switch v := v.(type) {
		case nil:
		case string:
			tags = append(tags, v)
		default:
			tags = append(tags, fmt.Sprint(v))
		}
	}
	return tags
}

package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// MaxDreamTags is the most symbols or themes kept on a single dream.
const MaxDreamTags = 5

// ErrInvalidDream is returned when a dream fails validation.
var ErrInvalidDream = errors.New("invalid dream")

// Dream is a single journal entry owned by one user.
type Dream struct {
	ID                   string    `json:"id"`
	OwnerID              string    `json:"owner_id"`
	Title                string    `json:"title"`
	Body                 string    `json:"body"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at,omitzero"`
	Symbols              []string  `json:"symbols"`
	Themes               []string  `json:"themes"`
	PsychInterpretation  string    `json:"psych_interpretation,omitempty"`
	MysticInterpretation string    `json:"mystic_interpretation,omitempty"`
	SharedWith           []string  `json:"shared_with,omitempty"`

	// Embedding is never serialised to clients.
	Embedding []float32 `json:"-"`
}

// HasEmbedding reports whether the dream carries a usable vector.
func (d Dream) HasEmbedding() bool {
	return len(d.Embedding) > 0
}

// EmbeddingText is the text sent to the embedding service for this dream.
// An empty result means the dream has nothing worth embedding.
func (d Dream) EmbeddingText() string {
	return strings.TrimSpace(d.Title + "\n\n" + d.Body)
}

// IsInterpreted reports whether an interpretation has already been stored.
func (d Dream) IsInterpreted() bool {
	return d.PsychInterpretation != "" || d.MysticInterpretation != ""
}

// ReadableBy reports whether userID may read the dream.
func (d Dream) ReadableBy(userID string) bool {
	if userID == "" {
		return false
	}
	if d.OwnerID == userID {
		return true
	}
	for _, id := range d.SharedWith {
		if id == userID {
			return true
		}
	}
	return false
}

// DreamInput carries the user-editable fields of a dream.
type DreamInput struct {
	OwnerID string
	Title   string
	Body    string
}

// Validate checks the input has an owner and non-blank content.
func (in DreamInput) Validate() error {
	if in.OwnerID == "" {
		return fmt.Errorf("%w: owner is required", ErrInvalidDream)
	}
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidDream)
	}
	if strings.TrimSpace(in.Body) == "" {
		return fmt.Errorf("%w: body is required", ErrInvalidDream)
	}
	return nil
}

// Interpretation is the generated reading of a dream plus its extracted tags.
type Interpretation struct {
	PsychInterpretation  string   `json:"psych_interpretation"`
	MysticInterpretation string   `json:"mystic_interpretation"`
	Symbols              []string `json:"symbols"`
	Themes               []string `json:"themes"`
}

// CleanTags trims values, drops blanks and keeps at most limit entries.
func CleanTags(values []string, limit int) []string {
	out := make([]string, 0, min(len(values), limit))
	for _, v := range values {
		if len(out) >= limit {
			break
		}
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

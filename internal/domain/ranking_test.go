package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankSimilarDreams(t *testing.T) {
	dreams := []Dream{
		{ID: "source", Embedding: []float32{1, 0}},
		{ID: "close", Embedding: []float32{1, 0.1}},
		{ID: "far", Embedding: []float32{0, 1}},
		{ID: "middle", Embedding: []float32{1, 1}},
		{ID: "unembedded"},
		{ID: "bare", Embedding: []float32{0, 1}},
	}

	cases := []struct {
		name       string
		dreams     []Dream
		sourceID   string
		maxResults int
		wantIDs    []string
	}{
		{
			name:       "orders_by_similarity",
			dreams:     dreams,
			sourceID:   "source",
			maxResults: 10,
			wantIDs:    []string{"close", "middle", "far", "bare"},
		},
		{
			name:       "caps_results",
			dreams:     dreams,
			sourceID:   "source",
			maxResults: 2,
			wantIDs:    []string{"close", "middle"},
		},
		{
			name:       "missing_source",
			dreams:     dreams,
			sourceID:   "nope",
			maxResults: 10,
			wantIDs:    []string{},
		},
		{
			name:       "source_without_embedding",
			dreams:     dreams,
			sourceID:   "unembedded",
			maxResults: 10,
			wantIDs:    []string{},
		},
		{
			name:       "zero_max_results",
			dreams:     dreams,
			sourceID:   "source",
			maxResults: 0,
			wantIDs:    []string{},
		},
		{
			name:       "source_is_only_dream",
			dreams:     dreams[:1],
			sourceID:   "source",
			maxResults: 5,
			wantIDs:    []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RankSimilarDreams(tc.dreams, tc.sourceID, tc.maxResults)

			ids := []string{}
			for _, s := range got {
				ids = append(ids, s.DreamID)
				assert.Equal(t, s.DreamID, s.Dream.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
			assert.NotNil(t, got)
		})
	}
}

func TestRankSimilarDreams_ScoresAreNonIncreasing(t *testing.T) {
	dreams := []Dream{
		{ID: "s", Embedding: []float32{0.2, 0.7, 0.1}},
		{ID: "1", Embedding: []float32{0.9, 0.1, 0.3}},
		{ID: "2", Embedding: []float32{0.1, 0.8, 0.2}},
		{ID: "3", Embedding: []float32{-0.4, 0.2, 0.9}},
		{ID: "4", Embedding: []float32{0.3, 0.6, 0.0}},
	}

	got := RankSimilarDreams(dreams, "s", 10)

	assert.Len(t, got, 4)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Similarity, got[i].Similarity)
	}
}

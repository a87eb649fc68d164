package domain

import "sort"

// SimilarDream is a dream scored against a source dream.
type SimilarDream struct {
	DreamID    string  `json:"dream_id"`
	Similarity float64 `json:"similarity"`
	Dream      Dream   `json:"dream"`
}

// RankSimilarDreams scores every other embedded dream against the source and
// returns at most maxResults of them, most similar first. A missing or
// unembedded source gives an empty result.
func RankSimilarDreams(dreams []Dream, sourceID string, maxResults int) []SimilarDream {
	results := []SimilarDream{}
	if maxResults <= 0 {
		return results
	}

	var source *Dream
	for i := range dreams {
		if dreams[i].ID == sourceID {
			source = &dreams[i]
			break
		}
	}
	if source == nil || !source.HasEmbedding() {
		return results
	}

	for _, d := range dreams {
		if d.ID == sourceID || !d.HasEmbedding() {
			continue
		}
		results = append(results, SimilarDream{
			DreamID:    d.ID,
			Similarity: CosineSimilarity(source.Embedding, d.Embedding),
			Dream:      d,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

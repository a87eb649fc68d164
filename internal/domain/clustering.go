package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ClusterConfig holds configuration for the clustering algorithm.
type ClusterConfig struct {
	// SimilarityThreshold is the minimum cosine similarity between a dream
	// and a cluster centroid for the dream to join that cluster.
	SimilarityThreshold float64

	// TopTermsLimit is how many symbols and themes are reported per cluster.
	TopTermsLimit int

	// MinClusterSize is the smallest cluster worth presenting.
	// It does not affect cluster formation.
	MinClusterSize int

	// MinDreamsForClustering is the number of embedded dreams required
	// before clustering is attempted at all.
	MinDreamsForClustering int
}

// DefaultClusterConfig returns the default clustering configuration.
func DefaultClusterConfig() ClusterConfig {
	return ClusterConfig{
		SimilarityThreshold:    0.78,
		TopTermsLimit:          3,
		MinClusterSize:         2,
		MinDreamsForClustering: 2,
	}
}

// DreamCluster is a group of dreams whose embeddings sit close together.
type DreamCluster struct {
	ID         string     `json:"id"`
	Dreams     []Dream    `json:"dreams"`
	Centroid   []float32  `json:"-"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	TopSymbols []string   `json:"top_symbols"`
	TopThemes  []string   `json:"top_themes"`
}

// Size is the number of member dreams.
func (c DreamCluster) Size() int {
	return len(c.Dreams)
}

// GreedyCluster groups dreams in a single ordered pass. Each dream joins the
// cluster whose centroid is most similar to it when that similarity reaches
// the threshold, otherwise it seeds a new cluster. A cluster's centroid is
// recomputed from all its members whenever one joins. Input order matters,
// and dreams without an embedding are ignored.
func GreedyCluster(dreams []Dream, config ClusterConfig) []DreamCluster {
	var clusters []DreamCluster

	for _, dream := range dreams {
		if !dream.HasEmbedding() {
			continue
		}

		best, bestSim := -1, 0.0
		for i, c := range clusters {
			sim := CosineSimilarity(dream.Embedding, c.Centroid)
			if best == -1 || sim > bestSim {
				best, bestSim = i, sim
			}
		}

		if best >= 0 && bestSim >= config.SimilarityThreshold {
			clusters[best].Dreams = append(clusters[best].Dreams, dream)
			clusters[best].Centroid = memberCentroid(clusters[best].Dreams)
			continue
		}

		clusters = append(clusters, DreamCluster{
			ID:       fmt.Sprintf("cluster-%d", len(clusters)+1),
			Dreams:   []Dream{dream},
			Centroid: append([]float32(nil), dream.Embedding...),
		})
	}

	for i := range clusters {
		summariseCluster(&clusters[i], config.TopTermsLimit)
	}

	return clusters
}

// InterestingClusters drops clusters smaller than minSize and orders the
// rest by size, largest first. Equal sizes keep their formation order.
func InterestingClusters(clusters []DreamCluster, minSize int) []DreamCluster {
	out := make([]DreamCluster, 0, len(clusters))
	for _, c := range clusters {
		if c.Size() >= minSize {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Size() > out[j].Size()
	})
	return out
}

func memberCentroid(members []Dream) []float32 {
	vectors := make([][]float32, 0, len(members))
	for _, m := range members {
		vectors = append(vectors, m.Embedding)
	}
	return AverageVector(vectors)
}

func summariseCluster(c *DreamCluster, topLimit int) {
	var symbols, themes []string
	for _, d := range c.Dreams {
		if !d.CreatedAt.IsZero() {
			created := d.CreatedAt
			if c.StartDate == nil || created.Before(*c.StartDate) {
				c.StartDate = &created
			}
			if c.EndDate == nil || created.After(*c.EndDate) {
				c.EndDate = &created
			}
		}
		symbols = append(symbols, d.Symbols...)
		themes = append(themes, d.Themes...)
	}

	c.TopSymbols = topValues(symbols, topLimit)
	c.TopThemes = topValues(themes, topLimit)
}

func topValues(values []string, limit int) []string {
	counts := CountValues(values)
	out := make([]string, 0, max(0, min(limit, len(counts))))
	for _, vc := range counts {
		if len(out) >= limit {
			break
		}
		out = append(out, vc.Value)
	}
	return out
}

// CountValues tallies trimmed, non-empty values. The result is ordered by
// count descending, ties keeping the order each value was first seen.
func CountValues(values []string) []ValueCount {
	index := make(map[string]int)
	var counts []ValueCount
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if i, ok := index[v]; ok {
			counts[i].Count++
			continue
		}
		index[v] = len(counts)
		counts = append(counts, ValueCount{Value: v, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if counts == nil {
		counts = []ValueCount{}
	}
	return counts
}

// ValueCount is how often a symbol or theme occurs.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

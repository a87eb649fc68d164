package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/dream-journal/internal/domain"
)

type ListDreamPatternsRequest struct {
	OwnerID string
}

// ListDreamPatterns summarises an owner's journal: tag frequencies plus
// clusters of related dreams once enough dreams have embeddings.
type ListDreamPatterns struct {
	Ensure Command[EnsureDreamEmbeddingsRequest, BackfillEmbeddingsResult]
	Config domain.ClusterConfig
}

func NewListDreamPatterns(
	ensure Command[EnsureDreamEmbeddingsRequest, BackfillEmbeddingsResult],
	config domain.ClusterConfig,
) *ListDreamPatterns {
	return &ListDreamPatterns{
		Ensure: ensure,
		Config: config,
	}
}

func (c *ListDreamPatterns) Execute(ctx context.Context, req ListDreamPatternsRequest) (domain.DreamPatterns, error) {
	ensured, err := c.Ensure.Execute(ctx, EnsureDreamEmbeddingsRequest{OwnerID: req.OwnerID})
	if err != nil {
		return domain.DreamPatterns{}, fmt.Errorf("loading dream embeddings: %w", err)
	}
	dreams := ensured.Dreams

	var symbols, themes []string
	withEmbedding := 0
	for _, d := range dreams {
		symbols = append(symbols, d.Symbols...)
		themes = append(themes, d.Themes...)
		if d.HasEmbedding() {
			withEmbedding++
		}
	}

	patterns := domain.DreamPatterns{
		TotalDreams:         len(dreams),
		DreamsWithEmbedding: withEmbedding,
		ThemeCounts:         domain.CountValues(themes),
		SymbolCounts:        domain.CountValues(symbols),
		Clusters:            []domain.DreamCluster{},
	}

	if withEmbedding >= max(c.Config.MinDreamsForClustering, 2) {
		clusters := domain.GreedyCluster(dreams, c.Config)
		patterns.Clusters = domain.InterestingClusters(clusters, c.Config.MinClusterSize)
	}
	return patterns, nil
}

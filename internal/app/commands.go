package app

import (
	"time"

	"github.com/jbeshir/dream-journal/internal/command"
	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/transport/web/router"
)

// Commands is every use case, built once and shared by the HTTP API, the
// scheduler and the CLI.
type Commands struct {
	router.Commands
	BackfillAllOwners *command.BackfillAllOwners
}

func NewCommands(
	dataset datasources.DatasetRepository,
	embeddings datasources.EmbeddingRepository,
	embedder datasources.Embedder,
	generator datasources.TextGenerator,
	config CommandConfig,
) Commands {
	backfill := command.NewBackfillEmbeddings(embedder, embeddings, config.EmbedTimeout)
	ensure := command.NewEnsureDreamEmbeddings(dataset, embeddings, backfill)
	listDreams := &command.ListDreams{DreamLister: dataset}

	return Commands{
		Commands: router.Commands{
			ListDreams:       listDreams,
			ListSharedDreams: &command.ListSharedDreams{SharedLister: dataset},
			CreateDream:      command.NewCreateDream(dataset, backfill),
			GetDream:         &command.GetDream{DreamFetcher: dataset},
			UpdateDream: &command.UpdateDream{
				DreamFetcher:     dataset,
				ContentUpdater:   dataset,
				EmbeddingDeleter: embeddings,
				Now:              time.Now,
			},
			DeleteDream: &command.DeleteDream{
				DreamFetcher:     dataset,
				DreamDeleter:     dataset,
				EmbeddingDeleter: embeddings,
			},
			SetDreamShares: &command.SetDreamShares{DreamFetcher: dataset, SharesSetter: dataset},
			InterpretDream: &command.InterpretDream{
				DreamFetcher:         dataset,
				Generator:            generator,
				InterpretationSetter: dataset,
			},
			ListSimilar:      command.NewListSimilarDreams(dataset, ensure),
			EnsureEmbeddings: ensure,
			ListPatterns:     command.NewListDreamPatterns(ensure, config.Cluster),
			GetPatterns:      &command.GetPatternAnalysis{AnalysisStore: dataset},
			AnalysePatterns: &command.AnalysePatterns{
				DreamLister:   dataset,
				AnalysisStore: dataset,
				Generator:     generator,
				Now:           time.Now,
			},
			GetThemes: &command.GetThemeAnalysis{AnalysisStore: dataset},
			AnalyseThemes: &command.AnalyseTopThemes{
				DreamLister:   dataset,
				AnalysisStore: dataset,
				Generator:     generator,
				Now:           time.Now,
			},
			GetStreaks:     &command.GetStreaks{DreamLister: dataset, Now: time.Now},
			GetCalendar:    &command.GetCalendar{DreamLister: dataset},
			CreateAPIToken: command.NewCreateAPIToken(dataset, dataset),
		},
		BackfillAllOwners: command.NewBackfillAllOwners(dataset, ensure),
	}
}

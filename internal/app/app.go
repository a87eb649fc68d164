package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/datasources/anthropic"
	"github.com/jbeshir/dream-journal/internal/datasources/memory"
	"github.com/jbeshir/dream-journal/internal/datasources/mysql"
	"github.com/jbeshir/dream-journal/internal/datasources/openai"
	"github.com/jbeshir/dream-journal/internal/datasources/pinecone"
	"github.com/jbeshir/dream-journal/internal/datasources/voyageai"
	"github.com/jbeshir/dream-journal/internal/domain"
	"github.com/jbeshir/dream-journal/internal/transport/schedule"
	"github.com/jbeshir/dream-journal/internal/transport/web/router"
	"github.com/jbeshir/dream-journal/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	stores, err := SetupStores(ctx)
	if err != nil {
		return nil, err
	}

	embedder, err := SetupEmbedder(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up embedder: %w", err)
	}

	generator, err := SetupGenerator(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up text generator: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx, stores.Dataset)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	config := DefaultCommandConfig()
	config.EmbedTimeout = GetEnvOrDuration(ctx, "EMBEDDING_TIMEOUT", config.EmbedTimeout)
	cmds := NewCommands(stores.Dataset, stores.Embeddings, embedder, generator, config)

	defaultLocation := GetEnvOrLocation(ctx, "DEFAULT_TIMEZONE", time.UTC)

	httpRouter, err := router.MakeRouter(
		cmds.Commands,
		stores.Dataset,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		defaultLocation,
		DefaultInsightCacheMaxAge,
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	components := []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: splitList(GetEnvOrString("HTTP_AUTOCERT_HOSTNAMES", "")),
			Router:            httpRouter,
		},
	}

	if expr := GetEnvOrString("BACKFILL_SCHEDULE", ""); expr != "" {
		backfill, err := schedule.NewBackfill(expr, cmds.BackfillAllOwners, defaultLocation)
		if err != nil {
			return nil, fmt.Errorf("setting up backfill schedule: %w", err)
		}
		components = append(components, backfill)
	} else {
		logger := domain.LoggerFromContext(ctx)
		logger.InfoContext(ctx, "scheduled embedding backfill disabled (BACKFILL_SCHEDULE not set)")
	}

	return components, nil
}

// Stores are the document store and the store holding dream embeddings,
// which may be the same.
type Stores struct {
	Dataset    datasources.DatasetRepository
	Embeddings datasources.EmbeddingRepository
}

func SetupStores(ctx context.Context) (Stores, error) {
	dataset, err := setupDatasetRepository(ctx)
	if err != nil {
		return Stores{}, fmt.Errorf("setting up dataset repository: %w", err)
	}

	embeddings, err := setupEmbeddingRepository(ctx, dataset)
	if err != nil {
		return Stores{}, fmt.Errorf("setting up embedding repository: %w", err)
	}

	return Stores{Dataset: dataset, Embeddings: embeddings}, nil
}

func setupDatasetRepository(ctx context.Context) (datasources.DatasetRepository, error) {
	switch driver := MustGetEnvAsString(ctx, "DATASET_DRIVER"); driver {
	case "memory":
		return memory.New(), nil
	case "mysql":
		db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
		if err != nil {
			return nil, fmt.Errorf("connecting to MySQL: %w", err)
		}
		if GetEnvOrString("MYSQL_AUTO_MIGRATE", "false") == "true" {
			if err := mysql.Migrate(ctx, db); err != nil {
				return nil, fmt.Errorf("migrating MySQL schema: %w", err)
			}
		}
		return mysql.New(db), nil
	default:
		return nil, fmt.Errorf("unknown dataset driver [%s]", driver)
	}
}

func setupEmbeddingRepository(
	ctx context.Context,
	dataset datasources.DatasetRepository,
) (datasources.EmbeddingRepository, error) {
	switch driver := GetEnvOrString("EMBEDDING_STORE_DRIVER", "dataset"); driver {
	case "dataset":
		embeddings, ok := dataset.(datasources.EmbeddingRepository)
		if !ok {
			return nil, fmt.Errorf("dataset driver cannot store embeddings")
		}
		return embeddings, nil
	case "pinecone":
		client, err := pinecone.NewClient(
			ctx,
			MustGetEnvAsString(ctx, "PINECONE_API_KEY"),
			MustGetEnvAsString(ctx, "PINECONE_INDEX_NAME"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to pinecone: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown embedding store driver [%s]", driver)
	}
}

func SetupEmbedder(ctx context.Context) (datasources.Embedder, error) {
	switch driver := MustGetEnvAsString(ctx, "EMBEDDER_DRIVER"); driver {
	case "null":
		return datasources.NullEmbedder{}, nil
	case "openai":
		return openai.NewClient(
			MustGetEnvAsString(ctx, "OPENAI_API_KEY"),
			GetEnvOrString("OPENAI_EMBEDDING_MODEL", ""),
			GetEnvOrString("OPENAI_CHAT_MODEL", ""),
			GetEnvOrString("OPENAI_BASE_URL", ""),
		), nil
	case "voyageai":
		return voyageai.NewClient(
			MustGetEnvAsString(ctx, "VOYAGEAI_API_KEY"),
			GetEnvOrString("VOYAGEAI_MODEL", ""),
			GetEnvOrInt(ctx, "VOYAGEAI_DIMENSIONS", 0),
		), nil
	default:
		return nil, fmt.Errorf("unknown embedder driver [%s]", driver)
	}
}

func SetupGenerator(ctx context.Context) (datasources.TextGenerator, error) {
	switch driver := GetEnvOrString("GENERATOR_DRIVER", "null"); driver {
	case "null":
		return datasources.NullTextGenerator{}, nil
	case "openai":
		return openai.NewClient(
			MustGetEnvAsString(ctx, "OPENAI_API_KEY"),
			GetEnvOrString("OPENAI_EMBEDDING_MODEL", ""),
			GetEnvOrString("OPENAI_CHAT_MODEL", ""),
			GetEnvOrString("OPENAI_BASE_URL", ""),
		), nil
	case "anthropic":
		return anthropic.NewClient(
			MustGetEnvAsString(ctx, "ANTHROPIC_API_KEY"),
			GetEnvOrString("ANTHROPIC_MODEL", ""),
		), nil
	default:
		return nil, fmt.Errorf("unknown generator driver [%s]", driver)
	}
}

func setupAuthMiddleware(
	ctx context.Context, dataset datasources.DatasetRepository,
) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "api_token":
			validators = append(validators, router.NewAPITokenValidator(ctx, dataset, dataset, nil))
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}

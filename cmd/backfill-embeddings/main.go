package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jbeshir/dream-journal/internal/app"
	"github.com/jbeshir/dream-journal/internal/command"
	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	result, err := run(ctx, os.Getenv("BACKFILL_OWNER_ID"))
	if err != nil {
		logger.ErrorContext(ctx, "embedding backfill failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "embedding backfill completed",
		"owners", result.Owners,
		"embedded", result.Embedded,
		"failed", result.Failed)
}

func run(ctx context.Context, ownerID string) (command.BackfillAllOwnersResult, error) {
	stores, err := app.SetupStores(ctx)
	if err != nil {
		return command.BackfillAllOwnersResult{}, err
	}

	embedder, err := app.SetupEmbedder(ctx)
	if err != nil {
		return command.BackfillAllOwnersResult{}, fmt.Errorf("setting up embedder: %w", err)
	}

	config := app.DefaultCommandConfig()
	config.EmbedTimeout = app.GetEnvOrDuration(ctx, "EMBEDDING_TIMEOUT", config.EmbedTimeout)
	cmds := app.NewCommands(stores.Dataset, stores.Embeddings, embedder, datasources.NullTextGenerator{}, config)

	return cmds.BackfillAllOwners.Execute(ctx, command.BackfillAllOwnersRequest{OwnerID: ownerID})
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"
	_ "time/tzdata"

	"github.com/jbeshir/dream-journal/internal/app"
	"github.com/jbeshir/dream-journal/internal/command"
	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/datasources/mysql"
	"github.com/jbeshir/dream-journal/internal/domain"
	"github.com/spf13/cobra"

	_ "github.com/joho/godotenv/autoload"
)

var verbose bool

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dreamctl",
		Short:         "Operate on a dream journal: embeddings, similarity, patterns and streaks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			cmd.SetContext(domain.ContextWithLogger(cmd.Context(), logger))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")

	rootCmd.AddCommand(backfillCmd())
	rootCmd.AddCommand(similarCmd())
	rootCmd.AddCommand(patternsCmd())
	rootCmd.AddCommand(streaksCmd())
	rootCmd.AddCommand(migrateCmd())
	return rootCmd
}

// setupCommands builds the command graph without a text generator; none of
// the CLI operations call one.
func setupCommands(ctx context.Context) (app.Commands, error) {
	stores, err := app.SetupStores(ctx)
	if err != nil {
		return app.Commands{}, err
	}

	embedder, err := app.SetupEmbedder(ctx)
	if err != nil {
		return app.Commands{}, fmt.Errorf("setting up embedder: %w", err)
	}

	config := app.DefaultCommandConfig()
	config.EmbedTimeout = app.GetEnvOrDuration(ctx, "EMBEDDING_TIMEOUT", config.EmbedTimeout)
	return app.NewCommands(stores.Dataset, stores.Embeddings, embedder, datasources.NullTextGenerator{}, config), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func backfillCmd() *cobra.Command {
	var ownerID string
	cmd := &cobra.Command{
		Use:   "backfill",
		Short: "Embed every dream that has no embedding yet",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmds, err := setupCommands(cmd.Context())
			if err != nil {
				return err
			}

			result, err := cmds.BackfillAllOwners.Execute(cmd.Context(), command.BackfillAllOwnersRequest{
				OwnerID: ownerID,
			})
			if err != nil {
				return fmt.Errorf("backfilling embeddings: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&ownerID, "owner", "", "only backfill this owner's dreams")
	return cmd
}

func similarCmd() *cobra.Command {
	var ownerID, dreamID string
	var limit int
	cmd := &cobra.Command{
		Use:   "similar",
		Short: "List the dreams most similar to one dream",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmds, err := setupCommands(cmd.Context())
			if err != nil {
				return err
			}

			similar, err := cmds.ListSimilar.Execute(cmd.Context(), command.ListSimilarDreamsRequest{
				UserID:  ownerID,
				DreamID: dreamID,
				Limit:   limit,
			})
			if err != nil {
				return fmt.Errorf("listing similar dreams: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), similar)
		},
	}
	cmd.Flags().StringVar(&ownerID, "owner", "", "owner of the dream")
	cmd.Flags().StringVar(&dreamID, "dream", "", "dream to compare against")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of results")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("dream")
	return cmd
}

func patternsCmd() *cobra.Command {
	var ownerID string
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Show tag counts and clusters of related dreams",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmds, err := setupCommands(cmd.Context())
			if err != nil {
				return err
			}

			patterns, err := cmds.ListPatterns.Execute(cmd.Context(), command.ListDreamPatternsRequest{
				OwnerID: ownerID,
			})
			if err != nil {
				return fmt.Errorf("listing dream patterns: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), patterns)
		},
	}
	cmd.Flags().StringVar(&ownerID, "owner", "", "owner of the journal")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}

func streaksCmd() *cobra.Command {
	var ownerID, tz string
	cmd := &cobra.Command{
		Use:   "streaks",
		Short: "Show journaling streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := time.LoadLocation(tz)
			if err != nil {
				return fmt.Errorf("loading time zone [%s]: %w", tz, err)
			}

			cmds, err := setupCommands(cmd.Context())
			if err != nil {
				return err
			}

			streaks, err := cmds.GetStreaks.Execute(cmd.Context(), command.GetStreaksRequest{
				OwnerID:  ownerID,
				Location: loc,
			})
			if err != nil {
				return fmt.Errorf("calculating streaks: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), streaks)
		},
	}
	cmd.Flags().StringVar(&ownerID, "owner", "", "owner of the journal")
	cmd.Flags().StringVar(&tz, "tz", "UTC", "IANA time zone that decides calendar days")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create any missing MySQL tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := mysql.Connect(ctx, app.MustGetEnvAsString(ctx, "MYSQL_URI"))
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			if err := mysql.Migrate(ctx, db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
			return nil
		},
	}
}

package mysql

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	if testing.Short() {
		t.Skip("skipping MySQL integration tests in short mode")
	}
	uri := os.Getenv("MYSQL_URI")
	if uri == "" {
		t.Skip("MYSQL_URI not set")
	}

	ctx := context.Background()
	db, err := Connect(ctx, uri)
	require.NoError(t, err)
	require.NoError(t, Migrate(ctx, db))

	t.Cleanup(func() {
		for _, table := range []string{"dream_shares", "dreams", "pattern_analyses", "theme_analyses", "api_tokens"} {
			_, err := db.ExecContext(context.Background(), "DELETE FROM "+table)
			assert.NoError(t, err)
		}
		assert.NoError(t, db.Close())
	})

	return db
}

func TestRepository_Dreams(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)
	ctx := context.Background()

	older := domain.Dream{
		ID:        "5f1c6c2e-0d6f-4c8e-9f57-000000000001",
		OwnerID:   "owner-1",
		Title:     "Flooded library",
		Body:      "The shelves were under water.",
		CreatedAt: time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC),
		Symbols:   []string{"water", "books"},
		Themes:    []string{"loss"},
	}
	newer := domain.Dream{
		ID:         "5f1c6c2e-0d6f-4c8e-9f57-000000000002",
		OwnerID:    "owner-1",
		Title:      "Stairs",
		Body:       "Endless stairs.",
		CreatedAt:  time.Date(2024, 3, 2, 7, 0, 0, 0, time.UTC),
		SharedWith: []string{"friend-1"},
		Embedding:  []float32{0.1, 0.2},
	}
	require.NoError(t, repo.CreateDream(ctx, older))
	require.NoError(t, repo.CreateDream(ctx, newer))

	fetched, err := repo.FetchDream(ctx, newer.ID)
	require.NoError(t, err)
	assert.Equal(t, newer.Title, fetched.Title)
	assert.Equal(t, []string{"friend-1"}, fetched.SharedWith)
	assert.Empty(t, fetched.Embedding)

	_, err = repo.FetchDream(ctx, "missing")
	assert.ErrorIs(t, err, datasources.ErrNotFound)

	listed, err := repo.ListDreamsByOwner(ctx, "owner-1", 1, 0)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, newer.ID, listed[0].ID)
	assert.Equal(t, []string{"water", "books"}, listed[1].Symbols)

	shared, err := repo.ListDreamsSharedWith(ctx, "friend-1", "")
	require.NoError(t, err)
	require.Len(t, shared, 1)
	assert.Equal(t, newer.ID, shared[0].ID)

	embeddings, err := repo.FetchDreamEmbeddings(ctx, "owner-1", []string{older.ID, newer.ID})
	require.NoError(t, err)
	assert.Equal(t, map[string][]float32{newer.ID: {0.1, 0.2}}, embeddings)

	require.NoError(t, repo.SetDreamEmbedding(ctx, "owner-1", older.ID, []float32{1, 0}))
	require.NoError(t, repo.UpdateDreamContent(ctx, newer.ID, "Stairs again", "Still endless.", time.Now()))

	embeddings, err = repo.FetchDreamEmbeddings(ctx, "owner-1", []string{older.ID, newer.ID})
	require.NoError(t, err)
	assert.Equal(t, map[string][]float32{older.ID: {1, 0}}, embeddings)

	require.NoError(t, repo.SetDreamInterpretation(ctx, older.ID, domain.Interpretation{
		PsychInterpretation:  "Processing change.",
		MysticInterpretation: "Knowledge submerged.",
		Symbols:              []string{"library"},
		Themes:               []string{"change"},
	}))
	fetched, err = repo.FetchDream(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, "Processing change.", fetched.PsychInterpretation)
	assert.Equal(t, []string{"library"}, fetched.Symbols)

	owners, err := repo.ListDreamOwners(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"owner-1"}, owners)

	require.NoError(t, repo.DeleteDream(ctx, newer.ID))
	shared, err = repo.ListDreamsSharedWith(ctx, "friend-1", "")
	require.NoError(t, err)
	assert.Empty(t, shared)
}

func TestRepository_Analyses(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)
	ctx := context.Background()

	_, err := repo.GetPatternAnalysis(ctx, "owner-1")
	assert.ErrorIs(t, err, datasources.ErrNotFound)

	pattern := domain.PatternAnalysis{
		OwnerID:      "owner-1",
		Analysis:     "Water recurs.",
		CreatedAt:    time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC),
		TotalDreams:  12,
		WindowDreams: 12,
		WindowType:   domain.AnalysisWindowLast30,
	}
	require.NoError(t, repo.SavePatternAnalysis(ctx, pattern))
	gotPattern, err := repo.GetPatternAnalysis(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, pattern, gotPattern)

	runs := []time.Time{time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC)}
	theme := domain.ThemeAnalysis{
		OwnerID:     "owner-1",
		Analysis:    "Loss and change.",
		CreatedAt:   runs[0],
		TotalDreams: 12,
		Themes:      []string{"loss", "change"},
		RecentRuns:  runs,
	}
	require.NoError(t, repo.SaveThemeAnalysis(ctx, theme))
	gotTheme, err := repo.GetThemeAnalysis(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, theme.Themes, gotTheme.Themes)
	assert.Len(t, gotTheme.RecentRuns, 1)
	assert.True(t, runs[0].Equal(gotTheme.RecentRuns[0]))
}

func TestRepository_APITokens(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC)

	token := domain.APIToken{
		ID:        "8d7f35f6-4b0e-4d61-a0b7-000000000001",
		UserID:    "owner-1",
		TokenHash: "c0ffee",
		Prefix:    "abcd1234",
		CreatedAt: now,
	}
	require.NoError(t, repo.CreateAPIToken(ctx, token))

	count, err := repo.CountUserActiveAPITokens(ctx, "owner-1", now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	got, err := repo.GetAPITokenByHash(ctx, "c0ffee")
	require.NoError(t, err)
	assert.Equal(t, token.ID, got.ID)

	assert.ErrorIs(t, repo.RevokeAPIToken(ctx, token.ID, "someone-else", now), datasources.ErrNotFound)
	require.NoError(t, repo.RevokeAPIToken(ctx, token.ID, "owner-1", now))

	count, err = repo.CountUserActiveAPITokens(ctx, "owner-1", now)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

package memory

import (
	"context"
	"testing"
	"time"

	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()
	dreams := []domain.Dream{
		{ID: "d1", OwnerID: "alice", Title: "One", CreatedAt: time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC)},
		{ID: "d2", OwnerID: "alice", Title: "Two", CreatedAt: time.Date(2024, 3, 2, 7, 0, 0, 0, time.UTC), SharedWith: []string{"bob"}},
		{ID: "d3", OwnerID: "alice", Title: "Three", CreatedAt: time.Date(2024, 3, 3, 7, 0, 0, 0, time.UTC), Embedding: []float32{1, 0}},
		{ID: "d4", OwnerID: "carol", Title: "Four", CreatedAt: time.Date(2024, 3, 4, 7, 0, 0, 0, time.UTC), SharedWith: []string{"bob"}},
	}
	for _, d := range dreams {
		require.NoError(t, s.CreateDream(ctx, d))
	}
}

func TestStore_ListDreamsByOwner(t *testing.T) {
	cases := []struct {
		name     string
		page     int
		pageSize int
		wantIDs  []string
	}{
		{name: "all", page: 1, pageSize: 0, wantIDs: []string{"d3", "d2", "d1"}},
		{name: "first_page", page: 1, pageSize: 2, wantIDs: []string{"d3", "d2"}},
		{name: "second_page", page: 2, pageSize: 2, wantIDs: []string{"d1"}},
		{name: "past_end", page: 3, pageSize: 2, wantIDs: []string{}},
		{name: "zero_page_is_first", page: 0, pageSize: 1, wantIDs: []string{"d3"}},
	}

	s := New()
	seed(t, s)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dreams, err := s.ListDreamsByOwner(context.Background(), "alice", tc.page, tc.pageSize)
			require.NoError(t, err)

			ids := []string{}
			for _, d := range dreams {
				ids = append(ids, d.ID)
				assert.Nil(t, d.Embedding)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestStore_Shares(t *testing.T) {
	s := New()
	seed(t, s)
	ctx := context.Background()

	shared, err := s.ListDreamsSharedWith(ctx, "bob", "")
	require.NoError(t, err)
	require.Len(t, shared, 2)
	assert.Equal(t, "d4", shared[0].ID)

	shared, err = s.ListDreamsSharedWith(ctx, "bob", "alice")
	require.NoError(t, err)
	require.Len(t, shared, 1)
	assert.Equal(t, "d2", shared[0].ID)

	require.NoError(t, s.SetDreamShares(ctx, "d2", nil))
	shared, err = s.ListDreamsSharedWith(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.Empty(t, shared)

	assert.ErrorIs(t, s.SetDreamShares(ctx, "missing", nil), datasources.ErrNotFound)
}

func TestStore_Embeddings(t *testing.T) {
	s := New()
	seed(t, s)
	ctx := context.Background()

	got, err := s.FetchDreamEmbeddings(ctx, "alice", []string{"d1", "d3", "d4"})
	require.NoError(t, err)
	assert.Equal(t, map[string][]float32{"d3": {1, 0}}, got)

	assert.ErrorIs(t, s.SetDreamEmbedding(ctx, "carol", "d1", []float32{1}), datasources.ErrNotFound)
	require.NoError(t, s.SetDreamEmbedding(ctx, "alice", "d1", []float32{0, 1}))

	require.NoError(t, s.UpdateDreamContent(ctx, "d3", "Three again", "new body", time.Now()))
	got, err = s.FetchDreamEmbeddings(ctx, "alice", []string{"d1", "d3"})
	require.NoError(t, err)
	assert.Equal(t, map[string][]float32{"d1": {0, 1}}, got)

	require.NoError(t, s.DeleteDreamEmbedding(ctx, "alice", "d1"))
	got, err = s.FetchDreamEmbeddings(ctx, "alice", []string{"d1"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_ReturnedDreamsAreCopies(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.CreateDream(ctx, domain.Dream{ID: "d1", OwnerID: "alice", Symbols: []string{"moon"}}))

	d, err := s.FetchDream(ctx, "d1")
	require.NoError(t, err)
	d.Symbols[0] = "sun"

	d, err = s.FetchDream(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, []string{"moon"}, d.Symbols)
}

func TestStore_APITokens(t *testing.T) {
	s := New()
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC)
	expired := now.Add(-time.Hour)

	require.NoError(t, s.CreateAPIToken(ctx, domain.APIToken{ID: "t1", UserID: "alice", TokenHash: "h1", CreatedAt: now}))
	require.NoError(t, s.CreateAPIToken(ctx, domain.APIToken{ID: "t2", UserID: "alice", TokenHash: "h2", CreatedAt: now, ExpiresAt: &expired}))

	count, err := s.CountUserActiveAPITokens(ctx, "alice", now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	token, err := s.GetAPITokenByHash(ctx, "h1")
	require.NoError(t, err)
	assert.Equal(t, "t1", token.ID)

	require.NoError(t, s.UpdateAPITokenLastUsed(ctx, "t1", now))
	token, err = s.GetAPITokenByHash(ctx, "h1")
	require.NoError(t, err)
	require.NotNil(t, token.LastUsedAt)

	assert.ErrorIs(t, s.RevokeAPIToken(ctx, "t1", "bob", now), datasources.ErrNotFound)
	require.NoError(t, s.RevokeAPIToken(ctx, "t1", "alice", now))
	assert.ErrorIs(t, s.RevokeAPIToken(ctx, "t1", "alice", now), datasources.ErrNotFound)

	_, err = s.GetAPITokenByHash(ctx, "missing")
	assert.ErrorIs(t, err, datasources.ErrNotFound)
}

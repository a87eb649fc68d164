package server

import (
	"context"
	"errors"
	"testing"

	"github.com/jbeshir/dream-journal/internal/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	dreams       []domain.Dream
	similar      []domain.SimilarDream
	err          error
	gotPage      int
	gotPageSize  int
	gotLimit     int
	gotTZ        string
	createdTitle string
}

func (f *fakeAPI) ListDreams(_ context.Context, page, pageSize int) ([]domain.Dream, error) {
	f.gotPage, f.gotPageSize = page, pageSize
	return f.dreams, f.err
}

func (f *fakeAPI) GetDream(_ context.Context, dreamID string) (*domain.Dream, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Dream{ID: dreamID, Title: "Stairs"}, nil
}

func (f *fakeAPI) CreateDream(_ context.Context, title, _ string) (*domain.Dream, error) {
	f.createdTitle = title
	return &domain.Dream{ID: "d9", Title: title}, f.err
}

func (f *fakeAPI) InterpretDream(_ context.Context, dreamID string) (*domain.Dream, error) {
	return &domain.Dream{ID: dreamID}, f.err
}

func (f *fakeAPI) GetSimilarDreams(_ context.Context, _ string, limit int) ([]domain.SimilarDream, error) {
	f.gotLimit = limit
	return f.similar, f.err
}

func (f *fakeAPI) GetPatterns(_ context.Context) (*domain.DreamPatterns, error) {
	return &domain.DreamPatterns{TotalDreams: 4}, f.err
}

func (f *fakeAPI) GetStreaks(_ context.Context, tz string) (*domain.StreakStats, error) {
	f.gotTZ = tz
	return &domain.StreakStats{CurrentStreak: 3}, f.err
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func ptr[T any](v T) *T { return &v }

func TestHandleListDreams(t *testing.T) {
	cases := []struct {
		name         string
		in           listDreamsInput
		dreams       []domain.Dream
		wantPage     int
		wantPageSize int
		wantText     string
	}{
		{
			name:         "defaults",
			wantPage:     1,
			wantPageSize: 20,
			wantText:     "No dreams found.",
		},
		{
			name:         "page_size_capped",
			in:           listDreamsInput{Page: ptr(3), PageSize: ptr(500)},
			dreams:       []domain.Dream{{ID: "d1"}},
			wantPage:     3,
			wantPageSize: 100,
			wantText:     "Found 1 dream(s):",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &fakeAPI{dreams: tc.dreams}
			s := NewServer(api)

			res, _, err := s.handleListDreams(context.Background(), nil, tc.in)
			require.NoError(t, err)
			assert.False(t, res.IsError)
			assert.Contains(t, resultText(t, res), tc.wantText)
			assert.Equal(t, tc.wantPage, api.gotPage)
			assert.Equal(t, tc.wantPageSize, api.gotPageSize)
		})
	}
}

func TestHandleSimilarDreams(t *testing.T) {
	api := &fakeAPI{similar: []domain.SimilarDream{{DreamID: "d2", Similarity: 0.8}}}
	s := NewServer(api)

	res, _, err := s.handleSimilarDreams(context.Background(), nil, similarDreamsInput{DreamID: "d1", Limit: ptr(50)})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, 20, api.gotLimit)
	assert.Contains(t, resultText(t, res), `"dream_id": "d2"`)

	res, _, err = s.handleSimilarDreams(context.Background(), nil, similarDreamsInput{})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "dream_id is required", resultText(t, res))
}

func TestHandleRecordDream(t *testing.T) {
	api := &fakeAPI{}
	s := NewServer(api)

	res, _, err := s.handleRecordDream(context.Background(), nil, recordDreamInput{Title: "Stairs"})
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, _, err = s.handleRecordDream(context.Background(), nil, recordDreamInput{
		Title: "Stairs",
		Body:  "Endless stairs.",
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, `Recorded dream d9 ("Stairs")`, resultText(t, res))
	assert.Equal(t, "Stairs", api.createdTitle)
}

func TestHandleJournalStreaks_APIError(t *testing.T) {
	api := &fakeAPI{err: errors.New("API error (status 401): unauthorized")}
	s := NewServer(api)

	res, _, err := s.handleJournalStreaks(context.Background(), nil, streaksInput{TZ: ptr("Asia/Tokyo")})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "Asia/Tokyo", api.gotTZ)
	assert.Contains(t, resultText(t, res), "failed to get streaks")
}

func TestHandleDreamResource(t *testing.T) {
	s := NewServer(&fakeAPI{})

	req := &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: "dream://d1"}}
	res, err := s.handleDreamResource(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Equal(t, "application/json", res.Contents[0].MIMEType)
	assert.Contains(t, res.Contents[0].Text, `"id": "d1"`)

	req = &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: "nightmare://d1"}}
	_, err = s.handleDreamResource(context.Background(), req)
	assert.Error(t, err)
}

// Package server provides the MCP server implementation.
package server

import (
	"context"

	"github.com/jbeshir/dream-journal/internal/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// API is the part of the dream journal HTTP API the MCP tools use.
type API interface {
	ListDreams(ctx context.Context, page, pageSize int) ([]domain.Dream, error)
	GetDream(ctx context.Context, dreamID string) (*domain.Dream, error)
	CreateDream(ctx context.Context, title, body string) (*domain.Dream, error)
	InterpretDream(ctx context.Context, dreamID string) (*domain.Dream, error)
	GetSimilarDreams(ctx context.Context, dreamID string, limit int) ([]domain.SimilarDream, error)
	GetPatterns(ctx context.Context) (*domain.DreamPatterns, error)
	GetStreaks(ctx context.Context, tz string) (*domain.StreakStats, error)
}

// Server is the MCP server for a dream journal.
type Server struct {
	api       API
	mcpServer *mcp.Server
}

func NewServer(api API) *Server {
	s := &Server{
		api: api,
	}

	s.mcpServer = mcp.NewServer(&mcp.Implementation{
		Name:    "dream-journal",
		Version: "1.0.0",
	}, nil)

	s.registerTools()
	s.registerResources()

	return s
}

// Run serves MCP over stdio until the client disconnects or ctx ends.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_dreams",
		Description: "List your dreams, newest first.",
	}, s.handleListDreams)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_dream",
		Description: "Get one dream by ID, including any stored interpretation, symbols and themes.",
	}, s.handleGetDream)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_dream",
		Description: "Record a new dream in the journal.",
	}, s.handleRecordDream)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name: "interpret_dream",
		Description: "Generate a psychological and a symbolic interpretation of a dream, " +
			"and tag it with symbols and themes. Replaces any earlier interpretation.",
	}, s.handleInterpretDream)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name: "similar_dreams",
		Description: "Find your dreams most similar in content to a given dream, " +
			"with a similarity score between -1 and 1.",
	}, s.handleSimilarDreams)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name: "dream_patterns",
		Description: "Summarise the journal: how often each symbol and theme occurs, " +
			"and groups of dreams with related content.",
	}, s.handleDreamPatterns)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "journal_streaks",
		Description: "Show the current and best run of consecutive days with a recorded dream.",
	}, s.handleJournalStreaks)
}

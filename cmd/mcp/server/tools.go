package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jbeshir/dream-journal/internal/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) handleListDreams(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	in listDreamsInput,
) (*mcp.CallToolResult, any, error) {
	page, pageSize := parsePagination(in)

	dreams, err := s.api.ListDreams(ctx, page, pageSize)
	if err != nil {
		return toolError("failed to list dreams: %v", err), nil, nil
	}

	return formatDreamsResult(dreams), nil, nil
}

func (s *Server) handleGetDream(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	in dreamIDInput,
) (*mcp.CallToolResult, any, error) {
	if in.DreamID == "" {
		return toolError("dream_id is required"), nil, nil
	}

	dream, err := s.api.GetDream(ctx, in.DreamID)
	if err != nil {
		return toolError("failed to get dream: %v", err), nil, nil
	}

	return formatJSONResult(dream), nil, nil
}

func (s *Server) handleRecordDream(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	in recordDreamInput,
) (*mcp.CallToolResult, any, error) {
	if in.Title == "" || in.Body == "" {
		return toolError("title and body are required"), nil, nil
	}

	dream, err := s.api.CreateDream(ctx, in.Title, in.Body)
	if err != nil {
		return toolError("failed to record dream: %v", err), nil, nil
	}

	return toolText(fmt.Sprintf("Recorded dream %s (%q)", dream.ID, dream.Title)), nil, nil
}

func (s *Server) handleInterpretDream(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	in dreamIDInput,
) (*mcp.CallToolResult, any, error) {
	if in.DreamID == "" {
		return toolError("dream_id is required"), nil, nil
	}

	dream, err := s.api.InterpretDream(ctx, in.DreamID)
	if err != nil {
		return toolError("failed to interpret dream: %v", err), nil, nil
	}

	return formatJSONResult(dream), nil, nil
}

func (s *Server) handleSimilarDreams(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	in similarDreamsInput,
) (*mcp.CallToolResult, any, error) {
	if in.DreamID == "" {
		return toolError("dream_id is required"), nil, nil
	}

	limit := 0
	if in.Limit != nil && *in.Limit > 0 {
		limit = min(*in.Limit, 20)
	}

	similar, err := s.api.GetSimilarDreams(ctx, in.DreamID, limit)
	if err != nil {
		return toolError("failed to get similar dreams: %v", err), nil, nil
	}
	if len(similar) == 0 {
		return toolText("No similar dreams found."), nil, nil
	}

	return formatJSONResult(similar), nil, nil
}

func (s *Server) handleDreamPatterns(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ patternsInput,
) (*mcp.CallToolResult, any, error) {
	patterns, err := s.api.GetPatterns(ctx)
	if err != nil {
		return toolError("failed to get dream patterns: %v", err), nil, nil
	}

	return formatJSONResult(patterns), nil, nil
}

func (s *Server) handleJournalStreaks(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	in streaksInput,
) (*mcp.CallToolResult, any, error) {
	tz := ""
	if in.TZ != nil {
		tz = *in.TZ
	}

	stats, err := s.api.GetStreaks(ctx, tz)
	if err != nil {
		return toolError("failed to get streaks: %v", err), nil, nil
	}

	return formatJSONResult(stats), nil, nil
}

func parsePagination(in listDreamsInput) (page, pageSize int) {
	page = 1
	pageSize = 20

	if in.Page != nil && *in.Page > 0 {
		page = *in.Page
	}
	if in.PageSize != nil && *in.PageSize > 0 {
		pageSize = min(*in.PageSize, 100)
	}
	return page, pageSize
}

func toolText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func toolError(format string, args ...any) *mcp.CallToolResult {
	res := toolText(fmt.Sprintf(format, args...))
	res.IsError = true
	return res
}

func formatDreamsResult(dreams []domain.Dream) *mcp.CallToolResult {
	if len(dreams) == 0 {
		return toolText("No dreams found.")
	}

	data, err := json.MarshalIndent(dreams, "", "  ")
	if err != nil {
		return toolError("failed to format dreams: %v", err)
	}

	return toolText(fmt.Sprintf("Found %d dream(s):\n\n%s", len(dreams), string(data)))
}

func formatJSONResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError("failed to format result: %v", err)
	}

	return toolText(string(data))
}

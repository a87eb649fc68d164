package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const dreamURIPrefix = "dream://"

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: dreamURIPrefix + "{dream_id}",
		Name:        "dream",
		Description: "Fetch a dream by its ID, with its text and any stored interpretation and tags.",
		MIMEType:    "application/json",
	}, s.handleDreamResource)
}

func (s *Server) handleDreamResource(
	ctx context.Context,
	request *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	uri := request.Params.URI
	dreamID, ok := strings.CutPrefix(uri, dreamURIPrefix)
	if !ok {
		return nil, fmt.Errorf("invalid dream URI format: %s", uri)
	}
	if dreamID == "" {
		return nil, fmt.Errorf("missing dream_id in URI: %s", uri)
	}

	dream, err := s.api.GetDream(ctx, dreamID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dream %s: %w", dreamID, err)
	}

	data, err := json.MarshalIndent(dream, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dream: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// Package main provides the entry point for the dream journal MCP server.
//
// The server lets AI agents read, record and analyse dreams through the
// journal's HTTP API.
//
// Configuration:
//
//	DREAM_JOURNAL_API_URL   - Base URL of the API (default: http://localhost:8080)
//	DREAM_JOURNAL_API_TOKEN - API token for authentication (required, format: user_api|xxx)
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/jbeshir/dream-journal/cmd/mcp/client"
	"github.com/jbeshir/dream-journal/cmd/mcp/server"
)

func main() {
	apiURL := os.Getenv("DREAM_JOURNAL_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	apiToken := os.Getenv("DREAM_JOURNAL_API_TOKEN")
	if apiToken == "" {
		log.Fatal("DREAM_JOURNAL_API_TOKEN environment variable is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	apiClient := client.NewClient(apiURL, apiToken)
	srv := server.NewServer(apiClient)

	if err := srv.Run(ctx); err != nil {
		log.Fatal(err)
	}
}

package server

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/jbeshir/dream-journal/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestServer_RunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler)))

	s := &Server{
		TLSDisabled:     true,
		TLSDisabledPort: 0,
		Router:          http.NotFoundHandler(),
	}

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunNeedsHostnames(t *testing.T) {
	s := &Server{Router: http.NotFoundHandler()}
	assert.Error(t, s.Run(context.Background()))
}

package app

import (
	"time"

	"github.com/jbeshir/dream-journal/internal/command"
	"github.com/jbeshir/dream-journal/internal/domain"
)

// CommandConfig tunes the use cases built by NewCommands.
type CommandConfig struct {
	EmbedTimeout time.Duration
	Cluster      domain.ClusterConfig
}

// DefaultCommandConfig returns the default command configuration.
func DefaultCommandConfig() CommandConfig {
	return CommandConfig{
		EmbedTimeout: command.DefaultEmbedTimeout,
		Cluster:      domain.DefaultClusterConfig(),
	}
}

// DefaultInsightCacheMaxAge is how long clients may cache the daily insight.
const DefaultInsightCacheMaxAge = time.Hour

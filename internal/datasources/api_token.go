package datasources

import (
	"context"
	"time"

	"github.com/jbeshir/dream-journal/internal/domain"
)

// APITokenRepository combines all API token operations.
type APITokenRepository interface {
	APITokenCreator
	APITokenByHashGetter
	APITokenLastUsedUpdater
	UserAPITokenLister
	UserAPITokenCounter
	APITokenRevoker
}

type APITokenCreator interface {
	CreateAPIToken(ctx context.Context, token domain.APIToken) error
}

// APITokenByHashGetter returns ErrNotFound for unknown hashes.
type APITokenByHashGetter interface {
	GetAPITokenByHash(ctx context.Context, tokenHash string) (domain.APIToken, error)
}

type APITokenLastUsedUpdater interface {
	UpdateAPITokenLastUsed(ctx context.Context, tokenID string, usedAt time.Time) error
}

type UserAPITokenLister interface {
	ListUserAPITokens(ctx context.Context, userID string) ([]domain.APIToken, error)
}

// UserAPITokenCounter counts tokens that are neither revoked nor expired at now.
type UserAPITokenCounter interface {
	CountUserActiveAPITokens(ctx context.Context, userID string, now time.Time) (int64, error)
}

// APITokenRevoker returns ErrNotFound when userID holds no such token.
type APITokenRevoker interface {
	RevokeAPIToken(ctx context.Context, tokenID, userID string, revokedAt time.Time) error
}

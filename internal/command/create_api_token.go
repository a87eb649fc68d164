package command

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"
)

// MaxAPITokensPerUser is the maximum number of active tokens a user can have.
const MaxAPITokensPerUser = 10

// ErrTokenLimitExceeded is returned when a user has reached the maximum number of active tokens.
var ErrTokenLimitExceeded = errors.New("user has reached maximum number of active tokens")

// APITokenPrefix is the prefix for API tokens in the Authorization header.
const APITokenPrefix = "user_api|"

type CreateAPITokenRequest struct {
	UserID string
	Name   *string
	// ExpiresIn of zero creates a token that never expires.
	ExpiresIn time.Duration
}

type CreateAPITokenResponse struct {
	Token     domain.APIToken
	FullToken string
}

// CreateAPIToken issues a new API token. Only the token's hash is stored; the
// full token is returned once.
type CreateAPIToken struct {
	TokenCounter datasources.UserAPITokenCounter
	TokenCreator datasources.APITokenCreator
	Now          func() time.Time
}

func NewCreateAPIToken(
	tokenCounter datasources.UserAPITokenCounter,
	tokenCreator datasources.APITokenCreator,
) *CreateAPIToken {
	return &CreateAPIToken{
		TokenCounter: tokenCounter,
		TokenCreator: tokenCreator,
		Now:          time.Now,
	}
}

func (c *CreateAPIToken) Execute(ctx context.Context, req CreateAPITokenRequest) (CreateAPITokenResponse, error) {
	now := nowFunc(c.Now)

	count, err := c.TokenCounter.CountUserActiveAPITokens(ctx, req.UserID, now)
	if err != nil {
		return CreateAPITokenResponse{}, fmt.Errorf("counting user tokens: %w", err)
	}
	if count >= MaxAPITokensPerUser {
		return CreateAPITokenResponse{}, ErrTokenLimitExceeded
	}

	// 32 random bytes, 64 hex chars
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return CreateAPITokenResponse{}, fmt.Errorf("generating random token: %w", err)
	}
	tokenHex := hex.EncodeToString(tokenBytes)
	fullToken := APITokenPrefix + tokenHex

	token := domain.APIToken{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		TokenHash: HashAPIToken(fullToken),
		Prefix:    tokenHex[:8],
		Name:      req.Name,
		CreatedAt: now,
	}
	if req.ExpiresIn > 0 {
		expiresAt := now.Add(req.ExpiresIn)
		token.ExpiresAt = &expiresAt
	}

	if err := c.TokenCreator.CreateAPIToken(ctx, token); err != nil {
		return CreateAPITokenResponse{}, fmt.Errorf("creating token: %w", err)
	}

	return CreateAPITokenResponse{
		Token:     token,
		FullToken: fullToken,
	}, nil
}

// HashAPIToken is the hex SHA-256 of a full token, as stored.
func HashAPIToken(fullToken string) string {
	hash := sha256.Sum256([]byte(fullToken))
	return hex.EncodeToString(hash[:])
}

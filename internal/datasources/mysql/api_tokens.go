package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"
)

var apiTokenColumns = []string{
	"id",
	"user_id",
	"token_hash",
	"prefix",
	"name",
	"created_at",
	"last_used_at",
	"expires_at",
	"revoked_at",
}

func scanAPIToken(row rowScanner) (domain.APIToken, error) {
	var (
		t                            domain.APIToken
		name                         sql.NullString
		lastUsed, expires, revokedAt sql.NullTime
	)
	if err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.TokenHash,
		&t.Prefix,
		&name,
		&t.CreatedAt,
		&lastUsed,
		&expires,
		&revokedAt,
	); err != nil {
		return domain.APIToken{}, err
	}
	if name.Valid {
		t.Name = &name.String
	}
	t.LastUsedAt = timePtr(lastUsed)
	t.ExpiresAt = timePtr(expires)
	t.RevokedAt = timePtr(revokedAt)
	return t, nil
}

func (r *Repository) CreateAPIToken(ctx context.Context, token domain.APIToken) error {
	var name sql.NullString
	if token.Name != nil {
		name = sql.NullString{String: *token.Name, Valid: true}
	}

	ib := sqlbuilder.NewInsertBuilder()
	ib.InsertInto("api_tokens")
	ib.Cols("id", "user_id", "token_hash", "prefix", "name", "created_at", "expires_at")
	ib.Values(
		token.ID,
		token.UserID,
		token.TokenHash,
		token.Prefix,
		name,
		token.CreatedAt,
		nullTimePtr(token.ExpiresAt),
	)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting API token: %w", err)
	}
	return nil
}

func (r *Repository) GetAPITokenByHash(ctx context.Context, tokenHash string) (domain.APIToken, error) {
	sb := sqlbuilder.Select(apiTokenColumns...)
	sb.From("api_tokens")
	sb.Where(sb.Equal("token_hash", tokenHash))

	query, args := sb.Build()
	token, err := scanAPIToken(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.APIToken{}, datasources.ErrNotFound
	}
	if err != nil {
		return domain.APIToken{}, fmt.Errorf("fetching API token: %w", err)
	}
	return token, nil
}

func (r *Repository) UpdateAPITokenLastUsed(ctx context.Context, tokenID string, usedAt time.Time) error {
	ub := sqlbuilder.NewUpdateBuilder()
	ub.Update("api_tokens")
	ub.Set(ub.Assign("last_used_at", usedAt))
	ub.Where(ub.Equal("id", tokenID))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating API token last used time: %w", err)
	}
	return nil
}

func (r *Repository) ListUserAPITokens(ctx context.Context, userID string) ([]domain.APIToken, error) {
	sb := sqlbuilder.Select(apiTokenColumns...)
	sb.From("api_tokens")
	sb.Where(sb.Equal("user_id", userID))
	sb.OrderBy("created_at DESC")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing API tokens: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tokens := []domain.APIToken{}
	for rows.Next() {
		token, err := scanAPIToken(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning API token: %w", err)
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating API tokens: %w", err)
	}
	return tokens, nil
}

func (r *Repository) CountUserActiveAPITokens(ctx context.Context, userID string, now time.Time) (int64, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("api_tokens")
	sb.Where(
		sb.Equal("user_id", userID),
		sb.IsNull("revoked_at"),
		sb.Or(sb.IsNull("expires_at"), sb.GreaterThan("expires_at", now)),
	)

	query, args := sb.Build()
	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting active API tokens: %w", err)
	}
	return count, nil
}

func (r *Repository) RevokeAPIToken(ctx context.Context, tokenID, userID string, revokedAt time.Time) error {
	ub := sqlbuilder.NewUpdateBuilder()
	ub.Update("api_tokens")
	ub.Set(ub.Assign("revoked_at", revokedAt))
	ub.Where(
		ub.Equal("id", tokenID),
		ub.Equal("user_id", userID),
		ub.IsNull("revoked_at"),
	)

	query, args := ub.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("revoking API token: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking revoked API token: %w", err)
	}
	if affected == 0 {
		return datasources.ErrNotFound
	}
	return nil
}

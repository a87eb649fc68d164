package mysql

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"
)

var _ datasources.DatasetRepository = (*Repository)(nil)
var _ datasources.EmbeddingRepository = (*Repository)(nil)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

var dreamColumns = []string{
	"id",
	"owner_id",
	"title",
	"body",
	"created_at",
	"updated_at",
	"symbols",
	"themes",
	"psych_interpretation",
	"mystic_interpretation",
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDream(row rowScanner) (domain.Dream, error) {
	var (
		d               domain.Dream
		updatedAt       sql.NullTime
		symbols, themes []byte
		psych, mystic   sql.NullString
	)
	if err := row.Scan(
		&d.ID,
		&d.OwnerID,
		&d.Title,
		&d.Body,
		&d.CreatedAt,
		&updatedAt,
		&symbols,
		&themes,
		&psych,
		&mystic,
	); err != nil {
		return domain.Dream{}, err
	}

	var err error
	if d.Symbols, err = decodeStrings(symbols); err != nil {
		return domain.Dream{}, fmt.Errorf("decoding symbols for dream [%s]: %w", d.ID, err)
	}
	if d.Themes, err = decodeStrings(themes); err != nil {
		return domain.Dream{}, fmt.Errorf("decoding themes for dream [%s]: %w", d.ID, err)
	}
	d.UpdatedAt = updatedAt.Time
	d.PsychInterpretation = psych.String
	d.MysticInterpretation = mystic.String

	return d, nil
}

func (r *Repository) CreateDream(ctx context.Context, dream domain.Dream) error {
	symbols, err := encodeStrings(dream.Symbols)
	if err != nil {
		return fmt.Errorf("encoding symbols: %w", err)
	}
	themes, err := encodeStrings(dream.Themes)
	if err != nil {
		return fmt.Errorf("encoding themes: %w", err)
	}

	var embedding []byte
	if dream.HasEmbedding() {
		embedding = float32SliceToBytes(dream.Embedding)
	}

	ib := sqlbuilder.NewInsertBuilder()
	ib.InsertInto("dreams")
	ib.Cols(append(slices.Clone(dreamColumns), "embedding")...)
	ib.Values(
		dream.ID,
		dream.OwnerID,
		dream.Title,
		dream.Body,
		dream.CreatedAt,
		nullTime(dream.UpdatedAt),
		symbols,
		themes,
		nullString(dream.PsychInterpretation),
		nullString(dream.MysticInterpretation),
		embedding,
	)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting dream: %w", err)
	}

	if len(dream.SharedWith) > 0 {
		if err := r.SetDreamShares(ctx, dream.ID, dream.SharedWith); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) FetchDream(ctx context.Context, dreamID string) (domain.Dream, error) {
	sb := sqlbuilder.Select(dreamColumns...)
	sb.From("dreams")
	sb.Where(sb.Equal("id", dreamID))

	query, args := sb.Build()
	dream, err := scanDream(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Dream{}, datasources.ErrNotFound
	}
	if err != nil {
		return domain.Dream{}, fmt.Errorf("fetching dream [%s]: %w", dreamID, err)
	}

	shares, err := r.fetchShares(ctx, []string{dreamID})
	if err != nil {
		return domain.Dream{}, err
	}
	dream.SharedWith = shares[dreamID]

	return dream, nil
}

func (r *Repository) ListDreamsByOwner(
	ctx context.Context,
	ownerID string,
	page, pageSize int,
) ([]domain.Dream, error) {
	sb := sqlbuilder.Select(dreamColumns...)
	sb.From("dreams")
	sb.Where(sb.Equal("owner_id", ownerID))
	sb.OrderBy("created_at DESC", "id")
	if pageSize > 0 {
		limit, offset := paginationToLimitOffset(page, pageSize)
		sb.Limit(int(limit))
		sb.Offset(int(offset))
	}

	return r.queryDreams(ctx, sb)
}

func (r *Repository) ListDreamOwners(ctx context.Context) ([]string, error) {
	sb := sqlbuilder.Select("owner_id")
	sb.Distinct()
	sb.From("dreams")
	sb.OrderBy("owner_id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing dream owners: %w", err)
	}
	defer func() { _ = rows.Close() }()

	owners := []string{}
	for rows.Next() {
		var owner string
		if err := rows.Scan(&owner); err != nil {
			return nil, fmt.Errorf("scanning dream owner: %w", err)
		}
		owners = append(owners, owner)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dream owners: %w", err)
	}
	return owners, nil
}

func (r *Repository) ListDreamsSharedWith(
	ctx context.Context,
	userID, ownerID string,
) ([]domain.Dream, error) {
	cols := make([]string, 0, len(dreamColumns))
	for _, c := range dreamColumns {
		cols = append(cols, "d."+c)
	}

	sb := sqlbuilder.Select(cols...)
	sb.From("dreams AS d")
	sb.Join("dream_shares AS s", "s.dream_id = d.id")
	conds := []string{sb.Equal("s.user_id", userID)}
	if ownerID != "" {
		conds = append(conds, sb.Equal("d.owner_id", ownerID))
	}
	sb.Where(conds...)
	sb.OrderBy("d.created_at DESC", "d.id")

	return r.queryDreams(ctx, sb)
}

func (r *Repository) queryDreams(ctx context.Context, sb *sqlbuilder.SelectBuilder) ([]domain.Dream, error) {
	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running dreams query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	dreams := []domain.Dream{}
	for rows.Next() {
		d, err := scanDream(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning dreams: %w", err)
		}
		dreams = append(dreams, d)
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("closing rows iterator: %w", err)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	ids := make([]string, 0, len(dreams))
	for _, d := range dreams {
		ids = append(ids, d.ID)
	}
	shares, err := r.fetchShares(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range dreams {
		dreams[i].SharedWith = shares[dreams[i].ID]
	}

	return dreams, nil
}

func (r *Repository) fetchShares(ctx context.Context, dreamIDs []string) (map[string][]string, error) {
	shares := make(map[string][]string)
	if len(dreamIDs) == 0 {
		return shares, nil
	}

	sb := sqlbuilder.Select("dream_id", "user_id")
	sb.From("dream_shares")
	sb.Where(sb.In("dream_id", sqlbuilder.Flatten(dreamIDs)...))
	sb.OrderBy("dream_id", "user_id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching dream shares: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var dreamID, userID string
		if err := rows.Scan(&dreamID, &userID); err != nil {
			return nil, fmt.Errorf("scanning dream share: %w", err)
		}
		shares[dreamID] = append(shares[dreamID], userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dream shares: %w", err)
	}
	return shares, nil
}

func (r *Repository) UpdateDreamContent(
	ctx context.Context,
	dreamID, title, body string,
	updatedAt time.Time,
) error {
	ub := sqlbuilder.NewUpdateBuilder()
	ub.Update("dreams")
	ub.Set(
		ub.Assign("title", title),
		ub.Assign("body", body),
		ub.Assign("updated_at", updatedAt),
		ub.Assign("embedding", nil),
	)
	ub.Where(ub.Equal("id", dreamID))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating dream [%s]: %w", dreamID, err)
	}
	return nil
}

func (r *Repository) SetDreamInterpretation(
	ctx context.Context,
	dreamID string,
	interpretation domain.Interpretation,
) error {
	symbols, err := encodeStrings(interpretation.Symbols)
	if err != nil {
		return fmt.Errorf("encoding symbols: %w", err)
	}
	themes, err := encodeStrings(interpretation.Themes)
	if err != nil {
		return fmt.Errorf("encoding themes: %w", err)
	}

	ub := sqlbuilder.NewUpdateBuilder()
	ub.Update("dreams")
	ub.Set(
		ub.Assign("psych_interpretation", interpretation.PsychInterpretation),
		ub.Assign("mystic_interpretation", interpretation.MysticInterpretation),
		ub.Assign("symbols", symbols),
		ub.Assign("themes", themes),
	)
	ub.Where(ub.Equal("id", dreamID))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("storing interpretation for dream [%s]: %w", dreamID, err)
	}
	return nil
}

// SetDreamShares replaces the share list of a dream.
func (r *Repository) SetDreamShares(ctx context.Context, dreamID string, userIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	del := sqlbuilder.NewDeleteBuilder()
	del.DeleteFrom("dream_shares")
	del.Where(del.Equal("dream_id", dreamID))
	query, args := del.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clearing dream shares: %w", err)
	}

	if len(userIDs) > 0 {
		ib := sqlbuilder.NewInsertBuilder()
		ib.InsertIgnoreInto("dream_shares")
		ib.Cols("dream_id", "user_id")
		for _, userID := range userIDs {
			ib.Values(dreamID, userID)
		}
		query, args := ib.Build()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting dream shares: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (r *Repository) DeleteDream(ctx context.Context, dreamID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	delShares := sqlbuilder.NewDeleteBuilder()
	delShares.DeleteFrom("dream_shares")
	delShares.Where(delShares.Equal("dream_id", dreamID))
	query, args := delShares.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting dream shares: %w", err)
	}

	delDream := sqlbuilder.NewDeleteBuilder()
	delDream.DeleteFrom("dreams")
	delDream.Where(delDream.Equal("id", dreamID))
	query, args = delDream.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting dream: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Helper functions for column encoding

func encodeStrings(values []string) ([]byte, error) {
	if values == nil {
		values = []string{}
	}
	return json.Marshal(values)
}

func decodeStrings(raw []byte) ([]string, error) {
	values := []string{}
	if len(raw) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func nullTimePtr(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return nullTime(*t)
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

// Helper functions for binary vector serialization

func float32SliceToBytes(floats []float32) []byte {
	bytes := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(bytes[i*4:], math.Float32bits(f))
	}
	return bytes
}

func bytesToFloat32Slice(bytes []byte) ([]float32, error) {
	if len(bytes)%4 != 0 {
		return nil, fmt.Errorf("invalid byte length for float32 slice: %d", len(bytes))
	}
	floats := make([]float32, len(bytes)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(bytes[i*4:]))
	}
	return floats, nil
}

// paginationToLimitOffset converts page/pageSize to limit/offset with bounds checking.
// Clamps values to int32 range to prevent overflow.
func paginationToLimitOffset(page, pageSize int) (limit, offset int32) {
	if page < 1 {
		page = 1
	}
	if pageSize > math.MaxInt32 {
		pageSize = math.MaxInt32
	}
	limit = int32(pageSize) //nolint:gosec // bounds checked above

	off := (page - 1) * pageSize
	if off > math.MaxInt32 {
		off = math.MaxInt32
	}
	offset = int32(off) //nolint:gosec // bounds checked above

	return limit, offset
}

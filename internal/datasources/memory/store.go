// Package memory keeps the journal in process memory. It backs local
// development and tests; nothing survives a restart.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"
)

var _ datasources.DatasetRepository = (*Store)(nil)
var _ datasources.EmbeddingRepository = (*Store)(nil)

type Store struct {
	mu       sync.RWMutex
	dreams   map[string]domain.Dream
	patterns map[string]domain.PatternAnalysis
	themes   map[string]domain.ThemeAnalysis
	tokens   map[string]domain.APIToken
}

func New() *Store {
	return &Store{
		dreams:   make(map[string]domain.Dream),
		patterns: make(map[string]domain.PatternAnalysis),
		themes:   make(map[string]domain.ThemeAnalysis),
		tokens:   make(map[string]domain.APIToken),
	}
}

// copyDream detaches the slices of d from the stored record.
func copyDream(d domain.Dream) domain.Dream {
	d.Symbols = slices.Clone(d.Symbols)
	d.Themes = slices.Clone(d.Themes)
	d.SharedWith = slices.Clone(d.SharedWith)
	d.Embedding = slices.Clone(d.Embedding)
	return d
}

// withoutEmbedding mirrors the document store, which never returns vectors.
func withoutEmbedding(d domain.Dream) domain.Dream {
	d = copyDream(d)
	d.Embedding = nil
	return d
}

func newestFirst(dreams []domain.Dream) {
	sort.SliceStable(dreams, func(i, j int) bool {
		if !dreams[i].CreatedAt.Equal(dreams[j].CreatedAt) {
			return dreams[i].CreatedAt.After(dreams[j].CreatedAt)
		}
		return dreams[i].ID < dreams[j].ID
	})
}

func (s *Store) CreateDream(_ context.Context, dream domain.Dream) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dreams[dream.ID] = copyDream(dream)
	return nil
}

func (s *Store) FetchDream(_ context.Context, dreamID string) (domain.Dream, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.dreams[dreamID]
	if !ok {
		return domain.Dream{}, datasources.ErrNotFound
	}
	return withoutEmbedding(d), nil
}

func (s *Store) ListDreamsByOwner(_ context.Context, ownerID string, page, pageSize int) ([]domain.Dream, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dreams := []domain.Dream{}
	for _, d := range s.dreams {
		if d.OwnerID == ownerID {
			dreams = append(dreams, withoutEmbedding(d))
		}
	}
	newestFirst(dreams)

	if pageSize <= 0 {
		return dreams, nil
	}
	start := (max(page, 1) - 1) * pageSize
	if start >= len(dreams) {
		return []domain.Dream{}, nil
	}
	return dreams[start:min(start+pageSize, len(dreams))], nil
}

func (s *Store) ListDreamOwners(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	owners := []string{}
	for _, d := range s.dreams {
		if _, ok := seen[d.OwnerID]; !ok {
			seen[d.OwnerID] = struct{}{}
			owners = append(owners, d.OwnerID)
		}
	}
	sort.Strings(owners)
	return owners, nil
}

func (s *Store) ListDreamsSharedWith(_ context.Context, userID, ownerID string) ([]domain.Dream, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dreams := []domain.Dream{}
	for _, d := range s.dreams {
		if ownerID != "" && d.OwnerID != ownerID {
			continue
		}
		if slices.Contains(d.SharedWith, userID) {
			dreams = append(dreams, withoutEmbedding(d))
		}
	}
	newestFirst(dreams)
	return dreams, nil
}

func (s *Store) UpdateDreamContent(_ context.Context, dreamID, title, body string, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.dreams[dreamID]
	if !ok {
		return datasources.ErrNotFound
	}
	d.Title, d.Body, d.UpdatedAt, d.Embedding = title, body, updatedAt, nil
	s.dreams[dreamID] = d
	return nil
}

func (s *Store) SetDreamInterpretation(_ context.Context, dreamID string, in domain.Interpretation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.dreams[dreamID]
	if !ok {
		return datasources.ErrNotFound
	}
	d.PsychInterpretation = in.PsychInterpretation
	d.MysticInterpretation = in.MysticInterpretation
	d.Symbols = slices.Clone(in.Symbols)
	d.Themes = slices.Clone(in.Themes)
	s.dreams[dreamID] = d
	return nil
}

func (s *Store) SetDreamShares(_ context.Context, dreamID string, userIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.dreams[dreamID]
	if !ok {
		return datasources.ErrNotFound
	}
	d.SharedWith = slices.Clone(userIDs)
	s.dreams[dreamID] = d
	return nil
}

func (s *Store) DeleteDream(_ context.Context, dreamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.dreams, dreamID)
	return nil
}

func (s *Store) FetchDreamEmbeddings(_ context.Context, ownerID string, dreamIDs []string) (map[string][]float32, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string][]float32, len(dreamIDs))
	for _, id := range dreamIDs {
		d, ok := s.dreams[id]
		if ok && d.OwnerID == ownerID && d.HasEmbedding() {
			result[id] = slices.Clone(d.Embedding)
		}
	}
	return result, nil
}

func (s *Store) SetDreamEmbedding(_ context.Context, ownerID, dreamID string, embedding []float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.dreams[dreamID]
	if !ok || d.OwnerID != ownerID {
		return datasources.ErrNotFound
	}
	d.Embedding = slices.Clone(embedding)
	s.dreams[dreamID] = d
	return nil
}

func (s *Store) DeleteDreamEmbedding(_ context.Context, ownerID, dreamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.dreams[dreamID]
	if !ok || d.OwnerID != ownerID {
		return nil
	}
	d.Embedding = nil
	s.dreams[dreamID] = d
	return nil
}

func (s *Store) GetPatternAnalysis(_ context.Context, ownerID string) (domain.PatternAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.patterns[ownerID]
	if !ok {
		return domain.PatternAnalysis{}, datasources.ErrNotFound
	}
	return a, nil
}

func (s *Store) SavePatternAnalysis(_ context.Context, a domain.PatternAnalysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patterns[a.OwnerID] = a
	return nil
}

func (s *Store) GetThemeAnalysis(_ context.Context, ownerID string) (domain.ThemeAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.themes[ownerID]
	if !ok {
		return domain.ThemeAnalysis{}, datasources.ErrNotFound
	}
	a.Themes = slices.Clone(a.Themes)
	a.RecentRuns = slices.Clone(a.RecentRuns)
	return a, nil
}

func (s *Store) SaveThemeAnalysis(_ context.Context, a domain.ThemeAnalysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.Themes = slices.Clone(a.Themes)
	a.RecentRuns = slices.Clone(a.RecentRuns)
	s.themes[a.OwnerID] = a
	return nil
}

func (s *Store) CreateAPIToken(_ context.Context, token domain.APIToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token.ID] = token
	return nil
}

func (s *Store) GetAPITokenByHash(_ context.Context, tokenHash string) (domain.APIToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tokens {
		if t.TokenHash == tokenHash {
			return t, nil
		}
	}
	return domain.APIToken{}, datasources.ErrNotFound
}

func (s *Store) UpdateAPITokenLastUsed(_ context.Context, tokenID string, usedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tokens[tokenID]
	if !ok {
		return datasources.ErrNotFound
	}
	t.LastUsedAt = &usedAt
	s.tokens[tokenID] = t
	return nil
}

func (s *Store) ListUserAPITokens(_ context.Context, userID string) ([]domain.APIToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tokens := []domain.APIToken{}
	for _, t := range s.tokens {
		if t.UserID == userID {
			tokens = append(tokens, t)
		}
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i].CreatedAt.After(tokens[j].CreatedAt) })
	return tokens, nil
}

func (s *Store) CountUserActiveAPITokens(_ context.Context, userID string, now time.Time) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var count int64
	for _, t := range s.tokens {
		if t.UserID == userID && t.IsActiveAt(now) {
			count++
		}
	}
	return count, nil
}

func (s *Store) RevokeAPIToken(_ context.Context, tokenID, userID string, revokedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tokens[tokenID]
	if !ok || t.UserID != userID || t.RevokedAt != nil {
		return datasources.ErrNotFound
	}
	t.RevokedAt = &revokedAt
	s.tokens[tokenID] = t
	return nil
}

package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cinebook/pkg/cache"
)

const draftKeyPrefix = "cinebook:checkout:draft:"

// DraftStore persists checkout drafts keyed by session.
type DraftStore interface {
	Save(ctx context.Context, sessionID string, draft *Draft) error
	Load(ctx context.Context, sessionID string) (*Draft, error)
	Clear(ctx context.Context, sessionID string) error
}

type redisDraftStore struct {
	cache cache.Service
	ttl   time.Duration
}

// NewDraftStore returns a DraftStore backed by the shared cache. Drafts
// expire after ttl so abandoned checkouts clean themselves up.
func NewDraftStore(cacheService cache.Service, ttl time.Duration) DraftStore {
	return &redisDraftStore{cache: cacheService, ttl: ttl}
}

func draftKey(sessionID string) string {
	return draftKeyPrefix + sessionID
}

func (s *redisDraftStore) Save(ctx context.Context, sessionID string, draft *Draft) error {
	if err := draft.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid draft: %w", err)
	}
	if err := s.cache.Set(ctx, draftKey(sessionID), draft, s.ttl); err != nil {
		return fmt.Errorf("failed to save checkout draft: %w", err)
	}
	return nil
}

func (s *redisDraftStore) Load(ctx context.Context, sessionID string) (*Draft, error) {
	var draft Draft
	err := s.cache.Get(ctx, draftKey(sessionID), &draft)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, ErrNoDraft
		}
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
			// A corrupt draft is unusable. Treat it as absent rather
			// than surfacing a server error.
			return nil, ErrNoDraft
		}
		return nil, fmt.Errorf("failed to load checkout draft: %w", err)
	}
	if err := draft.Validate(); err != nil {
		return nil, ErrNoDraft
	}
	return &draft, nil
}

func (s *redisDraftStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.cache.Delete(ctx, draftKey(sessionID)); err != nil {
		return fmt.Errorf("failed to clear checkout draft: %w", err)
	}
	return nil
}

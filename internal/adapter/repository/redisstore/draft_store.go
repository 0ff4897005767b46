package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/tutor_booking/internal/core/domain"
)

type DraftStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDraftStore(rdb *redis.Client, ttl time.Duration) *DraftStore {
	return &DraftStore{rdb: rdb, ttl: ttl}
}

func DraftKey(userID, tutorID string) string {
	return fmt.Sprintf("draft:%s:%s", userID, tutorID)
}

func (s *DraftStore) SaveDraft(ctx context.Context, userID, tutorID string, draft domain.BookingDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}

	if err := s.rdb.Set(ctx, DraftKey(userID, tutorID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}

	return nil
}

func (s *DraftStore) GetDraft(ctx context.Context, userID, tutorID string) (*domain.BookingDraft, error) {
	raw, err := s.rdb.Get(ctx, DraftKey(userID, tutorID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrDraftNotFound
		}
		return nil, fmt.Errorf("load draft: %w", err)
	}

	var draft domain.BookingDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}

	return &draft, nil
}

func (s *DraftStore) DeleteDraft(ctx context.Context, userID, tutorID string) error {
	return s.rdb.Del(ctx, DraftKey(userID, tutorID)).Err()
}

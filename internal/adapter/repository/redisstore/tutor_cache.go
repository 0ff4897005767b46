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

type TutorCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewTutorCache(rdb *redis.Client, ttl time.Duration) *TutorCache {
	return &TutorCache{rdb: rdb, ttl: ttl}
}

func TutorKey(tutorID string) string {
	return fmt.Sprintf("tutor:%s", tutorID)
}

func (c *TutorCache) GetTutor(ctx context.Context, tutorID string) (*domain.Tutor, error) {
	raw, err := c.rdb.Get(ctx, TutorKey(tutorID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var tutor domain.Tutor
	if err := json.Unmarshal(raw, &tutor); err != nil {
		// Treat unreadable entries as a miss; the next SetTutor overwrites them.
		return nil, nil
	}

	return &tutor, nil
}

func (c *TutorCache) SetTutor(ctx context.Context, tutor *domain.Tutor) error {
	raw, err := json.Marshal(tutor)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, TutorKey(tutor.ID), raw, c.ttl).Err()
}

func (c *TutorCache) InvalidateTutor(ctx context.Context, tutorID string) error {
	return c.rdb.Del(ctx, TutorKey(tutorID)).Err()
}

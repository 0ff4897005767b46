package redisstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/tutor_booking/internal/adapter/repository/redisstore"
	"github.com/srgjo27/tutor_booking/internal/core/domain"
)

var draft = domain.BookingDraft{
	AvailabilityID: "slot-fri",
	CategoryID:     "cat-math",
	Date:           "2024-06-21",
	StartTime:      "10:00",
	EndTime:        "11:30",
}

func TestDraftStore_SaveGetDelete(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	store := redisstore.NewDraftStore(db, 30*time.Minute)
	ctx := context.Background()

	raw, err := json.Marshal(draft)
	require.NoError(t, err)

	key := "draft:student-1:tutor-7"
	mockRedis.ExpectSet(key, raw, 30*time.Minute).SetVal("OK")
	mockRedis.ExpectGet(key).SetVal(string(raw))
	mockRedis.ExpectDel(key).SetVal(1)

	require.NoError(t, store.SaveDraft(ctx, "student-1", "tutor-7", draft))

	got, err := store.GetDraft(ctx, "student-1", "tutor-7")
	require.NoError(t, err)
	assert.Equal(t, draft, *got)

	require.NoError(t, store.DeleteDraft(ctx, "student-1", "tutor-7"))

	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestDraftStore_Missing(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	store := redisstore.NewDraftStore(db, time.Minute)

	mockRedis.ExpectGet("draft:u:t").RedisNil()

	_, err := store.GetDraft(context.Background(), "u", "t")

	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestDraftStore_SaveFailure(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	store := redisstore.NewDraftStore(db, time.Minute)

	raw, _ := json.Marshal(draft)
	mockRedis.ExpectSet("draft:u:t", raw, time.Minute).SetErr(errors.New("OOM"))

	err := store.SaveDraft(context.Background(), "u", "t", draft)

	assert.ErrorContains(t, err, "save draft")
}

func TestTutorCache(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	cache := redisstore.NewTutorCache(db, 5*time.Minute)
	ctx := context.Background()

	tutor := &domain.Tutor{
		ID:           "tutor-7",
		UserID:       "user-7",
		HourlyRate:   40,
		Availability: []domain.AvailabilitySlot{{ID: "slot-fri", DayOfWeek: domain.Friday, StartTime: "10:00", EndTime: "12:00"}},
	}
	raw, err := json.Marshal(tutor)
	require.NoError(t, err)

	mockRedis.ExpectGet("tutor:tutor-7").RedisNil()
	mockRedis.ExpectSet("tutor:tutor-7", raw, 5*time.Minute).SetVal("OK")
	mockRedis.ExpectGet("tutor:tutor-7").SetVal(string(raw))
	mockRedis.ExpectDel("tutor:tutor-7").SetVal(1)

	miss, err := cache.GetTutor(ctx, "tutor-7")
	require.NoError(t, err)
	assert.Nil(t, miss)

	require.NoError(t, cache.SetTutor(ctx, tutor))

	hit, err := cache.GetTutor(ctx, "tutor-7")
	require.NoError(t, err)
	assert.Equal(t, tutor, hit)

	require.NoError(t, cache.InvalidateTutor(ctx, "tutor-7"))
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/srgjo27/tutor_booking/internal/core/domain"
	"github.com/srgjo27/tutor_booking/internal/core/ports/mocks"
	"github.com/srgjo27/tutor_booking/internal/core/services"
)

type fixture struct {
	tutors  *mocks.TutorDirectory
	cache   *mocks.TutorCache
	gateway *mocks.BookingGateway
	drafts  *mocks.DraftStore
	svc     *services.BookingService
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		tutors:  mocks.NewTutorDirectory(t),
		cache:   mocks.NewTutorCache(t),
		gateway: mocks.NewBookingGateway(t),
		drafts:  mocks.NewDraftStore(t),
	}
	f.svc = services.NewBookingService(f.tutors, f.cache, f.gateway, f.drafts, zap.NewNop(), 30).
		WithClock(func() time.Time { return time.Date(2024, 6, 17, 15, 0, 0, 0, time.UTC) })
	return f
}

func testTutor() *domain.Tutor {
	return &domain.Tutor{
		ID:         "tutor-7",
		UserID:     "user-7",
		Name:       "Ada",
		HourlyRate: 40,
		Categories: []domain.Category{{ID: "cat-math", Name: "Math"}},
		Availability: []domain.AvailabilitySlot{
			{ID: "slot-fri", DayOfWeek: domain.Friday, StartTime: "10:00", EndTime: "12:00"},
			{ID: "slot-mon", DayOfWeek: domain.Monday, StartTime: "18:00", EndTime: "20:00"},
		},
	}
}

var student = domain.Identity{UserID: "student-1", Role: domain.RoleStudent}

func validDraft() domain.BookingDraft {
	return domain.BookingDraft{
		AvailabilityID: "slot-fri",
		CategoryID:     "cat-math",
		Date:           "2024-06-21",
		StartTime:      "10:00",
		EndTime:        "11:30",
	}
}

func TestGetTutor_CacheMissFetchesAndStores(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tutor := testTutor()

	f.cache.On("GetTutor", ctx, "tutor-7").Return(nil, nil)
	f.tutors.On("GetTutor", ctx, "tok", "tutor-7").Return(tutor, nil)
	f.cache.On("SetTutor", ctx, tutor).Return(nil)

	got, err := f.svc.GetTutor(ctx, "tok", "tutor-7")

	require.NoError(t, err)
	assert.Equal(t, tutor, got)
}

func TestGetTutor_CacheHitSkipsBackend(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.cache.On("GetTutor", ctx, "tutor-7").Return(testTutor(), nil)

	got, err := f.svc.GetTutor(ctx, "tok", "tutor-7")

	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)
	f.tutors.AssertNotCalled(t, "GetTutor", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetTutor_NotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.cache.On("GetTutor", ctx, "nope").Return(nil, errors.New("redis down"))
	f.tutors.On("GetTutor", ctx, "tok", "nope").Return(nil, domain.ErrTutorNotFound)

	_, err := f.svc.GetTutor(ctx, "tok", "nope")

	assert.ErrorIs(t, err, domain.ErrTutorNotFound)
}

func TestAvailability_ResolvesNextDates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.cache.On("GetTutor", ctx, "tutor-7").Return(testTutor(), nil)

	views, err := f.svc.Availability(ctx, "tok", "tutor-7")

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "2024-06-21", views[0].NextDate)
	assert.Equal(t, "2024-06-24", views[1].NextDate)
}

func TestStartAndEndTimes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.cache.On("GetTutor", ctx, "tutor-7").Return(testTutor(), nil)

	starts, err := f.svc.StartTimes(ctx, "tok", "tutor-7", "slot-fri")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "10:30", "11:00"}, starts)

	ends, err := f.svc.EndTimes(ctx, "tok", "tutor-7", "slot-fri", "11:30")
	require.NoError(t, err)
	assert.Equal(t, []string{}, ends)

	_, err = f.svc.StartTimes(ctx, "tok", "tutor-7", "slot-missing")
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestQuote(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.cache.On("GetTutor", ctx, "tutor-7").Return(testTutor(), nil)

	quote, err := f.svc.Quote(ctx, "tok", "tutor-7", validDraft())

	require.NoError(t, err)
	assert.True(t, quote.Valid)
	assert.Equal(t, 1.5, quote.Duration)
	assert.Equal(t, 60.0, quote.Cost)
	require.NotNil(t, quote.Payload)
	assert.Equal(t, "2024-06-21T10:00:00.000Z", quote.Payload.ScheduledAt)
}

func TestQuote_InvalidDraftReportsFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.cache.On("GetTutor", ctx, "tutor-7").Return(testTutor(), nil)

	draft := validDraft()
	draft.AvailabilityID = "slot-gone"

	quote, err := f.svc.Quote(ctx, "tok", "tutor-7", draft)

	require.NoError(t, err)
	assert.False(t, quote.Valid)
	assert.Nil(t, quote.Payload)
	require.Len(t, quote.Errors, 1)
	assert.Equal(t, "availabilityId", quote.Errors[0].Field)
}

func TestQuote_MissingSlotOnlyReportsSelection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.cache.On("GetTutor", ctx, "tutor-7").Return(testTutor(), nil)

	draft := validDraft()
	draft.AvailabilityID = ""
	draft.EndTime = "11:00"

	quote, err := f.svc.Quote(ctx, "tok", "tutor-7", draft)

	require.NoError(t, err)
	assert.False(t, quote.Valid)
	require.Len(t, quote.Errors, 1)
	assert.Equal(t, "availabilityId", quote.Errors[0].Field)
	assert.Equal(t, domain.CodeRequired, quote.Errors[0].Code)
	for _, fe := range quote.Errors {
		assert.NotEqual(t, domain.CodeWeekdayMismatch, fe.Code)
		assert.NotEqual(t, domain.CodeOutOfSlot, fe.Code)
	}
}

func TestSubmitBooking_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	expected := domain.ResolvedBooking{
		TutorID:     "tutor-7",
		CategoryID:  "cat-math",
		ScheduledAt: "2024-06-21T10:00:00.000Z",
		Duration:    1.5,
	}
	confirmation := &domain.BookingConfirmation{ID: "b-1", Status: domain.BookingPending, ScheduledAt: expected.ScheduledAt, Duration: 1.5}

	f.cache.On("GetTutor", ctx, "tutor-7").Return(testTutor(), nil)
	f.gateway.On("CreateBooking", ctx, "tok", expected).Return(confirmation, nil)
	f.drafts.On("DeleteDraft", ctx, "student-1", "tutor-7").Return(nil)
	f.cache.On("InvalidateTutor", ctx, "tutor-7").Return(nil)

	got, err := f.svc.SubmitBooking(ctx, student, "tok", "tutor-7", validDraft())

	require.NoError(t, err)
	assert.Equal(t, "b-1", got.ID)
}

func TestSubmitBooking_InvalidDraftIsParked(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	draft := validDraft()
	draft.Date = "2024-06-20"

	f.cache.On("GetTutor", ctx, "tutor-7").Return(testTutor(), nil)
	f.drafts.On("SaveDraft", ctx, "student-1", "tutor-7", draft).Return(nil)

	got, err := f.svc.SubmitBooking(ctx, student, "tok", "tutor-7", draft)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrInvalidDraft)

	var draftErr *domain.DraftError
	require.ErrorAs(t, err, &draftErr)
	assert.Equal(t, domain.CodeWeekdayMismatch, draftErr.Fields[0].Code)
	f.gateway.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitBooking_DownstreamFailureKeepsDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	draft := validDraft()

	f.cache.On("GetTutor", ctx, "tutor-7").Return(testTutor(), nil)
	f.gateway.On("CreateBooking", ctx, "tok", mock.AnythingOfType("domain.ResolvedBooking")).
		Return(nil, domain.ErrBackendUnavailable)
	f.drafts.On("SaveDraft", ctx, "student-1", "tutor-7", draft).Return(nil)

	got, err := f.svc.SubmitBooking(ctx, student, "tok", "tutor-7", draft)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	f.drafts.AssertNotCalled(t, "DeleteDraft", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitBooking_TutorsCannotBook(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.SubmitBooking(context.Background(), domain.Identity{UserID: "u", Role: domain.RoleTutor}, "tok", "tutor-7", validDraft())

	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	draft := validDraft()

	f.drafts.On("GetDraft", ctx, "student-1", "tutor-7").Return(&draft, nil)
	f.drafts.On("GetDraft", ctx, "student-1", "tutor-8").Return(nil, domain.ErrDraftNotFound)

	got, err := f.svc.Draft(ctx, student, "tutor-7")
	require.NoError(t, err)
	assert.Equal(t, draft, *got)

	_, err = f.svc.Draft(ctx, student, "tutor-8")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

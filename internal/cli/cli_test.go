package cli_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/tutor_booking/internal/cli"
	"github.com/srgjo27/tutor_booking/internal/cli/mocks"
	"github.com/srgjo27/tutor_booking/internal/core/domain"
)

func newContext(b cli.Backend) (*cli.Context, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &cli.Context{
		Out:     out,
		Now:     func() time.Time { return time.Date(2024, 6, 17, 8, 0, 0, 0, time.UTC) },
		Backend: b,
		Token:   "tok",
	}, out
}

func TestNextDateCmd(t *testing.T) {
	ctx, out := newContext(nil)

	require.NoError(t, (&cli.NextDateCmd{Day: "friday"}).Run(ctx))
	assert.Equal(t, "2024-06-21\n", out.String())

	out.Reset()
	require.NoError(t, (&cli.NextDateCmd{Day: "MONDAY", From: "2024-06-24"}).Run(ctx))
	assert.Equal(t, "2024-07-01\n", out.String())

	assert.Error(t, (&cli.NextDateCmd{Day: "someday"}).Run(ctx))
}

func TestOptionsCmd(t *testing.T) {
	ctx, out := newContext(nil)

	require.NoError(t, (&cli.OptionsCmd{SlotStart: "10:00", SlotEnd: "12:00", Step: 30}).Run(ctx))
	assert.Equal(t, "10:00 10:30 11:00\n", out.String())

	out.Reset()
	require.NoError(t, (&cli.OptionsCmd{SlotStart: "10:00", SlotEnd: "12:00", Start: "11:30", Step: 30}).Run(ctx))
	assert.Contains(t, out.String(), "no times available")
}

func TestCheckDateCmd(t *testing.T) {
	ctx, _ := newContext(nil)

	assert.NoError(t, (&cli.CheckDateCmd{Date: "2024-06-17", Day: "monday"}).Run(ctx))
	assert.ErrorContains(t, (&cli.CheckDateCmd{Date: "2024-06-18", Day: "monday"}).Run(ctx), "not a Monday")
}

func TestDurationCmd(t *testing.T) {
	ctx, out := newContext(nil)

	require.NoError(t, (&cli.DurationCmd{Start: "09:00", End: "10:30", Rate: 20}).Run(ctx))
	assert.Equal(t, "1.5 hours, cost 30.00\n", out.String())
}

func TestBookCmd(t *testing.T) {
	b := mocks.NewBackend(t)
	ctx, out := newContext(b)

	b.On("CurrentIdentity", mock.Anything, "tok").Return(&domain.Identity{UserID: "s-1", Role: domain.RoleStudent}, nil)
	b.On("GetTutor", mock.Anything, "tok", "tutor-7").Return(&domain.Tutor{
		ID:           "tutor-7",
		Name:         "Ada",
		HourlyRate:   40,
		Categories:   []domain.Category{{ID: "cat-math", Name: "Math"}},
		Availability: []domain.AvailabilitySlot{{ID: "slot-fri", DayOfWeek: domain.Friday, StartTime: "10:00", EndTime: "12:00"}},
	}, nil)
	b.On("CreateBooking", mock.Anything, "tok", domain.ResolvedBooking{
		TutorID:     "tutor-7",
		CategoryID:  "cat-math",
		ScheduledAt: "2024-06-21T10:00:00.000Z",
		Duration:    2,
	}).Return(&domain.BookingConfirmation{ID: "b-9", Status: domain.BookingPending}, nil)

	err := (&cli.BookCmd{Tutor: "tutor-7", Slot: "slot-fri", Category: "cat-math", Start: "10:00", End: "12:00"}).Run(ctx)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "cost 80.00")
	assert.Contains(t, out.String(), "booking b-9 is PENDING")
}

func TestBookCmd_InvalidDraft(t *testing.T) {
	b := mocks.NewBackend(t)
	ctx, _ := newContext(b)

	b.On("CurrentIdentity", mock.Anything, "tok").Return(&domain.Identity{UserID: "s-1", Role: domain.RoleStudent}, nil)
	b.On("GetTutor", mock.Anything, "tok", "tutor-7").Return(&domain.Tutor{
		ID:           "tutor-7",
		Availability: []domain.AvailabilitySlot{{ID: "slot-fri", DayOfWeek: domain.Friday, StartTime: "10:00", EndTime: "12:00"}},
	}, nil)

	err := (&cli.BookCmd{Tutor: "tutor-7", Slot: "slot-fri", Category: "c", Date: "2024-06-20", Start: "10:00", End: "11:00"}).Run(ctx)

	assert.ErrorIs(t, err, domain.ErrInvalidDraft)
	b.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
}

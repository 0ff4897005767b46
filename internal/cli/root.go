package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/srgjo27/tutor_booking/internal/core/domain"
)

// Backend is the part of the marketplace API the book command needs.
type Backend interface {
	GetTutor(ctx context.Context, token, tutorID string) (*domain.Tutor, error)
	CreateBooking(ctx context.Context, token string, booking domain.ResolvedBooking) (*domain.BookingConfirmation, error)
	CurrentIdentity(ctx context.Context, token string) (*domain.Identity, error)
}

type Context struct {
	Out     io.Writer
	Now     func() time.Time
	Backend Backend
	Token   string
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

func parseDay(s string) (domain.DayOfWeek, error) {
	day, err := domain.ParseDayOfWeek(s)
	if err != nil {
		return "", fmt.Errorf("invalid weekday %q, use SUNDAY..SATURDAY", s)
	}
	return day, nil
}

package ports

import (
	"context"

	"github.com/srgjo27/tutor_booking/internal/core/domain"
)

// TutorDirectory reads tutor profiles from the marketplace backend.
type TutorDirectory interface {
	GetTutor(ctx context.Context, token string, tutorID string) (*domain.Tutor, error)
}

// BookingGateway submits resolved bookings to the marketplace backend, which
// owns conflict detection and persistence.
type BookingGateway interface {
	CreateBooking(ctx context.Context, token string, booking domain.ResolvedBooking) (*domain.BookingConfirmation, error)
}

type IdentitySource interface {
	CurrentIdentity(ctx context.Context, token string) (*domain.Identity, error)
}

type DraftStore interface {
	SaveDraft(ctx context.Context, userID, tutorID string, draft domain.BookingDraft) error
	GetDraft(ctx context.Context, userID, tutorID string) (*domain.BookingDraft, error)
	DeleteDraft(ctx context.Context, userID, tutorID string) error
}

// TutorCache returns nil without error on a miss.
type TutorCache interface {
	GetTutor(ctx context.Context, tutorID string) (*domain.Tutor, error)
	SetTutor(ctx context.Context, tutor *domain.Tutor) error
	InvalidateTutor(ctx context.Context, tutorID string) error
}

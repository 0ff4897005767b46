package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/srgjo27/tutor_booking/internal/core/domain"
	"github.com/srgjo27/tutor_booking/internal/core/ports"
	"github.com/srgjo27/tutor_booking/internal/core/slots"
	"github.com/srgjo27/tutor_booking/internal/platform/metrics"
)

var ErrForbidden = errors.New("only students can book sessions")

type SlotView struct {
	domain.AvailabilitySlot
	NextDate string `json:"nextDate"`
}

type QuoteResponse struct {
	Valid    bool                    `json:"valid"`
	Errors   []domain.FieldError     `json:"errors,omitempty"`
	Duration float64                 `json:"duration"`
	Cost     float64                 `json:"cost"`
	Payload  *domain.ResolvedBooking `json:"payload,omitempty"`
}

type BookingService struct {
	tutors      ports.TutorDirectory
	cache       ports.TutorCache
	gateway     ports.BookingGateway
	drafts      ports.DraftStore
	logger      *zap.Logger
	granularity int
	now         func() time.Time
}

func NewBookingService(tutors ports.TutorDirectory, cache ports.TutorCache, gateway ports.BookingGateway, drafts ports.DraftStore, logger *zap.Logger, granularity int) *BookingService {
	if granularity <= 0 {
		granularity = slots.DefaultGranularityMinutes
	}
	return &BookingService{
		tutors:      tutors,
		cache:       cache,
		gateway:     gateway,
		drafts:      drafts,
		logger:      logger,
		granularity: granularity,
		now:         time.Now,
	}
}

// WithClock replaces the reference instant used for next-date resolution.
func (s *BookingService) WithClock(now func() time.Time) *BookingService {
	s.now = now
	return s
}

func (s *BookingService) GetTutor(ctx context.Context, token, tutorID string) (*domain.Tutor, error) {
	cached, err := s.cache.GetTutor(ctx, tutorID)
	if err != nil {
		s.logger.Warn("tutor cache read failed", zap.String("tutor_id", tutorID), zap.Error(err))
	}
	if cached != nil {
		metrics.TutorCacheLookups.WithLabelValues("hit").Inc()
		return cached, nil
	}
	metrics.TutorCacheLookups.WithLabelValues("miss").Inc()

	tutor, err := s.tutors.GetTutor(ctx, token, tutorID)
	if err != nil {
		return nil, fmt.Errorf("fetch tutor %s: %w", tutorID, err)
	}

	if err := s.cache.SetTutor(ctx, tutor); err != nil {
		s.logger.Warn("tutor cache write failed", zap.String("tutor_id", tutorID), zap.Error(err))
	}

	return tutor, nil
}

func (s *BookingService) Availability(ctx context.Context, token, tutorID string) ([]SlotView, error) {
	tutor, err := s.GetTutor(ctx, token, tutorID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]SlotView, 0, len(tutor.Availability))
	for _, slot := range tutor.Availability {
		views = append(views, SlotView{
			AvailabilitySlot: slot,
			NextDate:         slots.NextDateForWeekday(string(slot.DayOfWeek), now).Format(slots.DateLayout),
		})
	}

	return views, nil
}

func (s *BookingService) StartTimes(ctx context.Context, token, tutorID, slotID string) ([]string, error) {
	_, slot, err := s.tutorSlot(ctx, token, tutorID, slotID)
	if err != nil {
		return nil, err
	}

	return nonNil(slots.StartTimeOptions(slot, s.granularity)), nil
}

func (s *BookingService) EndTimes(ctx context.Context, token, tutorID, slotID, start string) ([]string, error) {
	_, slot, err := s.tutorSlot(ctx, token, tutorID, slotID)
	if err != nil {
		return nil, err
	}

	return nonNil(slots.EndTimeOptions(slot, start, s.granularity)), nil
}

// Quote validates a draft and prices it without submitting anything.
func (s *BookingService) Quote(ctx context.Context, token, tutorID string, draft domain.BookingDraft) (*QuoteResponse, error) {
	tutor, err := s.GetTutor(ctx, token, tutorID)
	if err != nil {
		return nil, err
	}

	duration := slots.ComputeDuration(draft.StartTime, draft.EndTime)
	resp := &QuoteResponse{
		Duration: duration,
		Cost:     slots.ComputeCost(duration, tutor.HourlyRate),
	}

	if fieldErrs := s.validate(tutor, draft); len(fieldErrs) > 0 {
		resp.Errors = fieldErrs
		return resp, nil
	}

	payload := slots.ResolveBookingPayload(draft, tutor.ID)
	resp.Valid = true
	resp.Payload = &payload

	return resp, nil
}

func (s *BookingService) SubmitBooking(ctx context.Context, identity domain.Identity, token, tutorID string, draft domain.BookingDraft) (*domain.BookingConfirmation, error) {
	if identity.Role != domain.RoleStudent {
		return nil, ErrForbidden
	}

	tutor, err := s.GetTutor(ctx, token, tutorID)
	if err != nil {
		return nil, err
	}

	if fieldErrs := s.validate(tutor, draft); len(fieldErrs) > 0 {
		s.parkDraft(ctx, identity.UserID, tutorID, draft)
		metrics.BookingSubmissions.WithLabelValues("rejected").Inc()
		return nil, &domain.DraftError{Fields: fieldErrs}
	}

	payload := slots.ResolveBookingPayload(draft, tutor.ID)

	confirmation, err := s.gateway.CreateBooking(ctx, token, payload)
	if err != nil {
		s.parkDraft(ctx, identity.UserID, tutorID, draft)
		metrics.BookingSubmissions.WithLabelValues("failed").Inc()
		s.logger.Error("booking submission failed",
			zap.String("user_id", identity.UserID),
			zap.String("tutor_id", tutorID),
			zap.String("scheduled_at", payload.ScheduledAt),
			zap.Error(err),
		)
		return nil, fmt.Errorf("submit booking: %w", err)
	}

	if err := s.drafts.DeleteDraft(ctx, identity.UserID, tutorID); err != nil {
		s.logger.Warn("failed to discard draft", zap.String("user_id", identity.UserID), zap.Error(err))
	}
	if err := s.cache.InvalidateTutor(ctx, tutorID); err != nil {
		s.logger.Warn("failed to invalidate tutor cache", zap.String("tutor_id", tutorID), zap.Error(err))
	}

	metrics.BookingSubmissions.WithLabelValues("confirmed").Inc()
	s.logger.Info("booking submitted",
		zap.String("booking_id", confirmation.ID),
		zap.String("user_id", identity.UserID),
		zap.String("tutor_id", tutorID),
		zap.String("scheduled_at", payload.ScheduledAt),
		zap.Float64("duration", payload.Duration),
	)

	return confirmation, nil
}

// Draft returns the draft parked by the last failed submission.
func (s *BookingService) Draft(ctx context.Context, identity domain.Identity, tutorID string) (*domain.BookingDraft, error) {
	draft, err := s.drafts.GetDraft(ctx, identity.UserID, tutorID)
	if err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *BookingService) validate(tutor *domain.Tutor, draft domain.BookingDraft) []domain.FieldError {
	slot, ok := tutor.Slot(draft.AvailabilityID)
	fieldErrs := slots.ValidateDraft(draft, slot, *tutor)
	if draft.AvailabilityID != "" && !ok {
		fieldErrs = append([]domain.FieldError{{
			Field:   "availabilityId",
			Code:    domain.CodeOutOfSlot,
			Message: "The selected availability slot is no longer offered",
		}}, fieldErrs...)
	}

	for _, fe := range fieldErrs {
		metrics.DraftRejections.WithLabelValues(string(fe.Code)).Inc()
	}

	return fieldErrs
}

func (s *BookingService) parkDraft(ctx context.Context, userID, tutorID string, draft domain.BookingDraft) {
	if err := s.drafts.SaveDraft(ctx, userID, tutorID, draft); err != nil {
		s.logger.Warn("failed to park draft", zap.String("user_id", userID), zap.String("tutor_id", tutorID), zap.Error(err))
	}
}

func (s *BookingService) tutorSlot(ctx context.Context, token, tutorID, slotID string) (*domain.Tutor, domain.AvailabilitySlot, error) {
	tutor, err := s.GetTutor(ctx, token, tutorID)
	if err != nil {
		return nil, domain.AvailabilitySlot{}, err
	}

	slot, ok := tutor.Slot(slotID)
	if !ok {
		return nil, domain.AvailabilitySlot{}, fmt.Errorf("slot %s of tutor %s: %w", slotID, tutorID, domain.ErrSlotNotFound)
	}

	return tutor, slot, nil
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

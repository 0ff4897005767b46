package domain

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// BookingDraft is the form-local selection a student builds before submitting.
type BookingDraft struct {
	AvailabilityID string `json:"availabilityId"`
	CategoryID     string `json:"categoryId"`
	Date           string `json:"date"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
}

// ResolvedBooking is the body sent to the booking-creation endpoint.
type ResolvedBooking struct {
	TutorID     string  `json:"tutorId"`
	CategoryID  string  `json:"categoryId"`
	ScheduledAt string  `json:"scheduledAt"`
	Duration    float64 `json:"duration"`
}

type BookingConfirmation struct {
	ID          string        `json:"id" validate:"required"`
	Status      BookingStatus `json:"status" validate:"required"`
	ScheduledAt string        `json:"scheduledAt" validate:"required"`
	Duration    float64       `json:"duration" validate:"gte=1"`
}

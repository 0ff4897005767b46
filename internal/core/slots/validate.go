package slots

import (
	"fmt"
	"time"

	"github.com/srgjo27/tutor_booking/internal/core/domain"
)

// ValidateDraft checks a draft against the chosen slot and tutor. An empty
// result means ResolveBookingPayload may be called. Weekday and window checks
// only run once a slot is selected and slot is non-zero.
func ValidateDraft(draft domain.BookingDraft, slot domain.AvailabilitySlot, tutor domain.Tutor) []domain.FieldError {
	var errs []domain.FieldError
	hasSlot := draft.AvailabilityID != "" && slot != (domain.AvailabilitySlot{})
	add := func(field string, code domain.FieldErrorCode, msg string) {
		errs = append(errs, domain.FieldError{Field: field, Code: code, Message: msg})
	}

	if draft.AvailabilityID == "" {
		add("availabilityId", domain.CodeRequired, "Please select an availability slot")
	}

	if draft.CategoryID == "" {
		add("categoryId", domain.CodeRequired, "Please select a subject")
	} else if len(tutor.Categories) > 0 && !tutor.HasCategory(draft.CategoryID) {
		add("categoryId", domain.CodeUnknownCategory, "This tutor does not teach the selected subject")
	}

	switch {
	case draft.Date == "":
		add("date", domain.CodeRequired, "Please select a date")
	case !validDate(draft.Date):
		add("date", domain.CodeInvalidFormat, "Date must be in YYYY-MM-DD format")
	case hasSlot && !IsDateConsistentWithSlot(draft.Date, slot):
		add("date", domain.CodeWeekdayMismatch, fmt.Sprintf("Selected date must be a %s", slot.DayOfWeek.Title()))
	}

	start, startOK := checkClock(draft.StartTime, "startTime", "start", add)
	end, endOK := checkClock(draft.EndTime, "endTime", "end", add)
	if !startOK || !endOK {
		return errs
	}

	if end-start < MinSessionMinutes {
		add("endTime", domain.CodeTooShort, "Sessions must be at least 1 hour long")
	}
	if !hasSlot {
		return errs
	}

	open, _ := ParseClock(slot.StartTime)
	closing, _ := ParseClock(slot.EndTime)
	window := fmt.Sprintf("%s-%s", slot.StartTime, slot.EndTime)
	if start < open || start >= closing {
		add("startTime", domain.CodeOutOfSlot, "Start time must be within "+window)
	}
	if end <= open || end > closing {
		add("endTime", domain.CodeOutOfSlot, "End time must be within "+window)
	}

	return errs
}

func checkClock(v, field, label string, add func(string, domain.FieldErrorCode, string)) (int, bool) {
	if v == "" {
		add(field, domain.CodeRequired, fmt.Sprintf("Please select a %s time", label))
		return 0, false
	}
	m, ok := ParseClock(v)
	if !ok {
		add(field, domain.CodeInvalidFormat, fmt.Sprintf("The %s time must be in HH:MM format", label))
		return 0, false
	}
	return m, true
}

func validDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Package slots turns a tutor's recurring weekly availability into concrete
// booking choices. Every function is pure and works in UTC calendar fields so
// the date a student picks and the weekday it resolves to never disagree.
package slots

import (
	"iter"
	"math"
	"time"

	"github.com/srgjo27/tutor_booking/internal/core/domain"
)

const (
	DefaultGranularityMinutes = 30
	MinSessionMinutes         = 60
)

// NextDateForWeekday returns UTC midnight of the first day after from that
// falls on dayName. An unrecognised dayName returns from unchanged.
func NextDateForWeekday(dayName string, from time.Time) time.Time {
	day, err := domain.ParseDayOfWeek(dayName)
	if err != nil {
		return from
	}
	target, _ := day.Weekday()

	u := from.UTC()
	next := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	offset := (int(target) - int(next.Weekday()) + 7) % 7
	return next.AddDate(0, 0, offset)
}

// ExpandTimeRange yields "HH:MM" values from start in steps of granularity
// minutes, stopping before end. Malformed or empty ranges yield nothing.
func ExpandTimeRange(start, end string, granularity int) iter.Seq[string] {
	return func(yield func(string) bool) {
		from, ok1 := ParseClock(start)
		to, ok2 := ParseClock(end)
		if !ok1 || !ok2 {
			return
		}
		step := granularity
		if step <= 0 {
			step = DefaultGranularityMinutes
		}
		for m := from; m < to; m += step {
			if !yield(FormatClock(m)) {
				return
			}
		}
	}
}

// StartTimeOptions lists start times that leave room for a minimum-length
// session before the slot closes.
func StartTimeOptions(slot domain.AvailabilitySlot, granularity int) []string {
	end, ok := ParseClock(slot.EndTime)
	if !ok {
		return nil
	}
	var out []string
	for t := range ExpandTimeRange(slot.StartTime, slot.EndTime, granularity) {
		m, _ := ParseClock(t)
		if end-m < MinSessionMinutes {
			break
		}
		out = append(out, t)
	}
	return out
}

// EndTimeOptions lists end times for a session starting at start, from one
// hour after start up to and including the slot's end.
func EndTimeOptions(slot domain.AvailabilitySlot, start string, granularity int) []string {
	s, ok := ParseClock(start)
	if !ok {
		return nil
	}
	open, ok1 := ParseClock(slot.StartTime)
	end, ok2 := ParseClock(slot.EndTime)
	if !ok1 || !ok2 || s < open || s+MinSessionMinutes > end {
		return nil
	}
	var out []string
	for t := range ExpandTimeRange(FormatClock(s+MinSessionMinutes), slot.EndTime, granularity) {
		out = append(out, t)
	}
	return append(out, slot.EndTime)
}

// IsDateConsistentWithSlot reports whether a "YYYY-MM-DD" date falls on the
// slot's weekday.
func IsDateConsistentWithSlot(date string, slot domain.AvailabilitySlot) bool {
	d, err := time.ParseInLocation(DateLayout, date, time.UTC)
	if err != nil {
		return false
	}
	want, ok := slot.DayOfWeek.Weekday()
	return ok && d.Weekday() == want
}

// ComputeDuration returns the hours between two "HH:MM" values, or 0 when
// either is not selected yet.
func ComputeDuration(start, end string) float64 {
	if start == "" || end == "" {
		return 0
	}
	s, ok1 := ParseClock(start)
	e, ok2 := ParseClock(end)
	if !ok1 || !ok2 {
		return 0
	}
	return float64(e-s) / 60
}

// ComputeCost prices a session at hourlyRate, rounded to cents.
func ComputeCost(duration, hourlyRate float64) float64 {
	if duration <= 0 || hourlyRate <= 0 {
		return 0
	}
	return math.Round(duration*hourlyRate*100) / 100
}

// ScheduledAt combines a date and a start time as a UTC instant.
func ScheduledAt(date, start string) (time.Time, bool) {
	d, err := time.ParseInLocation(DateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	m, ok := ParseClock(start)
	if !ok {
		return time.Time{}, false
	}
	return d.Add(time.Duration(m) * time.Minute), true
}

// ResolveBookingPayload builds the booking-creation body from a draft that
// already passed ValidateDraft.
func ResolveBookingPayload(draft domain.BookingDraft, tutorID string) domain.ResolvedBooking {
	at, _ := ScheduledAt(draft.Date, draft.StartTime)
	return domain.ResolvedBooking{
		TutorID:     tutorID,
		CategoryID:  draft.CategoryID,
		ScheduledAt: at.UTC().Format(ScheduledAtLayout),
		Duration:    ComputeDuration(draft.StartTime, draft.EndTime),
	}
}

package domain

import (
	"fmt"
	"strings"
	"time"
)

type DayOfWeek string

const (
	Sunday    DayOfWeek = "SUNDAY"
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
)

var weekdays = map[DayOfWeek]time.Weekday{
	Sunday:    time.Sunday,
	Monday:    time.Monday,
	Tuesday:   time.Tuesday,
	Wednesday: time.Wednesday,
	Thursday:  time.Thursday,
	Friday:    time.Friday,
	Saturday:  time.Saturday,
}

// ParseDayOfWeek accepts any casing of the seven day names.
func ParseDayOfWeek(s string) (DayOfWeek, error) {
	d := normalize(s)
	if _, ok := weekdays[d]; !ok {
		return "", fmt.Errorf("unknown day of week %q", s)
	}
	return d, nil
}

func DayOfWeekFrom(wd time.Weekday) DayOfWeek {
	for d, w := range weekdays {
		if w == wd {
			return d
		}
	}
	return ""
}

func (d DayOfWeek) Weekday() (time.Weekday, bool) {
	wd, ok := weekdays[normalize(string(d))]
	return wd, ok
}

func normalize(s string) DayOfWeek {
	return DayOfWeek(strings.ToUpper(strings.TrimSpace(s)))
}

// Title returns the day as shown in validation messages, e.g. "Monday".
func (d DayOfWeek) Title() string {
	wd, ok := d.Weekday()
	if !ok {
		return string(d)
	}
	return wd.String()
}

// AvailabilitySlot is a recurring weekly window in which a tutor accepts bookings.
type AvailabilitySlot struct {
	ID        string    `json:"id" validate:"required"`
	DayOfWeek DayOfWeek `json:"dayOfWeek" validate:"required,oneof=SUNDAY MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY"`
	StartTime string    `json:"startTime" validate:"required,clock"`
	EndTime   string    `json:"endTime" validate:"required,clock"`
}

package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/srgjo27/tutor_booking/internal/core/domain"
	"github.com/srgjo27/tutor_booking/internal/core/slots"
)

type NextDateCmd struct {
	Day  string `arg:"" help:"Weekday name (e.g. monday)."`
	From string `help:"Reference date (YYYY-MM-DD), defaults to today."`
}

func (c *NextDateCmd) Run(ctx *Context) error {
	day, err := parseDay(c.Day)
	if err != nil {
		return err
	}

	from := ctx.Now()
	if c.From != "" {
		from, err = time.Parse(slots.DateLayout, c.From)
		if err != nil {
			return fmt.Errorf("invalid --from date, use YYYY-MM-DD: %w", err)
		}
	}

	ctx.printf("%s\n", slots.NextDateForWeekday(string(day), from).Format(slots.DateLayout))
	return nil
}

type OptionsCmd struct {
	SlotStart string `help:"Slot opening time (HH:MM)." required:""`
	SlotEnd   string `help:"Slot closing time (HH:MM)." required:""`
	Start     string `help:"Chosen start time; lists end times instead of start times."`
	Step      int    `help:"Granularity in minutes." default:"30"`
}

func (c *OptionsCmd) Run(ctx *Context) error {
	slot := domain.AvailabilitySlot{StartTime: c.SlotStart, EndTime: c.SlotEnd}
	if _, ok := slots.ParseClock(c.SlotStart); !ok {
		return fmt.Errorf("invalid --slot-start %q", c.SlotStart)
	}
	if _, ok := slots.ParseClock(c.SlotEnd); !ok {
		return fmt.Errorf("invalid --slot-end %q", c.SlotEnd)
	}

	var times []string
	if c.Start == "" {
		times = slots.StartTimeOptions(slot, c.Step)
	} else {
		times = slots.EndTimeOptions(slot, c.Start, c.Step)
	}

	if len(times) == 0 {
		ctx.printf("no times available, sessions need at least 1 hour\n")
		return nil
	}
	ctx.printf("%s\n", strings.Join(times, " "))
	return nil
}

type CheckDateCmd struct {
	Date string `arg:"" help:"Date (YYYY-MM-DD)."`
	Day  string `arg:"" help:"Weekday the slot recurs on."`
}

func (c *CheckDateCmd) Run(ctx *Context) error {
	day, err := parseDay(c.Day)
	if err != nil {
		return err
	}

	if !slots.IsDateConsistentWithSlot(c.Date, domain.AvailabilitySlot{DayOfWeek: day}) {
		return fmt.Errorf("%s is not a %s", c.Date, day.Title())
	}
	ctx.printf("%s is a %s\n", c.Date, day.Title())
	return nil
}

type DurationCmd struct {
	Start string  `arg:"" help:"Start time (HH:MM)."`
	End   string  `arg:"" help:"End time (HH:MM)."`
	Rate  float64 `help:"Hourly rate used to price the session."`
}

func (c *DurationCmd) Run(ctx *Context) error {
	d := slots.ComputeDuration(c.Start, c.End)
	if c.Rate > 0 {
		ctx.printf("%g hours, cost %.2f\n", d, slots.ComputeCost(d, c.Rate))
		return nil
	}
	ctx.printf("%g hours\n", d)
	return nil
}

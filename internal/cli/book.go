package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/srgjo27/tutor_booking/internal/core/domain"
	"github.com/srgjo27/tutor_booking/internal/core/slots"
)

type BookCmd struct {
	Tutor    string `help:"Tutor ID." required:""`
	Slot     string `help:"Availability slot ID." required:""`
	Category string `help:"Category ID." required:""`
	Date     string `help:"Session date (YYYY-MM-DD). Defaults to the slot's next date."`
	Start    string `help:"Start time (HH:MM)." required:""`
	End      string `help:"End time (HH:MM)." required:""`
	DryRun   bool   `help:"Validate and print the payload without submitting."`
}

func (c *BookCmd) Run(ctx *Context) error {
	if ctx.Backend == nil || ctx.Token == "" {
		return errors.New("book needs BACKEND_BASE_URL and SLOTCTL_TOKEN")
	}
	bg := context.Background()

	identity, err := ctx.Backend.CurrentIdentity(bg, ctx.Token)
	if err != nil {
		return fmt.Errorf("check session: %w", err)
	}
	if identity.Role != domain.RoleStudent {
		return fmt.Errorf("signed in as %s, only students can book", identity.Role)
	}

	tutor, err := ctx.Backend.GetTutor(bg, ctx.Token, c.Tutor)
	if err != nil {
		return err
	}
	slot, ok := tutor.Slot(c.Slot)
	if !ok {
		return fmt.Errorf("tutor %s has no slot %s", c.Tutor, c.Slot)
	}

	date := c.Date
	if date == "" {
		date = slots.NextDateForWeekday(string(slot.DayOfWeek), ctx.Now()).Format(slots.DateLayout)
	}

	draft := domain.BookingDraft{
		AvailabilityID: slot.ID,
		CategoryID:     c.Category,
		Date:           date,
		StartTime:      c.Start,
		EndTime:        c.End,
	}
	if fieldErrs := slots.ValidateDraft(draft, slot, *tutor); len(fieldErrs) > 0 {
		for _, fe := range fieldErrs {
			ctx.printf("  %s: %s\n", fe.Field, fe.Message)
		}
		return &domain.DraftError{Fields: fieldErrs}
	}

	payload := slots.ResolveBookingPayload(draft, tutor.ID)
	cost := slots.ComputeCost(payload.Duration, tutor.HourlyRate)
	ctx.printf("%s for %g hours at %s, cost %.2f\n", tutor.Name, payload.Duration, payload.ScheduledAt, cost)

	if c.DryRun {
		return nil
	}

	confirmation, err := ctx.Backend.CreateBooking(bg, ctx.Token, payload)
	if err != nil {
		return fmt.Errorf("submit booking: %w", err)
	}
	ctx.printf("booking %s is %s\n", confirmation.ID, confirmation.Status)
	return nil
}

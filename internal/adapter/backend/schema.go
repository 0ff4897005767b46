package backend

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/srgjo27/tutor_booking/internal/core/domain"
	"github.com/srgjo27/tutor_booking/internal/core/slots"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("clock", validateClock)
}

func validateClock(fl validator.FieldLevel) bool {
	_, ok := slots.ParseClock(fl.Field().String())
	return ok
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type sessionBody struct {
	User *struct {
		ID    string      `json:"id" validate:"required"`
		Email string      `json:"email" validate:"omitempty,email"`
		Role  domain.Role `json:"role" validate:"required,oneof=STUDENT TUTOR ADMIN"`
	} `json:"user"`
	Expires time.Time `json:"expires"`
}

func checkTutor(t *domain.Tutor) error {
	if err := validate.Struct(t); err != nil {
		return err
	}
	for _, s := range t.Availability {
		start, _ := slots.ParseClock(s.StartTime)
		end, _ := slots.ParseClock(s.EndTime)
		if start >= end {
			return fmt.Errorf("availability %s: start %s is not before end %s", s.ID, s.StartTime, s.EndTime)
		}
	}
	return nil
}

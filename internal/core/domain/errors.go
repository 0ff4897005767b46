package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTutorNotFound      = errors.New("tutor not found")
	ErrSlotNotFound       = errors.New("availability slot not found")
	ErrDraftNotFound      = errors.New("draft not found")
	ErrInvalidDraft       = errors.New("invalid booking draft")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrBackendUnavailable = errors.New("booking backend unavailable")
)

type FieldErrorCode string

const (
	CodeRequired        FieldErrorCode = "required"
	CodeWeekdayMismatch FieldErrorCode = "weekday_mismatch"
	CodeTooShort        FieldErrorCode = "too_short"
	CodeOutOfSlot       FieldErrorCode = "out_of_slot"
	CodeInvalidFormat   FieldErrorCode = "invalid_format"
	CodeUnknownCategory FieldErrorCode = "unknown_category"
)

type FieldError struct {
	Field   string         `json:"field"`
	Code    FieldErrorCode `json:"code"`
	Message string         `json:"message"`
}

// DraftError reports every field of a draft that blocks submission.
type DraftError struct {
	Fields []FieldError
}

func (e *DraftError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidDraft, strings.Join(parts, "; "))
}

func (e *DraftError) Unwrap() error {
	return ErrInvalidDraft
}

package handler

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/srgjo27/tutor_booking/internal/adapter/backend"
	"github.com/srgjo27/tutor_booking/internal/core/domain"
	"github.com/srgjo27/tutor_booking/internal/core/services"
)

type errorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusFor maps core and backend errors to the status the booking form sees.
func statusFor(err error) (int, errorResponse) {
	var draftErr *domain.DraftError
	var respErr *backend.ResponseError
	var schemaErr *backend.SchemaError

	switch {
	case errors.As(err, &draftErr):
		return http.StatusUnprocessableEntity, errorResponse{Error: "booking details need attention", Fields: draftErr.Fields}
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, errorResponse{Error: "please sign in again"}
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrTutorNotFound), errors.Is(err, domain.ErrSlotNotFound), errors.Is(err, domain.ErrDraftNotFound):
		return http.StatusNotFound, errorResponse{Error: rootMessage(err)}
	case errors.As(err, &schemaErr):
		return http.StatusBadGateway, errorResponse{Error: "unexpected response from booking service"}
	case errors.As(err, &respErr) && respErr.StatusCode < http.StatusInternalServerError:
		return respErr.StatusCode, errorResponse{Error: respErr.Message}
	case errors.Is(err, domain.ErrBackendUnavailable):
		return http.StatusBadGateway, errorResponse{Error: "booking service is unavailable, your selection was kept so you can retry"}
	default:
		return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
	}
}

func rootMessage(err error) string {
	for _, target := range []error{domain.ErrTutorNotFound, domain.ErrSlotNotFound, domain.ErrDraftNotFound} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}

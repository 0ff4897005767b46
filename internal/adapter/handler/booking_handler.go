package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/srgjo27/tutor_booking/internal/core/domain"
	"github.com/srgjo27/tutor_booking/internal/core/services"
	"github.com/srgjo27/tutor_booking/internal/core/slots"
)

type BookingHandler struct {
	svc    *services.BookingService
	logger *zap.Logger
}

func NewBookingHandler(svc *services.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, logger: logger}
}

type optionsResponse struct {
	Times []string `json:"times"`
}

func (h *BookingHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.Availability(r.Context(), tokenFrom(r.Context()), chi.URLParam(r, "tutorID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *BookingHandler) StartTimes(w http.ResponseWriter, r *http.Request) {
	times, err := h.svc.StartTimes(r.Context(), tokenFrom(r.Context()), chi.URLParam(r, "tutorID"), chi.URLParam(r, "slotID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, optionsResponse{Times: times})
}

func (h *BookingHandler) EndTimes(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	if _, ok := slots.ParseClock(start); !ok {
		writeMessage(w, http.StatusBadRequest, "query parameter start must be HH:MM")
		return
	}

	times, err := h.svc.EndTimes(r.Context(), tokenFrom(r.Context()), chi.URLParam(r, "tutorID"), chi.URLParam(r, "slotID"), start)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, optionsResponse{Times: times})
}

func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	draft, ok := decodeDraft(w, r)
	if !ok {
		return
	}

	quote, err := h.svc.Quote(r.Context(), tokenFrom(r.Context()), chi.URLParam(r, "tutorID"), draft)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	draft, ok := decodeDraft(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	confirmation, err := h.svc.SubmitBooking(ctx, identityFrom(ctx), tokenFrom(ctx), chi.URLParam(r, "tutorID"), draft)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, confirmation)
}

func (h *BookingHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	draft, err := h.svc.Draft(ctx, identityFrom(ctx), chi.URLParam(r, "tutorID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (h *BookingHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, body := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("request_id", requestIDFrom(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	writeJSON(w, status, body)
}

func decodeDraft(w http.ResponseWriter, r *http.Request) (domain.BookingDraft, bool) {
	var draft domain.BookingDraft
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&draft); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json body")
		return draft, false
	}
	return draft, true
}

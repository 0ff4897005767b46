package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/srgjo27/tutor_booking/internal/core/session"
)

type RouterConfig struct {
	AllowedOrigins []string
	RequestsPerMin int
}

func NewRouter(cfg RouterConfig, bookings *BookingHandler, sessions *session.Registry, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", requestIDHeader},
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RequestsPerMin > 0 {
			r.Use(httprate.LimitByIP(cfg.RequestsPerMin, time.Minute))
		}
		r.Use(Authenticate(sessions))

		r.Route("/tutors/{tutorID}", func(r chi.Router) {
			r.Get("/slots", bookings.ListSlots)
			r.Get("/slots/{slotID}/start-times", bookings.StartTimes)
			r.Get("/slots/{slotID}/end-times", bookings.EndTimes)
			r.Post("/quote", bookings.Quote)
			r.Post("/bookings", bookings.CreateBooking)
			r.Get("/draft", bookings.GetDraft)
		})
	})

	return r
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tutor_booking_submissions_total",
			Help: "Booking submissions by outcome",
		},
		[]string{"outcome"},
	)

	DraftRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tutor_booking_draft_rejections_total",
			Help: "Field errors raised while validating booking drafts",
		},
		[]string{"code"},
	)

	TutorCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tutor_booking_tutor_cache_lookups_total",
			Help: "Tutor cache lookups by result",
		},
		[]string{"result"},
	)

	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tutor_booking_backend_request_duration_seconds",
			Help:    "Latency of calls to the marketplace backend",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "status"},
	)

	SessionRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tutor_booking_session_refreshes_total",
			Help: "Identity refetches by result",
		},
		[]string{"result"},
	)
)

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Number of HTTP requests by route",
	}, []string{"method", "route", "status"})

	ClassificationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "classifications_total",
		Help: "Classifier calls by source and predicted label",
	}, []string{"source", "label"})

	ClassificationErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "classification_errors_total",
		Help: "Classifier calls that failed",
	}, []string{"source"})

	InferenceSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "inference_duration_seconds",
		Help:    "Time spent normalizing and classifying one text",
		Buckets: []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1},
	}, []string{"source"})

	FeedbackStoredTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feedback_stored_total",
		Help: "Feedback rows persisted by sentiment",
	}, []string{"sentiment"})

	SignupsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "signups_total",
		Help: "Accounts created",
	})

	LoginAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "login_attempts_total",
		Help: "Sign-in attempts by kind and outcome",
	}, []string{"kind", "outcome"})

	ModelLoaded = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "model_loaded",
		Help: "1 when the classifier artifacts are loaded",
	})
)

// MustRegister registers every collector of this package.
func MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(
		HTTPRequestDuration,
		HTTPRequestsTotal,
		ClassificationsTotal,
		ClassificationErrors,
		InferenceSeconds,
		FeedbackStoredTotal,
		SignupsTotal,
		LoginAttempts,
		ModelLoaded,
	)
}

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, route string, status int, start time.Time) {
	if route == "" {
		route = "unmatched"
	}
	code := strconv.Itoa(status)
	HTTPRequestDuration.WithLabelValues(method, route, code).Observe(time.Since(start).Seconds())
	HTTPRequestsTotal.WithLabelValues(method, route, code).Inc()
}

// ObserveClassification records the outcome and latency of one inference.
func ObserveClassification(source, label string, start time.Time, err error) {
	InferenceSeconds.WithLabelValues(source).Observe(time.Since(start).Seconds())
	if err != nil {
		ClassificationErrors.WithLabelValues(source).Inc()
		return
	}
	ClassificationsTotal.WithLabelValues(source, label).Inc()
}

// ObserveLogin records a sign-in attempt.
func ObserveLogin(kind string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	LoginAttempts.WithLabelValues(kind, outcome).Inc()
}

// SetModelLoaded flips the model_loaded gauge.
func SetModelLoaded(loaded bool) {
	if loaded {
		ModelLoaded.Set(1)
		return
	}
	ModelLoaded.Set(0)
}

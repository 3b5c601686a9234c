package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	SubmissionsAccepted  *prometheus.CounterVec
	SubmissionsFailed    *prometheus.CounterVec
	NotificationsSent    *prometheus.CounterVec
	NotificationsFailed  *prometheus.CounterVec
	CaptchaVerifications *prometheus.CounterVec
	WizardSessionsActive prometheus.Gauge
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	return &Metrics{
		// HTTP metrics
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		// Business metrics
		SubmissionsAccepted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lead_submissions_accepted_total",
				Help: "Total number of lead submissions accepted",
			},
			[]string{"kind"},
		),
		SubmissionsFailed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lead_submissions_failed_total",
				Help: "Total number of lead submissions rejected or failed",
			},
			[]string{"kind", "reason"}, // validation, store, processing
		),
		NotificationsSent: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifications_sent_total",
				Help: "Total number of notification dispatches that succeeded",
			},
			[]string{"kind", "audience", "channel"},
		),
		NotificationsFailed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifications_failed_total",
				Help: "Total number of notification dispatches that failed (best-effort, never retried)",
			},
			[]string{"kind", "audience", "channel"},
		),
		CaptchaVerifications: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "captcha_verifications_total",
				Help: "Total number of bot-check verification attempts",
			},
			[]string{"outcome"}, // passed, failed
		),
		WizardSessionsActive: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "wizard_sessions_active",
			Help: "Number of currently live wizard sessions",
		}),
	}
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // Use route pattern, not actual path (e.g., /api/v1/leads/:kind)

			// Call next handler
			err := next(c)

			// Record metrics
			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)

			return err
		}
	}
}

// RecordSubmissionAccepted increments the accepted submissions counter
func (m *Metrics) RecordSubmissionAccepted(kind string) {
	m.SubmissionsAccepted.WithLabelValues(kind).Inc()
}

// RecordSubmissionFailed increments the failed submissions counter
func (m *Metrics) RecordSubmissionFailed(kind, reason string) {
	m.SubmissionsFailed.WithLabelValues(kind, reason).Inc()
}

// RecordNotification records a dispatch outcome for one (audience, channel) pair
func (m *Metrics) RecordNotification(kind, audience, channel string, success bool) {
	if success {
		m.NotificationsSent.WithLabelValues(kind, audience, channel).Inc()
		return
	}
	m.NotificationsFailed.WithLabelValues(kind, audience, channel).Inc()
}

// RecordCaptcha increments the captcha verification counter
func (m *Metrics) RecordCaptcha(passed bool) {
	outcome := "failed"
	if passed {
		outcome = "passed"
	}
	m.CaptchaVerifications.WithLabelValues(outcome).Inc()
}

// UpdateWizardSessions updates the active wizard sessions gauge
func (m *Metrics) UpdateWizardSessions(count float64) {
	m.WizardSessionsActive.Set(count)
}

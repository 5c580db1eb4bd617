package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the counters exported on /metrics
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// contact pipeline
	SubmissionsTotal    *prometheus.CounterVec
	MessagesStored      prometheus.Counter
	NotificationsTotal  *prometheus.CounterVec
	NotificationLatency prometheus.Histogram
	RateLimitBlocks     prometheus.Counter
}

// Submission outcomes
const (
	OutcomeAccepted   = "accepted"
	OutcomeInvalid    = "invalid"
	OutcomeStoreError = "store_error"
)

// New registers the portfolio metrics on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "portfolio_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		SubmissionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_contact_submissions_total",
				Help: "Contact form submissions by outcome",
			},
			[]string{"outcome"},
		),
		MessagesStored: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "portfolio_messages_stored_total",
				Help: "Messages appended to the message store",
			},
		),
		NotificationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_notifications_total",
				Help: "Operator notification attempts by result",
			},
			[]string{"result"},
		),
		NotificationLatency: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "portfolio_notification_send_seconds",
				Help:    "Time spent handing a notification to the mail relay",
				Buckets: prometheus.DefBuckets,
			},
		),
		RateLimitBlocks: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "portfolio_rate_limit_blocks_total",
				Help: "Requests rejected by the contact rate limiter",
			},
		),
	}
}

// RecordHTTPRequest records one served request
func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func (m *Metrics) RecordSubmission(outcome string) {
	m.SubmissionsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordMessageStored() {
	m.MessagesStored.Inc()
}

// RecordNotification records a send attempt and how long it took
func (m *Metrics) RecordNotification(sent bool, duration time.Duration) {
	result := "sent"
	if !sent {
		result = "failed"
	}
	m.NotificationsTotal.WithLabelValues(result).Inc()
	m.NotificationLatency.Observe(duration.Seconds())
}

func (m *Metrics) RecordRateLimitBlock() {
	m.RateLimitBlocks.Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

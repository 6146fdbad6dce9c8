package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments of the API and its workers.
type Metrics struct {
	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
	scheduleAssignments *prometheus.CounterVec
	outboxPublished     *prometheus.CounterVec
	mailDeliveries      *prometheus.CounterVec
}

var (
	defaultOnce sync.Once
	defaultM    *Metrics
)

// Default returns the metrics registered on the default Prometheus registry.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultM = New(prometheus.DefaultRegisterer)
	})
	return defaultM
}

// New builds and registers the instruments on registerer.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "workcurb_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "workcurb_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		scheduleAssignments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "workcurb_schedule_assignments_total",
			Help: "Completed schedule assignments by the path that applied them.",
		}, []string{"method"}),
		outboxPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "workcurb_outbox_published_total",
			Help: "Outbox events handed to Kafka by outcome.",
		}, []string{"status"}),
		mailDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "workcurb_mail_deliveries_total",
			Help: "Transactional emails by template and outcome.",
		}, []string{"template", "status"}),
	}

	registerer.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.scheduleAssignments,
		m.outboxPublished,
		m.mailDeliveries,
	)
	return m
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) RecordScheduleAssignment(method string) {
	if m == nil {
		return
	}
	m.scheduleAssignments.WithLabelValues(method).Inc()
}

func (m *Metrics) RecordOutboxPublish(status string) {
	if m == nil {
		return
	}
	m.outboxPublished.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordMailDelivery(template string, err error) {
	if m == nil {
		return
	}
	status := "sent"
	if err != nil {
		status = "failed"
	}
	m.mailDeliveries.WithLabelValues(template, status).Inc()
}

// GinMiddleware records request count and latency per matched route.
func GinMiddleware(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the upload service.
type Metrics struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	gateOutcomes    *prometheus.CounterVec
	validations     *prometheus.CounterVec
	storedDocuments *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		gateOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "submission_gate_outcomes_total",
			Help: "Upload submissions by gate outcome",
		}, []string{"outcome"}),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "document_validations_total",
			Help: "Document validation requests by result",
		}, []string{"result"}),
		storedDocuments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stored_documents_total",
			Help: "Documents written to object storage by document type",
		}, []string{"document_type"}),
	}

	registry.MustRegister(
		m.requestDuration,
		m.requestTotal,
		m.gateOutcomes,
		m.validations,
		m.storedDocuments,
		collectors.NewGoCollector(),
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		labels := prometheus.Labels{
			"method": r.Method,
			"path":   metricPath(r.URL.Path),
			"status": strconv.Itoa(rw.statusCode),
		}
		m.requestTotal.With(labels).Inc()
		m.requestDuration.With(labels).Observe(time.Since(started).Seconds())
	})
}

// GateOutcome records "passed" or the veto reason.
func (m *Metrics) GateOutcome(outcome string) {
	m.gateOutcomes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Validation(valid bool) {
	result := "invalid"
	if valid {
		result = "valid"
	}
	m.validations.WithLabelValues(result).Inc()
}

func (m *Metrics) DocumentStored(docType string) {
	m.storedDocuments.WithLabelValues(docType).Inc()
}

var knownPaths = map[string]bool{
	"/":                 true,
	"/upload":           true,
	"/uploads":          true,
	"/reset":            true,
	"/api/requirements": true,
	"/api/validate":     true,
	"/healthz":          true,
	"/metrics":          true,
}

// metricPath keeps label cardinality bounded.
func metricPath(path string) string {
	if knownPaths[path] {
		return path
	}
	if strings.HasPrefix(path, "/static/") {
		return "/static"
	}
	if strings.HasPrefix(path, "/uploads/") && strings.HasSuffix(path, "/delete") {
		return "/uploads/:id/delete"
	}
	return "other"
}

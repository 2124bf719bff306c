// Package metrics exposes Prometheus counters for the HTTP surface and the
// ticket, chat, status and login workflows.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "leafsmp"

// Metrics owns a private registry so that several instances (tests, for
// example) never collide on the global one.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests   *prometheus.CounterVec
	httpLatency    *prometheus.HistogramVec
	ticketsCreated *prometheus.CounterVec
	ticketsUpdated *prometheus.CounterVec
	chatMessages   *prometheus.CounterVec
	statusRefresh  *prometheus.CounterVec
	adminLogins    *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		ticketsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tickets_created_total",
				Help:      "Tickets opened, by category",
			},
			[]string{"category"},
		),
		ticketsUpdated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tickets_updated_total",
				Help:      "Admin ticket updates, by resulting status",
			},
			[]string{"status"},
		),
		chatMessages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "chat_messages_total",
				Help:      "Chat messages appended, by sender",
			},
			[]string{"sender"},
		),
		statusRefresh: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "server_status_refresh_total",
				Help:      "Live server status refreshes, by outcome",
			},
			[]string{"outcome"},
		),
		adminLogins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "admin_logins_total",
				Help:      "Admin login attempts, by result",
			},
			[]string{"result"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpLatency,
		m.ticketsCreated,
		m.ticketsUpdated,
		m.chatMessages,
		m.statusRefresh,
		m.adminLogins,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) TicketCreated(category string) {
	m.ticketsCreated.WithLabelValues(category).Inc()
}

func (m *Metrics) TicketUpdated(status string) {
	m.ticketsUpdated.WithLabelValues(status).Inc()
}

func (m *Metrics) ChatMessageSent(sender string) {
	m.chatMessages.WithLabelValues(sender).Inc()
}

func (m *Metrics) StatusRefreshed(outcome string) {
	m.statusRefresh.WithLabelValues(outcome).Inc()
}

func (m *Metrics) AdminLogin(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	m.adminLogins.WithLabelValues(result).Inc()
}

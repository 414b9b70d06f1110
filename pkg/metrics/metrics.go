package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	BookingTransitions *prometheus.CounterVec
	ConductEvents      *prometheus.CounterVec
	CatalogCache       *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном registry
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном registry
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),

		BookingTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_transitions_total",
			Help:        "Booking lifecycle operations by action and result",
			ConstLabels: constLabels,
		}, []string{"action", "result"}),

		ConductEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "conduct_events_total",
			Help:        "Customer conduct events (warning, ban, lift)",
			ConstLabels: constLabels,
		}, []string{"event"}),

		CatalogCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "catalog_cache_requests_total",
			Help:        "Catalog cache lookups by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBWaitCount,
		m.BookingTransitions,
		m.ConductEvents,
		m.CatalogCache,
	)

	return m
}

// RecordTransition учитывает операцию жизненного цикла бронирования
func (m *Metrics) RecordTransition(action, result string) {
	if m == nil {
		return
	}
	m.BookingTransitions.WithLabelValues(action, result).Inc()
}

// RecordConduct учитывает событие политики поведения клиента
func (m *Metrics) RecordConduct(event string) {
	if m == nil {
		return
	}
	m.ConductEvents.WithLabelValues(event).Inc()
}

// RecordCache учитывает обращение к кешу каталога (hit/miss/error)
func (m *Metrics) RecordCache(result string) {
	if m == nil {
		return
	}
	m.CatalogCache.WithLabelValues(result).Inc()
}

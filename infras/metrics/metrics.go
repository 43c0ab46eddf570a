package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"
	"time"

	"hms/config"
	"hms/infras/postgres"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultAllocated      = "allocated"
	ResultNoneAvailable  = "none_available"
	EventBooked          = "booked"
	EventCancelled       = "cancelled"
	EventReleased        = "released"
	publishResultOK      = "ok"
	publishResultFailure = "failed"
)

// Collector holds every metric the service exports. A nil *Collector records nothing.
type Collector struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	InFlightGauge   prometheus.Gauge

	RoomAllocationsTotal *prometheus.CounterVec
	RoomReleasesTotal    prometheus.Counter
	AppointmentsTotal    *prometheus.CounterVec
	LedgerEntriesTotal   *prometheus.CounterVec
	DispensedUnitsTotal  prometheus.Counter
	EventsPublishedTotal *prometheus.CounterVec
}

func NewCollector(serviceName string) *Collector {
	namespace := strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(serviceName)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	factory := promauto.With(registry)

	return &Collector{
		registry: registry,

		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, route, and status code.",
		}, []string{"method", "route", "status"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency distribution.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"method", "route"}),

		InFlightGauge: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),

		RoomAllocationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rooms",
			Name:      "allocations_total",
			Help:      "Room allocation attempts by room type and result.",
		}, []string{"room_type", "result"}),

		RoomReleasesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rooms",
			Name:      "releases_total",
			Help:      "Total rooms returned to the available pool.",
		}),

		AppointmentsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "appointments",
			Name:      "events_total",
			Help:      "Appointments by lifecycle event.",
		}, []string{"event"}),

		LedgerEntriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "billing",
			Name:      "ledger_entries_total",
			Help:      "Ledger entries posted by transaction kind.",
		}, []string{"kind"}),

		DispensedUnitsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pharmacy",
			Name:      "dispensed_units_total",
			Help:      "Total medication units dispensed.",
		}),

		EventsPublishedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Kafka publish attempts by topic and result.",
		}, []string{"topic", "result"}),
	}
}

// New builds the collector for the configured app and exports the postgres
// pool statistics. It returns nil when metrics are disabled.
func New(cfg *config.Config, db *postgres.Connection) *Collector {
	if !cfg.Metrics.Enable {
		return nil
	}

	collector := NewCollector(cfg.App.Name)

	if db != nil {
		if db.Write != nil {
			collector.RegisterDB(db.Write.DB, "write")
		}

		if db.Read != nil && db.Read != db.Write {
			collector.RegisterDB(db.Read.DB, "read")
		}
	}

	return collector
}

// RegisterDB exports pool statistics for db under the given name.
func (c *Collector) RegisterDB(db *sql.DB, name string) {
	if c == nil || db == nil {
		return
	}

	c.registry.MustRegister(collectors.NewDBStatsCollector(db, name))
}

func (c *Collector) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}

	c.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (c *Collector) RoomAllocation(roomType, result string) {
	if c == nil {
		return
	}

	c.RoomAllocationsTotal.WithLabelValues(roomType, result).Inc()
}

func (c *Collector) RoomReleased() {
	if c == nil {
		return
	}

	c.RoomReleasesTotal.Inc()
}

func (c *Collector) Appointment(event string) {
	if c == nil {
		return
	}

	c.AppointmentsTotal.WithLabelValues(event).Inc()
}

func (c *Collector) LedgerEntry(kind string) {
	if c == nil {
		return
	}

	c.LedgerEntriesTotal.WithLabelValues(kind).Inc()
}

func (c *Collector) Dispensed(quantity int) {
	if c == nil || quantity <= 0 {
		return
	}

	c.DispensedUnitsTotal.Add(float64(quantity))
}

func (c *Collector) EventPublished(topic string, err error) {
	if c == nil {
		return
	}

	result := publishResultOK
	if err != nil {
		result = publishResultFailure
	}

	c.EventsPublishedTotal.WithLabelValues(topic, result).Inc()
}

// Handler serves the collector's registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return promhttp.Handler()
	}

	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

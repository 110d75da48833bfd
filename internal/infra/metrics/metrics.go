package metrics

import (
	"net/http"
	"strconv"
	"time"

	"rental-admin/internal/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "rental_admin"

// Metrics owns its registry so tests and multiple app instances do not collide
// on the global default registerer.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge
	bookingsTotal        *prometheus.CounterVec
	paymentsTotal        *prometheus.CounterVec
	cancellationsTotal   prometheus.Counter
	couponChecksTotal    *prometheus.CounterVec
}

func New(cfg config.MetricsConfig) *Metrics {
	namespace := cfg.Namespace
	if namespace == "" {
		namespace = defaultNamespace
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		httpRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Current number of HTTP requests being processed",
			},
		),
		bookingsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_created_total",
				Help:      "Bookings created, split by whether a coupon was applied",
			},
			[]string{"coupon"},
		),
		paymentsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payments_recorded_total",
				Help:      "Payments recorded by method",
			},
			[]string{"method"},
		),
		cancellationsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_cancelled_total",
				Help:      "Bookings cancelled",
			},
		),
		couponChecksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "coupon_checks_total",
				Help:      "Coupon applicability checks by outcome",
			},
			[]string{"result"},
		),
	}
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) RequestStarted() { m.httpRequestsInFlight.Inc() }

func (m *Metrics) RequestFinished(method, path string, status int, elapsed time.Duration) {
	m.httpRequestsInFlight.Dec()
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

func (m *Metrics) BookingCreated(couponApplied bool) {
	m.bookingsTotal.WithLabelValues(strconv.FormatBool(couponApplied)).Inc()
}

func (m *Metrics) PaymentRecorded(method string) {
	m.paymentsTotal.WithLabelValues(method).Inc()
}

func (m *Metrics) BookingCancelled() { m.cancellationsTotal.Inc() }

// CouponChecked labels the outcome with the ineligibility reason, or "APPLICABLE".
func (m *Metrics) CouponChecked(result string) {
	m.couponChecksTotal.WithLabelValues(result).Inc()
}

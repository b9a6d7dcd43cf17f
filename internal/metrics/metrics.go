package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the service's Prometheus metrics. A nil *Collector is a no-op.
type Collector struct {
	reg      prometheus.Registerer
	gatherer prometheus.Gatherer

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec

	Assignments        *prometheus.CounterVec
	AssignmentDistance prometheus.Histogram

	Notifications *prometheus.CounterVec
}

// New registers metrics against reg, defaulting to the global registry when nil.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Handled HTTP requests by route pattern, method and status code.",
	}, []string{"route", "method", "code"}), "http_requests_total")
	if err != nil {
		return nil, err
	}

	durations, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	}, []string{"route", "method"}), "http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	assignments, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "report_center_assignments_total",
		Help: "Nearest-center resolutions on report submission by outcome (assigned, unassigned).",
	}, []string{"outcome"}), "report_center_assignments_total")
	if err != nil {
		return nil, err
	}

	distance, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "report_center_distance_km",
		Help:    "Distance between a submitted report and its assigned center in kilometres.",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	}), "report_center_distance_km")
	if err != nil {
		return nil, err
	}

	notifications, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "report_notifications_total",
		Help: "Report event deliveries by result (sent, failed).",
	}, []string{"result"}), "report_notifications_total")
	if err != nil {
		return nil, err
	}

	return &Collector{
		reg:                reg,
		gatherer:           gatherer,
		HTTPRequests:       requests,
		HTTPDurations:      durations,
		Assignments:        assignments,
		AssignmentDistance: distance,
		Notifications:      notifications,
	}, nil
}

func (c *Collector) ObserveAssignment(assigned bool, distanceKM float64) {
	if c == nil {
		return
	}
	if !assigned {
		c.Assignments.WithLabelValues("unassigned").Inc()
		return
	}
	c.Assignments.WithLabelValues("assigned").Inc()
	c.AssignmentDistance.Observe(distanceKM)
}

func (c *Collector) ObserveNotification(sent bool) {
	if c == nil {
		return
	}
	if sent {
		c.Notifications.WithLabelValues("sent").Inc()
		return
	}
	c.Notifications.WithLabelValues("failed").Inc()
}

// Middleware records request counts and latency keyed by the chi route pattern.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c == nil {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unknown"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		code := ww.Status()
		if code == 0 {
			code = http.StatusOK
		}
		c.HTTPRequests.WithLabelValues(route, r.Method, strconv.Itoa(code)).Inc()
		c.HTTPDurations.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

// WatchQueue exports the pending notification backlog, read from depth on every scrape.
// A failed read is reported as -1.
func (c *Collector) WatchQueue(depth func() (int64, error)) error {
	if c == nil {
		return nil
	}
	gauge := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "report_notification_queue_depth",
		Help: "Report events waiting for webhook delivery.",
	}, func() float64 {
		n, err := depth()
		if err != nil {
			return -1
		}
		return float64(n)
	})
	if err := c.reg.Register(gauge); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return nil
		}
		return err
	}
	return nil
}

func (c *Collector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}

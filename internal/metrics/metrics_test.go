package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveAssignment(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	c.ObserveAssignment(true, 0.08)
	c.ObserveAssignment(true, 12)
	c.ObserveAssignment(false, 0)

	if got := testutil.ToFloat64(c.Assignments.WithLabelValues("assigned")); got != 2 {
		t.Fatalf("assigned = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.Assignments.WithLabelValues("unassigned")); got != 1 {
		t.Fatalf("unassigned = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(c.AssignmentDistance); n != 1 {
		t.Fatalf("distance histogram series = %d, want 1", n)
	}
}

func TestNilCollectorIsNoop(t *testing.T) {
	var c *Collector
	c.ObserveAssignment(true, 1)
	c.ObserveNotification(false)

	h := c.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusTeapot {
		t.Fatalf("unexpected code %d", rr.Code)
	}
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	r := chi.NewRouter()
	r.Use(c.Middleware)
	r.Get("/centers/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Handle("/metrics", c.Handler())

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/centers/abc", nil))

	if got := testutil.ToFloat64(c.HTTPRequests.WithLabelValues("/centers/{id}", http.MethodGet, "404")); got != 1 {
		t.Fatalf("http_requests_total = %v, want 1", got)
	}

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(rr.Body)
	if !strings.Contains(string(body), "http_requests_total") {
		t.Fatalf("metrics output missing counter")
	}
}

func TestNew_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := New(reg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b, err := New(reg)
	if err != nil {
		t.Fatalf("second New: %v", err)
	}
	if a.HTTPRequests != b.HTTPRequests {
		t.Fatalf("expected shared counter vec")
	}
}

func TestWatchQueue(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var (
		depth   int64 = 3
		readErr error
	)
	if err := c.WatchQueue(func() (int64, error) { return depth, readErr }); err != nil {
		t.Fatalf("WatchQueue: %v", err)
	}

	expect := func(want string) {
		t.Helper()
		body := "# HELP report_notification_queue_depth Report events waiting for webhook delivery.\n" +
			"# TYPE report_notification_queue_depth gauge\n" +
			"report_notification_queue_depth " + want + "\n"
		if err := testutil.GatherAndCompare(reg, strings.NewReader(body), "report_notification_queue_depth"); err != nil {
			t.Fatalf("unexpected gauge: %v", err)
		}
	}

	expect("3")
	depth = 12
	expect("12")
	readErr = errors.New("redis down")
	expect("-1")

	if err := c.WatchQueue(func() (int64, error) { return 0, nil }); err != nil {
		t.Fatalf("second WatchQueue should be a no-op, got %v", err)
	}

	var nilCollector *Collector
	if err := nilCollector.WatchQueue(func() (int64, error) { return 0, nil }); err != nil {
		t.Fatalf("nil collector: %v", err)
	}
}

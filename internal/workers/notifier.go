package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"wastetrack/internal/domain"
	"wastetrack/pkg/e"
)

const (
	defaultAttempts   = 3
	defaultBackoff    = time.Second
	defaultPopTimeout = 5 * time.Second
)

type EventSource interface {
	Dequeue(ctx context.Context, timeout time.Duration) (domain.ReportEvent, error)
}

type DeliveryObserver interface {
	ObserveNotification(sent bool)
}

// Notifier drains report events from the queue and POSTs them to a webhook.
type Notifier struct {
	queue    EventSource
	url      string
	workers  int
	observer DeliveryObserver
	logger   *slog.Logger
	http     *http.Client

	attempts   int
	backoff    time.Duration
	popTimeout time.Duration
}

func NewNotifier(queue EventSource, url string, workers int, observer DeliveryObserver, logger *slog.Logger) *Notifier {
	if workers < 1 {
		workers = 1
	}
	return &Notifier{
		queue:      queue,
		url:        url,
		workers:    workers,
		observer:   observer,
		logger:     logger,
		http:       &http.Client{Timeout: 5 * time.Second},
		attempts:   defaultAttempts,
		backoff:    defaultBackoff,
		popTimeout: defaultPopTimeout,
	}
}

// Run blocks until ctx is done and every worker has returned.
func (n *Notifier) Run(ctx context.Context) {
	n.logger.Info("notifier started", slog.String("url", n.url), slog.Int("workers", n.workers))

	var wg sync.WaitGroup
	for i := 0; i < n.workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			n.worker(ctx, id)
		}(i)
	}
	wg.Wait()

	n.logger.Info("notifier stopped")
}

func (n *Notifier) worker(ctx context.Context, id int) {
	l := n.logger.With(slog.Int("worker", id))
	for ctx.Err() == nil {
		ev, err := n.queue.Dequeue(ctx, n.popTimeout)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) || ctx.Err() != nil {
				continue
			}
			l.Error("dequeue failed", slog.Any("error", err))
			if !sleep(ctx, 500*time.Millisecond) {
				return
			}
			continue
		}

		err = n.deliver(ctx, ev)
		if n.observer != nil {
			n.observer.ObserveNotification(err == nil)
		}
		if err != nil {
			l.Error("report event dropped",
				slog.String("type", string(ev.Type)),
				slog.String("report_id", ev.ReportID.String()),
				slog.Any("error", err),
			)
			continue
		}
		l.Debug("report event delivered", slog.String("report_id", ev.ReportID.String()))
	}
}

// deliver tries up to n.attempts times, waiting attempt*backoff between tries.
func (n *Notifier) deliver(ctx context.Context, ev domain.ReportEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	var last error
	for attempt := 1; attempt <= n.attempts; attempt++ {
		if last = n.post(ctx, body); last == nil {
			return nil
		}
		n.logger.Warn("webhook attempt failed",
			slog.Int("attempt", attempt),
			slog.String("report_id", ev.ReportID.String()),
			slog.String("reason", last.Error()),
		)
		if attempt < n.attempts && !sleep(ctx, time.Duration(attempt)*n.backoff) {
			return ctx.Err()
		}
	}
	return fmt.Errorf("after %d attempts: %w", n.attempts, last)
}

func (n *Notifier) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.http.Do(req)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded %s", resp.Status)
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

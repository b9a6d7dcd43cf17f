package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"wastetrack/internal/domain"
	"wastetrack/pkg/e"

	"github.com/redis/go-redis/v9"
)

// EventQueue is a FIFO of report events on a Redis list (LPUSH in, BRPOP out).
type EventQueue struct {
	client *redis.Client
	key    string
}

func NewEventQueue(client *redis.Client, key string) *EventQueue {
	return &EventQueue{client: client, key: key}
}

func (q *EventQueue) Enqueue(ctx context.Context, ev domain.ReportEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

// Dequeue blocks up to timeout. An empty queue yields e.ErrQueueEmpty.
func (q *EventQueue) Dequeue(ctx context.Context, timeout time.Duration) (domain.ReportEvent, error) {
	var ev domain.ReportEvent

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ev, e.ErrQueueEmpty
		}
		return ev, err
	}
	if len(res) < 2 {
		return ev, e.ErrQueueEmpty
	}
	if err := json.Unmarshal([]byte(res[1]), &ev); err != nil {
		return ev, err
	}
	return ev, nil
}

func (q *EventQueue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}

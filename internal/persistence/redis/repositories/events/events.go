package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/sergeii/netmon/internal/core/entities/event"
	"github.com/sergeii/netmon/internal/core/repositories"
)

const historyKey = "history:events"

const defaultCapacity = 100

type Opts struct {
	Capacity int
}

// Repository keeps the transition log in a capped redis list,
// oldest entries first. Appends beyond the capacity evict from the head,
// making the log a rolling window rather than durable history.
type Repository struct {
	client *redis.Client
	opts   Opts
}

func New(client *redis.Client, opts Opts) *Repository {
	if opts.Capacity <= 0 {
		opts.Capacity = defaultCapacity
	}
	return &Repository{
		client: client,
		opts:   opts,
	}
}

func (r *Repository) Add(ctx context.Context, evt event.Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, historyKey, data)
		pipe.LTrim(ctx, historyKey, int64(-r.opts.Capacity), -1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}

	return nil
}

func (r *Repository) List(ctx context.Context, limit int) ([]event.Event, error) {
	start := int64(0)
	if limit > 0 {
		start = int64(-limit)
	}

	values, err := r.client.LRange(ctx, historyKey, start, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	events := make([]event.Event, 0, len(values))
	for _, value := range values {
		evt, err := asEvent(value)
		if err != nil {
			return nil, err
		}
		events = append(events, evt)
	}
	return events, nil
}

func (r *Repository) Latest(ctx context.Context) (event.Event, error) {
	values, err := r.client.LRange(ctx, historyKey, -1, -1).Result()
	if err != nil {
		return event.Blank, fmt.Errorf("failed to fetch latest event: %w", err)
	}
	if len(values) == 0 {
		return event.Blank, repositories.ErrHistoryIsEmpty
	}
	return asEvent(values[0])
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	count, err := r.client.LLen(ctx, historyKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return int(count), nil
}

func asEvent(value string) (event.Event, error) {
	var evt event.Event
	if err := json.Unmarshal([]byte(value), &evt); err != nil {
		return event.Blank, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	return evt, nil
}

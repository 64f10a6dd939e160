package statuses

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sergeii/netmon/internal/core/entities/connstate"
	"github.com/sergeii/netmon/internal/core/repositories"
)

const statusKey = "status:current"

type item struct {
	Status    connstate.Status `json:"status"`
	ChangedAt time.Time        `json:"changed_at"`
}

type Repository struct {
	client *redis.Client
}

func New(client *redis.Client) *Repository {
	return &Repository{
		client: client,
	}
}

func (r *Repository) Get(ctx context.Context) (repositories.CurrentStatus, error) {
	value, err := r.client.Get(ctx, statusKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return repositories.CurrentStatus{}, repositories.ErrStatusNotFound
		}
		return repositories.CurrentStatus{}, fmt.Errorf("failed to fetch status: %w", err)
	}

	var stored item
	if err = json.Unmarshal([]byte(value), &stored); err != nil {
		return repositories.CurrentStatus{}, fmt.Errorf("failed to unmarshal status: %w", err)
	}

	return repositories.CurrentStatus{
		Status:    stored.Status,
		ChangedAt: stored.ChangedAt,
	}, nil
}

func (r *Repository) Update(ctx context.Context, current repositories.CurrentStatus) error {
	data, err := json.Marshal(item{
		Status:    current.Status,
		ChangedAt: current.ChangedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal status: %w", err)
	}
	if err = r.client.Set(ctx, statusKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store status: %w", err)
	}
	return nil
}

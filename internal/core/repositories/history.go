package repositories

import (
	"context"
	"errors"

	"github.com/sergeii/netmon/internal/core/entities/event"
)

var ErrHistoryIsEmpty = errors.New("history contains no events")

type HistoryRepository interface {
	// Add appends a transition event to the history log,
	// evicting the oldest entries beyond the configured capacity.
	Add(context.Context, event.Event) error
	// List returns up to limit most recent events in chronological order.
	// A non-positive limit returns the whole retained log.
	List(context.Context, int) ([]event.Event, error)
	// Latest returns the most recent event, or ErrHistoryIsEmpty.
	Latest(context.Context) (event.Event, error)
	Count(context.Context) (int, error)
}

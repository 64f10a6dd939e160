package listhistory

import (
	"context"
	"errors"

	"github.com/sergeii/netmon/internal/core/entities/connstate"
	"github.com/sergeii/netmon/internal/core/entities/event"
	"github.com/sergeii/netmon/internal/core/repositories"
)

var ErrUnableToObtainEvents = errors.New("unable to obtain events from history")

type UseCase struct {
	historyRepo repositories.HistoryRepository
}

type Request struct {
	limit int
	state connstate.Status
}

func New(historyRepo repositories.HistoryRepository) UseCase {
	return UseCase{
		historyRepo: historyRepo,
	}
}

// NewRequest prepares a history query. A non-positive limit returns the whole
// retained log; an Unknown state applies no state filter.
func NewRequest(limit int, state connstate.Status) Request {
	return Request{
		limit: limit,
		state: state,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req Request) ([]event.Event, error) {
	events, err := uc.historyRepo.List(ctx, req.limit)
	if err != nil {
		return nil, ErrUnableToObtainEvents
	}

	if !req.state.Resolved() {
		return events, nil
	}

	filtered := make([]event.Event, 0, len(events))
	for _, evt := range events {
		if evt.Current == req.state {
			filtered = append(filtered, evt)
		}
	}
	return filtered, nil
}

package recordstatus

import (
	"context"
	"errors"

	"github.com/sergeii/netmon/internal/core/entities/event"
	"github.com/sergeii/netmon/internal/core/repositories"
)

var (
	ErrUnableToUpdateStatus  = errors.New("unable to update current status")
	ErrUnableToAppendHistory = errors.New("unable to append event to history")
)

type UseCase struct {
	statusRepo  repositories.StatusRepository
	historyRepo repositories.HistoryRepository
}

type Request struct {
	evt event.Event
}

func New(
	statusRepo repositories.StatusRepository,
	historyRepo repositories.HistoryRepository,
) UseCase {
	return UseCase{
		statusRepo:  statusRepo,
		historyRepo: historyRepo,
	}
}

func NewRequest(evt event.Event) Request {
	return Request{
		evt: evt,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req Request) error {
	current := repositories.CurrentStatus{
		Status:    req.evt.Current,
		ChangedAt: req.evt.Timestamp,
	}
	if err := uc.statusRepo.Update(ctx, current); err != nil {
		return ErrUnableToUpdateStatus
	}
	if err := uc.historyRepo.Add(ctx, req.evt); err != nil {
		return ErrUnableToAppendHistory
	}
	return nil
}

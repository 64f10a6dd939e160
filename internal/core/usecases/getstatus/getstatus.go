package getstatus

import (
	"context"
	"errors"
	"time"

	"github.com/sergeii/netmon/internal/core/entities/connstate"
	"github.com/sergeii/netmon/internal/core/repositories"
)

var ErrUnableToObtainStatus = errors.New("unable to obtain current status")

type UseCase struct {
	statusRepo repositories.StatusRepository
}

type Response struct {
	Status    connstate.Status
	ChangedAt time.Time
}

func New(statusRepo repositories.StatusRepository) UseCase {
	return UseCase{
		statusRepo: statusRepo,
	}
}

func (uc *UseCase) Execute(ctx context.Context) (Response, error) {
	current, err := uc.statusRepo.Get(ctx)
	if err != nil {
		// the status simply has not been resolved yet
		if errors.Is(err, repositories.ErrStatusNotFound) {
			return Response{Status: connstate.Unknown}, nil
		}
		return Response{}, ErrUnableToObtainStatus
	}
	return Response{
		Status:    current.Status,
		ChangedAt: current.ChangedAt,
	}, nil
}

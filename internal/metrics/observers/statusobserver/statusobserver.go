package statusobserver

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/sergeii/netmon/internal/core/entities/connstate"
	"github.com/sergeii/netmon/internal/core/repositories"
	"github.com/sergeii/netmon/internal/metrics"
)

type StatusObserver struct {
	statusRepo repositories.StatusRepository
	logger     *zerolog.Logger
}

func New(
	collector *metrics.Collector,
	statusRepo repositories.StatusRepository,
	logger *zerolog.Logger,
) StatusObserver {
	observer := StatusObserver{
		statusRepo: statusRepo,
		logger:     logger,
	}
	collector.AddObserver(&observer)
	return observer
}

func (o StatusObserver) Observe(ctx context.Context, m *metrics.Collector) {
	current, err := o.statusRepo.Get(ctx)
	switch {
	case errors.Is(err, repositories.ErrStatusNotFound):
		current.Status = connstate.Unknown
	case err != nil:
		o.logger.Error().Err(err).Msg("Unable to observe current status")
		return
	}
	m.MonitorStatus.Set(asGaugeValue(current.Status))
	o.logger.Debug().Stringer("status", current.Status).Msg("Observed current status")
}

func asGaugeValue(status connstate.Status) float64 {
	switch status {
	case connstate.Online:
		return 1
	case connstate.Offline:
		return 0
	default:
		return -1
	}
}

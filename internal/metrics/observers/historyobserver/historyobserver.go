package historyobserver

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sergeii/netmon/internal/core/repositories"
	"github.com/sergeii/netmon/internal/metrics"
)

type HistoryObserver struct {
	historyRepo repositories.HistoryRepository
	logger      *zerolog.Logger
}

func New(
	collector *metrics.Collector,
	historyRepo repositories.HistoryRepository,
	logger *zerolog.Logger,
) HistoryObserver {
	observer := HistoryObserver{
		historyRepo: historyRepo,
		logger:      logger,
	}
	collector.AddObserver(&observer)
	return observer
}

func (o HistoryObserver) Observe(ctx context.Context, m *metrics.Collector) {
	count, err := o.historyRepo.Count(ctx)
	if err != nil {
		o.logger.Error().Err(err).Msg("Unable to observe history size")
		return
	}
	m.HistorySize.Set(float64(count))
	o.logger.Debug().Int("count", count).Msg("Observed history size")
}

package statusobserver_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/netmon/internal/core/entities/connstate"
	"github.com/sergeii/netmon/internal/core/repositories"
	"github.com/sergeii/netmon/internal/metrics"
	"github.com/sergeii/netmon/internal/metrics/observers/statusobserver"
	"github.com/sergeii/netmon/internal/persistence/redis/repositories/statuses"
	"github.com/sergeii/netmon/internal/testutils/testredis"
)

func TestStatusObserver_Observe(t *testing.T) {
	tests := []struct {
		name   string
		status connstate.Status
		want   float64
	}{
		{"online", connstate.Online, 1},
		{"offline", connstate.Offline, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			rdb := testredis.MakeClient(t)
			statusRepo := statuses.New(rdb)
			require.NoError(t, statusRepo.Update(ctx, repositories.CurrentStatus{
				Status:    tt.status,
				ChangedAt: time.Now(),
			}))

			collector := metrics.New()
			logger := zerolog.Nop()
			statusobserver.New(collector, statusRepo, &logger)

			collector.Observe(ctx)

			assert.Equal(t, tt.want, testutil.ToFloat64(collector.MonitorStatus))
		})
	}
}

func TestStatusObserver_ObserveUnresolved(t *testing.T) {
	ctx := t.Context()
	rdb := testredis.MakeClient(t)
	statusRepo := statuses.New(rdb)

	collector := metrics.New()
	logger := zerolog.Nop()
	statusobserver.New(collector, statusRepo, &logger)

	collector.Observe(ctx)

	assert.Equal(t, float64(-1), testutil.ToFloat64(collector.MonitorStatus))
}

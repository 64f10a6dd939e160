package checkstatus_test

import (
	"context"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"

	"github.com/sergeii/netmon/internal/core/entities/connstate"
	"github.com/sergeii/netmon/internal/core/usecases/checkstatus"
)

type fixedProber struct {
	outcome bool
	calls   int
}

func (p *fixedProber) Probe(_ context.Context) bool {
	p.calls++
	return p.outcome
}

func TestCheckStatusUseCase_Execute(t *testing.T) {
	tests := []struct {
		name    string
		outcome bool
		want    connstate.Status
	}{
		{"reachable", true, connstate.Online},
		{"unreachable", false, connstate.Offline},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := clockwork.NewFakeClock()
			prober := &fixedProber{outcome: tt.outcome}

			uc := checkstatus.New(prober, clock)
			resp, err := uc.Execute(context.TODO())

			assert.NoError(t, err)
			assert.Equal(t, tt.want, resp.Status)
			assert.Equal(t, clock.Now(), resp.CheckedAt)
			// a single check never retries
			assert.Equal(t, 1, prober.calls)
		})
	}
}

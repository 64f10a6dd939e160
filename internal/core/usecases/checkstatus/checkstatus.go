package checkstatus

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/sergeii/netmon/internal/core/entities/connstate"
	"github.com/sergeii/netmon/internal/monitor"
)

type UseCase struct {
	prober monitor.Prober
	clock  clockwork.Clock
}

type Response struct {
	Status    connstate.Status
	CheckedAt time.Time
}

func New(prober monitor.Prober, clock clockwork.Clock) UseCase {
	return UseCase{
		prober: prober,
		clock:  clock,
	}
}

// Execute performs a single one-off reachability check.
// A failed probe is a valid offline outcome, not an error.
func (uc *UseCase) Execute(ctx context.Context) (Response, error) {
	outcome := uc.prober.Probe(ctx)
	return Response{
		Status:    connstate.FromOutcome(outcome),
		CheckedAt: uc.clock.Now(),
	}, nil
}

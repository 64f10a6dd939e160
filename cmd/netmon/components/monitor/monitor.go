package monitor

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/netmon/cmd/netmon/application"
	"github.com/sergeii/netmon/cmd/netmon/commander"
	"github.com/sergeii/netmon/internal/core/entities/connstate"
	"github.com/sergeii/netmon/internal/core/entities/event"
	"github.com/sergeii/netmon/internal/core/usecases/recordstatus"
	"github.com/sergeii/netmon/internal/metrics"
	monitoring "github.com/sergeii/netmon/internal/monitor"
)

type Config struct {
	CheckInterval time.Duration
}

type Component struct{}

// subscriber hands transition events over to the consumer goroutine,
// keeping the monitor's probe cadence decoupled from event processing
type subscriber struct {
	events chan event.Event
}

func (s subscriber) Notify(evt event.Event) {
	s.events <- evt
}

// measuredProber counts probe outcomes on top of the actual prober
type measuredProber struct {
	next      monitoring.Prober
	collector *metrics.Collector
}

func (p measuredProber) Probe(ctx context.Context) bool {
	outcome := p.next.Probe(ctx)
	p.collector.MonitorChecks.WithLabelValues(connstate.FromOutcome(outcome).String()).Inc()
	return outcome
}

func run(
	stop chan struct{},
	stopped chan struct{},
	events chan event.Event,
	uc recordstatus.UseCase,
	collector *metrics.Collector,
	logger *zerolog.Logger,
) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for {
		select {
		case <-stop:
			close(stopped)
			return
		case evt := <-events:
			consume(ctx, evt, uc, collector, logger)
		}
	}
}

func consume(
	ctx context.Context,
	evt event.Event,
	uc recordstatus.UseCase,
	collector *metrics.Collector,
	logger *zerolog.Logger,
) {
	collector.MonitorTransitions.WithLabelValues(evt.Previous.String(), evt.Current.String()).Inc()

	ucRequest := recordstatus.NewRequest(evt)
	if err := uc.Execute(ctx, ucRequest); err != nil {
		logger.Warn().Err(err).Msg("Unable to record connectivity transition")
	}

	announce(evt, logger)
}

func announce(evt event.Event, logger *zerolog.Logger) {
	switch {
	case evt.Initial():
		logger.Info().Stringer("status", evt.Current).Msg("Initial connectivity status resolved")
	case evt.Current == connstate.Offline:
		logger.Warn().Time("at", evt.Timestamp).Msg("Internet connection lost")
	default:
		logger.Info().Time("at", evt.Timestamp).Msg("Internet connection restored")
	}
}

func New(
	lc fx.Lifecycle,
	cfg Config,
	clock clockwork.Clock,
	prober monitoring.Prober,
	uc recordstatus.UseCase,
	collector *metrics.Collector,
	logger *zerolog.Logger,
) *Component {
	events := make(chan event.Event, 64)

	mon := monitoring.New(
		clock,
		measuredProber{next: prober, collector: collector},
		subscriber{events: events},
		logger,
		monitoring.Opts{CheckInterval: cfg.CheckInterval},
	)

	stopped := make(chan struct{})
	stop := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go run(stop, stopped, events, uc, collector, logger) // nolint: contextcheck
			mon.Start()
			return nil
		},
		OnStop: func(context.Context) error {
			mon.Stop()
			close(stop)
			<-stopped
			logger.Info().Msg("Monitor stopped")
			return nil
		},
	})

	return &Component{}
}

type command struct{}

func (c *command) Run(_ *commander.Globals, builder *application.Builder) error {
	app := builder.
		Add(
			fx.Supply(Config{
				CheckInterval: monitoring.CheckInterval,
			}),
			Module,
			fx.Invoke(func(_ *Component) {}),
		).
		WithExporter().
		Build()
	app.Run()
	return nil
}

type CLI struct {
	Monitor command `cmd:"" help:"Start connectivity monitor"`
}

var Module = fx.Module("monitor",
	fx.Provide(New),
)

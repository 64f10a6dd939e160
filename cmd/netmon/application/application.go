package application

import (
	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"

	"github.com/sergeii/netmon/cmd/netmon/components/exporter"
	"github.com/sergeii/netmon/cmd/netmon/container"
	"github.com/sergeii/netmon/cmd/netmon/logging"
	"github.com/sergeii/netmon/internal/core/repositories"
	"github.com/sergeii/netmon/internal/metrics"
	"github.com/sergeii/netmon/internal/monitor"
	"github.com/sergeii/netmon/internal/persistence/redis/repositories/events"
	"github.com/sergeii/netmon/internal/persistence/redis/repositories/statuses"
	"github.com/sergeii/netmon/internal/settings"
	"github.com/sergeii/netmon/internal/validation"
)

type Repositories struct {
	fx.Out

	Statuses repositories.StatusRepository
	History  repositories.HistoryRepository
}

func provideRepositories(
	statusRepo *statuses.Repository,
	historyRepo *events.Repository,
) Repositories {
	return Repositories{
		Statuses: statusRepo,
		History:  historyRepo,
	}
}

func provideHistoryOpts(settings settings.Settings) events.Opts {
	return events.Opts{
		Capacity: settings.HistoryLength,
	}
}

func provideProber() monitor.Prober {
	return monitor.NewHTTPProber(monitor.CheckURL, monitor.ProbeTimeout)
}

type Builder struct {
	opts []fx.Option
}

func NewBuilder(opts ...fx.Option) *Builder {
	return &Builder{
		opts: opts,
	}
}

func (b *Builder) Add(opts ...fx.Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

func (b *Builder) WithExporter() *Builder {
	return b.Add(
		fx.Invoke(func(*exporter.Component) {}),
	)
}

func (b *Builder) Build() *fx.App {
	return fx.New(b.opts...)
}

var Module = fx.Module("application",
	fx.Invoke(logging.NoGlobal),
	fx.Provide(clockwork.NewRealClock),
	fx.Provide(validation.New),
	fx.Provide(provideHistoryOpts),
	fx.Provide(statuses.New, events.New),
	fx.Provide(provideRepositories),
	fx.Provide(provideProber),
	fx.Provide(metrics.New),
	container.Module,
)

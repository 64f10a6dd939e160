package main

import (
	"github.com/alecthomas/kong"
	"go.uber.org/fx"

	"github.com/sergeii/netmon/cmd/netmon/application"
	"github.com/sergeii/netmon/cmd/netmon/commander"
	"github.com/sergeii/netmon/cmd/netmon/components/api"
	"github.com/sergeii/netmon/cmd/netmon/components/exporter"
	"github.com/sergeii/netmon/cmd/netmon/components/monitor"
	"github.com/sergeii/netmon/cmd/netmon/components/observer"
	"github.com/sergeii/netmon/cmd/netmon/logging"
	"github.com/sergeii/netmon/cmd/netmon/persistence"
	"github.com/sergeii/netmon/internal/settings"
)

func main() {
	cli := commander.CLI{}
	cli.Run.Plugins = kong.Plugins{
		&api.CLI{},
		&monitor.CLI{},
		&observer.CLI{},
	}
	ctx := kong.Parse(
		&cli,
		kong.Name("netmon"),
		kong.Description("Internet Connectivity Monitor"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Summary:   true,
			Tree:      true,
			FlagsLast: true,
		}),
	)

	builder := application.NewBuilder(
		fx.Supply(persistence.Config{
			RedisURL: cli.Globals.RedisURL,
		}),
		fx.Provide(persistence.Provide),
		application.Module,
		fx.Supply(logging.Config{
			LogLevel:  cli.Globals.LogLevel,
			LogOutput: cli.Globals.LogOutput,
		}),
		fx.Supply(settings.Settings{
			HistoryLength: cli.Globals.HistoryLength,
		}),
		fx.Provide(logging.Provide),
		fx.WithLogger(logging.FxLogger),
		fx.Supply(exporter.Config{
			HTTPListenAddress:   cli.Globals.ExporterHTTPListenAddress,
			HTTPReadTimeout:     cli.Globals.ExporterHTTPReadTimeout,
			HTTPWriteTimeout:    cli.Globals.ExporterHTTPWriteTimeout,
			HTTPShutdownTimeout: cli.Globals.ExporterHTTPShutdownTimeout,
		}),
		exporter.Module,
	)

	if err := ctx.Run(&cli.Globals, builder); err != nil {
		ctx.FatalIfErrorf(err)
	}
}

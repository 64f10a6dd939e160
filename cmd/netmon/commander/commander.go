package commander

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/jonboulle/clockwork"

	"github.com/sergeii/netmon/cmd/netmon/build"
	"github.com/sergeii/netmon/internal/core/entities/connstate"
	"github.com/sergeii/netmon/internal/core/usecases/checkstatus"
	"github.com/sergeii/netmon/internal/monitor"
)

type Globals struct {
	LogLevel  string `default:"info"    enum:"debug,info,warn,error" help:"Sets the minimum severity level for log messages"` // nolint:lll
	LogOutput string `default:"console" enum:"console,stdout,json"   help:"Specifies the format for log output"`

	RedisURL string `default:"redis://localhost:6379" help:"Defines the Redis URL connection"`

	ExporterHTTPListenAddress   string        `default:":9000" help:"Sets the address where the Prometheus exporter server listens for requests"`            // nolint:lll
	ExporterHTTPReadTimeout     time.Duration `default:"5s"    help:"Sets the maximum duration to read the request body before timing out"`                  // nolint:lll
	ExporterHTTPWriteTimeout    time.Duration `default:"5s"    help:"Sets the maximum duration to write a response before timing out"`                       // nolint:lll
	ExporterHTTPShutdownTimeout time.Duration `default:"10s"   help:"The amount of time the server will wait gracefully closing connections before exiting"` // nolint:lll

	HistoryLength int `default:"100" help:"Sets how many transition events are retained in the history log"`
}

type VersionCmd struct{}

func (v *VersionCmd) Run() error {
	version := fmt.Sprintf("Version: %s (%s) built at %s", build.Version, build.Commit, build.Time)
	fmt.Println(version) // nolint: forbidigo
	os.Exit(0)
	return nil
}

type CheckCmd struct{}

func (c *CheckCmd) Run() error {
	prober := monitor.NewHTTPProber(monitor.CheckURL, monitor.ProbeTimeout)
	uc := checkstatus.New(prober, clockwork.NewRealClock())

	resp, err := uc.Execute(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("%s (checked at %s)\n", resp.Status, resp.CheckedAt.Format(time.RFC3339)) // nolint: forbidigo
	if resp.Status != connstate.Online {
		os.Exit(1)
	}
	return nil
}

type RunCmd struct {
	kong.Plugins
}

type CLI struct {
	Globals

	Version VersionCmd `cmd:"" help:"Display the app version and exit"`
	Check   CheckCmd   `cmd:"" help:"Perform a single reachability check and exit"`
	Run     RunCmd     `cmd:""`
}

package components_test

import (
	"bytes"
	"io"
	"net/http"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/prometheus/common/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/sergeii/netmon/cmd/netmon/application"
	"github.com/sergeii/netmon/cmd/netmon/components/exporter"
	"github.com/sergeii/netmon/internal/metrics"
	"github.com/sergeii/netmon/tests/testapp"
)

func TestExporterComponent_MetricsAreServed(t *testing.T) {
	var collector *metrics.Collector

	app := fxtest.New(
		t,
		fx.Provide(testapp.NoLogging),
		fx.Provide(testapp.ProvideSettings),
		fx.Provide(testapp.ProvidePersistence),
		application.Module,
		fx.Supply(exporter.Config{
			HTTPListenAddress:   "localhost:11338",
			HTTPReadTimeout:     time.Second,
			HTTPWriteTimeout:    time.Second,
			HTTPShutdownTimeout: time.Second,
		}),
		exporter.Module,
		fx.Invoke(func(_ *exporter.Component) {}),
		fx.NopLogger,
		fx.Populate(&collector),
	)
	app.RequireStart()
	defer app.RequireStop()

	collector.MonitorChecks.WithLabelValues("online").Inc()
	collector.MonitorChecks.WithLabelValues("online").Inc()
	collector.MonitorChecks.WithLabelValues("offline").Inc()
	collector.MonitorTransitions.WithLabelValues("online", "offline").Inc()
	collector.MonitorStatus.Set(-1)
	collector.HistorySize.Set(42)

	resp, err := http.Get("http://localhost:11338/metrics") // nolint: noctx
	require.NoError(t, err)
	defer resp.Body.Close() // nolint: errcheck
	require.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	parser := expfmt.NewTextParser(model.LegacyValidation)
	families, err := parser.TextToMetricFamilies(bytes.NewReader(body))
	require.NoError(t, err)

	checks := families["monitor_checks_total"]
	require.NotNil(t, checks)
	checkValues := make(map[string]float64)
	for _, m := range checks.GetMetric() {
		checkValues[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
	}
	assert.Equal(t, 2.0, checkValues["online"])
	assert.Equal(t, 1.0, checkValues["offline"])

	transitions := families["monitor_transitions_total"]
	require.NotNil(t, transitions)
	assert.Equal(t, 1.0, transitions.GetMetric()[0].GetCounter().GetValue())

	assertGaugeValue(t, families, "monitor_status", -1)
	assertGaugeValue(t, families, "history_events", 42)

	// the standard process collectors are registered as well
	assert.Contains(t, families, "go_goroutines")
}

func assertGaugeValue(
	t *testing.T,
	families map[string]*dto.MetricFamily,
	name string,
	want float64,
) {
	t.Helper()
	family := families[name]
	require.NotNil(t, family)
	assert.Equal(t, want, family.GetMetric()[0].GetGauge().GetValue())
}

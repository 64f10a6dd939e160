package metrics

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Collector struct {
	mutex     sync.Mutex
	registry  *prometheus.Registry
	observers []Observer

	MonitorChecks      *prometheus.CounterVec
	MonitorTransitions *prometheus.CounterVec
	MonitorStatus      prometheus.Gauge

	HistorySize prometheus.Gauge
}

func New() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewGoCollector())

	c := &Collector{
		registry: registry,

		MonitorChecks: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "monitor_checks_total",
			Help: "The total number of performed reachability checks",
		}, []string{"outcome"}),
		MonitorTransitions: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "monitor_transitions_total",
			Help: "The total number of detected connectivity transitions",
		}, []string{"previous", "current"}),
		MonitorStatus: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "monitor_status",
			Help: "The current connectivity status (1 - online, 0 - offline, -1 - unknown)",
		}),
		HistorySize: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "history_events",
			Help: "The number of transition events retained in the history log",
		}),
	}
	return c
}

func (c *Collector) GetRegistry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) AddObserver(observer Observer) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.observers = append(c.observers, observer)
}

func (c *Collector) Observe(ctx context.Context) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	for _, observer := range c.observers {
		observer.Observe(ctx, c)
	}
}

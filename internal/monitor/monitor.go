package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sergeii/netmon/internal/core/entities/connstate"
	"github.com/sergeii/netmon/internal/core/entities/event"
)

// Subscriber consumes transition events emitted by the monitor.
// Notify is invoked from the monitor's background goroutine,
// so implementations must be safe for concurrent use
// and must marshal onto their own goroutine before touching shared state.
type Subscriber interface {
	Notify(event.Event)
}

type Opts struct {
	CheckInterval time.Duration
}

// Monitor runs the periodic probe-and-compare cycle in a background goroutine.
// The status transitions from Unknown to the first resolved state and that
// transition is announced like any other, giving subscribers an initial status.
type Monitor struct {
	clock      clockwork.Clock
	prober     Prober
	subscriber Subscriber
	logger     *zerolog.Logger
	opts       Opts

	mutex   sync.Mutex
	running bool
	current connstate.Status
	stop    chan struct{}
	stopped chan struct{}
}

func New(
	clock clockwork.Clock,
	prober Prober,
	subscriber Subscriber,
	logger *zerolog.Logger,
	opts Opts,
) *Monitor {
	if opts.CheckInterval <= 0 {
		opts.CheckInterval = CheckInterval
	}
	return &Monitor{
		clock:      clock,
		prober:     prober,
		subscriber: subscriber,
		logger:     logger,
		opts:       opts,
		current:    connstate.Unknown,
	}
}

// Start launches the monitoring session.
// Calling Start on an already running monitor is a no-op,
// a second concurrent loop is never spawned.
func (m *Monitor) Start() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.running {
		m.logger.Debug().Msg("Monitoring is already running")
		return
	}
	m.running = true
	m.current = connstate.Unknown
	m.stop = make(chan struct{})
	m.stopped = make(chan struct{})
	go m.run(m.stop, m.stopped)
	m.logger.Info().Dur("interval", m.opts.CheckInterval).Msg("Monitoring started")
}

// Stop terminates the session and waits for the loop goroutine to exit.
// An in-flight probe is allowed to complete but its outcome is discarded.
// Calling Stop on an already stopped monitor is a no-op.
func (m *Monitor) Stop() {
	m.mutex.Lock()
	if !m.running {
		m.mutex.Unlock()
		return
	}
	m.running = false
	stop, stopped := m.stop, m.stopped
	m.mutex.Unlock()

	close(stop)
	<-stopped
	m.logger.Info().Msg("Monitoring stopped")
}

// Status returns the currently resolved connectivity status.
func (m *Monitor) Status() connstate.Status {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.current
}

func (m *Monitor) Running() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.running
}

func (m *Monitor) run(stop, stopped chan struct{}) {
	defer close(stopped)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// resolve the initial status right away
	// instead of waiting out the first full interval
	m.tick(ctx, stop)

	// the timer is rearmed only after a probe completes,
	// so a slow probe can never overlap with the next one
	timer := m.clock.NewTimer(m.opts.CheckInterval)
	defer timer.Stop()

	for {
		select {
		case <-stop:
			return
		case <-timer.Chan():
			m.tick(ctx, stop)
			timer.Reset(m.opts.CheckInterval)
		}
	}
}

func (m *Monitor) tick(ctx context.Context, stop chan struct{}) {
	outcome := m.prober.Probe(ctx)
	// the session may have been stopped while the probe was in flight,
	// in which case its outcome no longer counts towards a transition
	select {
	case <-stop:
		return
	default:
	}
	m.resolve(outcome)
}

func (m *Monitor) resolve(outcome bool) {
	next := connstate.FromOutcome(outcome)

	m.mutex.Lock()
	prev := m.current
	if next == prev {
		m.mutex.Unlock()
		m.logger.Debug().Stringer("status", next).Msg("Connectivity status is unchanged")
		return
	}
	m.current = next
	m.mutex.Unlock()

	evt := event.New(prev, next, m.clock.Now())
	m.logger.Info().
		Stringer("previous", prev).
		Stringer("current", next).
		Msg("Detected connectivity transition")
	m.subscriber.Notify(evt)
}

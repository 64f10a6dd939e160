package eventfactory

import (
	"time"

	"github.com/sergeii/netmon/internal/core/entities/connstate"
	"github.com/sergeii/netmon/internal/core/entities/event"
)

type BuildParams struct {
	Previous  connstate.Status
	Current   connstate.Status
	Timestamp time.Time
}

type BuildOption func(*BuildParams)

func WithTransition(previous, current connstate.Status) BuildOption {
	return func(p *BuildParams) {
		p.Previous = previous
		p.Current = current
	}
}

func WithTimestamp(ts time.Time) BuildOption {
	return func(p *BuildParams) {
		p.Timestamp = ts
	}
}

func Build(opts ...BuildOption) event.Event {
	params := BuildParams{
		Previous:  connstate.Online,
		Current:   connstate.Offline,
		Timestamp: time.Now(),
	}
	for _, opt := range opts {
		opt(&params)
	}
	return event.New(params.Previous, params.Current, params.Timestamp)
}

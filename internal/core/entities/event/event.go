package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/sergeii/netmon/internal/core/entities/connstate"
)

// Event captures a single connectivity transition.
// It is created exactly once per detected transition and never mutated afterwards.
type Event struct {
	ID        uuid.UUID        `json:"id"`
	Timestamp time.Time        `json:"timestamp"`
	Previous  connstate.Status `json:"previous"`
	Current   connstate.Status `json:"current"`
}

var Blank Event // nolint: gochecknoglobals

func New(previous, current connstate.Status, ts time.Time) Event {
	return Event{
		ID:        uuid.New(),
		Timestamp: ts.Truncate(time.Second),
		Previous:  previous,
		Current:   current,
	}
}

// Initial reports whether the event announces the very first resolved status.
func (e Event) Initial() bool {
	return e.Previous == connstate.Unknown
}

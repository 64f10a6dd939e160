package model

import (
	"time"

	"github.com/gosimple/slug"

	"github.com/sergeii/netmon/internal/core/entities/connstate"
	"github.com/sergeii/netmon/internal/core/entities/event"
)

type Status struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
}

func NewStatusFromDomain(status connstate.Status, changedAt time.Time) Status {
	return Status{
		Status:    status.String(),
		ChangedAt: changedAt,
	}
}

type Event struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Previous  string    `json:"previous"`
	Current   string    `json:"current"`
	Label     string    `json:"label"`
	LabelSlug string    `json:"label_slug"`
}

func NewEventFromDomain(evt event.Event) Event {
	label := eventLabel(evt)
	return Event{
		ID:        evt.ID.String(),
		Timestamp: evt.Timestamp,
		Previous:  evt.Previous.String(),
		Current:   evt.Current.String(),
		Label:     label,
		LabelSlug: slug.Make(label),
	}
}

func eventLabel(evt event.Event) string {
	switch {
	case evt.Initial() && evt.Current == connstate.Online:
		return "Initial status: Online"
	case evt.Initial():
		return "Initial status: Offline"
	case evt.Current == connstate.Online:
		return "Internet connection restored"
	default:
		return "Internet connection lost"
	}
}

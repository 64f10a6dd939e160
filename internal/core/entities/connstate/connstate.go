package connstate

import (
	"fmt"
)

// Status describes the last resolved internet connectivity state.
// Unknown is the state before the very first probe resolves.
type Status int

const (
	Unknown Status = iota
	Online
	Offline
)

var ErrInvalidStatus = fmt.Errorf("invalid connectivity status")

func Members() []Status {
	return []Status{
		Unknown,
		Online,
		Offline,
	}
}

// FromOutcome maps the boolean outcome of a single probe to a status.
func FromOutcome(online bool) Status {
	if online {
		return Online
	}
	return Offline
}

func Parse(value string) (Status, error) {
	switch value {
	case "unknown":
		return Unknown, nil
	case "online":
		return Online, nil
	case "offline":
		return Offline, nil
	}
	return Unknown, ErrInvalidStatus
}

func (s Status) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case Online:
		return "online"
	case Offline:
		return "offline"
	}
	return fmt.Sprintf("%d", s)
}

func (s Status) Resolved() bool {
	return s != Unknown
}

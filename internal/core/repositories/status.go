package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/sergeii/netmon/internal/core/entities/connstate"
)

var ErrStatusNotFound = errors.New("connectivity status has not been resolved yet")

// CurrentStatus is the latest resolved connectivity status
// along with the moment it was last changed.
type CurrentStatus struct {
	Status    connstate.Status
	ChangedAt time.Time
}

type StatusRepository interface {
	Get(context.Context) (CurrentStatus, error)
	Update(context.Context, CurrentStatus) error
}

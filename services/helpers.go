package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// ChangeNotifier is told about every successful mutation so that open
// dashboards can re-fetch the affected resource.
type ChangeNotifier interface {
	NotifyChanged(resource string, payload any)
}

type nopNotifier struct{}

func (nopNotifier) NotifyChanged(string, any) {}

func notifierOrNop(n ChangeNotifier) ChangeNotifier {
	if n == nil {
		return nopNotifier{}
	}
	return n
}

// Clock returns the current time in the zone used for calendar-day
// comparisons.
type Clock func() time.Time

func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return func() time.Time { return time.Now().In(loc) }
}

func clockOrSystem(c Clock) Clock {
	if c == nil {
		return SystemClock(nil)
	}
	return c
}

// MutationResult is returned by every write. Items is the affected list as
// re-fetched after the write; Stale is set when the write went through but
// the re-fetch failed.
type MutationResult[T any] struct {
	ID      int    `json:"id,omitempty"`
	Message string `json:"message"`
	Items   []T    `json:"items"`
	Stale   bool   `json:"stale,omitempty"`
}

// refetch loads the list affected by a write. A failed reload does not undo
// the write, so it is logged and reported through Stale.
func refetch[T any](ctx context.Context, resource string, result *MutationResult[T], load func(context.Context) ([]T, error)) {
	items, err := load(ctx)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("resource", resource).Msg("re-fetch after mutation failed")
		result.Items = []T{}
		result.Stale = true
		return
	}
	result.Items = items
}

func requirePositiveID(field string, id int) error {
	if id <= 0 {
		return newValidationError(field, "must be greater than 0")
	}
	return nil
}
